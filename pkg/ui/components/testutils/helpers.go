package testutils

import (
	tea "charm.land/bubbletea/v2"
)

// Test helpers for creating v2 KeyPressMsg values

// NewKeyPressMsg creates a KeyPressMsg from a key code (for special keys)
func NewKeyPressMsg(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

// NewTextKeyPressMsg creates a KeyPressMsg for text input
func NewTextKeyPressMsg(text string) tea.KeyPressMsg {
	if len(text) == 0 {
		return tea.KeyPressMsg(tea.Key{})
	}
	r := []rune(text)[0]
	return tea.KeyPressMsg(tea.Key{
		Code: r,
		Text: text,
	})
}

// NewModKeyPressMsg creates a KeyPressMsg with modifiers held.
func NewModKeyPressMsg(code rune, mod tea.KeyMod) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{
		Code: code,
		Mod:  mod,
	})
}

// TypeKeys returns one KeyPressMsg per rune of text.
func TypeKeys(text string) []tea.KeyPressMsg {
	msgs := make([]tea.KeyPressMsg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, NewTextKeyPressMsg(string(r)))
	}
	return msgs
}

// Common special keys using the new API
var (
	TestKeyEnter      = NewKeyPressMsg(tea.KeyEnter)
	TestKeyShiftEnter = NewModKeyPressMsg(tea.KeyEnter, tea.ModShift)
	TestKeyEsc        = NewKeyPressMsg(tea.KeyEscape)
	TestKeyBackspace  = NewKeyPressMsg(tea.KeyBackspace)
	TestKeyPgUp       = NewKeyPressMsg(tea.KeyPgUp)
	TestKeyPgDown     = NewKeyPressMsg(tea.KeyPgDown)
	TestKeyShiftUp    = NewModKeyPressMsg(tea.KeyUp, tea.ModShift)
	TestKeyShiftDown  = NewModKeyPressMsg(tea.KeyDown, tea.ModShift)
)

// Ctrl+X keys using modifier
func NewCtrlKeyPressMsg(char rune) tea.KeyPressMsg {
	return NewModKeyPressMsg(char, tea.ModCtrl)
}

// Common ctrl combinations
var (
	TestKeyCtrlC = NewCtrlKeyPressMsg('c')
	TestKeyCtrlJ = NewCtrlKeyPressMsg('j')
	TestKeyCtrlY = NewCtrlKeyPressMsg('y')
)
