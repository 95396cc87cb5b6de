package input

import (
	"context"
	"log/slog"
	"strings"

	"chatbot/pkg/logging"
	"chatbot/pkg/ui/styles"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// Placeholder is shown while the input is empty.
const Placeholder = "Type a message…  (Enter to send, Shift+Enter for new line)"

const (
	textareaHeight = 2
	boxBorderSize  = 1
)

// SubmitMsg is sent when Enter is pressed with non-blank text.
type SubmitMsg struct {
	Text string
}

// ChatInput is the multi-line message box. Enter submits; Shift+Enter
// (or Ctrl+J on terminals that cannot report shift) inserts a line break.
type ChatInput struct {
	textarea textarea.Model
	width    int
}

// NewChatInput creates a focused input box.
func NewChatInput() *ChatInput {
	ta := textarea.New()
	ta.Placeholder = Placeholder
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.KeyMap.InsertNewline = key.NewBinding(
		key.WithKeys("shift+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "insert newline"),
	)
	ta.SetHeight(textareaHeight)

	s := ta.Styles()
	s.Focused.Placeholder = styles.PlaceholderStyle
	s.Blurred.Placeholder = styles.PlaceholderStyle
	ta.SetStyles(s)

	ta.Focus()

	return &ChatInput{textarea: ta}
}

// HandleKey routes a key press to the input. Enter with blank text is
// swallowed without clearing the box.
func (ci *ChatInput) HandleKey(msg tea.KeyPressMsg) (handled bool, cmd tea.Cmd) {
	logger := slog.Default()
	if ctx := context.Background(); logger.Enabled(ctx, logging.LevelTrace) {
		logger.Log(ctx, logging.LevelTrace, "input_key", "key", msg.String())
	}

	if msg.String() == "enter" {
		text := ci.textarea.Value()
		if strings.TrimSpace(text) == "" {
			return true, nil
		}
		ci.textarea.Reset()
		return true, func() tea.Msg {
			return SubmitMsg{Text: text}
		}
	}

	ci.textarea, cmd = ci.textarea.Update(msg)
	return true, cmd
}

// Update forwards non-key messages such as pastes and cursor blinks.
func (ci *ChatInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	ci.textarea, cmd = ci.textarea.Update(msg)
	return cmd
}

// Focus gives the input keyboard focus.
func (ci *ChatInput) Focus() tea.Cmd {
	return ci.textarea.Focus()
}

// Value returns the current text.
func (ci *ChatInput) Value() string {
	return ci.textarea.Value()
}

// SetValue replaces the current text.
func (ci *ChatInput) SetValue(text string) {
	ci.textarea.SetValue(text)
}

// SetWidth sets the outer width, border included.
func (ci *ChatInput) SetWidth(width int) {
	ci.width = width
	inner := width - 2*boxBorderSize
	if inner < 1 {
		inner = 1
	}
	ci.textarea.SetWidth(inner)
}

// Height returns the rendered height, border included.
func (ci *ChatInput) Height() int {
	return textareaHeight + 2*boxBorderSize
}

// View renders the bordered input box.
func (ci *ChatInput) View() string {
	return styles.InputBoxStyle.Render(ci.textarea.View())
}
