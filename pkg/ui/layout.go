package ui

import (
	"charm.land/lipgloss/v2"
)

const (
	headerHeight    = 1
	statusBarHeight = 1
)

// LayoutManager splits the screen into header, transcript, input and status bar.
type LayoutManager struct {
	width       int
	height      int
	inputHeight int
}

// NewLayoutManager creates a new layout manager
func NewLayoutManager(inputHeight int) *LayoutManager {
	return &LayoutManager{
		width:       80,
		height:      24,
		inputHeight: inputHeight,
	}
}

// SetSize updates the layout dimensions
func (lm *LayoutManager) SetSize(width, height int) {
	lm.width = width
	lm.height = height
}

// TranscriptHeight returns the rows left for the conversation.
func (lm *LayoutManager) TranscriptHeight() int {
	h := lm.height - headerHeight - lm.inputHeight - statusBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// RenderLayout stacks the sections top to bottom.
func (lm *LayoutManager) RenderLayout(header, transcript, input, statusBar string) string {
	body := lipgloss.NewStyle().
		Height(lm.TranscriptHeight()).
		MaxHeight(lm.TranscriptHeight()).
		Render(transcript)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		input,
		statusBar,
	)
}
