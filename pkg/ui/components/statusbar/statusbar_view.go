package statusbar

import (
	"fmt"
	"strings"

	"chatbot/pkg/ui/styles"

	"github.com/charmbracelet/x/ansi"
)

const (
	statusPrefix = "[chatbot]"
	keyHints     = "Enter send | Shift+Enter newline | Ctrl+Y copy | Esc quit"
	typingText   = "typing…"
	minGap       = 2
)

// StatusBarView renders the single-line bar under the input box.
type StatusBarView struct {
	width        int
	messageCount int
	typing       bool
	notice       string
	version      string
}

// NewStatusBarView creates a new status bar view
func NewStatusBarView() *StatusBarView {
	return &StatusBarView{width: 80}
}

// SetWidth updates the width for rendering
func (s *StatusBarView) SetWidth(width int) {
	s.width = width
}

// SetMessageCount updates the number of messages in the log.
func (s *StatusBarView) SetMessageCount(n int) {
	s.messageCount = n
}

// SetTyping toggles the typing indicator.
func (s *StatusBarView) SetTyping(typing bool) {
	s.typing = typing
}

// SetNotice shows a short notice in place of the key hints; empty clears it.
func (s *StatusBarView) SetNotice(notice string) {
	s.notice = strings.TrimSpace(notice)
}

// Notice returns the current notice.
func (s *StatusBarView) Notice() string {
	return s.notice
}

// SetVersion sets the version label shown on the right.
func (s *StatusBarView) SetVersion(v string) {
	s.version = strings.TrimSpace(v)
}

// Render returns the styled status bar string, exactly width cells wide.
func (s *StatusBarView) Render() string {
	left := fmt.Sprintf("%s %s", statusPrefix, countLabel(s.messageCount))
	if s.typing {
		left += " | " + styles.TypingStyle.Render(typingText)
	}

	right := keyHints
	if s.notice != "" {
		right = styles.NoticeStyle.Render(s.notice)
	}
	if s.version != "" {
		right += " | " + s.version
	}

	// Padding(0, 1) on the style takes two cells.
	inner := s.width - 2
	if inner < 1 {
		inner = 1
	}

	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)

	var content string
	switch {
	case leftWidth >= inner:
		content = ansi.Truncate(left, inner, "...")
	case leftWidth+minGap+rightWidth > inner:
		avail := inner - leftWidth - minGap
		if avail > 3 {
			content = left + strings.Repeat(" ", minGap) + ansi.Truncate(right, avail, "...")
		} else {
			content = left
		}
	default:
		content = left + strings.Repeat(" ", inner-leftWidth-rightWidth) + right
	}

	if w := ansi.StringWidth(content); w < inner {
		content += strings.Repeat(" ", inner-w)
	}

	return styles.StatusBarStyle.Render(content)
}

func countLabel(n int) string {
	if n == 1 {
		return "1 message"
	}
	return fmt.Sprintf("%d messages", n)
}
