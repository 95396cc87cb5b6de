package utils

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateToWidth truncates string to width with ellipsis
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= 3 {
		return runewidth.Truncate(text, width, "")
	}
	return runewidth.Truncate(text, width, "...")
}

// PadPlain pads text with spaces to width
func PadPlain(text string, width int) string {
	if width <= 0 {
		return text
	}
	textWidth := runewidth.StringWidth(text)
	if textWidth >= width {
		return text
	}
	return text + strings.Repeat(" ", width-textWidth)
}

// PadStyled pads text with spaces to width, accounting for style
func PadStyled(text string, width int) string {
	if width <= 0 {
		return text
	}
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return text + strings.Repeat(" ", width-textWidth)
}

// WrapText wraps plain text to width, breaking long words when needed.
// Tabs are expanded and control characters other than newline are dropped.
func WrapText(text string, width int) []string {
	text = sanitize(strings.ReplaceAll(text, "\t", "    "))
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	return strings.Split(ansi.Wrap(text, width, ""), "\n")
}

// MaxLineWidth returns the widest cell width among lines.
func MaxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

func sanitize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var sb strings.Builder
	sb.Grow(len(content))
	for _, r := range content {
		if r == '\n' {
			sb.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
