package welcome

import (
	"fmt"
	"strings"

	"chatbot/pkg/ui/components/utils"
	"chatbot/pkg/ui/styles"

	"github.com/mattn/go-runewidth"
)

// Greeting is the bot's opening line, shown before the first message.
const Greeting = "Hi! I’m your offline chatbot. Ask me something, or try “time”."

const (
	maxBoxWidth = 64
	minBoxWidth = 10
)

// WelcomeMessage returns the welcome box sized to fit width. Below the
// smallest usable box only the greeting is shown, wrapped to width.
func WelcomeMessage(width int) string {
	boxWidth := width - 2
	if boxWidth > maxBoxWidth {
		boxWidth = maxBoxWidth
	}
	if boxWidth < minBoxWidth {
		return plainGreeting(width)
	}

	// Helper: create a line with content padded to boxWidth
	makeLine := func(content string, visualWidth int) string {
		pad := boxWidth - visualWidth
		if pad < 0 {
			pad = 0
		}
		return styles.WelcomeBorderStyle.Render("│") + content + strings.Repeat(" ", pad) + styles.WelcomeBorderStyle.Render("│")
	}

	top := styles.WelcomeBorderStyle.Render("╭" + strings.Repeat("─", boxWidth) + "╮")
	bottom := styles.WelcomeBorderStyle.Render("╰" + strings.Repeat("─", boxWidth) + "╯")
	empty := makeLine("", 0)

	var lines []string
	lines = append(lines, top)

	for _, text := range utils.WrapText(Greeting, boxWidth-4) {
		line := "  " + styles.WelcomeTitleStyle.Render(text)
		lines = append(lines, makeLine(line, 2+runewidth.StringWidth(text)))
	}

	lines = append(lines, empty)

	shortcuts := []struct{ key, desc string }{
		{"Enter", "Send message"},
		{"Shift+Enter", "New line"},
		{"PgUp/PgDn", "Scroll conversation"},
		{"Ctrl+Y", "Copy transcript"},
		{"Esc", "Quit"},
	}
	for _, s := range shortcuts {
		keyFormatted := utils.TruncateToWidth(fmt.Sprintf("    %-13s", s.key), boxWidth)
		desc := utils.TruncateToWidth(s.desc, boxWidth-runewidth.StringWidth(keyFormatted))
		line := styles.WelcomeKeyStyle.Render(keyFormatted) + styles.WelcomeTextStyle.Render(desc)
		lines = append(lines, makeLine(line, runewidth.StringWidth(keyFormatted)+runewidth.StringWidth(desc)))
	}

	lines = append(lines, bottom)

	return strings.Join(lines, "\n")
}

func plainGreeting(width int) string {
	if width <= 0 {
		return ""
	}
	lines := utils.WrapText(Greeting, width)
	for i, line := range lines {
		lines[i] = styles.WelcomeTitleStyle.Render(utils.TruncateToWidth(line, width))
	}
	return strings.Join(lines, "\n")
}
