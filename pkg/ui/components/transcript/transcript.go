package transcript

import (
	"strings"

	"chatbot/pkg/conversation"
	"chatbot/pkg/ui/components/utils"
	"chatbot/pkg/ui/styles"

	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"
)

const (
	bubbleTimeLayout = "15:04"
	bubblePaddingH   = 1
	maxBubbleWidth   = 72
	minBubbleWidth   = 12
	typingLabel      = "Bot is typing…"
)

// Transcript renders the conversation as a scrolling list of bubbles.
type Transcript struct {
	Viewport       viewport.Model
	messages       []conversation.Message
	width          int
	height         int
	showTimestamps bool
	typing         bool
	follow         bool
}

// New creates an empty transcript that follows new messages.
func New() *Transcript {
	return &Transcript{
		Viewport:       viewport.New(),
		showTimestamps: true,
		follow:         true,
	}
}

// SetSize updates the visible area.
func (t *Transcript) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.Viewport.SetWidth(width)
	t.Viewport.SetHeight(height)
	t.refresh()
}

// SetShowTimestamps toggles the time next to each sender label.
func (t *Transcript) SetShowTimestamps(show bool) {
	t.showTimestamps = show
	t.refresh()
}

// SetMessages replaces the rendered log. The view jumps to the newest
// message unless the user scrolled away from the bottom.
func (t *Transcript) SetMessages(msgs []conversation.Message) {
	t.messages = msgs
	t.refresh()
}

// SetTyping shows or hides the typing indicator under the last bubble.
func (t *Transcript) SetTyping(typing bool) {
	if t.typing == typing {
		return
	}
	t.typing = typing
	t.refresh()
}

// IsFollowing reports whether new content scrolls into view.
func (t *Transcript) IsFollowing() bool {
	return t.follow
}

// HandleScroll processes a scroll key and reports whether it was consumed.
func (t *Transcript) HandleScroll(key string) bool {
	switch key {
	case "pgup":
		t.Viewport.PageUp()
	case "pgdown":
		t.Viewport.PageDown()
	case "shift+up":
		t.Viewport.ScrollUp(1)
	case "shift+down":
		t.Viewport.ScrollDown(1)
	case "ctrl+home":
		t.Viewport.GotoTop()
	case "ctrl+end":
		t.Viewport.GotoBottom()
	default:
		return false
	}
	t.follow = t.Viewport.AtBottom()
	return true
}

// View renders the visible part of the transcript.
func (t *Transcript) View() string {
	return t.Viewport.View()
}

// Content returns the full rendered transcript, including off-screen lines.
func (t *Transcript) Content() string {
	return t.render()
}

func (t *Transcript) refresh() {
	t.Viewport.SetContent(t.render())
	if t.follow {
		t.Viewport.GotoBottom()
	}
}

func (t *Transcript) render() string {
	if t.width <= 0 {
		return ""
	}

	blocks := make([]string, 0, len(t.messages)+1)
	for _, msg := range t.messages {
		blocks = append(blocks, RenderBubble(msg, t.width, t.showTimestamps))
	}
	if t.typing {
		blocks = append(blocks, styles.TypingStyle.Render(utils.TruncateToWidth(typingLabel, t.width)))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderBubble renders one message as a padded block. User bubbles are
// right-aligned within width, bot bubbles left-aligned.
func RenderBubble(msg conversation.Message, width int, showTimestamp bool) string {
	bubbleWidth := width * 3 / 4
	if bubbleWidth > maxBubbleWidth {
		bubbleWidth = maxBubbleWidth
	}
	if bubbleWidth < minBubbleWidth {
		bubbleWidth = width
	}
	textWidth := bubbleWidth - 2*bubblePaddingH
	if textWidth < 1 {
		textWidth = 1
	}

	label := msg.Sender.String()
	if showTimestamp && !msg.Timestamp.IsZero() {
		label += " · " + msg.Timestamp.Format(bubbleTimeLayout)
	}
	label = utils.TruncateToWidth(label, textWidth)

	lines := utils.WrapText(msg.Text, textWidth)
	inner := utils.MaxLineWidth(append([]string{label}, lines...))

	isUser := msg.Sender == conversation.SenderUser
	bubbleStyle, labelStyle := styles.BotBubbleStyle, styles.BotLabelStyle
	if isUser {
		bubbleStyle, labelStyle = styles.UserBubbleStyle, styles.UserLabelStyle
	}
	labelStyle = labelStyle.Padding(0, bubblePaddingH)

	rendered := make([]string, 0, len(lines)+1)
	rendered = append(rendered, labelStyle.Render(utils.PadPlain(label, inner)))
	for _, line := range lines {
		rendered = append(rendered, bubbleStyle.Render(utils.PadPlain(line, inner)))
	}

	indent := ""
	if isUser {
		if gap := width - (inner + 2*bubblePaddingH); gap > 0 {
			indent = strings.Repeat(" ", gap)
		}
	}
	for i, line := range rendered {
		rendered[i] = indent + line
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
