// Package styles provides the shared palette and styles for the chat UI.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - dark theme
var (
	ColorBackground = lipgloss.Color("#0b0e14")
	ColorPanel      = lipgloss.Color("#0f141a")
	ColorInputBg    = lipgloss.Color("#0c1117")

	// Bubble backgrounds
	ColorUserBubble = lipgloss.Color("#2563eb")
	ColorBotBubble  = lipgloss.Color("#1f2937")

	// Text colors
	ColorText       = lipgloss.Color("#e5e7eb") // Primary text
	ColorTextMuted  = lipgloss.Color("#9aa4b2") // Timestamps, placeholder
	ColorTextBright = lipgloss.Color("#ffffff")
	ColorUserLabel  = lipgloss.Color("#e6eefc")

	// Accent (send hint, typing indicator)
	ColorAccent      = lipgloss.Color("#22c55e")
	ColorAccentHover = lipgloss.Color("#16a34a")

	ColorBorder = lipgloss.Color("#1f2937")
)

// Header styles
var (
	// TitleStyle for the app title
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	// SubtitleStyle for the muted text next to the title
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Bubble styles
var (
	UserBubbleStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorUserBubble).
			Padding(0, 1)

	BotBubbleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorBotBubble).
			Padding(0, 1)

	UserLabelStyle = lipgloss.NewStyle().
			Foreground(ColorUserLabel).
			Background(ColorUserBubble).
			Bold(true)

	BotLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Background(ColorBotBubble).
			Bold(true)
)

// Input styles
var (
	// InputBoxStyle frames the message textarea
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	// PlaceholderStyle for placeholder text
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPanel).
			Padding(0, 1)

	TypingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorAccentHover).
			Bold(true)
)

// Welcome banner styles
var (
	WelcomeBorderStyle = lipgloss.NewStyle().
				Foreground(ColorUserBubble)

	WelcomeTitleStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	WelcomeKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	WelcomeTextStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)
)
