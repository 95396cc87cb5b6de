package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"chatbot/pkg/config"
	"chatbot/pkg/conversation"
	"chatbot/pkg/ui/components/statusbar"
	"chatbot/pkg/ui/components/transcript"
	"chatbot/pkg/ui/components/utils"
	"chatbot/pkg/ui/components/welcome"
	"chatbot/pkg/ui/input"
	"chatbot/pkg/ui/styles"
	"chatbot/pkg/version"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

const (
	headerTitle    = "🤖  Offline Chatbot"
	headerSubtitle = "keyword replies, no network"
	noticeDuration = 2 * time.Second
)

// Model represents the Bubble Tea application state
type Model struct {
	controller *conversation.Controller

	// UI Components
	layout     *LayoutManager
	transcript *transcript.Transcript
	input      *input.ChatInput
	statusBar  *statusbar.StatusBarView

	// Where OSC 52 clipboard sequences are written
	clipboardOut io.Writer

	// UI state
	width    int
	height   int
	ready    bool
	noticeID int
}

// NewModel creates a new Bubble Tea model around controller.
func NewModel(controller *conversation.Controller, cfg config.Config) Model {
	chatInput := input.NewChatInput()

	tr := transcript.New()
	tr.SetShowTimestamps(cfg.ShowTimestamps)

	sb := statusbar.NewStatusBarView()
	sb.SetVersion(version.Summary())

	m := Model{
		controller:   controller,
		layout:       NewLayoutManager(chatInput.Height()),
		transcript:   tr,
		input:        chatInput,
		statusBar:    sb,
		clipboardOut: os.Stdout,
	}
	m.sync()
	return m
}

// Init initializes the model (Bubble Tea lifecycle method)
func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

// replyDueMsg fires when a queued reply's delay has elapsed.
type replyDueMsg struct {
	seq uint64
}

// clearNoticeMsg removes the status bar notice it was scheduled for.
type clearNoticeMsg struct {
	id int
}

// Update handles messages and updates model state (Bubble Tea lifecycle method)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.layout.SetSize(msg.Width, msg.Height)
		m.transcript.SetSize(msg.Width, m.layout.TranscriptHeight())
		m.input.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)

		slog.Debug("window_resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			slog.Info("app_quit", "messages", m.controller.Len())
			return m, tea.Quit
		case "ctrl+y":
			return m.copyTranscript()
		}

		if m.transcript.HandleScroll(msg.String()) {
			return m, nil
		}

		_, cmd := m.input.HandleKey(msg)
		return m, cmd

	case input.SubmitMsg:
		return m, m.submit(msg.Text)

	case replyDueMsg:
		if n := m.controller.Complete(msg.seq); n > 0 {
			m.sync()
		}
		return m, nil

	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.statusBar.SetNotice("")
		}
		return m, nil
	}

	// Pastes, cursor blinks and anything else the textarea understands.
	return m, m.input.Update(msg)
}

// submit hands text to the controller and schedules the bot reply.
func (m *Model) submit(text string) tea.Cmd {
	pending, ok := m.controller.Submit(text)
	if !ok {
		return nil
	}
	m.sync()

	seq := pending.Seq
	return tea.Tick(pending.Delay, func(time.Time) tea.Msg {
		return replyDueMsg{seq: seq}
	})
}

// sync pushes controller state into the view components.
func (m *Model) sync() {
	typing := m.controller.Pending() > 0
	m.transcript.SetMessages(m.controller.Messages())
	m.transcript.SetTyping(typing)
	m.statusBar.SetMessageCount(m.controller.Len())
	m.statusBar.SetTyping(typing)
}

func (m Model) copyTranscript() (tea.Model, tea.Cmd) {
	text := conversation.Transcript(m.controller.Messages())
	if text == "" {
		return m.showNotice("Nothing to copy yet")
	}

	out := m.clipboardOut
	copyCmd := func() tea.Msg {
		if _, err := fmt.Fprint(out, osc52.New(text)); err != nil {
			slog.Warn("clipboard_write_failed", "error", err)
		}
		return nil
	}

	next, noticeCmd := m.showNotice("Transcript copied")
	return next, tea.Batch(copyCmd, noticeCmd)
}

func (m Model) showNotice(text string) (tea.Model, tea.Cmd) {
	m.noticeID++
	id := m.noticeID
	m.statusBar.SetNotice(text)
	return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

// View renders the UI (Bubble Tea lifecycle method)
func (m Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render builds the screen content.
func (m Model) Render() string {
	if !m.ready {
		return "Initializing..."
	}

	header := styles.TitleStyle.Render(utils.TruncateToWidth(headerTitle, m.width))
	if rest := m.width - lipgloss.Width(headerTitle); rest > 2 {
		header += styles.SubtitleStyle.Render(utils.TruncateToWidth("  "+headerSubtitle, rest))
	}

	body := m.transcript.View()
	if m.controller.Len() == 0 {
		body = welcome.WelcomeMessage(m.width)
	}

	return m.layout.RenderLayout(
		header,
		body,
		m.input.View(),
		m.statusBar.Render(),
	)
}
