package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"chatbot/pkg/config"
	"chatbot/pkg/conversation"
	"chatbot/pkg/intent"
	"chatbot/pkg/ui/components/testutils"
	"chatbot/pkg/ui/input"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	now := func() time.Time { return fixedNow }
	controller := conversation.NewController(
		intent.NewDefaultMatcher(now),
		conversation.WithClock(now),
	)
	m := NewModel(controller, config.Default())
	m.clipboardOut = &bytes.Buffer{}
	return m
}

func resize(t *testing.T, m Model, width, height int) Model {
	t.Helper()
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return newModel.(Model)
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, key := range testutils.TypeKeys(text) {
		newModel, _ := m.Update(key)
		m = newModel.(Model)
	}
	return m
}

// pressEnter sends Enter and feeds the resulting SubmitMsg back into the model.
func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	newModel, cmd := m.Update(testutils.TestKeyEnter)
	m = newModel.(Model)
	if cmd == nil {
		return m, nil
	}
	submit, ok := cmd().(input.SubmitMsg)
	if !ok {
		t.Fatalf("Expected SubmitMsg from Enter, got %T", cmd())
	}
	newModel, cmd = m.Update(submit)
	return newModel.(Model), cmd
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if m.controller == nil {
		t.Error("Expected controller to be set")
	}
	if m.ready {
		t.Error("Expected model not to be ready before the first window size")
	}
	if m.statusBar.Render() == "" {
		t.Error("Expected status bar to render")
	}

	// Init only focuses the input; calling it must not panic.
	_ = m.Init()
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := resize(t, newTestModel(t), 80, 24)

	if m.width != 80 || m.height != 24 {
		t.Errorf("Expected 80x24, got %dx%d", m.width, m.height)
	}
	if !m.ready {
		t.Error("Expected ready to be true after window size")
	}

	// header (1) + input box (4) + status bar (1)
	if got := m.transcript.Viewport.Height(); got != 18 {
		t.Errorf("Expected transcript height 18, got %d", got)
	}
}

func TestModel_View_NotReady(t *testing.T) {
	m := newTestModel(t)
	if got := m.Render(); got != "Initializing..." {
		t.Errorf("Expected initializing text, got %q", got)
	}
}

func TestModel_View_UsesAltScreen(t *testing.T) {
	m := resize(t, newTestModel(t), 80, 24)
	if !m.View().AltScreen {
		t.Error("Expected view to request the alternate screen")
	}
}

func TestModel_Render_WelcomeUntilFirstMessage(t *testing.T) {
	m := resize(t, newTestModel(t), 80, 24)

	view := ansi.Strip(m.Render())
	if !strings.Contains(view, "Ask me something") {
		t.Errorf("Expected welcome banner on an empty conversation, got:\n%s", view)
	}
	if !strings.Contains(view, "Offline Chatbot") {
		t.Errorf("Expected header in view, got:\n%s", view)
	}

	m = typeText(t, m, "hello")
	m, _ = pressEnter(t, m)

	view = ansi.Strip(m.Render())
	if strings.Contains(view, "Ask me something") {
		t.Error("Expected welcome banner to disappear after the first message")
	}
	if !strings.Contains(view, "hello") {
		t.Errorf("Expected user bubble in view, got:\n%s", view)
	}
}

func TestModel_Render_FitsScreen(t *testing.T) {
	m := resize(t, newTestModel(t), 60, 20)
	m = typeText(t, m, "hello")
	m, _ = pressEnter(t, m)

	lines := strings.Split(m.Render(), "\n")
	if len(lines) != 20 {
		t.Errorf("Expected 20 rendered lines, got %d", len(lines))
	}
}

func TestModel_SubmitThenReply(t *testing.T) {
	m := resize(t, newTestModel(t), 80, 24)
	m = typeText(t, m, "hello")

	if got := m.input.Value(); got != "hello" {
		t.Fatalf("Expected input %q, got %q", "hello", got)
	}

	m, tick := pressEnter(t, m)
	if tick == nil {
		t.Fatal("Expected a reply timer after submitting")
	}
	if got := m.input.Value(); got != "" {
		t.Errorf("Expected input cleared after submit, got %q", got)
	}

	msgs := m.controller.Messages()
	if len(msgs) != 1 || msgs[0].Sender != conversation.SenderUser || msgs[0].Text != "hello" {
		t.Fatalf("Expected only the user message before the reply, got %+v", msgs)
	}
	if !strings.Contains(ansi.Strip(m.Render()), "Bot is typing") {
		t.Error("Expected typing indicator while a reply is pending")
	}

	newModel, _ := m.Update(replyDueMsg{seq: 1})
	m = newModel.(Model)

	msgs = m.controller.Messages()
	if len(msgs) != 2 {
		t.Fatalf("Expected 2 messages after reply, got %d", len(msgs))
	}
	if msgs[1].Sender != conversation.SenderBot || msgs[1].Text != "Hello! How can I help you today?" {
		t.Errorf("Unexpected bot reply: %+v", msgs[1])
	}
	if strings.Contains(ansi.Strip(m.Render()), "Bot is typing") {
		t.Error("Expected typing indicator to clear after the reply")
	}
}

func TestModel_ShiftEnterInsertsNewline(t *testing.T) {
	m := resize(t, newTestModel(t), 80, 24)
	m = typeText(t, m, "a")

	newModel, _ := m.Update(testutils.TestKeyShiftEnter)
	m = newModel.(Model)
	m = typeText(t, m, "b")

	if got := m.input.Value(); got != "a\nb" {
		t.Errorf("Expected %q, got %q", "a\nb", got)
	}
	if m.controller.Len() != 0 {
		t.Error("Expected Shift+Enter not to submit")
	}
}

func TestModel_EnterOnBlankInputDoesNothing(t *testing.T) {
	m := resize(t, newTestModel(t), 80, 24)
	m = typeText(t, m, "   ")

	newModel, cmd := m.Update(testutils.TestKeyEnter)
	m = newModel.(Model)

	if cmd != nil {
		t.Error("Expected no command for blank input")
	}
	if m.controller.Len() != 0 {
		t.Errorf("Expected empty log, got %d messages", m.controller.Len())
	}
}

func TestModel_BackToBackSubmitsKeepPairs(t *testing.T) {
	m := resize(t, newTestModel(t), 80, 24)

	newModel, _ := m.Update(input.SubmitMsg{Text: "bye"})
	m = newModel.(Model)
	newModel, _ = m.Update(input.SubmitMsg{Text: "hi"})
	m = newModel.(Model)

	// Both timers fire after the second submit.
	newModel, _ = m.Update(replyDueMsg{seq: 1})
	m = newModel.(Model)
	newModel, _ = m.Update(replyDueMsg{seq: 2})
	m = newModel.(Model)

	want := []struct {
		sender conversation.Sender
		text   string
	}{
		{conversation.SenderUser, "bye"},
		{conversation.SenderBot, "See you later!"},
		{conversation.SenderUser, "hi"},
		{conversation.SenderBot, "Hello! How can I help you today?"},
	}

	msgs := m.controller.Messages()
	if len(msgs) != len(want) {
		t.Fatalf("Expected %d messages, got %d", len(want), len(msgs))
	}
	for i, w := range want {
		if msgs[i].Sender != w.sender || msgs[i].Text != w.text {
			t.Errorf("message %d: got %s %q, want %s %q", i, msgs[i].Sender, msgs[i].Text, w.sender, w.text)
		}
	}
}

func TestModel_CopyTranscript(t *testing.T) {
	m := resize(t, newTestModel(t), 80, 24)
	out := &bytes.Buffer{}
	m.clipboardOut = out

	newModel, _ := m.Update(input.SubmitMsg{Text: "hello"})
	m = newModel.(Model)
	newModel, _ = m.Update(replyDueMsg{seq: 1})
	m = newModel.(Model)

	newModel, cmd := m.Update(testutils.TestKeyCtrlY)
	m = newModel.(Model)
	if cmd == nil {
		t.Fatal("Expected a command from Ctrl+Y")
	}

	batch, ok := cmd().(tea.BatchMsg)
	if !ok || len(batch) == 0 {
		t.Fatalf("Expected a batch of commands, got %T", cmd())
	}
	// The first command writes the clipboard sequence; the rest are timers.
	batch[0]()

	if !strings.Contains(out.String(), "\x1b]52;c;") {
		t.Errorf("Expected OSC 52 sequence, got %q", out.String())
	}
	if got := m.statusBar.Notice(); got != "Transcript copied" {
		t.Errorf("Expected copy notice, got %q", got)
	}
}

func TestModel_CopyTranscript_Empty(t *testing.T) {
	m := resize(t, newTestModel(t), 80, 24)
	out := &bytes.Buffer{}
	m.clipboardOut = out

	newModel, _ := m.Update(testutils.TestKeyCtrlY)
	m = newModel.(Model)

	if got := m.statusBar.Notice(); got != "Nothing to copy yet" {
		t.Errorf("Expected empty notice, got %q", got)
	}
	if out.Len() != 0 {
		t.Errorf("Expected nothing written, got %q", out.String())
	}
}

func TestModel_NoticeClearsOnlyForLatestID(t *testing.T) {
	m := resize(t, newTestModel(t), 80, 24)

	newModel, _ := m.Update(testutils.TestKeyCtrlY)
	m = newModel.(Model)
	newModel, _ = m.Update(testutils.TestKeyCtrlY)
	m = newModel.(Model)

	newModel, _ = m.Update(clearNoticeMsg{id: 1})
	m = newModel.(Model)
	if m.statusBar.Notice() == "" {
		t.Error("Expected stale clear to leave the newer notice")
	}

	newModel, _ = m.Update(clearNoticeMsg{id: 2})
	m = newModel.(Model)
	if got := m.statusBar.Notice(); got != "" {
		t.Errorf("Expected notice cleared, got %q", got)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{testutils.TestKeyEsc, testutils.TestKeyCtrlC} {
		t.Run(key.String(), func(t *testing.T) {
			m := resize(t, newTestModel(t), 80, 24)
			_, cmd := m.Update(key)
			if cmd == nil {
				t.Fatal("Expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("Expected tea.QuitMsg, got %T", cmd())
			}
		})
	}
}

func TestModel_ScrollKeysStopFollowing(t *testing.T) {
	m := resize(t, newTestModel(t), 80, 12)
	for i := 0; i < 10; i++ {
		newModel, _ := m.Update(input.SubmitMsg{Text: "line"})
		m = newModel.(Model)
	}
	m.controller.Flush()
	m.sync()

	newModel, _ := m.Update(testutils.TestKeyPgUp)
	m = newModel.(Model)
	if m.transcript.IsFollowing() {
		t.Error("Expected PgUp to stop following new messages")
	}
	if m.input.Value() != "" {
		t.Error("Expected scroll key not to reach the input")
	}

	newModel, _ = m.Update(testutils.NewModKeyPressMsg(tea.KeyEnd, tea.ModCtrl))
	m = newModel.(Model)
	if !m.transcript.IsFollowing() {
		t.Error("Expected Ctrl+End to resume following")
	}
}

func TestLayoutManager_TranscriptHeight(t *testing.T) {
	lm := NewLayoutManager(4)

	lm.SetSize(80, 24)
	if got := lm.TranscriptHeight(); got != 18 {
		t.Errorf("Expected 18, got %d", got)
	}

	lm.SetSize(80, 3)
	if got := lm.TranscriptHeight(); got != 1 {
		t.Errorf("Expected minimum height 1, got %d", got)
	}
}
