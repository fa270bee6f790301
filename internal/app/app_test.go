package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/artilence/agentchat/internal/chat"
	"github.com/artilence/agentchat/internal/config"
	pkgerrors "github.com/artilence/agentchat/internal/errors"
	"github.com/artilence/agentchat/internal/keys"
	"github.com/artilence/agentchat/internal/ui"
)

func TestNew(t *testing.T) {
	m := New(config.Default(), replying("hi"), "0.0.0-test")

	if !m.Chat().IsFocused() {
		t.Error("Chat should start focused")
	}
	if m.Chat().IsPending() {
		t.Error("Chat should start idle")
	}
	if m.RenderToString() != "Loading..." {
		t.Error("View before the first WindowSizeMsg should be a placeholder")
	}
	if m.Init() != nil {
		t.Error("Init should not schedule work")
	}
}

func TestView(t *testing.T) {
	m, _ := testModel(config.Default(), replying("hi"))

	v := m.View()
	if !v.AltScreen {
		t.Error("View should use the alt screen")
	}
	if !v.ReportFocus {
		t.Error("View should request focus reports")
	}

	out := ansi.Strip(m.RenderToString())
	for _, want := range []string{ui.BrandTitle, "Send", "enter", "quit", ui.InputPlaceholder} {
		if !strings.Contains(out, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestSendFlow(t *testing.T) {
	sender := replying("Hi")
	m, _ := testModel(config.Default(), sender)

	reply, ok := submit(m, "Hello")
	if !ok {
		t.Fatal("enter should produce a request")
	}
	if !m.Chat().IsPending() {
		t.Error("Chat should be pending until the reply is delivered")
	}
	if strings.Contains(ansi.Strip(m.RenderToString()), "enter") {
		t.Error("Footer should hide the send binding while pending")
	}

	deliver(m, reply)

	msgs := m.Chat().Messages()
	if len(msgs) != 2 || msgs[0].Text != "Hello" || msgs[1].Text != "Hi" {
		t.Fatalf("Unexpected transcript: %+v", msgs)
	}
	if m.Chat().Draft() != "" {
		t.Errorf("Draft should be cleared, got %q", m.Chat().Draft())
	}
	if len(sender.calls) != 1 || sender.calls[0] != "Hello" {
		t.Errorf("Sender calls = %q", sender.calls)
	}
}

func TestSendFlow_CtrlS(t *testing.T) {
	m, _ := testModel(config.Default(), replying("Hi"))

	typeText(m, "Hello")
	var reply ui.ReplyMsg
	for _, msg := range runCmd(sendKey(m, keys.CtrlS)) {
		if r, ok := msg.(ui.ReplyMsg); ok {
			reply = r
		}
	}
	deliver(m, reply)

	if len(m.Chat().Messages()) != 2 {
		t.Errorf("ctrl+s should send like enter, transcript = %+v", m.Chat().Messages())
	}
}

func TestSendFlow_Failure(t *testing.T) {
	m, rec := testModel(config.Default(), &fakeSender{err: pkgerrors.BadStatus("chat.Send", 502, "bad gateway")})

	reply, ok := submit(m, "Hello")
	if !ok {
		t.Fatal("enter should produce a request")
	}
	deliver(m, reply)

	if m.Chat().Error() != chat.SendFailureMessage {
		t.Errorf("Error = %q", m.Chat().Error())
	}
	if m.Chat().Draft() != "Hello" {
		t.Errorf("Draft should be kept, got %q", m.Chat().Draft())
	}
	if !strings.Contains(ansi.Strip(m.RenderToString()), chat.SendFailureMessage) {
		t.Error("Error banner should be rendered")
	}
	if len(rec.notified) != 0 {
		t.Error("Failures should not notify")
	}
}

func TestCtrlC_Quits(t *testing.T) {
	m, _ := testModel(config.Default(), replying("Hi"))

	cmd := sendKey(m, keys.CtrlC)
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}

	m.Chat().SetDraft("Hello")
	if m.Chat().Submit() != nil {
		t.Error("Chat should be closed after quitting")
	}
}

func TestCtrlC_DropsLateReply(t *testing.T) {
	m, _ := testModel(config.Default(), replying("Hi"))

	reply, ok := submit(m, "Hello")
	if !ok {
		t.Fatal("enter should produce a request")
	}
	sendKey(m, keys.CtrlC)
	deliver(m, reply)

	if len(m.Chat().Messages()) != 0 {
		t.Error("Reply after quit should be dropped")
	}
}

func TestCopyLastReply(t *testing.T) {
	m, rec := testModel(config.Default(), replying("Here is the answer"))

	reply, _ := submit(m, "Question")
	deliver(m, reply)

	cmd := sendKey(m, keys.CtrlY)
	if cmd == nil {
		t.Error("Copy should start the flash timer")
	}
	if len(rec.copied) != 1 || rec.copied[0] != "Here is the answer" {
		t.Errorf("copied = %q", rec.copied)
	}
	if !m.footer.HasFlash() {
		t.Error("Copy should show a flash")
	}
	if !strings.Contains(ansi.Strip(m.RenderToString()), "Copied") {
		t.Error("Footer should show the copy confirmation")
	}
}

func TestCopyLastReply_NothingToCopy(t *testing.T) {
	m, rec := testModel(config.Default(), replying("Hi"))

	sendKey(m, keys.CtrlY)

	if len(rec.copied) != 0 {
		t.Error("Nothing should be copied without a reply")
	}
	if !strings.Contains(ansi.Strip(m.RenderToString()), "No reply to copy yet") {
		t.Error("Footer should explain there is nothing to copy")
	}
}

func TestCopyLastReply_Failure(t *testing.T) {
	m, rec := testModel(config.Default(), replying("Hi"))
	rec.copyErr = errors.New("no display")

	reply, _ := submit(m, "Hello")
	deliver(m, reply)
	sendKey(m, keys.CtrlY)

	if !strings.Contains(ansi.Strip(m.RenderToString()), "Failed to copy to clipboard") {
		t.Error("Footer should report the copy failure")
	}
	if m.Chat().Error() != "" {
		t.Errorf("Copy failures must not use the chat error banner, got %q", m.Chat().Error())
	}
}

func TestFlashTick(t *testing.T) {
	m, _ := testModel(config.Default(), replying("Hi"))

	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd != nil {
		t.Error("Tick without a flash should stop")
	}

	m.ShowFlashInfo("hello")
	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd == nil {
		t.Error("Tick with a fresh flash should keep ticking")
	}

	m.footer.SetFlashWithDuration("gone", ui.FlashInfo, 0)
	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd != nil {
		t.Error("Expired flash should stop ticking")
	}
	if m.footer.HasFlash() {
		t.Error("Expired flash should be cleared")
	}
}

func TestNotifyWhenBlurred(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		blurred    bool
		wantNotify bool
	}{
		{"blurred and enabled", true, true, true},
		{"focused", true, false, false},
		{"disabled", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.SetNotificationsEnabled(tt.enabled)
			m, rec := testModel(cfg, replying("All done.\nDetails follow."))

			reply, _ := submit(m, "Status?")
			if tt.blurred {
				m.Update(tea.BlurMsg{})
			}
			deliver(m, reply)

			if got := len(rec.notified) == 1; got != tt.wantNotify {
				t.Fatalf("notified = %q, want notify %v", rec.notified, tt.wantNotify)
			}
			if tt.wantNotify && rec.notified[0] != "All done. Details follow." {
				t.Errorf("preview = %q", rec.notified[0])
			}
		})
	}
}

func TestFocusRestoresForeground(t *testing.T) {
	cfg := config.Default()
	cfg.SetNotificationsEnabled(true)
	m, rec := testModel(cfg, replying("Hi"))

	m.Update(tea.BlurMsg{})
	m.Update(tea.FocusMsg{})

	reply, _ := submit(m, "Hello")
	deliver(m, reply)

	if len(rec.notified) != 0 {
		t.Error("Focused terminal should not notify")
	}
}

func TestScrollKeysReachChat(t *testing.T) {
	m, _ := testModel(config.Default(), replying(strings.Repeat("line\n", 60)))

	reply, _ := submit(m, "long please")
	deliver(m, reply)
	if !m.Chat().AtBottom() {
		t.Fatal("Transcript should follow the newest reply")
	}

	sendKey(m, keys.PgUp)
	if m.Chat().AtBottom() {
		t.Error("pgup should scroll the transcript")
	}
}
