package app

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/artilence/agentchat/internal/chat"
	"github.com/artilence/agentchat/internal/config"
	"github.com/artilence/agentchat/internal/keys"
	"github.com/artilence/agentchat/internal/ui"
)

// fakeSender returns a canned reply and records every call
type fakeSender struct {
	mu    sync.Mutex
	calls []string
	reply *chat.Reply
	err   error
}

func (f *fakeSender) Send(_ context.Context, _ string, text string) (*chat.Reply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, text)
	return f.reply, f.err
}

func replying(text string) *fakeSender {
	return &fakeSender{reply: &chat.Reply{AIResponse: text}}
}

// recorder captures clipboard writes and notifications
type recorder struct {
	copied   []string
	notified []string
	copyErr  error
}

func (r *recorder) copy(text string) error {
	if r.copyErr != nil {
		return r.copyErr
	}
	r.copied = append(r.copied, text)
	return nil
}

func (r *recorder) notify(preview string) error {
	r.notified = append(r.notified, preview)
	return nil
}

// testModel creates a sized test Model with recording side effects
func testModel(cfg *config.Config, sender chat.Sender) (*Model, *recorder) {
	rec := &recorder{}
	m := New(cfg, sender, "0.0.0-test", WithClipboard(rec.copy), WithNotifier(rec.notify))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, rec
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the resulting command
func sendKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string one character at a time
func typeText(m *Model, text string) {
	for _, ch := range text {
		sendKey(m, string(ch))
	}
}

// runCmd executes cmd, expanding batches, and returns every message produced
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// submit types text, presses enter and returns the reply message
func submit(m *Model, text string) (ui.ReplyMsg, bool) {
	typeText(m, text)
	for _, msg := range runCmd(sendKey(m, keys.Enter)) {
		if reply, ok := msg.(ui.ReplyMsg); ok {
			return reply, true
		}
	}
	return ui.ReplyMsg{}, false
}

// deliver feeds msg to the model and runs whatever command it returns
func deliver(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	runCmd(cmd)
}
