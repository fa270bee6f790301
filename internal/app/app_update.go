package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/artilence/agentchat/internal/chat"
	"github.com/artilence/agentchat/internal/keys"
	"github.com/artilence/agentchat/internal/logger"
	"github.com/artilence/agentchat/internal/notification"
	"github.com/artilence/agentchat/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		logger.Debug("App: Window focused")
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		logger.Debug("App: Window blurred")
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled here, let it fall through to the chat

	case ui.ReplyMsg:
		return m, m.handleReply(msg)

	case ui.FlashTickMsg:
		// Check if flash message has expired
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		// Flash still active, continue ticking
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil
	}

	// Keys, paste, mouse wheel and stopwatch ticks belong to the chat
	chatModel, cmd := m.chat.Update(msg)
	m.chat = chatModel
	return m, cmd
}

// handleKeyPress handles app-level shortcuts. A nil model means the key was
// not handled.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.CtrlC:
		logger.Info("App: quitting, pending=%v", m.chat.IsPending())
		m.Close()
		return m, tea.Quit

	case keys.CtrlY:
		return m, m.copyLastReply()
	}
	return nil, nil
}

// handleReply applies a reply to the chat and, when the terminal is in the
// background, announces it with a desktop notification
func (m *Model) handleReply(msg ui.ReplyMsg) tea.Cmd {
	if !m.chat.HandleReply(msg) {
		return nil
	}
	if msg.Err != nil || msg.Reply == nil || msg.Reply.AIResponse == "" {
		return nil
	}
	if m.windowFocused || !m.config.GetNotificationsEnabled() {
		return nil
	}

	preview := chat.Preview(msg.Reply.AIResponse, notification.PreviewLength)
	notify := m.notifyReply
	return func() tea.Msg {
		// Failures are logged by the notification package
		_ = notify(preview)
		return nil
	}
}

// copyLastReply copies the newest agent message to the clipboard
func (m *Model) copyLastReply() tea.Cmd {
	text, ok := m.chat.LastReply()
	if !ok {
		return m.ShowFlashInfo("No reply to copy yet")
	}
	if err := m.copyText(text); err != nil {
		logger.Warn("App: copy failed: %v", err)
		return m.ShowFlashError("Failed to copy to clipboard")
	}
	return m.ShowFlashSuccess("Copied reply to clipboard")
}
