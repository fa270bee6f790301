package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/artilence/agentchat/internal/chat"
	"github.com/artilence/agentchat/internal/clipboard"
	"github.com/artilence/agentchat/internal/config"
	"github.com/artilence/agentchat/internal/logger"
	"github.com/artilence/agentchat/internal/notification"
	"github.com/artilence/agentchat/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	header  *ui.Header
	footer  *ui.Footer
	chat    *ui.ChatApp

	width  int
	height int

	// Terminal focus as reported by the terminal; assumed focused until a
	// BlurMsg says otherwise
	windowFocused bool

	copyText    func(text string) error
	notifyReply func(preview string) error
}

// Option customizes a Model
type Option func(*Model)

// WithClipboard replaces the clipboard writer used by the copy shortcut
func WithClipboard(fn func(text string) error) Option {
	return func(m *Model) { m.copyText = fn }
}

// WithNotifier replaces the desktop notifier used for background replies
func WithNotifier(fn func(preview string) error) Option {
	return func(m *Model) { m.notifyReply = fn }
}

// New creates a new app model that talks to the agent through sender
func New(cfg *config.Config, sender chat.Sender, version string, opts ...Option) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:        cfg,
		version:       version,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		chat:          ui.NewChatApp(sender),
		windowFocused: true,
		copyText:      clipboard.WriteText,
		notifyReply:   notification.ReplyReady,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.chat.SetFocused(true)
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	logger.Info("App: starting version=%s endpoint=%s", m.version, m.config.GetEndpoint())
	return nil
}

// Chat returns the chat component
func (m *Model) Chat() *ui.ChatApp {
	return m.chat
}

// Close cancels any in-flight request. Safe to call more than once.
func (m *Model) Close() {
	m.chat.Close()
}
