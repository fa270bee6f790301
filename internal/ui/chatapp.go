package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/artilence/agentchat/internal/chat"
	pkgerrors "github.com/artilence/agentchat/internal/errors"
	"github.com/artilence/agentchat/internal/keys"
	"github.com/artilence/agentchat/internal/logger"
)

// ReplyMsg is the outcome of one Send, delivered back to the ChatApp that
// issued it.
type ReplyMsg struct {
	RequestID string
	Draft     string
	Reply     *chat.Reply
	Err       error
}

// ChatApp is the interactive chat: a transcript viewport, an error banner,
// a single-line draft input and a send button. At most one request is in
// flight at a time.
type ChatApp struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool

	sender     chat.Sender
	transcript chat.Transcript
	state      chat.State
	errText    string

	// In-flight request
	requestID string
	cancel    context.CancelFunc
	closed    bool

	waitStart   time.Time
	waitingVerb string
	frame       int

	log *slog.Logger
}

// NewChatApp creates a chat component that sends drafts through sender
func NewChatApp(sender chat.Sender) *ChatApp {
	ti := textarea.New()
	ti.Placeholder = InputPlaceholder
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	// Drafts are single messages; enter submits instead
	ti.KeyMap.InsertNewline.SetEnabled(false)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &ChatApp{
		viewport: vp,
		input:    ti,
		sender:   sender,
		state:    chat.StateIdle,
		log:      logger.ComponentLogger("chat"),
	}
	c.updateContent()
	return c
}

// SetSize sets the outer dimensions of the whole chat component
func (c *ChatApp) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	viewportHeight := ctx.InnerHeight(c.transcriptHeight())
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	c.viewport.SetWidth(ctx.InnerWidth(width))
	c.viewport.SetHeight(viewportHeight)

	inputInnerWidth := ctx.InnerWidth(width-SendButtonWidth) - InputPaddingWidth
	if inputInnerWidth < 1 {
		inputInnerWidth = 1
	}
	c.input.SetWidth(inputInnerWidth)

	// Wrap width changed
	c.updateContent()
}

// transcriptHeight is the outer height of the bordered transcript panel
func (c *ChatApp) transcriptHeight() int {
	return c.height - InputTotalHeight - ErrorLineHeight
}

// SetFocused sets the focus state
func (c *ChatApp) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns whether the chat has keyboard focus
func (c *ChatApp) IsFocused() bool {
	return c.focused
}

// Draft returns the current input text
func (c *ChatApp) Draft() string {
	return c.input.Value()
}

// SetDraft replaces the input text
func (c *ChatApp) SetDraft(value string) {
	c.input.SetValue(value)
}

// Messages returns the transcript in display order
func (c *ChatApp) Messages() []chat.Message {
	return c.transcript.Messages()
}

// State returns the request lifecycle state
func (c *ChatApp) State() chat.State {
	return c.state
}

// IsPending returns whether a request is in flight
func (c *ChatApp) IsPending() bool {
	return c.state == chat.StatePending
}

// Error returns the error banner text, empty when there is none
func (c *ChatApp) Error() string {
	return c.errText
}

// PendingRequestID returns the ID of the in-flight request, if any
func (c *ChatApp) PendingRequestID() string {
	return c.requestID
}

// LastReply returns the newest agent message
func (c *ChatApp) LastReply() (string, bool) {
	msg, ok := c.transcript.LastFrom(chat.RoleAI)
	return msg.Text, ok
}

// AtBottom returns whether the transcript is scrolled to the end
func (c *ChatApp) AtBottom() bool {
	return c.viewport.AtBottom()
}

// SendLabel returns the text of the send button
func (c *ChatApp) SendLabel() string {
	if c.IsPending() {
		return "Sending... " + formatElapsed(time.Since(c.waitStart))
	}
	return "Send"
}

// Submit sends the current draft. It is a no-op returning nil when the
// draft is blank, a request is already pending, or the chat was closed.
// The returned command performs the request and yields a ReplyMsg.
func (c *ChatApp) Submit() tea.Cmd {
	draft := c.input.Value()
	if strings.TrimSpace(draft) == "" || c.IsPending() || c.closed {
		return nil
	}

	c.errText = ""
	c.state = chat.StatePending
	c.requestID = chat.NewRequestID()
	c.waitStart = time.Now()
	c.waitingVerb = randomThinkingVerb()
	c.frame = 0

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.log.Debug("submitting draft", "requestID", c.requestID, "chars", len(draft))
	c.updateContent()

	sender := c.sender
	id := c.requestID
	return func() tea.Msg {
		reply, err := sender.Send(ctx, id, draft)
		return ReplyMsg{RequestID: id, Draft: draft, Reply: reply, Err: err}
	}
}

// HandleReply applies the outcome of the outstanding request and reports
// whether it did. Replies for another request ID, or arriving after Close,
// are dropped.
func (c *ChatApp) HandleReply(msg ReplyMsg) bool {
	if c.closed || !c.IsPending() || msg.RequestID != c.requestID {
		c.log.Debug("dropping stale reply", "requestID", msg.RequestID, "pending", c.requestID, "closed", c.closed)
		return false
	}

	c.cancel()
	c.cancel = nil
	c.requestID = ""
	c.state = chat.StateIdle

	switch {
	case msg.Err == nil && msg.Reply != nil && msg.Reply.AIResponse != "":
		c.transcript.Append(
			chat.Message{Role: chat.RoleUser, Text: msg.Draft},
			chat.Message{Role: chat.RoleAI, Text: msg.Reply.AIResponse},
		)
		c.input.Reset()

	case msg.Err == nil || pkgerrors.Is(msg.Err, pkgerrors.KindEmptyReply):
		// The draft is cleared even though nothing was appended
		c.errText = chat.NoResponseMessage
		c.input.Reset()

	default:
		c.log.Error("send failed", "requestID", msg.RequestID, "kind", pkgerrors.GetKind(msg.Err).String(), "error", msg.Err)
		c.errText = chat.ErrorBanner(msg.Err)
	}

	c.updateContent()
	return true
}

// Close cancels any in-flight request. Replies that arrive afterwards are
// ignored.
func (c *ChatApp) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Update handles messages
func (c *ChatApp) Update(msg tea.Msg) (*ChatApp, tea.Cmd) {
	switch msg := msg.(type) {
	case ReplyMsg:
		c.HandleReply(msg)
		return c, nil

	case StopwatchTickMsg:
		// Each request runs its own tick chain; older chains end here
		if !c.IsPending() || msg.RequestID != c.requestID {
			return c, nil
		}
		c.frame++
		c.refresh()
		return c, StopwatchTick(c.requestID)

	case tea.KeyPressMsg:
		if !c.focused {
			return c, nil
		}
		switch msg.String() {
		case keys.Enter, keys.CtrlS:
			if cmd := c.Submit(); cmd != nil {
				return c, tea.Batch(cmd, StopwatchTick(c.requestID))
			}
			return c, nil
		case keys.ShiftEnter, keys.AltEnter:
			return c, nil
		case keys.PgUp:
			c.viewport.PageUp()
			return c, nil
		case keys.PgDown:
			c.viewport.PageDown()
			return c, nil
		case keys.CtrlU:
			c.viewport.HalfPageUp()
			return c, nil
		case keys.CtrlD:
			c.viewport.HalfPageDown()
			return c, nil
		case keys.CtrlUp:
			c.viewport.ScrollUp(1)
			return c, nil
		case keys.CtrlDown:
			c.viewport.ScrollDown(1)
			return c, nil
		case keys.CtrlHome:
			c.viewport.GotoTop()
			return c, nil
		case keys.CtrlEnd:
			c.viewport.GotoBottom()
			return c, nil
		}

		// Typing is allowed while pending
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd

	case tea.PasteMsg:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	// Mouse wheel and anything else scrolls the transcript
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// updateContent re-renders the transcript and scrolls to the newest entry
func (c *ChatApp) updateContent() {
	c.viewport.SetContent(c.renderTranscript())
	c.viewport.GotoBottom()
}

// refresh re-renders the transcript, following the bottom only if the user
// has not scrolled away from it
func (c *ChatApp) refresh() {
	follow := c.viewport.AtBottom()
	c.viewport.SetContent(c.renderTranscript())
	if follow {
		c.viewport.GotoBottom()
	}
}

func (c *ChatApp) renderTranscript() string {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	messages := c.transcript.Messages()
	if len(messages) == 0 && !c.IsPending() {
		return ChatPlaceholderStyle.Render("Say hello to the Artilence Agent...")
	}

	var sb strings.Builder
	for i, msg := range messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if msg.Role == chat.RoleUser {
			sb.WriteString(ChatUserStyle.Render("You:"))
			sb.WriteString("\n")
			sb.WriteString(renderUserText(msg.Text, wrapWidth))
		} else {
			sb.WriteString(ChatAssistantStyle.Render("Agent:"))
			sb.WriteString("\n")
			sb.WriteString(renderMarkdown(strings.TrimSpace(msg.Text), wrapWidth))
		}
	}

	if c.IsPending() {
		if len(messages) > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(ChatAssistantStyle.Render("Agent:"))
		sb.WriteString("\n")
		sb.WriteString(renderWaiting(c.waitingVerb, c.frame, time.Since(c.waitStart)))
	}

	return sb.String()
}

// View renders the chat component
func (c *ChatApp) View() string {
	panelStyle := PanelStyle
	inputStyle := ChatInputStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
		inputStyle = ChatInputFocusedStyle
	}

	transcript := panelStyle.
		Width(c.width).
		Height(c.transcriptHeight()).
		Render(c.viewport.View())

	var banner string
	if c.errText != "" {
		banner = ChatErrorStyle.Render(c.errText)
	}
	banner = lipgloss.NewStyle().Width(c.width).Height(ErrorLineHeight).MaxHeight(ErrorLineHeight).Render(banner)

	buttonStyle := SendButtonStyle
	if c.IsPending() {
		buttonStyle = SendButtonPendingStyle
	}
	button := buttonStyle.
		Width(SendButtonWidth).
		Height(InputTotalHeight).
		Render(c.SendLabel())
	input := inputStyle.Width(c.width - SendButtonWidth).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		transcript,
		banner,
		lipgloss.JoinHorizontal(lipgloss.Top, input, button),
	)
}
