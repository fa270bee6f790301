// Package chat holds the conversation model and the HTTP client for the
// Artilence Agent chat endpoint.
package chat

// Role identifies who authored a transcript entry.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Message is a single transcript entry. Messages are never edited once
// appended to a Transcript.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"message"`
}

// Transcript is the ordered, append-only list of messages shown in the chat.
type Transcript struct {
	messages []Message
}

// Append adds messages to the end of the transcript.
func (t *Transcript) Append(msgs ...Message) {
	t.messages = append(t.messages, msgs...)
}

// Messages returns a copy of the transcript in display order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// LastFrom returns the newest message authored by role.
func (t *Transcript) LastFrom(role Role) (Message, bool) {
	for i := len(t.messages) - 1; i >= 0; i-- {
		if t.messages[i].Role == role {
			return t.messages[i], true
		}
	}
	return Message{}, false
}
