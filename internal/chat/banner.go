package chat

import pkgerrors "github.com/artilence/agentchat/internal/errors"

// User-facing error lines shown under the transcript.
const (
	NoResponseMessage  = "No response from AI."
	SendFailureMessage = "Failed to send message. Please try again."
)

// ErrorBanner maps a failed send to the line shown to the user. Anything
// other than an empty reply is reported as a generic send failure.
func ErrorBanner(err error) string {
	if err == nil {
		return ""
	}
	if pkgerrors.Is(err, pkgerrors.KindEmptyReply) {
		return NoResponseMessage
	}
	return SendFailureMessage
}
