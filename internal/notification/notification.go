// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/artilence/agentchat/internal/logger"
)

// AppName is the title of every notification
const AppName = "Artilence Agent"

// PreviewLength is the maximum number of characters of a reply shown in a
// notification body
const PreviewLength = 80

// notifyFunc matches beeep.Notify
type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// SetNotifier replaces the notification backend. Used by tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the beeep backend
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.ComponentLogger("notification")
	log.Debug("sending notification", "title", title, "chars", len(message))
	// Empty icon lets beeep use the platform default
	err := notify(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// ReplyReady announces that the agent answered while the terminal was not
// focused. preview should already be shortened by the caller.
func ReplyReady(preview string) error {
	if preview == "" {
		preview = "New reply"
	}
	return Send(AppName, preview)
}
