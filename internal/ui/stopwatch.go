package ui

import (
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// StopwatchTickMsg drives the pending animation of one request
type StopwatchTickMsg struct {
	RequestID string
	Time      time.Time
}

// thinkingVerbs cycle in the transcript while a reply is awaited
var thinkingVerbs = []string{
	"Thinking",
	"Pondering",
	"Reasoning",
	"Considering",
	"Composing",
	"Drafting",
	"Mulling",
	"Brewing",
}

func randomThinkingVerb() string {
	return thinkingVerbs[rand.Intn(len(thinkingVerbs))]
}

// spinnerFrames are the glyphs of the pending spinner
var spinnerFrames = []string{"·", "✢", "✳", "✶", "✻", "✽", "✻", "✶", "✳", "✢"}

// StopwatchTick returns a command that sends a tick message for requestID
// after a delay
func StopwatchTick(requestID string) tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return StopwatchTickMsg{RequestID: requestID, Time: t}
	})
}

// formatElapsed formats a duration as a stopwatch string (e.g., "1.2s", "1:23")
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// renderWaiting renders the spinner, verb and stopwatch shown under the
// "Agent:" label while a request is in flight
func renderWaiting(verb string, frameIdx int, elapsed time.Duration) string {
	frame := spinnerFrames[frameIdx%len(spinnerFrames)]
	spinner := lipgloss.NewStyle().Foreground(ColorUser).Bold(true).Render(frame)
	return spinner + " " + StatusLoadingStyle.Render(verb+"... ") + StopwatchStyle.Render(formatElapsed(elapsed))
}
