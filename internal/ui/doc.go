// Package ui provides the user interface components for the agentchat TUI.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│               ◆ artilence (hyperlink)               │
//	│                  Artilence Agent                    │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ transcript viewport                                 │
//	├─────────────────────────────────────────────────────┤
//	│ error banner (1 line, blank when there is no error) │
//	├──────────────────────────────────────┬──────────────┤
//	│ input textarea                       │  Send        │
//	├──────────────────────────────────────┴──────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// Header: static branding. The logo line is an OSC 8 hyperlink to the
// Artilence site and the title uses a gradient derived from the theme.
//
// ChatApp: owns the draft, the transcript, the pending flag and the error
// banner. Submit issues at most one request at a time; HandleReply applies
// the result. Replies that do not match the outstanding request ID, or that
// arrive after Close, are dropped.
//
// Footer: key hints, replaced by a flash message while one is active.
//
// # Styles
//
// Every style in styles.go is rebuilt from the active Theme by SetTheme.
package ui
