package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Header is the static branding block above the chat: a logo line that
// links to the Artilence site and the product title.
type Header struct {
	width int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header
func (h *Header) View() string {
	logo := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Render(BrandMark)
	// Terminals without OSC 8 support print the logo as plain text
	link := ansi.SetHyperlink(BrandURL) + logo + ansi.ResetHyperlink()

	lines := []string{
		h.center(link, runewidth.StringWidth(BrandMark)),
		h.center(renderGradient(BrandTitle), runewidth.StringWidth(BrandTitle)),
		"",
	}
	return strings.Join(lines, "\n")
}

// center left-pads s, whose printable width is w, to the middle of the header
func (h *Header) center(s string, w int) string {
	if h.width <= w {
		return s
	}
	return strings.Repeat(" ", (h.width-w)/2) + s
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient colors each rune of text along a Primary to Secondary
// gradient of the current theme
func renderGradient(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Secondary)

	var result strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(true)
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
