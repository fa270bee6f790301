package chat

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Preview collapses whitespace in text and truncates it to at most max
// grapheme clusters, appending "..." when truncated. Used for notification
// bodies and the history listing.
func Preview(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	if max <= 0 {
		return ""
	}
	if uniseg.GraphemeClusterCount(text) <= max {
		return text
	}

	var b strings.Builder
	gr := uniseg.NewGraphemes(text)
	for n := 0; n < max && gr.Next(); n++ {
		b.WriteString(gr.Str())
	}
	return strings.TrimRight(b.String(), " ") + "..."
}
