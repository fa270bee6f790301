package ui

// Layout constants
const (
	// HeaderHeight is the logo line, the title line and a blank spacer
	HeaderHeight = 3

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// ErrorLineHeight is reserved between the transcript and the input for the error banner
	ErrorLineHeight = 1

	// SendButtonWidth is the outer width of the send button, borders included
	SendButtonWidth = 18

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 16
)

// Header branding
const (
	BrandURL   = "https://artilence.com/"
	BrandTitle = "Artilence Agent"
	BrandMark  = "◆ artilence"
)

// Placeholder text shown in the empty input
const InputPlaceholder = "Type a message..."
