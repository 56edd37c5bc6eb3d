package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for the wide-layout navigation
	// panel width (1/4 of total width)
	SidebarWidthRatio = 4

	// MinSidebarWidth and MaxSidebarWidth clamp the wide-layout navigation panel
	MinSidebarWidth = 22
	MaxSidebarWidth = 40

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight are the smallest sizes layouts are computed for
	MinTerminalWidth  = 20
	MinTerminalHeight = 8
)

// Settings form dimensions
const (
	// SettingsWidth is the maximum width of the settings form
	SettingsWidth = 60
)

// Flash message duration in seconds
const FlashSeconds = 4
