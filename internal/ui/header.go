package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Header represents the top header bar
type Header struct {
	width   int
	title   string
	context string
	accent  string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{title: "chatgate"}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetContext sets the text shown on the right, e.g. the active view
func (h *Header) SetContext(text string) {
	h.context = text
}

// SetAccent sets the gradient start color, normally the document's active
// theme-color hint. Empty falls back to the palette's primary color.
func (h *Header) SetAccent(hex string) {
	h.accent = hex
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + h.title
	var rightText string
	if h.context != "" {
		rightText = h.context + " "
	}

	paddingLen := h.width - ansi.StringWidth(titleText) - ansi.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	if h.width > 0 {
		fullContent = ansi.Truncate(fullContent, h.width, "")
	}
	return h.renderGradient(fullContent, len([]rune(titleText)))
}

// gradient returns n colors blending from one hex color to another in Lab
// space. An unparsable from falls back to the palette primary.
func gradient(from, to string, n int) []string {
	start, err := colorful.Hex(from)
	if err != nil {
		start, _ = colorful.Hex(CurrentPalette().Primary)
	}
	end, err := colorful.Hex(to)
	if err != nil {
		end = start
	}
	stops := make([]string, n)
	for i := range stops {
		stops[i] = start.BlendLab(end, float64(i)/float64(n)).Clamped().Hex()
	}
	return stops
}

// renderGradient renders the content on a gradient that fades from the
// accent to the palette background. The first boldLen runes are bold.
func (h *Header) renderGradient(content string, boldLen int) string {
	if len(content) == 0 {
		return ""
	}

	p := CurrentPalette()
	runes := []rune(content)
	stops := gradient(h.accent, p.Bg, len(runes))
	textColor := lipgloss.Color(p.Text)

	var result strings.Builder
	for i, r := range runes {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(stops[i])).
			Foreground(textColor).
			Bold(i < boldLen)
		result.WriteString(style.Render(string(r)))
	}
	return result.String()
}
