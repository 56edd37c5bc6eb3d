package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashWarning
	FlashError
	FlashSuccess
)

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width     int
	bindings  []KeyBinding
	flash     string
	flashType FlashType
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the shown key bindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// Bindings returns the shown key bindings
func (f *Footer) Bindings() []KeyBinding {
	return f.bindings
}

// SetFlash shows text in place of the bindings until ClearFlash
func (f *Footer) SetFlash(text string, typ FlashType) {
	f.flash = text
	f.flashType = typ
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flash = ""
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flash != ""
}

// View renders the footer
func (f *Footer) View() string {
	if f.flash != "" {
		color := ColorSecondary
		switch f.flashType {
		case FlashWarning:
			color = ColorWarning
		case FlashError:
			color = ColorError
		case FlashSuccess:
			color = ColorAssistant
		}
		text := lipgloss.NewStyle().Foreground(color).Render(f.flash)
		return FooterStyle.Width(f.width).Render(f.fit(text))
	}

	parts := make([]string, 0, len(f.bindings))
	for _, b := range f.bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(f.fit(content))
}

// fit truncates content to the space inside the footer padding
func (f *Footer) fit(content string) string {
	if f.width <= 2 {
		return content
	}
	return ansi.Truncate(content, f.width-2, "…")
}
