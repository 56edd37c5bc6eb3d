package ui

import (
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// FormTheme styles the settings form from the active palette. The form only
// holds selects and confirms and never validates, so error and inline-select
// styles keep the huh defaults. Call it per form so new palettes show up.
func FormTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		t.Focused = settingsField(t.Focused, true)
		t.Blurred = settingsField(t.Blurred, false)
		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		return t
	})
}

// settingsField applies palette colors to one field state. The focused
// field is marked by a left rule in the primary color.
func settingsField(f huh.FieldStyles, focused bool) huh.FieldStyles {
	accent := ColorTextMuted
	f.Base = lipgloss.NewStyle().PaddingLeft(2)
	if focused {
		accent = ColorPrimary
		f.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
	}

	f.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(focused)
	f.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
	f.SelectSelector = lipgloss.NewStyle().Foreground(accent).SetString("> ")
	f.Option = lipgloss.NewStyle().Foreground(ColorText)

	f.FocusedButton = lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(1).
		Foreground(ColorTextInverse).
		Background(accent)
	f.BlurredButton = lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(1).
		Foreground(ColorTextMuted)
	return f
}
