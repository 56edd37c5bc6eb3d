// Package keys names the key presses chatgate binds. Values come from
// tea.KeyPressMsg.String() so they match what Update sees at runtime.
package keys

import tea "charm.land/bubbletea/v2"

func press(code rune, mod tea.KeyMod) string {
	return tea.KeyPressMsg{Code: code, Mod: mod}.String()
}

// Movement
var (
	Up     = press(tea.KeyUp, 0)
	Down   = press(tea.KeyDown, 0)
	Home   = press(tea.KeyHome, 0)
	End    = press(tea.KeyEnd, 0)
	PgUp   = press(tea.KeyPgUp, 0)
	PgDown = press(tea.KeyPgDown, 0)
)

// Actions
var (
	Enter    = press(tea.KeyEnter, 0)
	AltEnter = press(tea.KeyEnter, tea.ModAlt)
	Tab      = press(tea.KeyTab, 0)
	ShiftTab = press(tea.KeyTab, tea.ModShift)
	Escape   = press(tea.KeyEscape, 0)
)

// Control chords
var (
	CtrlC    = press('c', tea.ModCtrl)
	CtrlD    = press('d', tea.ModCtrl)
	CtrlJ    = press('j', tea.ModCtrl)
	CtrlL    = press('l', tea.ModCtrl)
	CtrlM    = press('m', tea.ModCtrl)
	CtrlU    = press('u', tea.ModCtrl)
	CtrlUp   = press(tea.KeyUp, tea.ModCtrl)
	CtrlDown = press(tea.KeyDown, tea.ModCtrl)
)

// Quit is the plain-letter quit key used outside text input.
const Quit = "q"

// IsScroll reports whether k scrolls the conversation rather than editing
// the input.
func IsScroll(k string) bool {
	switch k {
	case PgUp, PgDown, CtrlUp, CtrlDown, CtrlU, CtrlD:
		return true
	}
	return false
}

// Newline returns the keys that insert a line break when submit sends.
func Newline(submit string) []string {
	if submit == AltEnter {
		return []string{Enter, CtrlM}
	}
	return []string{AltEnter, CtrlJ}
}
