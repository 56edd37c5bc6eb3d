package keys

import (
	"slices"
	"testing"
)

// Guards against Bubble Tea changing its key string format.
func TestKeyStrings(t *testing.T) {
	tests := map[string]struct{ got, want string }{
		"Up":       {Up, "up"},
		"PgDown":   {PgDown, "pgdown"},
		"Enter":    {Enter, "enter"},
		"AltEnter": {AltEnter, "alt+enter"},
		"ShiftTab": {ShiftTab, "shift+tab"},
		"Escape":   {Escape, "esc"},
		"CtrlC":    {CtrlC, "ctrl+c"},
		"CtrlL":    {CtrlL, "ctrl+l"},
		"CtrlUp":   {CtrlUp, "ctrl+up"},
	}
	for name, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("keys.%s = %q, want %q", name, tt.got, tt.want)
		}
	}
}

func TestIsScroll(t *testing.T) {
	for _, k := range []string{PgUp, PgDown, CtrlUp, CtrlDown, CtrlU, CtrlD} {
		if !IsScroll(k) {
			t.Errorf("IsScroll(%q) = false", k)
		}
	}
	for _, k := range []string{Up, Enter, "a", Quit} {
		if IsScroll(k) {
			t.Errorf("IsScroll(%q) = true", k)
		}
	}
}

func TestNewline(t *testing.T) {
	if got := Newline(Enter); !slices.Contains(got, AltEnter) || slices.Contains(got, Enter) {
		t.Errorf("Newline(enter) = %v", got)
	}
	if got := Newline(AltEnter); !slices.Contains(got, Enter) || slices.Contains(got, AltEnter) {
		t.Errorf("Newline(alt+enter) = %v", got)
	}
}
