package ui

import (
	"strings"
	"testing"

	"github.com/zhubert/chatgate/internal/keys"
)

func testSettingsValues() SettingsValues {
	return SettingsValues{
		Theme:         "auto",
		DarkPalette:   string(PaletteNord),
		TightBorder:   false,
		Notifications: true,
		SubmitKey:     keys.Enter,
	}
}

func TestSettings_SeedsValues(t *testing.T) {
	s := NewSettings(testSettingsValues())
	s.Init()

	if got := s.Values(); got != testSettingsValues() {
		t.Errorf("Values() = %+v, want seed", got)
	}
}

func TestSettings_View(t *testing.T) {
	s := NewSettings(testSettingsValues())
	s.Init()

	view := stripANSI(s.View(SettingsWidth+4, 30))
	for _, want := range []string{"Settings", "Theme", "esc: discard"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestSettings_EscapeDiscards(t *testing.T) {
	s := NewSettings(testSettingsValues())
	s.Init()
	s.values.TightBorder = true

	outcome, _ := s.Update(keyPress("esc"))
	if outcome != SettingsCancelled {
		t.Fatalf("outcome = %v, want cancelled", outcome)
	}
	if s.Values().TightBorder {
		t.Error("escape should restore the saved values")
	}
}

func TestSettings_OtherKeysKeepEditing(t *testing.T) {
	s := NewSettings(testSettingsValues())
	s.Init()

	outcome, _ := s.Update(keyPress("down"))
	if outcome != SettingsEditing {
		t.Errorf("outcome = %v, want editing", outcome)
	}
}

func TestFormTheme_FocusedFieldMarked(t *testing.T) {
	styles := FormTheme().Theme(true)

	if !styles.Focused.Base.GetBorderLeft() {
		t.Error("focused field should carry a left rule")
	}
	if styles.Blurred.Base.GetBorderLeft() {
		t.Error("blurred field should not carry a left rule")
	}
	if styles.Focused.SelectSelector.Value() != "> " {
		t.Errorf("selector = %q, want %q", styles.Focused.SelectSelector.Value(), "> ")
	}
}
