package ui

import (
	"sort"

	"github.com/zhubert/chatgate/internal/logger"
	"github.com/zhubert/chatgate/internal/theme"
)

// Document is the presentation root of the shell. It carries the theme
// class set, the active palette and the two theme-color hints: one for dark
// terminals and one for everything else. It is the theme.Sink used by the
// shell's Synchronizer.
type Document struct {
	classes      map[string]bool
	darkPalette  PaletteName
	terminalDark bool
	pref         theme.Preference
	darkHint     string
	defaultHint  string
}

// NewDocument creates a document that renders dark with darkPalette. The
// terminal background is assumed dark until SetTerminalDark says otherwise.
func NewDocument(darkPalette PaletteName) *Document {
	if !IsDarkPalette(darkPalette) {
		darkPalette = DefaultDarkPalette
	}
	return &Document{
		classes:      make(map[string]bool),
		darkPalette:  darkPalette,
		terminalDark: true,
		pref:         theme.Auto,
	}
}

// ApplyTheme clears both theme classes, adds the class for an explicit
// preference, activates the matching palette and rewrites the hints.
func (d *Document) ApplyTheme(pref theme.Preference) {
	delete(d.classes, string(theme.Light))
	delete(d.classes, string(theme.Dark))
	if class := pref.Class(); class != "" {
		d.classes[class] = true
	}
	d.pref = pref

	name := d.paletteFor(pref)
	SetPalette(name)

	if pref == theme.Light || pref == theme.Dark {
		accent := CurrentPalette().Primary
		d.darkHint = accent
		d.defaultHint = accent
	} else {
		d.darkHint = theme.AutoDarkColor
		d.defaultHint = theme.AutoLightColor
	}

	logger.WithComponent("ui").Debug("theme applied",
		"preference", pref, "palette", name,
		"darkHint", d.darkHint, "defaultHint", d.defaultHint)
}

func (d *Document) paletteFor(pref theme.Preference) PaletteName {
	switch pref {
	case theme.Light:
		return PaletteLight
	case theme.Dark:
		return d.darkPalette
	default:
		if d.terminalDark {
			return d.darkPalette
		}
		return PaletteLight
	}
}

// SetDarkPalette changes the palette used for dark rendering. It takes
// effect on the next ApplyTheme.
func (d *Document) SetDarkPalette(name PaletteName) {
	if !IsDarkPalette(name) {
		return
	}
	d.darkPalette = name
}

// DarkPalette returns the palette used for dark rendering.
func (d *Document) DarkPalette() PaletteName {
	return d.darkPalette
}

// SetTerminalDark records whether the terminal background is dark. It takes
// effect on the next ApplyTheme and only matters under Auto.
func (d *Document) SetTerminalDark(dark bool) {
	d.terminalDark = dark
}

// TerminalDark reports the recorded terminal background.
func (d *Document) TerminalDark() bool {
	return d.terminalDark
}

// HasClass reports whether class is set.
func (d *Document) HasClass(class string) bool {
	return d.classes[class]
}

// Classes returns the set classes in sorted order.
func (d *Document) Classes() []string {
	out := make([]string, 0, len(d.classes))
	for c := range d.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Hints returns the dark and default theme-color hints.
func (d *Document) Hints() (dark, def string) {
	return d.darkHint, d.defaultHint
}

// ActiveHint returns the hint that applies to the current terminal.
func (d *Document) ActiveHint() string {
	if d.terminalDark {
		return d.darkHint
	}
	return d.defaultHint
}

// Preference returns the last applied preference.
func (d *Document) Preference() theme.Preference {
	return d.pref
}
