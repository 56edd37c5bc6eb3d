package ui

import "charm.land/lipgloss/v2"

// Palette is the set of colors every style in this package is built from.
// Markdown and list colors are derived from the accents.
type Palette struct {
	Name string

	Primary   string // focus, highlights, header gradient, explicit theme-color hint
	Secondary string // footer keys, spinners, list bullets

	Bg       string
	Selected string // selected row background; Primary when empty

	Text    string
	Muted   string
	Inverse string // text on Primary

	User      string
	Assistant string
	Warning   string
	Error     string

	Border string

	Code      string // inline code foreground
	CodeBg    string
	CodeStyle string // chroma style for fenced code; monokai when empty
}

// SelectedBg returns the selected row background
func (p Palette) SelectedBg() string {
	if p.Selected != "" {
		return p.Selected
	}
	return p.Primary
}

// ChromaStyle returns the chroma style name for fenced code
func (p Palette) ChromaStyle() string {
	if p.CodeStyle != "" {
		return p.CodeStyle
	}
	return "monokai"
}

// PaletteName identifies a builtin palette
type PaletteName string

const (
	PaletteDarkPurple PaletteName = "dark-purple"
	PaletteNord       PaletteName = "nord"
	PaletteDracula    PaletteName = "dracula"
	PaletteGruvbox    PaletteName = "gruvbox"
	PaletteTokyoNight PaletteName = "tokyo-night"
	PaletteCatppuccin PaletteName = "catppuccin"
	PaletteLight      PaletteName = "light"
)

// DefaultDarkPalette is used for dark rendering when none is configured
const DefaultDarkPalette = PaletteDarkPurple

// BuiltinPalettes holds every palette by name
var BuiltinPalettes = map[PaletteName]Palette{
	PaletteDarkPurple: {
		Name: "Dark Purple", Primary: "#7C3AED", Secondary: "#06B6D4",
		Bg: "#1F2937", Text: "#F9FAFB", Muted: "#9CA3AF", Inverse: "#1F2937",
		User: "#A78BFA", Assistant: "#22D3EE", Warning: "#F59E0B", Error: "#EF4444",
		Border: "#374151", Code: "#67E8F9", CodeBg: "#1E1E2E",
	},
	PaletteNord: {
		Name: "Nord", Primary: "#88C0D0", Secondary: "#81A1C1",
		Bg: "#2E3440", Text: "#ECEFF4", Muted: "#D8DEE9", Inverse: "#2E3440",
		User: "#A3BE8C", Assistant: "#88C0D0", Warning: "#EBCB8B", Error: "#BF616A",
		Border: "#4C566A", Code: "#A3BE8C", CodeBg: "#242933", CodeStyle: "nord",
	},
	PaletteDracula: {
		Name: "Dracula", Primary: "#BD93F9", Secondary: "#8BE9FD",
		Bg: "#282A36", Text: "#F8F8F2", Muted: "#6272A4", Inverse: "#282A36",
		User: "#FF79C6", Assistant: "#8BE9FD", Warning: "#FFB86C", Error: "#FF5555",
		Border: "#44475A", Code: "#50FA7B", CodeBg: "#21222C", CodeStyle: "dracula",
	},
	PaletteGruvbox: {
		Name: "Gruvbox Dark", Primary: "#FE8019", Secondary: "#83A598",
		Bg: "#282828", Text: "#EBDBB2", Muted: "#A89984", Inverse: "#282828",
		User: "#FABD2F", Assistant: "#83A598", Warning: "#FE8019", Error: "#FB4934",
		Border: "#504945", Code: "#B8BB26", CodeBg: "#1D2021", CodeStyle: "gruvbox",
	},
	PaletteTokyoNight: {
		Name: "Tokyo Night", Primary: "#7AA2F7", Secondary: "#BB9AF7",
		Bg: "#1A1B26", Text: "#C0CAF5", Muted: "#565F89", Inverse: "#1A1B26",
		User: "#9ECE6A", Assistant: "#7AA2F7", Warning: "#E0AF68", Error: "#F7768E",
		Border: "#3B4261", Code: "#9ECE6A", CodeBg: "#16161E",
	},
	PaletteCatppuccin: {
		Name: "Catppuccin Mocha", Primary: "#CBA6F7", Secondary: "#89DCEB",
		Bg: "#1E1E2E", Text: "#CDD6F4", Muted: "#6C7086", Inverse: "#1E1E2E",
		User: "#F5C2E7", Assistant: "#89DCEB", Warning: "#FAB387", Error: "#F38BA8",
		Border: "#313244", Code: "#A6E3A1", CodeBg: "#181825", CodeStyle: "catppuccin-mocha",
	},
	PaletteLight: {
		Name: "Light", Primary: "#6366F1", Secondary: "#0891B2",
		Bg: "#FFFFFF", Selected: "#E0E7FF", Text: "#1F2937", Muted: "#6B7280", Inverse: "#FFFFFF",
		User: "#7C3AED", Assistant: "#0891B2", Warning: "#D97706", Error: "#DC2626",
		Border: "#D1D5DB", Code: "#059669", CodeBg: "#F3F4F6", CodeStyle: "github",
	},
}

// DarkPaletteNames returns the palettes selectable for dark rendering, in
// display order.
func DarkPaletteNames() []PaletteName {
	return []PaletteName{
		PaletteDarkPurple,
		PaletteNord,
		PaletteDracula,
		PaletteGruvbox,
		PaletteTokyoNight,
		PaletteCatppuccin,
	}
}

// IsDarkPalette reports whether name can be chosen as the dark palette
func IsDarkPalette(name PaletteName) bool {
	_, ok := BuiltinPalettes[name]
	return ok && name != PaletteLight
}

var (
	activeName    = DefaultDarkPalette
	activePalette = BuiltinPalettes[DefaultDarkPalette]
)

// CurrentPalette returns the active palette
func CurrentPalette() Palette {
	return activePalette
}

// CurrentPaletteName returns the name of the active palette
func CurrentPaletteName() PaletteName {
	return activeName
}

// SetPalette activates a palette and rebuilds every style. Unknown names
// select DefaultDarkPalette.
func SetPalette(name PaletteName) {
	p, ok := BuiltinPalettes[name]
	if !ok {
		name, p = DefaultDarkPalette, BuiltinPalettes[DefaultDarkPalette]
	}
	activeName, activePalette = name, p
	applyPalette(p)
}

func applyPalette(p Palette) {
	ColorPrimary = lipgloss.Color(p.Primary)
	ColorSecondary = lipgloss.Color(p.Secondary)
	ColorBorder = lipgloss.Color(p.Border)
	ColorBorderFocus = lipgloss.Color(p.Primary)
	ColorText = lipgloss.Color(p.Text)
	ColorTextMuted = lipgloss.Color(p.Muted)
	ColorTextInverse = lipgloss.Color(p.Inverse)
	ColorUser = lipgloss.Color(p.User)
	ColorAssistant = lipgloss.Color(p.Assistant)
	ColorWarning = lipgloss.Color(p.Warning)
	ColorError = lipgloss.Color(p.Error)

	buildStyles(p)
}
