package ui

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/chatgate/internal/keys"
	"github.com/zhubert/chatgate/internal/theme"
)

// SettingsValues are the preferences the settings view edits
type SettingsValues struct {
	Theme         string
	DarkPalette   string
	TightBorder   bool
	Notifications bool
	SubmitKey     string
}

// SettingsOutcome reports what an update did to the settings view
type SettingsOutcome int

const (
	SettingsEditing SettingsOutcome = iota
	SettingsSaved
	SettingsCancelled
)

// Settings is the preferences form. It is built on first visit and kept
// for later visits.
type Settings struct {
	form     *huh.Form
	values   *SettingsValues
	original SettingsValues
}

// NewSettings builds the form seeded with v
func NewSettings(v SettingsValues) *Settings {
	s := &Settings{original: v}
	s.reset(v)
	return s
}

func (s *Settings) reset(v SettingsValues) {
	vals := v
	s.values = &vals

	themeOpts := make([]huh.Option[string], 0, len(theme.Preferences()))
	for _, p := range theme.Preferences() {
		themeOpts = append(themeOpts, huh.NewOption(string(p), string(p)))
	}

	paletteOpts := make([]huh.Option[string], 0, len(DarkPaletteNames()))
	for _, name := range DarkPaletteNames() {
		paletteOpts = append(paletteOpts, huh.NewOption(BuiltinPalettes[name].Name, string(name)))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("auto follows the terminal background").
				Options(themeOpts...).
				Value(&s.values.Theme),
			huh.NewSelect[string]().
				Title("Dark palette").
				Options(paletteOpts...).
				Value(&s.values.DarkPalette),
			huh.NewConfirm().
				Title("Tight border").
				Description("Drop the outer border in the wide layout").
				Value(&s.values.TightBorder),
			huh.NewConfirm().
				Title("Desktop notifications").
				Description("Notify when a reply arrives").
				Value(&s.values.Notifications),
			huh.NewSelect[string]().
				Title("Send with").
				Options(
					huh.NewOption("enter (alt+enter for newline)", keys.Enter),
					huh.NewOption("alt+enter (enter for newline)", keys.AltEnter),
				).
				Value(&s.values.SubmitKey),
		),
	).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(SettingsWidth).
		WithLayout(huh.LayoutStack)
}

// Init initializes the form
func (s *Settings) Init() tea.Cmd {
	return s.form.Init()
}

// Values returns the values as currently edited
func (s *Settings) Values() SettingsValues {
	return *s.values
}

// Update forwards msg to the form. Escape discards edits. Completing the
// last field saves.
func (s *Settings) Update(msg tea.Msg) (SettingsOutcome, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == keys.Escape {
		s.reset(s.original)
		return SettingsCancelled, s.form.Init()
	}

	m, cmd := s.form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.original = *s.values
		saved := s.original
		s.reset(saved)
		return SettingsSaved, tea.Batch(cmd, s.form.Init())
	}
	return SettingsEditing, cmd
}

// View renders the form inside a panel of width x height
func (s *Settings) View(width, height int) string {
	title := PanelTitleStyle.Render("Settings")
	hint := NoticeHintStyle.Render("enter: next  esc: discard  complete the last field to save")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View(), "", hint)
	return PanelStyle.Width(width).Height(height).Render(body)
}
