package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/chatgate/internal/keys"
	"github.com/zhubert/chatgate/internal/prompts"
	"github.com/zhubert/chatgate/internal/router"
)

// SidebarSearchCharLimit caps the prompt filter length
const SidebarSearchCharLimit = 64

// NavKind distinguishes route entries from prompt templates.
type NavKind int

const (
	NavRoute NavKind = iota
	NavPrompt
)

// NavItem is one selectable entry of the navigation panel.
type NavItem struct {
	Kind   NavKind
	Title  string
	Path   router.Path // NavRoute only
	Prompt string      // NavPrompt only
}

var routeItems = []NavItem{
	{Kind: NavRoute, Title: "Chat", Path: router.Chat},
	{Kind: NavRoute, Title: "Settings", Path: router.Settings},
}

// Sidebar is the navigation panel: the routes first, then the prompt
// templates, which can be filtered with "/".
type Sidebar struct {
	prompts     []prompts.Template
	items       []NavItem
	selectedIdx int
	scrollOff   int
	width       int
	height      int
	focused     bool
	active      router.Path

	searchMode  bool
	searchInput textinput.Model
}

// NewSidebar creates a navigation panel with only the route entries
func NewSidebar() *Sidebar {
	ti := textinput.New()
	ti.Placeholder = "filter prompts..."
	ti.CharLimit = SidebarSearchCharLimit

	s := &Sidebar{searchInput: ti, active: router.Home}
	s.rebuild()
	return s
}

// SetPrompts replaces the listed prompt templates
func (s *Sidebar) SetPrompts(list []prompts.Template) {
	s.prompts = list
	s.rebuild()
}

// SetSize sets the panel dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetActive marks the route entry for path as current
func (s *Sidebar) SetActive(path router.Path) {
	s.active = path
}

// Items returns the visible entries
func (s *Sidebar) Items() []NavItem {
	return s.items
}

// Selected returns the highlighted entry
func (s *Sidebar) Selected() (NavItem, bool) {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.items) {
		return NavItem{}, false
	}
	return s.items[s.selectedIdx], true
}

// IsSearchMode returns whether the prompt filter is being edited
func (s *Sidebar) IsSearchMode() bool {
	return s.searchMode
}

// EnterSearchMode starts editing the prompt filter
func (s *Sidebar) EnterSearchMode() tea.Cmd {
	s.searchMode = true
	s.searchInput.SetValue("")
	return s.searchInput.Focus()
}

// ExitSearchMode stops editing and clears the filter
func (s *Sidebar) ExitSearchMode() {
	s.searchMode = false
	s.searchInput.Blur()
	s.searchInput.SetValue("")
	s.rebuild()
}

func (s *Sidebar) rebuild() {
	query := strings.ToLower(strings.TrimSpace(s.searchInput.Value()))

	items := make([]NavItem, 0, len(routeItems)+len(s.prompts))
	if query == "" {
		items = append(items, routeItems...)
	}
	for _, p := range s.prompts {
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		items = append(items, NavItem{Kind: NavPrompt, Title: p.Title, Prompt: p.Prompt})
	}
	s.items = items

	if s.selectedIdx >= len(s.items) {
		s.selectedIdx = max(len(s.items)-1, 0)
	}
}

// Update handles key presses while focused. It returns the entry the user
// activated with enter, if any.
func (s *Sidebar) Update(msg tea.Msg) (*NavItem, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return nil, nil
	}

	if s.searchMode {
		switch keyMsg.String() {
		case keys.Escape:
			s.ExitSearchMode()
			return nil, nil
		case keys.Enter:
			s.searchMode = false
			s.searchInput.Blur()
			return s.activate(), nil
		case keys.Up, keys.Down:
			s.move(keyMsg.String())
			return nil, nil
		}
		var cmd tea.Cmd
		s.searchInput, cmd = s.searchInput.Update(msg)
		s.selectedIdx = 0
		s.rebuild()
		return nil, cmd
	}

	switch keyMsg.String() {
	case "/":
		return nil, s.EnterSearchMode()
	case keys.Enter:
		return s.activate(), nil
	default:
		s.move(keyMsg.String())
	}
	return nil, nil
}

func (s *Sidebar) activate() *NavItem {
	item, ok := s.Selected()
	if !ok {
		return nil
	}
	return &item
}

func (s *Sidebar) move(key string) {
	if len(s.items) == 0 {
		return
	}
	page := max(Inner(s.height)-1, 1)
	switch key {
	case keys.Up, "k":
		s.selectedIdx--
	case keys.Down, "j":
		s.selectedIdx++
	case keys.Home:
		s.selectedIdx = 0
	case keys.End:
		s.selectedIdx = len(s.items) - 1
	case keys.PgUp:
		s.selectedIdx -= page
	case keys.PgDown:
		s.selectedIdx += page
	}
	s.selectedIdx = min(max(s.selectedIdx, 0), len(s.items)-1)
}

// View renders the panel
func (s *Sidebar) View() string {
	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := Inner(s.width)
	innerHeight := Inner(s.height)

	var header []string
	if s.searchMode || s.searchInput.Value() != "" {
		s.searchInput.SetWidth(max(innerWidth-3, 1))
		header = append(header, lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render("/")+" "+s.searchInput.View())
	}

	var lines []string
	selectedLine := 0
	promptHeaderShown := false
	for idx, item := range s.items {
		if item.Kind == NavPrompt && !promptHeaderShown {
			lines = append(lines, SidebarSectionStyle.Render("Prompts"))
			promptHeaderShown = true
		}

		title := item.Title
		if item.Kind == NavRoute && item.Path == s.active {
			title = "• " + title
		} else {
			title = "  " + title
		}
		title = ansi.Truncate(title, max(innerWidth-2, 1), "…")

		itemStyle := SidebarItemStyle.Width(innerWidth)
		if idx == s.selectedIdx && s.focused {
			itemStyle = SidebarSelectedStyle.Width(innerWidth)
			selectedLine = len(lines)
		}
		lines = append(lines, itemStyle.Render(title))
	}

	if len(s.items) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("No matches."))
	}

	visible := max(innerHeight-len(header), 1)
	if selectedLine < s.scrollOff {
		s.scrollOff = selectedLine
	} else if selectedLine >= s.scrollOff+visible {
		s.scrollOff = selectedLine - visible + 1
	}
	s.scrollOff = min(max(s.scrollOff, 0), max(len(lines)-visible, 0))

	end := min(s.scrollOff+visible, len(lines))
	body := append(header, lines[s.scrollOff:end]...)

	return style.Width(s.width).Height(s.height).Render(strings.Join(body, "\n"))
}
