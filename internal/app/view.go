package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/chatgate/internal/keys"
	"github.com/zhubert/chatgate/internal/router"
	"github.com/zhubert/chatgate/internal/shell"
	"github.com/zhubert/chatgate/internal/ui"
)

// updateSizes recomputes the layout and applies it to every component
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.layout = ui.NewLayout(m.width, m.height, m.compact(), m.config.GetTightBorder())
	l := m.layout
	m.log.Debug("layout updated", "width", l.Width, "height", l.Height, "compact", l.Compact, "sidebar", l.SidebarWidth)

	m.header.SetWidth(l.Width)
	m.footer.SetWidth(l.Width)
	m.sidebar.SetSize(l.SidebarWidth, l.BodyHeight)
	m.chat.SetSize(l.MainWidth, l.BodyHeight)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.safeRender())
	return v
}

// safeRender renders the current screen. A panic while rendering is
// recovered and shown as the generic failure panel.
func (m *Model) safeRender() (out string) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("render panicked", "panic", fmt.Sprint(r))
			out = ui.RenderRequestFailed(m.width, m.height)
		}
	}()
	return m.RenderToString()
}

// RenderToString renders the current screen as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	switch m.Screen() {
	case shell.ScreenPlaceholder:
		return m.placeholder.View(m.width, m.height)
	case shell.ScreenBlank:
		return ui.RenderBlank(m.width, m.height)
	case shell.ScreenRequestFailed:
		return m.withChrome(ui.RenderRequestFailed(m.width, m.contentHeight()), panelBindings(false))
	case shell.ScreenNotInNetwork:
		return m.withChrome(ui.RenderNotInNetwork(m.width, m.contentHeight()), panelBindings(false))
	case shell.ScreenNotInHost:
		return m.withChrome(ui.RenderNotInHost(m.width, m.contentHeight()), panelBindings(false))
	case shell.ScreenNotAllowed:
		return m.withChrome(ui.RenderNotAllowed(m.width, m.contentHeight(), m.applyStatus), panelBindings(true))
	default:
		return m.appView()
	}
}

func (m *Model) contentHeight() int {
	return m.layout.ContentHeight
}

// withChrome frames body with the header and footer
func (m *Model) withChrome(body string, bindings []ui.KeyBinding) string {
	m.footer.SetBindings(bindings)
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

// renderApp renders the routed application in the layout for the current
// terminal width
func (m *Model) renderApp() string {
	if m.compact() {
		return m.withChrome(m.renderCompact(), m.appBindings())
	}
	return m.withChrome(m.renderWide(), m.appBindings())
}

// renderCompact shows one pane at a time. The navigation panel is the home
// screen.
func (m *Model) renderCompact() string {
	switch m.router.Location() {
	case router.Chat:
		return m.chat.View()
	case router.Settings:
		return m.renderSettings(m.layout.BodyWidth, m.layout.BodyHeight)
	default:
		return m.sidebar.View()
	}
}

// renderWide keeps the navigation panel beside the main pane. Home and Chat
// both show the chat.
func (m *Model) renderWide() string {
	l := m.layout

	var main string
	if m.router.Location() == router.Settings {
		main = m.renderSettings(l.MainWidth, l.BodyHeight)
	} else {
		main = m.chat.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), main)
	if l.Tight {
		return ui.TightContainerStyle.Render(body)
	}
	return ui.ContainerStyle.Width(l.Width).Height(l.ContentHeight).Render(body)
}

// renderSettings renders the cached settings view, or the lazy placeholder
// while it loads
func (m *Model) renderSettings(width, height int) string {
	if s, ok := m.settings.Get(); ok {
		return s.View(width, height)
	}
	return ui.PanelStyle.Width(width).Height(height).Render(
		m.lazyPlaceholder.View(ui.Inner(width), ui.Inner(height)))
}

func panelBindings(canApply bool) []ui.KeyBinding {
	if canApply {
		return []ui.KeyBinding{{Key: keys.Enter, Desc: "apply for access"}, {Key: keys.Quit, Desc: "quit"}}
	}
	return []ui.KeyBinding{{Key: keys.Quit, Desc: "quit"}}
}

// appBindings lists the keys that act on the focused pane
func (m *Model) appBindings() []ui.KeyBinding {
	if m.focus == FocusSidebar {
		if m.sidebar.IsSearchMode() {
			return []ui.KeyBinding{{Key: "enter", Desc: "use prompt"}, {Key: "esc", Desc: "clear filter"}}
		}
		b := []ui.KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "/", Desc: "filter prompts"},
		}
		if !m.compact() {
			b = append(b, ui.KeyBinding{Key: "tab", Desc: "chat"})
		}
		return append(b, ui.KeyBinding{Key: keys.Quit, Desc: "quit"})
	}

	if m.router.Location() == router.Settings {
		return []ui.KeyBinding{{Key: "enter", Desc: "next"}, {Key: "esc", Desc: "discard"}}
	}

	b := []ui.KeyBinding{
		{Key: m.chat.SubmitKey(), Desc: "send"},
		{Key: "ctrl+l", Desc: "clear"},
	}
	if m.compact() {
		b = append(b, ui.KeyBinding{Key: "esc", Desc: "menu"})
	} else {
		b = append(b, ui.KeyBinding{Key: "tab", Desc: "navigation"})
	}
	return append(b, ui.KeyBinding{Key: "ctrl+c", Desc: "quit"})
}
