package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatgate/internal/access"
	"github.com/zhubert/chatgate/internal/keys"
	"github.com/zhubert/chatgate/internal/router"
	"github.com/zhubert/chatgate/internal/shell"
	"github.com/zhubert/chatgate/internal/ui"
)

func TestWideLayout_ChatFocusedWithSidebar(t *testing.T) {
	m := readyModel(t)

	if m.focus != FocusMain {
		t.Errorf("focus = %v, wide layout should start in the chat", m.focus)
	}
	out := stripANSI(m.RenderToString())
	for _, want := range []string{"Chat", "Settings", "Start a conversation"} {
		if !strings.Contains(out, want) {
			t.Errorf("wide render missing %q", want)
		}
	}
}

func TestCompactLayout_HomeIsNavigation(t *testing.T) {
	m := testModel(t, testOpts{})
	hydrate(m, 60, 30)
	resolve(t, m)

	if m.focus != FocusSidebar {
		t.Errorf("focus = %v, compact home should focus navigation", m.focus)
	}
	out := stripANSI(m.RenderToString())
	if strings.Contains(out, "Start a conversation") {
		t.Error("compact home should not show the chat")
	}

	m.Update(keyPress(keys.Enter)) // first entry is Chat
	if m.Location() != router.Chat {
		t.Fatalf("Location() = %q, want chat", m.Location())
	}
	if !strings.Contains(stripANSI(m.RenderToString()), "Start a conversation") {
		t.Error("compact chat route should show the chat")
	}

	m.Update(keyPress(keys.Escape))
	if m.Location() != router.Home || m.focus != FocusSidebar {
		t.Errorf("esc should return home, got %q focus %v", m.Location(), m.focus)
	}
}

func TestResize_SwitchesLayoutWithoutRemount(t *testing.T) {
	m := readyModel(t)
	mountID := m.MountID()
	checker := m.checker.(*countingChecker)

	if m.layout.Compact {
		t.Fatal("120 columns should render the wide layout")
	}

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	if !m.layout.Compact {
		t.Error("60 columns should switch to the compact layout")
	}
	if strings.Contains(stripANSI(m.RenderToString()), "Start a conversation") {
		t.Error("compact home should show navigation, not the chat")
	}
	if m.AccessState() != access.StateAllowed {
		t.Errorf("AccessState() = %v after shrinking, want allowed", m.AccessState())
	}

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.layout.Compact {
		t.Error("120 columns should switch back to the wide layout")
	}
	if !strings.Contains(stripANSI(m.RenderToString()), "Start a conversation") {
		t.Error("wide layout should show the chat again")
	}

	if m.AccessState() != access.StateAllowed {
		t.Errorf("AccessState() = %v after resizing, want allowed", m.AccessState())
	}
	if m.MountID() != mountID {
		t.Error("resizing must not remount the shell")
	}
	if n := checker.calls.Load(); n != 1 {
		t.Errorf("checker called %d times, resizing must not re-check", n)
	}
}

func TestWideLayout_TabSwitchesFocus(t *testing.T) {
	m := readyModel(t)

	m.Update(keyPress(keys.Tab))
	if m.focus != FocusSidebar {
		t.Fatal("tab should focus the navigation panel")
	}
	m.Update(keyPress(keys.Tab))
	if m.focus != FocusMain {
		t.Error("tab should return to the chat")
	}
}

func TestLazySettings_LoadsOnceAndCaches(t *testing.T) {
	m := readyModel(t)

	if m.settings.Status() != shell.LazyPending {
		t.Fatal("settings must not load before first use")
	}

	cmd := m.navigate(router.Settings)
	if cmd == nil {
		t.Fatal("first navigation should start loading")
	}
	if m.settings.Status() != shell.LazyLoading {
		t.Errorf("Status() = %v, want loading", m.settings.Status())
	}
	if strings.Contains(stripANSI(m.RenderToString()), "Dark palette") {
		t.Error("settings form should not render while loading")
	}

	m.Update(m.loadSettings()())
	if m.settings.Status() != shell.LazyReady {
		t.Fatalf("Status() = %v, want ready", m.settings.Status())
	}
	cached, _ := m.settings.Get()
	if !strings.Contains(stripANSI(m.RenderToString()), "Dark palette") {
		t.Error("settings form should render once loaded")
	}

	m.navigate(router.Chat)
	m.navigate(router.Settings)
	if m.settings.Status() != shell.LazyReady {
		t.Error("second visit must not reload")
	}
	if again, _ := m.settings.Get(); again != cached {
		t.Error("second visit should reuse the cached view")
	}
}

func TestLazySettings_StaleLoadIgnored(t *testing.T) {
	m := readyModel(t)
	m.navigate(router.Settings)

	m.Update(settingsLoadedMsg{mountID: "another-mount", settings: ui.NewSettings(m.settingsValues())})
	if m.settings.Status() != shell.LazyLoading {
		t.Error("settings from another mount must be dropped")
	}
}

func TestSettings_EscapeReturnsToChat(t *testing.T) {
	m := readyModel(t)
	m.navigate(router.Settings)
	m.Update(m.loadSettings()())

	m.Update(keyPress(keys.Escape))
	if m.Location() != router.Chat {
		t.Errorf("Location() = %q, esc should leave settings", m.Location())
	}
}

func TestPromptSelection_SeedsChat(t *testing.T) {
	m := readyModel(t)
	m.Update(m.loadPrompts()())

	items := m.sidebar.Items()
	var prompt ui.NavItem
	for _, it := range items {
		if it.Kind == ui.NavPrompt {
			prompt = it
			break
		}
	}
	if prompt.Title == "" {
		t.Fatal("prompt catalogue should populate the navigation panel")
	}

	m.activate(prompt)
	if m.chat.GetInput() != prompt.Prompt {
		t.Errorf("chat input = %q, want the prompt text", m.chat.GetInput())
	}
	if m.Location() != router.Chat || m.focus != FocusMain {
		t.Error("picking a prompt should open the chat")
	}
}
