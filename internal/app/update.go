package app

import (
	"slices"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatgate/internal/access"
	"github.com/zhubert/chatgate/internal/errors"
	"github.com/zhubert/chatgate/internal/keys"
	"github.com/zhubert/chatgate/internal/navigate"
	"github.com/zhubert/chatgate/internal/notification"
	"github.com/zhubert/chatgate/internal/router"
	"github.com/zhubert/chatgate/internal/shell"
	"github.com/zhubert/chatgate/internal/theme"
	"github.com/zhubert/chatgate/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		wasCompact := m.compact()
		m.width = msg.Width
		m.height = msg.Height
		layoutChanged := wasCompact != m.compact()
		if m.hydration.MarkHydrated() {
			env := m.environment()
			m.log.Info("hydrated", "width", msg.Width, "height", msg.Height,
				"host", env.Host, "viewport", env.Viewport)
			layoutChanged = true
		}
		m.updateSizes()
		if layoutChanged && m.gate.State() == access.StateAllowed {
			return m, m.focusMain()
		}
		return m, nil

	case tea.BackgroundColorMsg:
		m.document.SetTerminalDark(msg.IsDark())
		m.themeSync.Refresh()
		m.header.SetAccent(m.document.ActiveHint())
		return m, nil

	case accessResolvedMsg:
		return m.handleAccessResolved(msg)

	case promptsLoadedMsg:
		if !m.owns(msg.mountID) {
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn("prompt catalogue unavailable", "error", msg.err)
			return m, nil
		}
		m.sidebar.SetPrompts(msg.catalogue.For(m.language))
		return m, nil

	case settingsLoadedMsg:
		if !m.owns(msg.mountID) {
			return m, nil
		}
		if m.settings.Resolve(msg.settings) {
			m.log.Debug("settings view loaded")
			m.updateSizes()
			return m, msg.settings.Init()
		}
		return m, nil

	case chatReplyMsg:
		return m.handleChatReply(msg)

	case redirectDoneMsg:
		return m.handleRedirectDone(msg)

	case flashExpiredMsg:
		if msg.seq == m.flashSeq {
			m.footer.ClearFlash()
		}
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if !m.hydration.Hydrated() {
			cmds = append(cmds, m.placeholder.Update(msg))
		}
		if m.settings.Status() == shell.LazyLoading {
			cmds = append(cmds, m.lazyPlaceholder.Update(msg))
		}
		return m, tea.Batch(cmds...)

	case ui.StopwatchTickMsg:
		_, cmd := m.chat.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}

	// Anything else goes to the settings form, which runs its own commands.
	if s, ok := m.settings.Get(); ok && m.router.Location() == router.Settings {
		return m.handleSettingsOutcome(s.Update(msg))
	}
	return m, nil
}

func (m *Model) handleAccessResolved(msg accessResolvedMsg) (tea.Model, tea.Cmd) {
	if !m.owns(msg.mountID) {
		m.log.Debug("dropping permission result", "from", msg.mountID)
		return m, nil
	}
	state, committed := m.gate.Resolve(msg.resp, msg.err)
	if !committed {
		return m, nil
	}
	m.log.Info("access resolved", "state", state, "screen", m.Screen())
	m.updateSizes()
	if state == access.StateAllowed {
		return m, m.focusMain()
	}
	return m, nil
}

// handleKeyPress routes a key by the active screen
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keys.CtrlC {
		return m.quit()
	}

	switch m.Screen() {
	case shell.ScreenApp:
		return m.handleAppKey(msg)
	case shell.ScreenNotAllowed:
		if key == keys.Enter {
			return m, m.applyForAccess()
		}
		if key == keys.Quit {
			return m.quit()
		}
	case shell.ScreenRequestFailed, shell.ScreenNotInNetwork, shell.ScreenNotInHost:
		if key == keys.Quit {
			return m.quit()
		}
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

// applyForAccess opens the access request form. The shell leaves once the
// browser has it.
func (m *Model) applyForAccess() tea.Cmd {
	url := m.launch.AccessRequestURL
	nav := m.navigator
	mountID := m.mountID
	m.applyStatus = "Opening the request form..."
	return func() tea.Msg {
		outcome, err := nav.Redirect(url)
		return redirectDoneMsg{mountID: mountID, outcome: outcome, url: url, err: err}
	}
}

func (m *Model) handleRedirectDone(msg redirectDoneMsg) (tea.Model, tea.Cmd) {
	if !m.owns(msg.mountID) {
		return m, nil
	}
	switch msg.outcome {
	case navigate.Opened:
		return m.quit()
	case navigate.Copied:
		m.applyStatus = "No browser available. The request form link was copied to the clipboard."
	default:
		m.log.Error("apply redirect failed", "error", msg.err)
		m.applyStatus = "Open this link to apply: " + msg.url
	}
	return m, nil
}

func (m *Model) handleAppKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	loc := m.router.Location()

	if m.focus == FocusSidebar {
		if !m.sidebar.IsSearchMode() {
			switch key {
			case keys.Tab, keys.ShiftTab:
				return m, m.focusMain()
			case keys.Quit:
				return m.quit()
			}
		}
		item, cmd := m.sidebar.Update(msg)
		if item == nil {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.activate(*item))
	}

	if loc == router.Settings {
		if s, ok := m.settings.Get(); ok {
			return m.handleSettingsOutcome(s.Update(msg))
		}
		if key == keys.Escape {
			return m, m.leaveView()
		}
		return m, nil
	}

	switch {
	case key == keys.Escape:
		return m, m.leaveView()
	case key == keys.Tab && !m.compact():
		m.focusSidebar()
		return m, nil
	case key == keys.CtrlL:
		m.conversation.Clear()
		m.chat.SetMessages(nil)
		return m, m.ShowFlashInfo("Conversation cleared")
	case m.chat.IsSubmit(msg):
		return m.sendMessage()
	}

	_, cmd := m.chat.Update(msg)
	return m, cmd
}

// activate handles an entry picked in the navigation panel
func (m *Model) activate(item ui.NavItem) tea.Cmd {
	switch item.Kind {
	case ui.NavPrompt:
		m.chat.SetInput(item.Prompt)
		return m.navigate(router.Chat)
	default:
		return m.navigate(item.Path)
	}
}

// leaveView returns from the main pane: home on compact terminals, the
// navigation panel otherwise.
func (m *Model) leaveView() tea.Cmd {
	if m.compact() {
		return m.navigate(router.Home)
	}
	if m.router.Location() == router.Settings {
		m.router.Navigate(router.Chat)
	}
	m.focusSidebar()
	return nil
}

// navigate moves to path, starting the lazy settings load on first use
func (m *Model) navigate(path router.Path) tea.Cmd {
	m.router.Navigate(path)

	var cmds []tea.Cmd
	if path == router.Settings {
		if m.settings.Start() {
			cmds = append(cmds, m.lazyPlaceholder.Tick(), m.loadSettings())
		}
	}

	if path == router.Home && m.compact() {
		m.focusSidebar()
	} else {
		cmds = append(cmds, m.focusMain())
	}
	return tea.Batch(cmds...)
}

func (m *Model) focusSidebar() {
	m.focus = FocusSidebar
	m.sidebar.SetFocused(true)
	m.chat.SetFocused(false)
}

func (m *Model) focusMain() tea.Cmd {
	if m.compact() && m.router.IsHome() {
		m.focusSidebar()
		return nil
	}
	m.focus = FocusMain
	m.sidebar.SetFocused(false)
	if m.router.Location() == router.Settings {
		m.chat.SetFocused(false)
		return nil
	}
	return m.chat.SetFocused(true)
}

// sendMessage submits the chat input and asks the engine for a reply
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.chat.GetInput())
	if text == "" {
		return m, nil
	}
	if _, ok := m.conversation.Ask(text); !ok {
		return m, m.ShowFlashWarning("Wait for the current reply first")
	}
	m.chat.ClearInput()
	m.chat.SetMessages(m.conversation.Messages())

	history := slices.Clone(m.conversation.Messages())
	engine := m.engine
	ctx := m.ctx
	mountID := m.mountID

	reply := func() tea.Msg {
		content, err := engine.Reply(ctx, history)
		return chatReplyMsg{mountID: mountID, reply: content, err: err}
	}
	return m, tea.Batch(m.chat.SetWaiting(true), reply)
}

func (m *Model) handleChatReply(msg chatReplyMsg) (tea.Model, tea.Cmd) {
	if !m.owns(msg.mountID) {
		return m, nil
	}
	m.chat.SetWaiting(false)
	if msg.err != nil {
		m.conversation.Abandon()
		m.log.Error("chat reply failed", "error", msg.err)
		return m, m.ShowFlashError("Reply failed: " + errors.Summary(msg.err))
	}

	m.conversation.Answer(msg.reply)
	m.chat.SetMessages(m.conversation.Messages())

	if !m.config.GetNotificationsEnabled() {
		return m, nil
	}
	reply := msg.reply
	log := m.log
	return m, func() tea.Msg {
		if err := notification.ReplyReady(reply); err != nil {
			log.Warn("reply notification failed", "error", err)
		}
		return nil
	}
}

// handleSettingsOutcome applies or discards the settings form result
func (m *Model) handleSettingsOutcome(outcome ui.SettingsOutcome, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch outcome {
	case ui.SettingsSaved:
		s, _ := m.settings.Get()
		return m, tea.Batch(cmd, m.applySettings(s.Values()))
	case ui.SettingsCancelled:
		return m, tea.Batch(cmd, m.leaveView())
	}
	return m, cmd
}

// applySettings persists v and brings the presentation in step with it
func (m *Model) applySettings(v ui.SettingsValues) tea.Cmd {
	pref := theme.ParsePreference(v.Theme)
	m.config.SetTheme(string(pref))
	m.config.SetDarkPalette(v.DarkPalette)
	m.config.SetTightBorder(v.TightBorder)
	m.config.SetNotificationsEnabled(v.Notifications)
	m.config.SetSubmitKey(v.SubmitKey)

	paletteChanged := ui.PaletteName(v.DarkPalette) != m.document.DarkPalette()
	m.document.SetDarkPalette(ui.PaletteName(v.DarkPalette))
	if !m.themeSync.Sync(pref) && paletteChanged {
		m.themeSync.Refresh()
	}
	m.header.SetAccent(m.document.ActiveHint())
	m.chat.SetSubmitKey(v.SubmitKey)
	m.updateSizes()

	if err := m.config.Save(); err != nil {
		m.log.Error("saving preferences failed", "error", err)
		return m.ShowFlashError("Could not save settings")
	}
	m.log.Info("preferences saved", "theme", pref, "darkPalette", v.DarkPalette)
	return m.ShowFlashSuccess("Settings saved")
}
