// Package app is the chat shell: a Bubble Tea model that gates the chat
// application behind the permission check and routes between its views.
package app

import (
	"context"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/zhubert/chatgate/internal/access"
	"github.com/zhubert/chatgate/internal/chat"
	"github.com/zhubert/chatgate/internal/config"
	"github.com/zhubert/chatgate/internal/logger"
	"github.com/zhubert/chatgate/internal/navigate"
	"github.com/zhubert/chatgate/internal/prompts"
	"github.com/zhubert/chatgate/internal/router"
	"github.com/zhubert/chatgate/internal/shell"
	"github.com/zhubert/chatgate/internal/theme"
	"github.com/zhubert/chatgate/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusMain
)

// Options are the collaborators of one shell mount. Nil collaborators are
// built from Launch.
type Options struct {
	Launch    *config.Launch
	Config    *config.Config
	Checker   access.Checker
	Engine    chat.Engine
	Navigator *navigate.Navigator
	Language  string // prompt catalogue language, derived from LANG when empty
}

// Model is the main Bubble Tea model: the gated chat shell
type Model struct {
	mountID string
	ctx     context.Context
	cancel  context.CancelFunc
	log     *slog.Logger

	launch    *config.Launch
	config    *config.Config
	checker   access.Checker
	engine    chat.Engine
	navigator *navigate.Navigator
	signature string
	language  string

	hydration shell.HydrationGate
	gate      *access.Gate
	probe     *shell.Probe
	router    *router.Router
	document  *ui.Document
	themeSync *theme.Synchronizer
	settings  shell.Lazy[*ui.Settings]

	conversation chat.Conversation

	header          *ui.Header
	footer          *ui.Footer
	sidebar         *ui.Sidebar
	chat            *ui.Chat
	placeholder     *ui.Placeholder
	lazyPlaceholder *ui.Placeholder

	// appView renders the routed application. Panics raised by it are
	// recovered by View.
	appView func() string

	width       int
	height      int
	layout      ui.Layout
	focus       Focus
	applyStatus string
	flashSeq    int
}

// accessResolvedMsg carries the outcome of the permission check
type accessResolvedMsg struct {
	mountID string
	resp    *access.Response
	err     error
}

// settingsLoadedMsg delivers the lazily built settings view
type settingsLoadedMsg struct {
	mountID  string
	settings *ui.Settings
}

// promptsLoadedMsg delivers the prompt catalogue
type promptsLoadedMsg struct {
	mountID   string
	catalogue prompts.Catalogue
	err       error
}

// chatReplyMsg delivers an assistant reply
type chatReplyMsg struct {
	mountID string
	reply   string
	err     error
}

// redirectDoneMsg reports the outcome of the apply-for-access redirect
type redirectDoneMsg struct {
	mountID string
	outcome navigate.Outcome
	url     string
	err     error
}

// flashExpiredMsg clears the flash message it was scheduled for
type flashExpiredMsg struct {
	seq int
}

// New creates a shell mount. Nothing is requested until Init.
func New(opts Options) *Model {
	launch := opts.Launch
	if launch == nil {
		launch = config.DefaultLaunch()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	mountID := uuid.New().String()
	log := logger.WithMount(mountID)

	loc, err := router.ParseLocation(launch.Location)
	if err != nil {
		log.Warn("launch location is not a URL, starting without a signature", "error", err)
	}

	checker := opts.Checker
	if checker == nil {
		checker = access.NewHTTPChecker(launch.AuthEndpoint, launch.AuthTimeout)
	}
	engine := opts.Engine
	if engine == nil {
		engine = chat.NewEngine(chat.EngineOptions{
			APIKey:  launch.ChatAPIKey,
			BaseURL: launch.ChatBaseURL,
			Model:   launch.ChatModel,
		})
	}
	nav := opts.Navigator
	if nav == nil {
		nav = navigate.New()
	}
	lang := opts.Language
	if lang == "" {
		lang = prompts.LanguageFromEnv(os.Getenv("LANG"))
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		mountID:   mountID,
		ctx:       ctx,
		cancel:    cancel,
		log:       log,
		launch:    launch,
		config:    cfg,
		checker:   checker,
		engine:    engine,
		navigator: nav,
		signature: loc.Signature,
		language:  lang,
		gate:      access.NewGate(),
		probe: shell.NewProbe(
			shell.TerminalUserAgent(launch.UserAgent),
			shell.HostMarkers{Outer: launch.HostOuterMarker, Inner: launch.HostInnerMarker},
			launch.CompactWidth,
		),
		router:          router.New(loc.Path),
		document:        ui.NewDocument(ui.PaletteName(cfg.GetDarkPalette())),
		header:          ui.NewHeader(),
		footer:          ui.NewFooter(),
		sidebar:         ui.NewSidebar(),
		chat:            ui.NewChat(cfg.GetSubmitKey()),
		placeholder:     ui.NewPlaceholder(true),
		lazyPlaceholder: ui.NewPlaceholder(false),
	}
	m.appView = m.renderApp
	m.themeSync = theme.NewSynchronizer(m.document)
	m.themeSync.Sync(theme.ParsePreference(cfg.GetTheme()))
	m.header.SetAccent(m.document.ActiveHint())
	m.chat.SetEngineName(engine.Name())

	m.router.OnChange(func(from, to router.Path) {
		m.sidebar.SetActive(to)
		m.header.SetContext(string(to))
	})
	m.sidebar.SetActive(loc.Path)
	m.header.SetContext(string(loc.Path))

	log.Info("shell mounted",
		"path", loc.Path,
		"hasSignature", loc.Signature != "",
		"engine", engine.Name(),
	)
	return m
}

// Init starts the single permission check, the hydration placeholder
// animation, the prompt catalogue load and the terminal background query.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.placeholder.Tick(),
		m.startCheck(),
		m.loadPrompts(),
		tea.RequestBackgroundColor,
	)
}

// Close ends the mount. In-flight work is cancelled and any result that
// still arrives is dropped.
func (m *Model) Close() {
	if m.ctx.Err() != nil {
		return
	}
	m.cancel()
	m.log.Info("shell unmounted")
}

// MountID identifies this mount in logs and async messages
func (m *Model) MountID() string {
	return m.mountID
}

// owns reports whether an async result issued by mountID may still be
// applied: it must come from this mount and the mount must not be closed.
func (m *Model) owns(mountID string) bool {
	return mountID == m.mountID && m.ctx.Err() == nil
}

// Screen returns the screen the shell renders right now. Host detection is
// evaluated on every call.
func (m *Model) Screen() shell.Screen {
	return shell.Decide(shell.Inputs{
		Hydrated: m.hydration.Hydrated(),
		Loading:  m.gate.Loading(),
		Access:   m.gate.State(),
		Host:     m.environment().Host,
	})
}

// AccessState returns the resolved access state
func (m *Model) AccessState() access.State {
	return m.gate.State()
}

// Location returns the active route
func (m *Model) Location() router.Path {
	return m.router.Location()
}

// Document returns the presentation root
func (m *Model) Document() *ui.Document {
	return m.document
}

func (m *Model) environment() shell.Environment {
	return m.probe.Snapshot(m.width)
}

func (m *Model) compact() bool {
	return m.environment().Viewport == shell.ViewportCompact
}

// startCheck issues the permission check. A gate that already began refuses,
// so the check runs at most once per mount.
func (m *Model) startCheck() tea.Cmd {
	if !m.gate.Begin() {
		return nil
	}
	ctx := m.ctx
	checker := m.checker
	signature := m.signature
	mountID := m.mountID
	timeout := m.launch.AuthTimeout

	return func() tea.Msg {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		resp, err := access.Check(ctx, checker, signature)
		return accessResolvedMsg{mountID: mountID, resp: resp, err: err}
	}
}

func (m *Model) loadPrompts() tea.Cmd {
	mountID := m.mountID
	return func() tea.Msg {
		cat, err := prompts.Load()
		return promptsLoadedMsg{mountID: mountID, catalogue: cat, err: err}
	}
}

// loadSettings builds the settings view off the update loop. Only the first
// navigation to settings calls it; later visits reuse the cached view.
// The form is seeded from the preferences as they are when the load starts
// and is never rebuilt, so later changes made outside the form do not show
// up in it.
func (m *Model) loadSettings() tea.Cmd {
	mountID := m.mountID
	values := m.settingsValues()
	return func() tea.Msg {
		return settingsLoadedMsg{mountID: mountID, settings: ui.NewSettings(values)}
	}
}

func (m *Model) settingsValues() ui.SettingsValues {
	return ui.SettingsValues{
		Theme:         string(theme.ParsePreference(m.config.GetTheme())),
		DarkPalette:   string(m.document.DarkPalette()),
		TightBorder:   m.config.GetTightBorder(),
		Notifications: m.config.GetNotificationsEnabled(),
		SubmitKey:     m.chat.SubmitKey(),
	}
}
