package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatgate/internal/access"
	"github.com/zhubert/chatgate/internal/keys"
	"github.com/zhubert/chatgate/internal/navigate"
	"github.com/zhubert/chatgate/internal/router"
	"github.com/zhubert/chatgate/internal/shell"
	"github.com/zhubert/chatgate/internal/ui"
)

func TestNew_ParsesLocation(t *testing.T) {
	checker := allowed()
	m := testModel(t, testOpts{
		checker:  checker,
		location: "https://chat.example.com/?signature=a%2Bb#/settings",
	})

	if m.Location() != router.Settings {
		t.Errorf("Location() = %q, want settings", m.Location())
	}
	resolve(t, m)
	if got := checker.sig.Load(); got != "a+b" {
		t.Errorf("checker saw signature %v, want a+b", got)
	}
}

func TestScreen_PlaceholderBeforeHydration(t *testing.T) {
	m := testModel(t, testOpts{})
	resolve(t, m)

	if m.AccessState() != access.StateAllowed {
		t.Fatalf("AccessState() = %v, want allowed", m.AccessState())
	}
	if m.Screen() != shell.ScreenPlaceholder {
		t.Errorf("Screen() = %v, want placeholder before the first size", m.Screen())
	}
	if !strings.Contains(m.RenderToString(), "● ●") {
		t.Error("placeholder should show the logo")
	}
}

func TestScreen_BlankWhileChecking(t *testing.T) {
	m := testModel(t, testOpts{})
	hydrate(m, 120, 40)

	if cmd := m.startCheck(); cmd == nil {
		t.Fatal("startCheck() should issue the check")
	}
	if m.Screen() != shell.ScreenBlank {
		t.Errorf("Screen() = %v, want blank while loading", m.Screen())
	}
	if strings.TrimSpace(m.RenderToString()) != "" {
		t.Error("blank screen should render nothing")
	}
}

func TestScreen_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		resp      *access.Response
		err       error
		userAgent string
		want      shell.Screen
	}{
		{"allowed in host", access.NewResponse(0, ""), nil, hostUA, shell.ScreenApp},
		{"request failed beats host", nil, errors.New("connection refused"), outsideUA, shell.ScreenRequestFailed},
		{"network deny beats host", access.NewResponse(403, ""), nil, outsideUA, shell.ScreenNotInNetwork},
		{"network deny in host", access.NewResponse(403, ""), nil, hostUA, shell.ScreenNotInNetwork},
		{"host beats allow-list", access.NewResponse(401, ""), nil, outsideUA, shell.ScreenNotInHost},
		{"allowed outside host", access.NewResponse(0, ""), nil, outsideUA, shell.ScreenNotInHost},
		{"not allowed in host", access.NewResponse(401, ""), nil, hostUA, shell.ScreenNotAllowed},
		{"unknown code in host", access.NewResponse(500, ""), nil, hostUA, shell.ScreenNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, testOpts{
				userAgent: tt.userAgent,
				checker:   &countingChecker{resp: tt.resp, err: tt.err},
			})
			hydrate(m, 120, 40)
			resolve(t, m)

			if got := m.Screen(); got != tt.want {
				t.Errorf("Screen() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScreen_PanelText(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{403, ui.TextNotInNetwork},
		{401, ui.TextNotAllowed},
	}

	for _, tt := range tests {
		m := testModel(t, testOpts{checker: &countingChecker{resp: access.NewResponse(tt.code, "")}})
		hydrate(m, 120, 40)
		resolve(t, m)

		out := strings.Join(strings.Fields(stripANSI(m.RenderToString())), " ")
		if !strings.Contains(out, tt.want) {
			t.Errorf("code %d: render missing %q", tt.code, tt.want)
		}
	}
}

func TestAccess_SingleCheck(t *testing.T) {
	checker := allowed()
	m := testModel(t, testOpts{checker: checker})

	m.Init()
	if m.startCheck() != nil {
		t.Error("a second check must not be issued for the same mount")
	}
	if !m.gate.Loading() {
		t.Error("Init should leave the check in flight")
	}
}

func TestAccess_StaleMountIgnored(t *testing.T) {
	m := testModel(t, testOpts{})
	hydrate(m, 120, 40)
	m.startCheck()

	m.Update(accessResolvedMsg{mountID: "another-mount", resp: access.NewResponse(0, "")})
	if m.AccessState() != access.StateLoading {
		t.Errorf("AccessState() = %v, stale result must be dropped", m.AccessState())
	}
	if m.Screen() != shell.ScreenBlank {
		t.Errorf("Screen() = %v, want blank", m.Screen())
	}
}

func TestAccess_ResultAfterCloseDropped(t *testing.T) {
	m := testModel(t, testOpts{})
	hydrate(m, 120, 40)
	m.startCheck()
	m.Close()

	m.Update(accessResolvedMsg{mountID: m.MountID(), resp: access.NewResponse(0, "")})
	if m.AccessState() != access.StateLoading {
		t.Errorf("AccessState() = %v, a result after Close must be dropped", m.AccessState())
	}
}

func TestNotAllowed_RedirectAfterCloseDropped(t *testing.T) {
	m := testModel(t, testOpts{})
	hydrate(m, 120, 40)
	m.Close()

	_, cmd := m.Update(redirectDoneMsg{mountID: m.MountID(), outcome: navigate.Copied})
	if cmd != nil {
		t.Error("a redirect result after Close should not issue commands")
	}
	if m.applyStatus != "" {
		t.Errorf("applyStatus = %q, want untouched", m.applyStatus)
	}
}

func TestAccess_FirstResultWins(t *testing.T) {
	m := testModel(t, testOpts{})
	hydrate(m, 120, 40)
	resolve(t, m)

	m.Update(accessResolvedMsg{mountID: m.MountID(), resp: access.NewResponse(403, "")})
	if m.AccessState() != access.StateAllowed {
		t.Errorf("AccessState() = %v, later results must not change it", m.AccessState())
	}
}

func TestHostDetection_ReevaluatedEveryRender(t *testing.T) {
	m := testModel(t, testOpts{})
	ua := hostUA
	m.probe.UserAgent = func() string { return ua }
	hydrate(m, 120, 40)
	resolve(t, m)

	if m.Screen() != shell.ScreenApp {
		t.Fatalf("Screen() = %v, want app", m.Screen())
	}
	ua = outsideUA
	if m.Screen() != shell.ScreenNotInHost {
		t.Errorf("Screen() = %v, a changed identity must not be masked", m.Screen())
	}
}

func TestNotAllowed_ApplyOpensAndQuits(t *testing.T) {
	var opened string
	m := testModel(t, testOpts{
		checker: &countingChecker{resp: access.NewResponse(401, "")},
		nav: &navigate.Navigator{
			Open: func(url string) error { opened = url; return nil },
		},
	})
	hydrate(m, 120, 40)
	resolve(t, m)

	_, cmd := m.Update(keyPress(keys.Enter))
	if cmd == nil {
		t.Fatal("enter should start the redirect")
	}
	_, cmd = m.Update(cmd())

	if opened != m.launch.AccessRequestURL {
		t.Errorf("opened %q, want %q", opened, m.launch.AccessRequestURL)
	}
	if !isQuit(cmd) {
		t.Error("shell should quit after handing the form to the browser")
	}
}

func TestNotAllowed_ApplyFallsBackToClipboard(t *testing.T) {
	var copied string
	m := testModel(t, testOpts{
		checker: &countingChecker{resp: access.NewResponse(401, "")},
		nav: &navigate.Navigator{
			Open: func(string) error { return errors.New("no browser") },
			Copy: func(s string) error { copied = s; return nil },
		},
	})
	hydrate(m, 120, 40)
	resolve(t, m)

	_, cmd := m.Update(keyPress(keys.Enter))
	_, cmd = m.Update(cmd())

	if isQuit(cmd) {
		t.Error("shell should stay open when the link was only copied")
	}
	if copied != m.launch.AccessRequestURL {
		t.Errorf("copied %q", copied)
	}
	if !strings.Contains(stripANSI(m.RenderToString()), "clipboard") {
		t.Error("render should report the copied link")
	}
}

func TestCtrlC_QuitsFromAnyScreen(t *testing.T) {
	m := testModel(t, testOpts{})

	_, cmd := m.Update(keyPress(keys.CtrlC))
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
	if m.ctx.Err() == nil {
		t.Error("quitting should cancel in-flight work")
	}
}

func TestErrorBoundary(t *testing.T) {
	m := readyModel(t)
	m.appView = func() string { panic("boom") }

	out := strings.Join(strings.Fields(stripANSI(m.safeRender())), " ")
	if !strings.Contains(out, ui.TextRequestFailed) {
		t.Errorf("panic should render the failure panel, got %q", out)
	}
}

func TestView_AltScreen(t *testing.T) {
	m := readyModel(t)
	if v := m.View(); !v.AltScreen {
		t.Error("View should use the alternate screen")
	}
}

func TestInit_ReturnsCommands(t *testing.T) {
	m := testModel(t, testOpts{})
	if m.Init() == nil {
		t.Error("Init should return commands")
	}
}

var _ tea.Model = (*Model)(nil)
