package ui

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// logo is the bot mark shown on the hydration placeholder
const logo = `  ▄▀▀▀▄
 █ ● ● █
  ▀▄▄▄▀`

// Placeholder is the loading screen: the logo above animated dots. The
// lazy-view variant drops the logo.
type Placeholder struct {
	spinner  spinner.Model
	showLogo bool
}

// NewPlaceholder creates a placeholder
func NewPlaceholder(showLogo bool) *Placeholder {
	return &Placeholder{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Points),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorPrimary)),
		),
		showLogo: showLogo,
	}
}

// Tick starts the dots animation
func (p *Placeholder) Tick() tea.Cmd {
	return p.spinner.Tick
}

// Update advances the animation. It returns nil for messages that are not
// this placeholder's ticks.
func (p *Placeholder) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return cmd
}

// Content renders the placeholder without positioning
func (p *Placeholder) Content() string {
	dots := p.spinner.View()
	if !p.showLogo {
		return dots
	}
	return lipgloss.JoinVertical(lipgloss.Center, LogoStyle.Render(logo), "", dots)
}

// View renders the placeholder centered in width x height
func (p *Placeholder) View(width, height int) string {
	return place(width, height, p.Content())
}

// Notice texts for the access screens
const (
	TextRequestFailed = "Something went wrong with the service. Please try again later."
	TextNotInNetwork  = "Please use chatgate on the office network: connect to the ZKT-Office wireless network or the VPN."
	TextNotInHost     = "Please open chatgate inside WeCom. Path: WeCom > Workbench > ChatGPT."
	TextNotAllowed    = "Sorry, you have not been granted access yet. Make sure you are connected to the ZKT-Office wireless network or the VPN."
	TextApply         = "Apply for access"
)

// RenderRequestFailed renders the generic failure panel
func RenderRequestFailed(width, height int) string {
	return place(width, height, notice(NoticeErrorStyle, TextRequestFailed, width))
}

// RenderNotInNetwork renders the internal-network notice
func RenderNotInNetwork(width, height int) string {
	return place(width, height, notice(NoticeStyle, TextNotInNetwork, width))
}

// RenderNotInHost renders the host-application notice
func RenderNotInHost(width, height int) string {
	return place(width, height, notice(NoticeStyle, TextNotInHost, width))
}

// RenderNotAllowed renders the not-authorized notice with its apply action.
// status, when set, reports the outcome of a previous apply attempt.
func RenderNotAllowed(width, height int, status string) string {
	parts := []string{
		notice(NoticeStyle, TextNotAllowed, width),
		"",
		ButtonStyle.Render(TextApply),
		NoticeHintStyle.Render("press enter to open the request form"),
	}
	if status != "" {
		parts = append(parts, "", NoticeHintStyle.Render(status))
	}
	return place(width, height, lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// RenderBlank renders the empty screen shown while the check is in flight
func RenderBlank(width, height int) string {
	return place(width, height, "")
}

func notice(style lipgloss.Style, text string, width int) string {
	w := min(max(width-4, 10), 72)
	return style.Width(w).Align(lipgloss.Center).Render(text)
}

func place(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
