package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/chatgate/internal/chat"
	"github.com/zhubert/chatgate/internal/keys"
)

// StopwatchTickMsg is sent to update the waiting indicator
type StopwatchTickMsg time.Time

// thinkingVerbs cycle while a reply is outstanding
var thinkingVerbs = []string{
	"Thinking",
	"Reasoning",
	"Pondering",
	"Considering",
	"Composing",
	"Drafting",
	"Musing",
}

func randomThinkingVerb() string {
	return thinkingVerbs[rand.Intn(len(thinkingVerbs))]
}

// spinnerFrames animate the waiting indicator
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}

// Chat is the conversation view: a scrolling transcript above a textarea
type Chat struct {
	viewport  viewport.Model
	input     textarea.Model
	width     int
	height    int
	focused   bool
	messages  []chat.Message
	engine    string
	submitKey string

	waiting       bool
	waitStartTime time.Time
	waitingVerb   string
	frame         int
}

// NewChat creates a chat view that sends on submitKey ("enter" or
// "alt+enter"); the other key inserts a newline
func NewChat(submitKey string) *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{viewport: vp, input: ti}
	c.SetSubmitKey(submitKey)
	c.updateContent()
	return c
}

// SetSubmitKey chooses which key sends. The textarea's newline binding is
// moved to the other key.
func (c *Chat) SetSubmitKey(submitKey string) {
	c.submitKey = keys.Enter
	if submitKey == keys.AltEnter {
		c.submitKey = keys.AltEnter
	}
	c.input.KeyMap.InsertNewline = key.NewBinding(key.WithKeys(keys.Newline(c.submitKey)...))
}

// SubmitKey returns the key that sends
func (c *Chat) SubmitKey() string {
	return c.submitKey
}

// IsSubmit reports whether msg is the send key
func (c *Chat) IsSubmit(msg tea.KeyPressMsg) bool {
	return msg.String() == c.submitKey
}

// SetEngineName sets the label shown for assistant messages
func (c *Chat) SetEngineName(name string) {
	c.engine = name
}

// SetSize sets the chat view dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	transcriptHeight := height - InputTotalHeight
	c.viewport.SetWidth(Inner(width))
	c.viewport.SetHeight(max(Inner(transcriptHeight), 1))
	c.input.SetWidth(max(Inner(width)-InputPaddingWidth, 1))
	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) tea.Cmd {
	c.focused = focused
	if focused {
		return c.input.Focus()
	}
	c.input.Blur()
	return nil
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetMessages replaces the transcript
func (c *Chat) SetMessages(msgs []chat.Message) {
	c.messages = msgs
	c.updateContent()
}

// GetInput returns the current input text
func (c *Chat) GetInput() string {
	return c.input.Value()
}

// ClearInput clears the input
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput replaces the input text
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// SetWaiting toggles the waiting indicator. Starting returns the tick that
// drives it.
func (c *Chat) SetWaiting(waiting bool) tea.Cmd {
	c.waiting = waiting
	c.frame = 0
	var cmd tea.Cmd
	if waiting {
		c.waitStartTime = time.Now()
		c.waitingVerb = randomThinkingVerb()
		cmd = StopwatchTick()
	}
	c.updateContent()
	return cmd
}

// IsWaiting returns whether a reply is outstanding
func (c *Chat) IsWaiting() bool {
	return c.waiting
}

func (c *Chat) assistantLabel() string {
	if c.engine == "" {
		return "Assistant"
	}
	return "Assistant (" + c.engine + ")"
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder
	if len(c.messages) == 0 && !c.waiting {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("Start a conversation, or pick a prompt from the navigation panel."))
	}

	for i, msg := range c.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch msg.Role {
		case chat.RoleUser:
			sb.WriteString(ChatUserStyle.Render("You:"))
		case chat.RoleSystem:
			sb.WriteString(ChatUserStyle.Render("System:"))
		default:
			sb.WriteString(ChatAssistantStyle.Render(c.assistantLabel() + ":"))
		}
		sb.WriteString("\n")
		sb.WriteString(renderMarkdown(strings.TrimSpace(msg.Content), wrapWidth))
	}

	if c.waiting {
		if len(c.messages) > 0 {
			sb.WriteString("\n\n")
		}
		frame := lipgloss.NewStyle().Foreground(ColorUser).Bold(true).
			Render(spinnerFrames[c.frame%len(spinnerFrames)])
		sb.WriteString(ChatAssistantStyle.Render(c.assistantLabel() + ":"))
		sb.WriteString("\n")
		sb.WriteString(frame + " " + StatusLoadingStyle.Render(c.waitingVerb+"... "))
		sb.WriteString(lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).
			Render(formatElapsed(time.Since(c.waitStartTime))))
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

// Update handles messages. The caller intercepts the submit key.
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	if _, ok := msg.(StopwatchTickMsg); ok {
		if !c.waiting {
			return c, nil
		}
		c.frame++
		c.updateContent()
		return c, StopwatchTick()
	}

	var cmds []tea.Cmd
	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey && c.focused {
		if keys.IsScroll(keyMsg.String()) {
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

// View renders the chat view
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	transcript := panelStyle.Width(c.width).Height(max(c.height-InputTotalHeight, BorderSize+1)).
		Render(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, transcript, inputArea)
}
