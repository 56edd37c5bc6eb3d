package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/zhubert/chatgate/internal/chat"
	"github.com/zhubert/chatgate/internal/keys"
)

func TestChat_SubmitKey(t *testing.T) {
	tests := []struct {
		name       string
		submitKey  string
		wantSubmit string
		notSubmit  string
	}{
		{"enter sends", keys.Enter, "enter", "alt+enter"},
		{"alt+enter sends", keys.AltEnter, "alt+enter", "enter"},
		{"unknown falls back to enter", "ctrl+s", "enter", "alt+enter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChat(tt.submitKey)
			if !c.IsSubmit(keyPress(tt.wantSubmit)) {
				t.Errorf("%s should submit", tt.wantSubmit)
			}
			if c.IsSubmit(keyPress(tt.notSubmit)) {
				t.Errorf("%s should not submit", tt.notSubmit)
			}
		})
	}
}

func TestChat_Input(t *testing.T) {
	c := NewChat(keys.Enter)
	c.SetSize(80, 20)
	c.SetFocused(true)

	c.Update(keyPress("h"))
	c.Update(keyPress("i"))
	if c.GetInput() != "hi" {
		t.Errorf("GetInput() = %q, want hi", c.GetInput())
	}

	c.ClearInput()
	if c.GetInput() != "" {
		t.Error("ClearInput() should empty the input")
	}

	c.SetInput("seeded")
	if c.GetInput() != "seeded" {
		t.Errorf("GetInput() = %q, want seeded", c.GetInput())
	}
}

func TestChat_BlurredIgnoresTyping(t *testing.T) {
	c := NewChat(keys.Enter)
	c.SetSize(80, 20)

	c.Update(keyPress("x"))
	if c.GetInput() != "" {
		t.Error("blurred chat should not take input")
	}
}

func TestChat_Transcript(t *testing.T) {
	c := NewChat(keys.Enter)
	c.SetSize(80, 20)
	c.SetEngineName("echo")

	if !strings.Contains(stripANSI(c.View()), "Start a conversation") {
		t.Error("empty chat should show the hint")
	}

	c.SetMessages([]chat.Message{
		chat.NewMessage(chat.RoleUser, "hello there"),
		chat.NewMessage(chat.RoleAssistant, "general kenobi"),
	})

	view := stripANSI(c.View())
	for _, want := range []string{"You:", "hello there", "Assistant (echo):", "general kenobi"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestChat_Waiting(t *testing.T) {
	c := NewChat(keys.Enter)
	c.SetSize(80, 20)

	if cmd := c.SetWaiting(true); cmd == nil {
		t.Error("SetWaiting(true) should start the tick")
	}
	if !c.IsWaiting() {
		t.Error("IsWaiting() should be true")
	}
	if !strings.Contains(stripANSI(c.View()), c.waitingVerb+"...") {
		t.Error("waiting indicator not rendered")
	}

	if _, cmd := c.Update(StopwatchTickMsg{}); cmd == nil {
		t.Error("tick while waiting should schedule the next tick")
	}

	c.SetWaiting(false)
	if _, cmd := c.Update(StopwatchTickMsg{}); cmd != nil {
		t.Error("tick after waiting should stop")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0s"},
		{59, "59s"},
		{60, "1m00s"},
		{125, "2m05s"},
	}
	for _, tt := range tests {
		if got := formatElapsed(time.Duration(tt.secs) * time.Second); got != tt.want {
			t.Errorf("formatElapsed(%ds) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
