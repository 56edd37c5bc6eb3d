// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/chatgate/internal/logger"
)

// Title is used for every notification chatgate sends.
const Title = "chatgate"

var notify = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores beeep as the notifier.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending", "title", title)
	err := notify(title, message, "")
	if err != nil {
		log.Warn("send failed", "error", err)
	}
	return err
}

// ReplyReady announces that an assistant reply arrived. The message carries
// the first line of the reply, shortened to fit a notification bubble.
func ReplyReady(reply string) error {
	return Send(Title, Preview(reply, 80))
}

// Preview returns the first non-empty line of s, truncated to max display
// columns so wide scripts fit the notification bubble.
func Preview(s string, max int) string {
	line := ""
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}
	if line == "" {
		return "New reply"
	}
	return runewidth.Truncate(line, max, "…")
}
