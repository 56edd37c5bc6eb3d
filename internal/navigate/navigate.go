// Package navigate sends the user to an external URL: the system browser
// first, the clipboard when no browser can be launched.
package navigate

import (
	"os/exec"
	"runtime"

	"github.com/zhubert/chatgate/internal/clipboard"
	"github.com/zhubert/chatgate/internal/errors"
	"github.com/zhubert/chatgate/internal/logger"
)

// Outcome reports how a redirect reached the user.
type Outcome int

const (
	Failed Outcome = iota
	Opened         // handed to the system browser
	Copied         // placed on the clipboard for the user to paste
)

func (o Outcome) String() string {
	switch o {
	case Opened:
		return "opened"
	case Copied:
		return "copied"
	default:
		return "failed"
	}
}

// Navigator performs full redirects away from the shell.
type Navigator struct {
	Open func(url string) error
	Copy func(text string) error
}

// New returns a Navigator backed by the platform browser opener and the
// system clipboard.
func New() *Navigator {
	return &Navigator{Open: OpenBrowser, Copy: clipboard.WriteText}
}

// Redirect sends the user to url. When the browser cannot be launched the
// URL is copied instead; the returned error is set only when both fail.
func (n *Navigator) Redirect(url string) (Outcome, error) {
	log := logger.WithComponent("navigate")

	openErr := n.Open(url)
	if openErr == nil {
		log.Info("opened in browser", "url", url)
		return Opened, nil
	}
	log.Warn("browser launch failed", "url", url, "error", openErr)

	if n.Copy != nil {
		err := n.Copy(url)
		if err == nil {
			log.Info("copied to clipboard", "url", url)
			return Copied, nil
		}
		log.Warn("clipboard fallback failed", "error", err)
	}
	return Failed, errors.OpenURLFailed(url, openErr)
}

// OpenBrowser starts the platform URL handler for url without waiting for
// it to exit.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
