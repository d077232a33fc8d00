package hellopass

import (
	"fmt"
	"os"
	"os/exec"
)

// Notifier reports non-release outcomes to the user. Stdout is never used:
// it belongs to the SSH client.
type Notifier struct {
	config *Config
}

// NewNotifier creates a new notifier with the given config
func NewNotifier(config *Config) *Notifier {
	return &Notifier{config: config}
}

// NotifyOutcome sends a notification for denied or cancelled requests based
// on config. Releases stay quiet.
func (n *Notifier) NotifyOutcome(req Request, res Result) {
	if n.config.Notifications.Method == "silent" {
		return
	}

	message := formatOutcome(req, res)
	if message == "" {
		return
	}

	switch n.config.Notifications.Method {
	case "stderr":
		n.notifyStderr(message)
	case "macos":
		n.notifyMacOS(message)
	}
}

func formatOutcome(req Request, res Result) string {
	switch res.Outcome {
	case OutcomeDenied:
		return fmt.Sprintf("Presence check failed; passphrase for '%s' not released", req.Slot)
	case OutcomeCancelled:
		if req.Kind == HostKeyConfirmation {
			return "Host key rejected"
		}
		return "Passphrase entry cancelled"
	}
	return ""
}

func (n *Notifier) notifyStderr(message string) {
	fmt.Fprintln(os.Stderr, message)
}

func (n *Notifier) notifyMacOS(message string) {
	// Use %q to safely escape the message for AppleScript, preventing injection
	cmd := exec.Command("osascript", "-e",
		fmt.Sprintf(`display notification %q with title "hellopass"`, message))
	_ = cmd.Run() // Ignore errors
}
