// Package notify provides cross-platform desktop notifications.
// It uses github.com/gen2brain/beeep for the OS integration.
package notify

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gen2brain/beeep"

	"github.com/pakemessenger/messenger/internal/constants"
	"github.com/pakemessenger/messenger/internal/logging"
)

// ErrEmptyTitle is returned when a notification has no title.
var ErrEmptyTitle = errors.New("notification title is required")

// SendFunc delivers one notification to the OS. icon is a local file path
// or empty.
type SendFunc func(title, message, icon string) error

// beeepSend is the default SendFunc.
//   - Windows: toast notifications
//   - macOS: NSUserNotificationCenter
//   - Linux: D-Bus notifications
func beeepSend(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}

// Notifier handles desktop notifications.
type Notifier struct {
	logger *logging.Logger
	send   SendFunc
	mu     sync.RWMutex
}

// NewNotifier creates a notifier backed by beeep.
func NewNotifier(logger *logging.Logger) *Notifier {
	if logger == nil {
		logger = logging.Nop()
	}
	beeep.AppName = constants.AppName

	return &Notifier{
		logger: logger,
		send:   beeepSend,
	}
}

// WithSendFunc replaces the OS delivery function. Tests use this to capture
// notifications.
func (n *Notifier) WithSendFunc(fn SendFunc) *Notifier {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.send = fn
	return n
}

// Send shows a notification. Title and body are trimmed to what the OS
// notification centres display.
func (n *Notifier) Send(title, body, icon string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	n.mu.RLock()
	send := n.send
	n.mu.RUnlock()

	title = truncate(title, constants.NotificationTitleMax)
	body = truncate(body, constants.NotificationBodyMax)

	if err := send(title, body, icon); err != nil {
		n.logger.Warn().Err(err).Str("title", title).Msg("Failed to send notification")
		return fmt.Errorf("failed to send notification: %w", err)
	}

	n.logger.Debug().Str("title", title).Bool("icon", icon != "").Msg("Notification sent")
	return nil
}

// truncate shortens s to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
