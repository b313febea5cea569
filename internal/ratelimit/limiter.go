// Package ratelimit throttles requests coming from the web page so a
// misbehaving script cannot flood the desktop with notifications.
package ratelimit

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/pakemessenger/messenger/internal/logging"
)

// ErrRateLimited is returned by callers of Allow when the bucket is empty.
var ErrRateLimited = errors.New("rate limit exceeded")

// Notifications allow a short burst, then refill slowly.
const (
	NotificationRatePerSec = 1.0
	NotificationBurst      = 5

	// warnInterval spaces out "throttled" log lines.
	warnInterval = 10 * time.Second
)

// Limiter is a token bucket with throttled logging.
type Limiter struct {
	name     string
	limiter  *rate.Limiter
	logger   *logging.Logger
	now      func() time.Time
	mu       sync.Mutex
	lastWarn time.Time
	dropped  int
}

// New creates a limiter that refills perSecond tokens up to burst.
func New(name string, perSecond float64, burst int, logger *logging.Logger) *Limiter {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Limiter{
		name:    name,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:  logger,
		now:     time.Now,
	}
}

// NewNotificationLimiter creates the limiter used for page notifications.
func NewNotificationLimiter(logger *logging.Logger) *Limiter {
	return New("notifications", NotificationRatePerSec, NotificationBurst, logger)
}

// Allow takes a token if one is available. Refusals are logged at most
// once per warnInterval with the number dropped since the last line.
func (l *Limiter) Allow() bool {
	now := l.now()
	if l.limiter.AllowN(now, 1) {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.dropped++
	if now.Sub(l.lastWarn) >= warnInterval {
		l.logger.Warn().Str("limiter", l.name).Int("dropped", l.dropped).Msg("Requests throttled")
		l.lastWarn = now
		l.dropped = 0
	}
	return false
}
