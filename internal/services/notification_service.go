package services

import (
	"context"

	"github.com/pakemessenger/messenger/internal/logging"
	"github.com/pakemessenger/messenger/internal/notify"
	"github.com/pakemessenger/messenger/internal/ratelimit"
)

// NotificationService shows OS notifications requested by the page.
type NotificationService struct {
	notifier *notify.Notifier
	icons    *notify.IconCache
	limiter  *ratelimit.Limiter
	logger   *logging.Logger
}

// NewNotificationService creates a NotificationService. icons may be nil,
// in which case icon references are passed to the OS unchanged.
func NewNotificationService(notifier *notify.Notifier, icons *notify.IconCache, logger *logging.Logger) *NotificationService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &NotificationService{notifier: notifier, icons: icons, logger: logger}
}

// WithLimiter throttles Send. Notifications over the limit fail with
// ratelimit.ErrRateLimited.
func (s *NotificationService) WithLimiter(l *ratelimit.Limiter) *NotificationService {
	s.limiter = l
	return s
}

// Send shows the notification. An icon that cannot be fetched is dropped
// rather than failing the notification.
func (s *NotificationService) Send(ctx context.Context, params NotificationParams) error {
	if s.limiter != nil && !s.limiter.Allow() {
		return ratelimit.ErrRateLimited
	}

	icon := params.Icon
	if s.icons != nil {
		resolved, err := s.icons.Resolve(ctx, icon)
		if err != nil {
			s.logger.Warn().Err(err).Str("icon", icon).Msg("Notification icon unavailable")
			resolved = ""
		}
		icon = resolved
	}

	return s.notifier.Send(params.Title, params.Body, icon)
}
