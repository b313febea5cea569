package services

import (
	"context"
	"regexp"
	"strconv"
	"sync"

	"github.com/pakemessenger/messenger/internal/constants"
	"github.com/pakemessenger/messenger/internal/logging"
	"github.com/pakemessenger/messenger/internal/messages"
)

var unreadPrefix = regexp.MustCompile(`^\((\d+)\)\s*`)

// UnreadTracker follows the page title ("(3) Messenger", "(1) Alice") and
// keeps the unread count it advertises.
type UnreadTracker struct {
	mu        sync.Mutex
	lastTitle string
	count     int
}

// Observe records a title change. changed is true when the count moved and
// increased when it went up; both are decided under the same lock as the
// update. The exact title "Messenger" means everything was read; titles
// without a count prefix leave the count unchanged.
func (t *UnreadTracker) Observe(title string) (count int, increased, changed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if title == t.lastTitle {
		return t.count, false, false
	}
	t.lastTitle = title

	n := t.count
	if title == constants.ReadTitle {
		n = 0
	} else if m := unreadPrefix.FindStringSubmatch(title); m != nil {
		if parsed, err := strconv.Atoi(m[1]); err == nil {
			n = parsed
		}
	}

	increased = n > t.count
	changed = n != t.count
	t.count = n
	return n, increased, changed
}

// Count returns the current unread count.
func (t *UnreadTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Strip removes a leading "(N) " from title.
func Strip(title string) string {
	return unreadPrefix.ReplaceAllString(title, "")
}

// UnreadService turns page title changes into badge updates and
// new message notifications.
type UnreadService struct {
	// mu keeps badge updates in the same order as the title observations
	mu            sync.Mutex
	tracker       *UnreadTracker
	badges        *BadgeService
	notifications *NotificationService
	catalog       *messages.Catalog
	logger        *logging.Logger
}

// NewUnreadService creates an UnreadService.
func NewUnreadService(badges *BadgeService, notifications *NotificationService, catalog *messages.Catalog, logger *logging.Logger) *UnreadService {
	if catalog == nil {
		catalog = messages.New()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &UnreadService{
		tracker:       &UnreadTracker{},
		badges:        badges,
		notifications: notifications,
		catalog:       catalog,
		logger:        logger,
	}
}

// ReportTitle processes a new page title and returns the unread count.
func (s *UnreadService) ReportTitle(ctx context.Context, title, lang string) int {
	s.mu.Lock()
	count, increased, changed := s.tracker.Observe(title)
	if changed {
		_ = s.badges.Update(count)
	}
	s.mu.Unlock()

	if increased && s.notifications != nil {
		err := s.notifications.Send(ctx, NotificationParams{
			Title: s.catalog.Text(messages.NewMessage, lang),
			Body:  Strip(title),
			Icon:  constants.NewMessageIcon,
		})
		if err != nil {
			s.logger.Warn().Err(err).Int("count", count).Msg("Failed to send new message notification")
		}
	}

	return count
}
