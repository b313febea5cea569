package services

import (
	"sync"

	"github.com/pakemessenger/messenger/internal/badge"
	"github.com/pakemessenger/messenger/internal/events"
	"github.com/pakemessenger/messenger/internal/logging"
)

// BadgeService shows the unread count on the taskbar or dock.
type BadgeService struct {
	renderer badge.Renderer
	eventBus *events.EventBus
	logger   *logging.Logger

	mu    sync.Mutex
	count int
}

// NewBadgeService creates a BadgeService.
func NewBadgeService(renderer badge.Renderer, eventBus *events.EventBus, logger *logging.Logger) *BadgeService {
	if renderer == nil {
		renderer = badge.Noop()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &BadgeService{renderer: renderer, eventBus: eventBus, logger: logger}
}

// Update sets the badge. Platform failures are logged, never returned, so
// the page always sees success.
func (s *BadgeService) Update(count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.renderer.Update(count); err != nil {
		s.logger.Warn().Err(err).Str("renderer", s.renderer.Name()).Int("count", count).Msg("Failed to update badge")
	}
	s.count = count

	if s.eventBus != nil {
		s.eventBus.PublishBadge(count)
	}
	return nil
}

// Count returns the last count passed to Update.
func (s *BadgeService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
