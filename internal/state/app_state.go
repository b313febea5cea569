// Package state holds the process-wide application state shared by the
// window bindings and the CLI. Changes are published on the event bus so any
// frontend can react to them.
package state

import (
	"sync"
	"time"

	"github.com/pakemessenger/messenger/internal/config"
	"github.com/pakemessenger/messenger/internal/events"
)

// Saver persists settings.
type Saver interface {
	Save(config.AppSettings) error
}

// AppState guards the current settings. It is created once at startup and
// passed to whoever needs it.
type AppState struct {
	mu       sync.Mutex
	settings config.AppSettings

	// persistMu orders Persist calls; never held together with mu across I/O
	persistMu sync.Mutex

	bus *events.EventBus
}

// New creates the state with initial settings.
func New(initial config.AppSettings) *AppState {
	return &AppState{settings: initial}
}

// WithEventBus makes the state publish SettingsChangedEvent after each
// successful Persist.
func (s *AppState) WithEventBus(bus *events.EventBus) *AppState {
	s.bus = bus
	return s
}

// Settings returns a copy of the current settings.
func (s *AppState) Settings() config.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// RunInBackground reports whether closing the window should hide it.
func (s *AppState) RunInBackground() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.RunInBackground
}

// Persist applies fn, then saves the result with the lock released. If the
// save fails the in-memory settings are restored to what they were before.
func (s *AppState) Persist(store Saver, fn func(*config.AppSettings)) (config.AppSettings, error) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	previous := s.settings
	fn(&s.settings)
	next := s.settings
	s.mu.Unlock()

	if err := store.Save(next); err != nil {
		s.mu.Lock()
		s.settings = previous
		s.mu.Unlock()
		return previous, err
	}

	if s.bus != nil {
		s.bus.Publish(&events.SettingsChangedEvent{
			BaseEvent: events.BaseEvent{
				EventType: events.EventSettingsChanged,
				Time:      time.Now(),
			},
			RunInBackground: next.RunInBackground,
		})
	}

	return next, nil
}
