package badge

import (
	"sync"

	"github.com/pakemessenger/messenger/internal/constants"
	"github.com/pakemessenger/messenger/internal/logging"
)

// Renderer shows an unread count on the application's taskbar button or
// dock tile. A count of zero or less clears the indicator.
type Renderer interface {
	Update(count int) error
	Name() string
}

// Options locate the window the badge belongs to.
type Options struct {
	WindowClass string
	WindowTitle string
	Logger      *logging.Logger
}

// DefaultOptions targets the main Wails window.
func DefaultOptions(logger *logging.Logger) Options {
	return Options{
		WindowClass: constants.WindowClassName,
		WindowTitle: constants.AppName,
		Logger:      logger,
	}
}

// New returns the renderer for the current platform.
func New(opts Options) Renderer {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	return newPlatformRenderer(opts)
}

// Tracking wraps a Renderer and remembers the last count it was given.
type Tracking struct {
	Renderer

	mu      sync.Mutex
	last    int
	updates int
}

// NewTracking wraps r.
func NewTracking(r Renderer) *Tracking {
	return &Tracking{Renderer: r}
}

func (t *Tracking) Update(count int) error {
	t.mu.Lock()
	t.last = count
	t.updates++
	t.mu.Unlock()

	return t.Renderer.Update(count)
}

// Last returns the most recent count and how many updates were made.
func (t *Tracking) Last() (count, updates int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last, t.updates
}

type noopRenderer struct{}

func (noopRenderer) Update(int) error { return nil }
func (noopRenderer) Name() string     { return "noop" }

// Noop returns a renderer that does nothing.
func Noop() Renderer {
	return noopRenderer{}
}
