package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakemessenger/messenger/internal/badge"
	"github.com/pakemessenger/messenger/internal/events"
)

type brokenRenderer struct{}

func (brokenRenderer) Update(int) error { return errors.New("taskbar unavailable") }
func (brokenRenderer) Name() string     { return "broken" }

func TestBadgeServiceUpdate(t *testing.T) {
	bus := events.NewEventBus(4)
	defer bus.Close()
	ch := bus.Subscribe(events.EventBadge)

	renderer := badge.NewTracking(badge.Noop())
	svc := NewBadgeService(renderer, bus, nil)

	require.NoError(t, svc.Update(5))
	assert.Equal(t, 5, svc.Count())

	count, _ := renderer.Last()
	assert.Equal(t, 5, count)

	select {
	case ev := <-ch:
		assert.Equal(t, 5, ev.(*events.BadgeEvent).Count)
	case <-time.After(time.Second):
		t.Fatal("no badge event")
	}
}

func TestBadgeServiceSwallowsRendererErrors(t *testing.T) {
	svc := NewBadgeService(brokenRenderer{}, nil, nil)

	for _, n := range []int{3, 0, -1} {
		assert.NoError(t, svc.Update(n))
		assert.Equal(t, n, svc.Count())
	}
}
