package events

import (
	"testing"
	"time"
)

func TestEventBus_PublishSubscribe(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	ch := bus.Subscribe(EventToast)
	bus.PublishToast(ToastFailure, "Download failed", "req-1")

	select {
	case received := <-ch:
		toast, ok := received.(*ToastEvent)
		if !ok {
			t.Fatal("Expected ToastEvent")
		}
		if toast.Kind != ToastFailure {
			t.Errorf("Expected kind failure, got %s", toast.Kind)
		}
		if toast.RequestID != "req-1" {
			t.Errorf("Expected request id 'req-1', got '%s'", toast.RequestID)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for event")
	}
}

func TestEventBus_TypeFiltering(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	toasts := bus.Subscribe(EventToast)
	all := bus.SubscribeAll()

	bus.PublishBadge(3)

	select {
	case e := <-toasts:
		t.Fatalf("toast subscriber received %s event", e.Type())
	default:
	}

	select {
	case e := <-all:
		badge, ok := e.(*BadgeEvent)
		if !ok || badge.Count != 3 {
			t.Errorf("unexpected event %#v", e)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("all-events subscriber did not receive badge event")
	}
}

func TestEventBus_DropsWhenFull(t *testing.T) {
	bus := NewEventBus(1)
	defer bus.Close()

	_ = bus.Subscribe(EventBadge)
	bus.PublishBadge(1)
	bus.PublishBadge(2)
	bus.PublishBadge(3)

	if got := bus.GetDroppedEventCount(); got != 2 {
		t.Errorf("Expected 2 dropped events, got %d", got)
	}
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	ch := bus.Subscribe(EventToast)
	bus.Unsubscribe(EventToast, ch)

	if _, ok := <-ch; ok {
		t.Error("Expected channel to be closed after Unsubscribe")
	}

	all := bus.SubscribeAll()
	bus.UnsubscribeAll(all)
	if _, ok := <-all; ok {
		t.Error("Expected channel to be closed after UnsubscribeAll")
	}

	// Publishing after unsubscribe must not panic
	bus.PublishToast(ToastStart, "x", "")
}

func TestEventBus_CloseIsIdempotent(t *testing.T) {
	bus := NewEventBus(10)
	ch := bus.SubscribeAll()

	bus.Close()
	bus.Close()

	if _, ok := <-ch; ok {
		t.Error("Expected closed channel")
	}

	// Subscribing after close yields a closed channel
	if _, ok := <-bus.Subscribe(EventToast); ok {
		t.Error("Expected closed channel from Subscribe after Close")
	}
	bus.PublishBadge(1)
}
