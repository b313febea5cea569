package events

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pakemessenger/messenger/internal/constants"
)

// EventType defines the types of events that can be emitted
type EventType string

const (
	EventToast           EventType = "toast"
	EventDownload        EventType = "download"
	EventBadge           EventType = "badge"
	EventSettingsChanged EventType = "settings_changed"
)

// ToastKind classifies in-window status banners.
type ToastKind string

const (
	ToastStart   ToastKind = "start"
	ToastSuccess ToastKind = "success"
	ToastFailure ToastKind = "failure"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
	Timestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventType EventType
	Time      time.Time
}

func (e BaseEvent) Type() EventType      { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }

// ToastEvent asks the window to show a transient status banner.
type ToastEvent struct {
	BaseEvent
	Kind      ToastKind
	Message   string
	RequestID string
}

// DownloadEvent reports the outcome of one download command.
type DownloadEvent struct {
	BaseEvent
	RequestID string
	Filename  string
	Path      string // final path on success
	Bytes     int64
	Error     string
}

// BadgeEvent reports a badge count change.
type BadgeEvent struct {
	BaseEvent
	Count int
}

// SettingsChangedEvent reports persisted settings changes.
type SettingsChangedEvent struct {
	BaseEvent
	RunInBackground bool
}

// EventBus provides pub/sub for application events
type EventBus struct {
	subscribers   map[EventType][]chan Event
	all           []chan Event // Subscribers to all events
	mu            sync.RWMutex
	bufferSize    int
	closed        bool
	droppedEvents atomic.Int64 // Count of dropped events due to full buffers
}

// NewEventBus creates a new event bus with specified buffer size
func NewEventBus(bufferSize int) *EventBus {
	if bufferSize <= 0 {
		bufferSize = constants.EventBusDefaultBuffer
	}
	if bufferSize > constants.EventBusMaxBuffer {
		bufferSize = constants.EventBusMaxBuffer
	}
	return &EventBus{
		subscribers: make(map[EventType][]chan Event),
		all:         make([]chan Event, 0),
		bufferSize:  bufferSize,
	}
}

// Subscribe creates a subscription to a specific event type
func (eb *EventBus) Subscribe(eventType EventType) <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.subscribers[eventType] = append(eb.subscribers[eventType], ch)
	return ch
}

// SubscribeAll creates a subscription to all events
func (eb *EventBus) SubscribeAll() <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.all = append(eb.all, ch)
	return ch
}

// Publish sends an event to all subscribers without blocking. Events for a
// full subscriber are dropped and counted.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return
	}

	for _, ch := range eb.subscribers[event.Type()] {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}

	for _, ch := range eb.all {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}
}

// Close shuts down the event bus and closes all channels
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}

	eb.closed = true

	for _, channels := range eb.subscribers {
		for _, ch := range channels {
			close(ch)
		}
	}
	for _, ch := range eb.all {
		close(ch)
	}

	eb.subscribers = make(map[EventType][]chan Event)
	eb.all = nil
}

// PublishToast publishes a toast request.
func (eb *EventBus) PublishToast(kind ToastKind, message, requestID string) {
	eb.Publish(&ToastEvent{
		BaseEvent: BaseEvent{EventType: EventToast, Time: time.Now()},
		Kind:      kind,
		Message:   message,
		RequestID: requestID,
	})
}

// PublishBadge publishes a badge count change.
func (eb *EventBus) PublishBadge(count int) {
	eb.Publish(&BadgeEvent{
		BaseEvent: BaseEvent{EventType: EventBadge, Time: time.Now()},
		Count:     count,
	})
}

// Unsubscribe removes a subscription for a specific event type
func (eb *EventBus) Unsubscribe(eventType EventType, ch <-chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[eventType]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[eventType] = append(subs[:i], subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// UnsubscribeAll removes a subscription created with SubscribeAll
func (eb *EventBus) UnsubscribeAll(ch <-chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for i, sub := range eb.all {
		if sub == ch {
			eb.all = append(eb.all[:i], eb.all[i+1:]...)
			close(sub)
			return
		}
	}
}

// GetDroppedEventCount returns the number of events dropped due to full buffers
func (eb *EventBus) GetDroppedEventCount() int64 {
	return eb.droppedEvents.Load()
}
