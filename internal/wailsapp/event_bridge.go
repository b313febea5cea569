package wailsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/pakemessenger/messenger/internal/constants"
	"github.com/pakemessenger/messenger/internal/events"
)

// Event names emitted to the page.
const (
	EventNameToast    = "messenger:toast"
	EventNameDownload = "messenger:download"
	EventNameBadge    = "messenger:badge"
	EventNameSettings = "messenger:settings"
)

// EventBridge forwards events from internal EventBus to Wails runtime.
// Toasts are additionally drawn into the page, which knows nothing about
// Wails events.
type EventBridge struct {
	ctx          context.Context
	eventBus     *events.EventBus
	subscription <-chan events.Event

	emit   func(ctx context.Context, name string, data ...interface{})
	execJS func(ctx context.Context, js string)

	stopC   chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

// NewEventBridge creates a new event bridge.
func NewEventBridge(ctx context.Context, eventBus *events.EventBus) *EventBridge {
	return &EventBridge{
		ctx:      ctx,
		eventBus: eventBus,
		emit:     runtime.EventsEmit,
		execJS:   runtime.WindowExecJS,
		stopC:    make(chan struct{}),
	}
}

// Start begins forwarding events. A second Start is ignored.
func (eb *EventBridge) Start() error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.started {
		wailsLogger.Warn().Msg("Event bridge already started, ignoring duplicate Start()")
		return nil
	}

	eb.subscription = eb.eventBus.SubscribeAll()
	if eb.subscription == nil {
		return fmt.Errorf("event bridge: failed to subscribe to event bus")
	}

	eb.started = true
	eb.wg.Add(1)
	go eb.forwardLoop()

	wailsLogger.Debug().Msg("Event bridge started")
	return nil
}

// Stop stops forwarding events.
func (eb *EventBridge) Stop() {
	eb.mu.Lock()
	if !eb.started {
		eb.mu.Unlock()
		wailsLogger.Warn().Msg("Event bridge not started or already stopped")
		return
	}
	eb.started = false
	sub := eb.subscription
	eb.mu.Unlock()

	close(eb.stopC)
	eb.wg.Wait()
	eb.eventBus.UnsubscribeAll(sub)

	wailsLogger.Debug().Msg("Event bridge stopped")
}

func (eb *EventBridge) forwardLoop() {
	defer eb.wg.Done()

	for {
		select {
		case event, ok := <-eb.subscription:
			if !ok {
				return
			}
			eb.forwardEvent(event)

		case <-eb.stopC:
			return
		}
	}
}

func (eb *EventBridge) forwardEvent(event events.Event) {
	switch e := event.(type) {
	case *events.ToastEvent:
		eb.execJS(eb.ctx, toastScript(e.Message))
		eb.emit(eb.ctx, EventNameToast, toastEventToDTO(e))

	case *events.DownloadEvent:
		eb.emit(eb.ctx, EventNameDownload, downloadEventToDTO(e))

	case *events.BadgeEvent:
		eb.emit(eb.ctx, EventNameBadge, BadgeEventDTO{
			Timestamp: e.Timestamp().Format(time.RFC3339Nano),
			Count:     e.Count,
		})

	case *events.SettingsChangedEvent:
		eb.emit(eb.ctx, EventNameSettings, SettingsDTO{RunInBackground: e.RunInBackground})
	}
}

// toastScript renders the in-page banner. The message is embedded as a JSON
// string literal and assigned with textContent.
func toastScript(message string) string {
	quoted, _ := json.Marshal(message)
	return fmt.Sprintf(`(function(msg){
  var m = document.createElement('div');
  m.textContent = msg;
  m.style.cssText = 'max-width:60%%;min-width:80px;padding:0 12px;height:32px;color:#fff;line-height:32px;text-align:center;border-radius:8px;position:fixed;bottom:24px;left:50%%;transform:translateX(-50%%);z-index:999999;background:rgba(0,0,0,.8);font-size:13px;white-space:nowrap;overflow:hidden;text-overflow:ellipsis;';
  (document.body || document.documentElement).appendChild(m);
  setTimeout(function(){
    m.style.transition = 'opacity 0.5s ease-in';
    m.style.opacity = '0';
    setTimeout(function(){ m.remove(); }, 500);
  }, %d);
})(%s);`, constants.ToastDuration.Milliseconds(), quoted)
}

// DTO conversion functions for JSON-safe serialization

// ToastEventDTO is the JSON-safe version of events.ToastEvent.
type ToastEventDTO struct {
	Timestamp string `json:"timestamp"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

func toastEventToDTO(e *events.ToastEvent) ToastEventDTO {
	return ToastEventDTO{
		Timestamp: e.Timestamp().Format(time.RFC3339Nano),
		Kind:      string(e.Kind),
		Message:   e.Message,
		RequestID: e.RequestID,
	}
}

// DownloadEventDTO is the JSON-safe version of events.DownloadEvent.
type DownloadEventDTO struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"requestId"`
	Filename  string `json:"filename"`
	Path      string `json:"path,omitempty"`
	Bytes     int64  `json:"bytes"`
	Error     string `json:"error,omitempty"`
}

func downloadEventToDTO(e *events.DownloadEvent) DownloadEventDTO {
	return DownloadEventDTO{
		Timestamp: e.Timestamp().Format(time.RFC3339Nano),
		RequestID: e.RequestID,
		Filename:  e.Filename,
		Path:      e.Path,
		Bytes:     e.Bytes,
		Error:     e.Error,
	}
}

// BadgeEventDTO is the JSON-safe version of events.BadgeEvent.
type BadgeEventDTO struct {
	Timestamp string `json:"timestamp"`
	Count     int    `json:"count"`
}
