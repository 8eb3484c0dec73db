package service

import (
	"context"
	"sync"
)

// Events sent to the frontend and other listeners.
const (
	EventDocumentChanged = "document:changed"
	EventCompanyChanged  = "company:changed"
	EventContentFilled   = "content:filled"
	EventExported        = "export:done"
	EventNotice          = "notice"
)

// ─────────────────────────────────────────────────────────────
// EventEmitter: decouples services from wailsRuntime
// ─────────────────────────────────────────────────────────────

// EventEmitter is an interface for emitting events to the frontend.
// The App struct implements this by delegating to wailsRuntime.EventsEmit;
// the standalone MCP server and the render command use a no-op emitter.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// Notice is the payload of EventNotice: a message the user should see.
type Notice struct {
	Level   string `json:"level"` // "info" or "error"
	Message string `json:"message"`
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, string, any) {}

// MockEmitter is a test-friendly EventEmitter that records all calls.
type MockEmitter struct {
	mu     sync.Mutex
	Events []EmittedEvent
}

// EmittedEvent holds a single recorded emission for test assertions.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, EmittedEvent{Event: event, Data: data})
}

// Named returns the recorded events with the given name, in order.
func (m *MockEmitter) Named(event string) []EmittedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []EmittedEvent
	for _, e := range m.Events {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}
