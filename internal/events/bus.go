// Package events carries the cross-store events: project stores publish,
// chat and notification stores subscribe. Delivery is synchronous and
// best-effort; a failing subscriber never affects the publisher's
// operation.
package events

import (
	"context"
	"log"
	"sync"

	"github.com/Angelo270204/prototipado-backend/internal/roster"
)

// Event is a payload delivered to every subscriber.
type Event interface {
	Name() string
}

// ProjectShared is published when a project is created and shared with a
// set of roles.
type ProjectShared struct {
	ProjectID   string
	ProjectName string
	ClientName  string
	ActorID     string
	Roles       []roster.Role
	CreateChat  bool
	Notify      bool
}

func (ProjectShared) Name() string { return "project_shared" }

// ProjectStatusChanged is published after a project's status transition.
type ProjectStatusChanged struct {
	ProjectID   string
	ProjectName string
	SharedRoles []roster.Role
	OldStatus   string
	NewStatus   string
	Reason      string
	ActorID     string
}

func (ProjectStatusChanged) Name() string { return "project_status_changed" }

// MessageSent is published after a chat message is appended to the log.
type MessageSent struct {
	MessageID   string
	ProjectID   string
	SenderID    string
	SenderName  string
	SenderRole  roster.Role
	RecipientID string
	Content     string
}

func (MessageSent) Name() string { return "message_sent" }

// Handler consumes one event. Errors are logged by the bus and dropped.
type Handler func(ctx context.Context, e Event) error

// Bus dispatches events to subscribers in subscription order. Publish
// never fails: subscriber errors and panics are logged and swallowed so
// side channels cannot roll back the primary operation.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(ctx, h, e)
	}
}

func (b *Bus) dispatch(ctx context.Context, h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[events] panic in %s subscriber: %v", e.Name(), r)
		}
	}()

	if err := h(ctx, e); err != nil {
		log.Printf("[events] %s subscriber failed: %v", e.Name(), err)
	}
}
