package service

import (
	"sync"

	"estate-backoffice/pkg/logger"
)

const (
	EventNotificationCreated = "notification.created"
	EventPropertyCreated     = "property.created"
	EventPropertyUpdated     = "property.updated"
	EventTemplateSaved       = "template.saved"
	EventParticipantInvited  = "participant.invited"
	EventBrochureGenerated   = "brochure.generated"
)

type Event struct {
	Type    string
	UserID  uint
	Payload map[string]interface{}
}

type EventHandler func(Event)

// Events is an in-process pub/sub bus. It is constructed once at startup
// and injected into every service that needs it, never reached through a
// package global, so tests can run isolated buses side by side.
type Events struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[int]EventHandler
}

func NewEvents() *Events {
	return &Events{
		subscribers: make(map[int]EventHandler),
	}
}

// Subscribe registers a handler and returns an unsubscribe func.
func (e *Events) Subscribe(handler EventHandler) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.subscribers[id] = handler

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subscribers, id)
	}
}

// Publish delivers the event to every subscriber on the calling
// goroutine. A panicking handler is logged and does not take the
// publisher down.
func (e *Events) Publish(event Event) {
	e.mu.RLock()
	handlers := make([]EventHandler, 0, len(e.subscribers))
	for _, h := range e.subscribers {
		handlers = append(handlers, h)
	}
	e.mu.RUnlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Warn("Event handler panicked", map[string]interface{}{"event": event.Type, "panic": r})
				}
			}()
			handler(event)
		}()
	}
}

func (e *Events) SubscriberCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subscribers)
}
