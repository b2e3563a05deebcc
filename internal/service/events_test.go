package service

import (
	"testing"
)

func TestEventsDeliverToAllSubscribers(t *testing.T) {
	bus := NewEvents()

	var first, second []Event
	bus.Subscribe(func(e Event) { first = append(first, e) })
	bus.Subscribe(func(e Event) { second = append(second, e) })

	bus.Publish(Event{Type: EventTemplateSaved, UserID: 1})
	bus.Publish(Event{Type: EventPropertyCreated, UserID: 2})

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected both subscribers to see both events, got %d and %d", len(first), len(second))
	}
	if first[0].Type != EventTemplateSaved || first[1].Type != EventPropertyCreated {
		t.Fatalf("events delivered out of order: %+v", first)
	}
}

func TestEventsUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewEvents()

	var seen int
	unsubscribe := bus.Subscribe(func(e Event) { seen++ })

	bus.Publish(Event{Type: EventPropertyUpdated})
	unsubscribe()
	bus.Publish(Event{Type: EventPropertyUpdated})

	if seen != 1 {
		t.Fatalf("expected one delivery before unsubscribe, got %d", seen)
	}
	if bus.SubscriberCount() != 0 {
		t.Fatalf("expected no remaining subscribers")
	}
}

func TestEventsSurvivePanickingHandler(t *testing.T) {
	bus := NewEvents()

	bus.Subscribe(func(e Event) { panic("bad handler") })

	var seen int
	bus.Subscribe(func(e Event) { seen++ })

	bus.Publish(Event{Type: EventNotificationCreated})

	if seen != 1 {
		t.Fatalf("a panicking handler must not block the others, got %d deliveries", seen)
	}
}

func TestSeparateBusesAreIsolated(t *testing.T) {
	a := NewEvents()
	b := NewEvents()

	var seenA, seenB int
	a.Subscribe(func(e Event) { seenA++ })
	b.Subscribe(func(e Event) { seenB++ })

	a.Publish(Event{Type: EventBrochureGenerated})

	if seenA != 1 || seenB != 0 {
		t.Fatalf("buses leaked events: a=%d b=%d", seenA, seenB)
	}
}
