package bus

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestEventBus_PublishSync(t *testing.T) {
	b := NewEventBus()

	var count atomic.Int32
	b.Subscribe(EventTypeTranslationStarted, func(e Event) {
		count.Add(1)
	})
	b.Subscribe(EventTypeTranslationStarted, func(e Event) {
		count.Add(1)
	})

	b.PublishSync(Event{Type: EventTypeTranslationStarted})
	if got := count.Load(); got != 2 {
		t.Errorf("handler invocations = %d, want 2", got)
	}
}

func TestEventBus_PublishToOtherType(t *testing.T) {
	b := NewEventBus()

	called := false
	b.Subscribe(EventTypeTranslationStarted, func(Event) { called = true })

	b.PublishSync(Event{Type: EventTypeTranslationCompleted})
	if called {
		t.Error("handler fired for an unsubscribed event type")
	}
}

func TestEventBus_SubscribeMultiple(t *testing.T) {
	b := NewEventBus()

	var mu sync.Mutex
	seen := map[EventType]bool{}
	b.SubscribeMultiple(
		[]EventType{EventTypeClientConnected, EventTypeClientDisconnected},
		func(e Event) {
			mu.Lock()
			seen[e.Type] = true
			mu.Unlock()
		})

	b.PublishSync(Event{Type: EventTypeClientConnected})
	b.PublishSync(Event{Type: EventTypeClientDisconnected})

	mu.Lock()
	defer mu.Unlock()
	if !seen[EventTypeClientConnected] || !seen[EventTypeClientDisconnected] {
		t.Errorf("seen = %v, want both event types", seen)
	}
}

func TestEventBus_Clear(t *testing.T) {
	b := NewEventBus()

	called := false
	b.Subscribe(EventTypeConfigReloaded, func(Event) { called = true })
	b.Clear()

	b.PublishSync(Event{Type: EventTypeConfigReloaded})
	if called {
		t.Error("handler fired after Clear")
	}
}
