// Package events is a small priority event bus. The battle loop emits every
// transcript line as a BattleEvent so the terminal and the archive can each
// subscribe to it.
package events

import (
	"sort"
	"sync"

	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"go.uber.org/zap"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
	log       *zap.SugaredLogger
}

// NewBus creates a new event bus. A nil logger uses the global one.
func NewBus(log *zap.SugaredLogger) *Bus {
	if log == nil {
		log = zap.S()
	}
	return &Bus{
		listeners: make(map[EventType][]EventListener),
		log:       log,
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	b.sortLocked(eventType)

	b.log.Debugw("listener subscribed", "listener", listener.ID(), "event", eventType, "priority", listener.Priority())
}

// SubscribeAll adds a listener to several event types at once
func (b *Bus) SubscribeAll(eventTypes []EventType, listener EventListener) {
	for _, t := range eventTypes {
		b.Subscribe(t, listener)
	}
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		listeners[i] = listeners[len(listeners)-1]
		b.listeners[eventType] = listeners[:len(listeners)-1]
		b.sortLocked(eventType)

		b.log.Debugw("listener unsubscribed", "listener", listenerID, "event", eventType)
		return
	}
}

func (b *Bus) sortLocked(eventType EventType) {
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})
}

// Emit sends an event to all registered listeners in priority order. A
// cancelled event stops propagating; a listener error aborts the emit.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			b.log.Debugw("event cancelled", "event", event.GetType(), "skipped", listener.ID())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return rgerr.Wrapf(err, "listener %s failed", listener.ID())
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
}
