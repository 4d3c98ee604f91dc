package events

// EventType names a kind of battle event
type EventType string

// Event is the base interface for everything emitted on the bus
type Event interface {
	GetType() EventType
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// BattleEvent is one structured transcript entry. Message is the exact line
// shown to the player and may contain newlines.
type BattleEvent struct {
	BaseEvent
	BattleID string
	Turn     int
	Message  string
}

// NewBattleEvent builds an event of the given type
func NewBattleEvent(eventType EventType, battleID string, turn int, message string) *BattleEvent {
	return &BattleEvent{
		BaseEvent: BaseEvent{Type: eventType},
		BattleID:  battleID,
		Turn:      turn,
		Message:   message,
	}
}
