package events

// Event type constants
const (
	EventTypeFirstStrike   EventType = "first_strike"
	EventTypeTurnStatus    EventType = "turn_status"
	EventTypeMonsterAction EventType = "monster_action"
	EventTypeMonsterSnared EventType = "monster_snared"
	EventTypePlayerAction  EventType = "player_action"
	EventTypeNotice        EventType = "notice"
	EventTypeStatusDamage  EventType = "status_damage"
	EventTypeReward        EventType = "reward"
)

// TranscriptEventTypes are every type that produces a transcript line, in
// the order they usually appear within a battle.
var TranscriptEventTypes = []EventType{
	EventTypeFirstStrike,
	EventTypeTurnStatus,
	EventTypeMonsterAction,
	EventTypeMonsterSnared,
	EventTypePlayerAction,
	EventTypeNotice,
	EventTypeStatusDamage,
	EventTypeReward,
}

// Priority levels for listener order
const (
	PriorityRecord  = 100 // Capture before anything can cancel
	PriorityDisplay = 200 // Render to the player
	PriorityLate    = 500
)
