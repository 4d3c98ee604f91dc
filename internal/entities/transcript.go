package entities

import "time"

// Result is the terminal state of a battle
type Result string

const (
	ResultVictory Result = "victory"
	ResultDefeat  Result = "defeat"
)

// Transcript is the archived record of a finished battle
type Transcript struct {
	ID            string    `json:"id"`
	CharacterName string    `json:"character_name"`
	MonsterName   string    `json:"monster_name"`
	Archetype     Archetype `json:"archetype"`
	Result        Result    `json:"result"`
	Turns         int       `json:"turns"`
	Lines         []string  `json:"lines"`
	CreatedAt     time.Time `json:"created_at"`
}
