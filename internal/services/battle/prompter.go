package battle

//go:generate mockgen -destination=mock/mock_prompter.go -package=mockbattle -source=prompter.go

import (
	"context"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
)

// ActionKind is what the player decided to do with their turn
type ActionKind int

const (
	ActionStance ActionKind = iota + 1
	ActionItem
	ActionAttack
)

func (k ActionKind) String() string {
	switch k {
	case ActionStance:
		return "stance"
	case ActionItem:
		return "item"
	case ActionAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Action is one concrete player choice. Only the field matching Kind is read.
type Action struct {
	Kind   ActionKind
	Stance entities.Stance
	Item   entities.Item
	// Attack indexes TurnView.Attacks
	Attack int
}

// TurnView is the state the player chooses from
type TurnView struct {
	Character *entities.Character
	Monster   *entities.Monster
	Attacks   []entities.Attack
}

// Prompter asks the player for their next action. Menu navigation and
// backing out of sub-menus stay inside the prompter; it only returns once a
// concrete action was picked.
type Prompter interface {
	ChooseAction(ctx context.Context, view *TurnView) (*Action, error)
}
