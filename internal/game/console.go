package game

//go:generate mockgen -destination=mock/mock_console.go -package=mockgame -source=console.go

import (
	"context"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
	"github.com/KirkDiggler/reapers-guild/internal/services/battle"
)

// SpringChoice is what the player does at a hot spring
type SpringChoice int

const (
	SpringBathe SpringChoice = iota + 1
	SpringCollect
)

// Console is the player's side of the game. Every Ask method re-prompts
// until it has a valid answer or the input fails.
type Console interface {
	battle.Prompter

	// Say shows a message to the player
	Say(message string)

	// ShowBoard draws the rendered board
	ShowBoard(rendered string)

	// AskName reads a character name accepted by validate
	AskName(ctx context.Context, validate func(string) error) (string, error)

	AskDirection(ctx context.Context) (Direction, error)

	// AskEquipment shows the merchant's offers and returns the chosen index
	AskEquipment(ctx context.Context, offers []entities.Equipment) (int, error)

	AskHotSpring(ctx context.Context) (SpringChoice, error)
}
