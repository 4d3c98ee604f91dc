package combat

import (
	"fmt"

	"github.com/KirkDiggler/reapers-guild/internal/dice"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
)

// ActingSide is whose turn it is
type ActingSide int

const (
	SidePlayer ActingSide = iota
	SideMonster
)

func (s ActingSide) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "monster"
}

// Next returns the other side
func (s ActingSide) Next() ActingSide {
	if s == SidePlayer {
		return SideMonster
	}
	return SidePlayer
}

// TurnOrder flips a fair coin for first strike. The announcement is derived
// from the same flip as the side.
func TurnOrder(roller dice.Roller, monsterName string) (ActingSide, string, error) {
	playerFirst, err := dice.CoinFlip(roller)
	if err != nil {
		return SidePlayer, "", err
	}

	if playerFirst {
		return SidePlayer, "You strike first!", nil
	}
	return SideMonster, fmt.Sprintf("The %s strikes first!", monsterName), nil
}

// MonsterDefeated reports whether the monster is out of health. A missing
// monster counts as zero health.
func MonsterDefeated(m *entities.Monster) bool {
	if m == nil {
		return true
	}
	return m.CurrentHealth <= 0
}

// CharacterAlive reports whether the character still has health
func CharacterAlive(c *entities.Character) bool {
	return c != nil && c.CurrentHealth > 0
}
