package entities

import (
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
)

// Category is the closed set of attack kinds. It decides which resolver
// branch applies to an attack.
type Category int

const (
	// Monster categories
	CategoryAttack Category = iota + 1
	CategoryHeal
	CategoryPoison
	CategoryBleed
	CategoryBuff

	// Character categories
	CategoryPhysical
	CategoryKi
)

var categoryNames = map[Category]string{
	CategoryAttack:   "Attack",
	CategoryHeal:     "Heal",
	CategoryPoison:   "Poison",
	CategoryBleed:    "Bleed",
	CategoryBuff:     "Buff",
	CategoryPhysical: "Physical",
	CategoryKi:       "Ki",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// IsMonsterCategory reports whether monsters may use this category
func (c Category) IsMonsterCategory() bool {
	return c >= CategoryAttack && c <= CategoryBuff
}

// IsCharacterCategory reports whether characters may use this category
func (c Category) IsCharacterCategory() bool {
	return c == CategoryPhysical || c == CategoryKi
}

// ParseCategory maps a category name back to its value
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return 0, rgerr.InvalidArgumentf("unknown attack category %q", name)
}

// Attack is one catalog move. A Damage of 0 marks a special, non-damaging move.
type Attack struct {
	Name        string
	Description string
	Category    Category
	Damage      int
}

// IsSpecial reports whether the move deals no direct damage
func (a Attack) IsSpecial() bool {
	return a.Damage == 0
}
