package effects

import (
	"github.com/KirkDiggler/reapers-guild/internal/combat"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
)

// DamageOverTime is a fixed per-turn hit while an effect is active
type DamageOverTime struct {
	Effect entities.Effect
	Damage int
}

// DamageOverTimeRules are checked in order and only the first active one
// applies on a given turn.
var DamageOverTimeRules = []DamageOverTime{
	{Effect: entities.EffectPoison, Damage: 5},
	{Effect: entities.EffectBleed, Damage: 15},
}

// Reversal undoes the modifier an effect applied to the character
type Reversal func(c *entities.Character)

// Reversals maps the character effects that carry a modifier to the
// function that removes it. Poison and Bleed have nothing to undo.
var Reversals = map[entities.Effect]Reversal{
	entities.EffectShell: func(c *entities.Character) {
		c.ActiveDefenseModifier = c.DefenseModifier
	},
	entities.EffectBerserk: func(c *entities.Character) {
		c.DamageModifier -= combat.BerserkBonus
	},
}
