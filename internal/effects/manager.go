// Package effects runs the end-of-turn status processing: damage over
// time, duration ticks and modifier reversal on expiry.
package effects

import (
	"fmt"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
	"go.uber.org/zap"
)

// Processor ticks both combatants' statuses once per completed turn
type Processor struct {
	log *zap.SugaredLogger
}

// NewProcessor creates a processor. A nil logger uses the global one.
func NewProcessor(log *zap.SugaredLogger) *Processor {
	if log == nil {
		log = zap.S()
	}
	return &Processor{log: log}
}

// ApplyStatusDamage deals the damage-over-time hit to the character and
// returns the amount and the transcript line. Poison wins over Bleed; with
// neither active it returns 0 and an empty message.
func (p *Processor) ApplyStatusDamage(c *entities.Character) (int, string) {
	for _, rule := range DamageOverTimeRules {
		if !c.Status.Active(rule.Effect) {
			continue
		}
		c.CurrentHealth -= rule.Damage
		p.log.Debugw("status damage applied", "effect", rule.Effect, "damage", rule.Damage, "health", c.CurrentHealth)
		return rule.Damage, fmt.Sprintf("You take %d damage from %s!", rule.Damage, rule.Effect)
	}
	return 0, ""
}

// Tick decrements every active effect on both combatants and reverses the
// character modifiers of effects that expired on this tick. Monster effects
// only count down. It returns the character effects that expired.
func (p *Processor) Tick(c *entities.Character, m *entities.Monster) []entities.Effect {
	expired := c.Status.Tick(entities.CharacterEffects)
	for _, e := range expired {
		if reverse, ok := Reversals[e]; ok {
			reverse(c)
			p.log.Debugw("effect expired", "effect", e,
				"damage_modifier", c.DamageModifier,
				"active_defense_modifier", c.ActiveDefenseModifier)
		}
	}

	if m != nil {
		m.Status.Tick(entities.MonsterEffects)
	}
	return expired
}

// Run is the full end-of-turn pass: status damage first, then the tick.
// The returned message is empty when no damage-over-time applied.
func (p *Processor) Run(c *entities.Character, m *entities.Monster) string {
	_, message := p.ApplyStatusDamage(c)
	p.Tick(c, m)
	return message
}

// Reset clears the character's battle-scoped statuses. Effects still running
// have one application of their modifier reversed first; a stacked Berserk
// keeps the extra bonus.
func (p *Processor) Reset(c *entities.Character) {
	for _, e := range entities.CharacterEffects {
		if !c.Status.Active(e) {
			continue
		}
		if reverse, ok := Reversals[e]; ok {
			reverse(c)
		}
	}
	c.Status.Reset()
}
