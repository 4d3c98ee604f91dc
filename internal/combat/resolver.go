package combat

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/reapers-guild/internal/catalog"
	"github.com/KirkDiggler/reapers-guild/internal/dice"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"go.uber.org/zap"
)

const (
	// KiCost is what every Ki move costs
	KiCost = 10

	poisonTicks  = 4
	bleedTicks   = 2
	snareTicks   = 2
	shellTicks   = 4
	berserkTicks = 6

	// BerserkBonus is added to the damage modifier while Berserk lasts
	BerserkBonus = 0.5

	buffDamageBonus = 0.2
	buffHealthBonus = 0.5

	moveSnare   = "Snare"
	moveBerserk = "Berserk"
	moveShell   = "Shell"

	defeatedSuffix = "\nYou have been defeated!"
)

// Result is the outcome of a character attack. Success is false only when
// the character could not pay for a Ki move, in which case nothing changed.
type Result struct {
	Success bool
	Message string
}

// Resolver applies attacks to combatant state and describes what happened
type Resolver struct {
	catalog *catalog.Catalog
	roller  dice.Roller
	log     *zap.SugaredLogger
}

// ResolverConfig holds the resolver's dependencies
type ResolverConfig struct {
	Catalog *catalog.Catalog
	Roller  dice.Roller
	Logger  *zap.SugaredLogger
}

// NewResolver creates a resolver. Catalog and roller are required.
func NewResolver(cfg *ResolverConfig) *Resolver {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}

	r := &Resolver{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		log:     cfg.Logger,
	}
	if r.log == nil {
		r.log = zap.S()
	}
	return r
}

// Damage scales a base damage by modifiers and truncates toward zero
func Damage(base int, modifiers ...float64) int {
	total := float64(base)
	for _, m := range modifiers {
		total *= m
	}
	return int(math.Floor(total))
}

// PickMonsterAttack draws the monster's next move from the catalog
func (r *Resolver) PickMonsterAttack(m *entities.Monster) (entities.Attack, error) {
	return r.catalog.PickMonsterAttack(m.Archetype, r.roller)
}

// ResolveMonsterAttack applies a monster move to the character. It does not
// decide the battle; a defeated character only shows up in the message.
func (r *Resolver) ResolveMonsterAttack(attack entities.Attack, c *entities.Character, m *entities.Monster) (string, error) {
	var message string

	switch attack.Category {
	case entities.CategoryAttack:
		dealt := r.hitCharacter(attack, c, m)
		message = fmt.Sprintf("Monster used %s! %s You took %d damage!", attack.Name, attack.Description, dealt)
	case entities.CategoryHeal:
		dealt := r.hitCharacter(attack, c, m)
		healed := dealt / 2
		m.CurrentHealth += healed
		message = fmt.Sprintf("Monster used %s! %s You took %d damage! Monster healed for %d health!",
			attack.Name, attack.Description, dealt, healed)
	case entities.CategoryPoison:
		dealt := r.hitCharacter(attack, c, m)
		c.Status.Add(entities.EffectPoison, poisonTicks)
		message = fmt.Sprintf("Monster used %s! %s You took %d damage and are poisoned!",
			attack.Name, attack.Description, dealt)
	case entities.CategoryBleed:
		dealt := r.hitCharacter(attack, c, m)
		c.Status.Add(entities.EffectBleed, bleedTicks)
		message = fmt.Sprintf("Monster used %s! %s You took %d damage and are bleeding!",
			attack.Name, attack.Description, dealt)
	case entities.CategoryBuff:
		m.DamageModifier += buffDamageBonus
		m.HealthModifier += buffHealthBonus
		m.CurrentHealth = int(float64(m.CurrentHealth) * m.HealthModifier)
		message = fmt.Sprintf("Monster used %s! %s Monster's damage and Health are increased!",
			attack.Name, attack.Description)
	case entities.CategoryPhysical, entities.CategoryKi:
		return "", rgerr.Internalf("monster %s cannot use %s move %s", m.Name, attack.Category, attack.Name)
	default:
		return "", rgerr.Internalf("unknown attack category %d for %s", attack.Category, attack.Name)
	}

	r.log.Debugw("monster attack resolved",
		"monster", m.Name,
		"attack", attack.Name,
		"category", attack.Category.String(),
		"character_health", c.CurrentHealth,
		"monster_health", m.CurrentHealth,
	)

	if c.CurrentHealth <= 0 {
		message += defeatedSuffix
	}
	return message, nil
}

func (r *Resolver) hitCharacter(attack entities.Attack, c *entities.Character, m *entities.Monster) int {
	dealt := Damage(attack.Damage, m.DamageModifier, c.ActiveDefenseModifier)
	c.CurrentHealth -= dealt
	return dealt
}

// ResolveCharacterAttack applies one of the character's moves to the monster
func (r *Resolver) ResolveCharacterAttack(attack entities.Attack, c *entities.Character, m *entities.Monster) (Result, error) {
	switch attack.Category {
	case entities.CategoryPhysical:
		dealt := Damage(attack.Damage, c.DamageModifier)
		m.CurrentHealth -= dealt
		r.log.Debugw("physical attack resolved", "attack", attack.Name, "damage", dealt, "monster_health", m.CurrentHealth)
		return Result{
			Success: true,
			Message: fmt.Sprintf("You used %s! %s You dealt %d damage!", attack.Name, attack.Description, dealt),
		}, nil
	case entities.CategoryKi:
		return r.resolveKiAttack(attack, c, m)
	case entities.CategoryAttack, entities.CategoryHeal, entities.CategoryPoison,
		entities.CategoryBleed, entities.CategoryBuff:
		return Result{}, rgerr.Internalf("character cannot use %s move %s", attack.Category, attack.Name)
	default:
		return Result{}, rgerr.Internalf("unknown attack category %d for %s", attack.Category, attack.Name)
	}
}

func (r *Resolver) resolveKiAttack(attack entities.Attack, c *entities.Character, m *entities.Monster) (Result, error) {
	if c.CurrentKi < KiCost {
		r.log.Debugw("ki attack refused", "attack", attack.Name, "ki", c.CurrentKi)
		return Result{Success: false}, nil
	}

	var message string
	switch {
	case attack.Name == moveSnare && attack.Damage > 0:
		// Snare carries damage in the catalog, so both effects apply
		message = kiDamage(attack, c, m) + "\n" + applySnare(m)
	case attack.Name == moveSnare:
		message = applySnare(m)
	case attack.Damage > 0:
		message = kiDamage(attack, c, m)
	case attack.Name == moveBerserk:
		c.DamageModifier += BerserkBonus
		c.Status.Add(entities.EffectBerserk, berserkTicks)
		message = fmt.Sprintf("You used %s! %s Your damage is increased by 50%% for 3 turns!", attack.Name, attack.Description)
	case attack.Name == moveShell:
		c.Status.Add(entities.EffectShell, shellTicks)
		c.ActiveDefenseModifier = 0.0
		message = fmt.Sprintf("You used %s! %s", attack.Name, attack.Description)
	default:
		return Result{}, rgerr.Internalf("special move %s has no effect", attack.Name)
	}

	c.CurrentKi -= KiCost
	r.log.Debugw("ki attack resolved", "attack", attack.Name, "ki", c.CurrentKi, "monster_health", m.CurrentHealth)
	return Result{Success: true, Message: message}, nil
}

func kiDamage(attack entities.Attack, c *entities.Character, m *entities.Monster) string {
	dealt := Damage(attack.Damage, c.DamageModifier)
	m.CurrentHealth -= dealt
	return fmt.Sprintf("You used %s! %s You dealt %d Ki damage!", attack.Name, attack.Description, dealt)
}

func applySnare(m *entities.Monster) string {
	m.Status.Add(entities.EffectSnared, snareTicks)
	return "The monster is snared and will miss its next turn!"
}
