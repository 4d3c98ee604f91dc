package combat

import (
	"fmt"

	"github.com/KirkDiggler/reapers-guild/internal/catalog"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
)

const (
	bossHealth         = 500
	bossDamageModifier = 1.7
)

// NewMonster builds a fresh monster of the archetype, scaled for the
// character's level. Level 1 scaling is the identity.
func NewMonster(cat *catalog.Catalog, archetype entities.Archetype, level int) (*entities.Monster, error) {
	health, err := cat.BaseHealth(archetype)
	if err != nil {
		return nil, err
	}

	m := &entities.Monster{
		Name:           string(archetype),
		Archetype:      archetype,
		Health:         health,
		CurrentHealth:  health,
		DamageModifier: 1.0,
		HealthModifier: 1.0,
		Status:         entities.NewMonsterStatus(),
	}

	if err := applyDifficultyScaling(cat, m, level); err != nil {
		return nil, rgerr.Wrapf(err, "failed to scale %s", archetype)
	}
	return m, nil
}

func applyDifficultyScaling(cat *catalog.Catalog, m *entities.Monster, level int) error {
	if level <= 1 {
		return nil
	}

	scaling, err := cat.Scaling(level)
	if err != nil {
		return err
	}

	m.DamageModifier += scaling.Damage
	m.HealthModifier += scaling.Health
	m.Health = int(float64(m.Health) * m.HealthModifier)
	m.CurrentHealth = int(float64(m.CurrentHealth) * m.HealthModifier)
	return nil
}

// NewBoss builds the end-game Calamity Beast on top of an unscaled archetype
func NewBoss(cat *catalog.Catalog, archetype entities.Archetype) (*entities.Monster, error) {
	m, err := NewMonster(cat, archetype, 1)
	if err != nil {
		return nil, err
	}

	m.Name = fmt.Sprintf("Calamity Beast %s", archetype)
	m.Health = bossHealth
	m.CurrentHealth = bossHealth
	m.DamageModifier = bossDamageModifier
	return m, nil
}
