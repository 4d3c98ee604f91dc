// Package catalog holds the static game data: monster and stance move-sets,
// base stats, difficulty scaling, merchant stock and encounter pools.
//
// A Catalog is parsed once and never mutated afterwards. Every accessor
// returns copies so callers cannot change the shared data.
package catalog

import (
	"bytes"
	_ "embed"
	"io"
	"sync"

	"github.com/KirkDiggler/reapers-guild/internal/dice"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embedded []byte

// MovesPerSet is how many moves every monster and stance has
const MovesPerSet = 3

// EncounterKind groups encounters by how the game handles them
type EncounterKind string

const (
	EncounterEnvironment EncounterKind = "environment"
	EncounterFriendly    EncounterKind = "friendly"
	EncounterMonster     EncounterKind = "monster"
)

// Scaling is the difficulty bonus added to a new monster's modifiers
type Scaling struct {
	Damage float64
	Health float64
}

// StanceInfo describes one unlockable move-set
type StanceInfo struct {
	Stance      entities.Stance
	UnlockLevel int
	Description string
	Attacks     []entities.Attack
}

// EncounterPool is a weighted group of encounters
type EncounterPool struct {
	Kind    EncounterKind
	Name    string
	Weight  int
	Members []string
}

type monsterInfo struct {
	archetype entities.Archetype
	health    int
	attacks   []entities.Attack
}

// Catalog is the immutable game data registry
type Catalog struct {
	attackWeights []int
	scaling       map[int]Scaling
	monsters      []*monsterInfo
	monsterIndex  map[entities.Archetype]*monsterInfo
	stances       []*StanceInfo
	stanceIndex   map[entities.Stance]*StanceInfo
	merchant      map[int][]entities.Equipment
	encounters    []EncounterPool
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built into the binary. The embedded data is
// covered by tests, so a parse failure here is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(embedded))
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Archetypes lists monster archetypes in catalog order
func (c *Catalog) Archetypes() []entities.Archetype {
	out := make([]entities.Archetype, len(c.monsters))
	for i, m := range c.monsters {
		out[i] = m.archetype
	}
	return out
}

// AttackWeights returns the positional weights for monster move selection
func (c *Catalog) AttackWeights() []int {
	return append([]int(nil), c.attackWeights...)
}

// BaseHealth returns the level 1 Health of an archetype
func (c *Catalog) BaseHealth(archetype entities.Archetype) (int, error) {
	m, err := c.monster(archetype)
	if err != nil {
		return 0, err
	}
	return m.health, nil
}

// MonsterAttacks lists an archetype's moves in catalog order
func (c *Catalog) MonsterAttacks(archetype entities.Archetype) ([]entities.Attack, error) {
	m, err := c.monster(archetype)
	if err != nil {
		return nil, err
	}
	return append([]entities.Attack(nil), m.attacks...), nil
}

// PickMonsterAttack draws one of the archetype's moves using the positional
// weights, so the first listed move is always the most common.
func (c *Catalog) PickMonsterAttack(archetype entities.Archetype, roller dice.Roller) (entities.Attack, error) {
	m, err := c.monster(archetype)
	if err != nil {
		return entities.Attack{}, err
	}

	idx, err := dice.WeightedIndex(roller, c.attackWeights)
	if err != nil {
		return entities.Attack{}, rgerr.Wrapf(err, "failed to pick attack for %s", archetype)
	}
	return m.attacks[idx], nil
}

// Stances lists every stance in unlock order
func (c *Catalog) Stances() []StanceInfo {
	out := make([]StanceInfo, len(c.stances))
	for i, s := range c.stances {
		out[i] = copyStance(s)
	}
	return out
}

// Stance returns a single stance
func (c *Catalog) Stance(stance entities.Stance) (StanceInfo, error) {
	s, ok := c.stanceIndex[stance]
	if !ok {
		return StanceInfo{}, rgerr.NotFoundf("stance %s not found", stance).WithMeta("stance", string(stance))
	}
	return copyStance(s), nil
}

// StanceAttacks lists a stance's moves in catalog order
func (c *Catalog) StanceAttacks(stance entities.Stance) ([]entities.Attack, error) {
	s, err := c.Stance(stance)
	if err != nil {
		return nil, err
	}
	return s.Attacks, nil
}

// StancesUnlockedAt lists the stances whose unlock level is exactly level
func (c *Catalog) StancesUnlockedAt(level int) []entities.Stance {
	var out []entities.Stance
	for _, s := range c.stances {
		if s.UnlockLevel == level {
			out = append(out, s.Stance)
		}
	}
	return out
}

// Scaling returns the difficulty bonus for a character level
func (c *Catalog) Scaling(level int) (Scaling, error) {
	s, ok := c.scaling[level]
	if !ok {
		return Scaling{}, rgerr.NotFoundf("no difficulty scaling for level %d", level)
	}
	return s, nil
}

// MerchantOffers lists the gear a merchant sells at a character level
func (c *Catalog) MerchantOffers(level int) ([]entities.Equipment, error) {
	offers, ok := c.merchant[level]
	if !ok {
		return nil, rgerr.NotFoundf("no merchant offers for level %d", level)
	}
	return append([]entities.Equipment(nil), offers...), nil
}

// EncounterPools lists the encounter pools with their starting weights
func (c *Catalog) EncounterPools() []EncounterPool {
	out := make([]EncounterPool, len(c.encounters))
	for i, p := range c.encounters {
		p.Members = append([]string(nil), p.Members...)
		out[i] = p
	}
	return out
}

func (c *Catalog) monster(archetype entities.Archetype) (*monsterInfo, error) {
	m, ok := c.monsterIndex[archetype]
	if !ok {
		return nil, rgerr.NotFoundf("monster archetype %s not found", archetype).
			WithMeta("archetype", string(archetype))
	}
	return m, nil
}

func copyStance(s *StanceInfo) StanceInfo {
	out := *s
	out.Attacks = append([]entities.Attack(nil), s.Attacks...)
	return out
}

// Load parses and validates catalog YAML
func Load(r io.Reader) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, rgerr.WrapWithCode(err, rgerr.CodeValidation, "failed to decode catalog")
	}
	return raw.build()
}
