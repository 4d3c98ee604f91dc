package catalog

import (
	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
)

type rawAttack struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Damage      int    `yaml:"damage"`
}

type rawMonster struct {
	Archetype string      `yaml:"archetype"`
	Health    int         `yaml:"health"`
	Attacks   []rawAttack `yaml:"attacks"`
}

type rawStance struct {
	Name        string      `yaml:"name"`
	UnlockLevel int         `yaml:"unlock_level"`
	Description string      `yaml:"description"`
	Attacks     []rawAttack `yaml:"attacks"`
}

type rawScaling struct {
	Level  int     `yaml:"level"`
	Damage float64 `yaml:"damage"`
	Health float64 `yaml:"health"`
}

type rawOffer struct {
	Slot     string  `yaml:"slot"`
	Name     string  `yaml:"name"`
	Modifier float64 `yaml:"modifier"`
}

type rawMerchant struct {
	Level  int        `yaml:"level"`
	Offers []rawOffer `yaml:"offers"`
}

type rawEncounter struct {
	Kind    string   `yaml:"kind"`
	Name    string   `yaml:"name"`
	Weight  int      `yaml:"weight"`
	Members []string `yaml:"members"`
}

type rawCatalog struct {
	AttackWeights []int          `yaml:"attack_weights"`
	Scaling       []rawScaling   `yaml:"scaling"`
	Monsters      []rawMonster   `yaml:"monsters"`
	Stances       []rawStance    `yaml:"stances"`
	Merchant      []rawMerchant  `yaml:"merchant"`
	Encounters    []rawEncounter `yaml:"encounters"`
}

func (r *rawCatalog) build() (*Catalog, error) {
	if len(r.AttackWeights) != MovesPerSet {
		return nil, rgerr.Validationf("attack_weights needs %d entries, got %d", MovesPerSet, len(r.AttackWeights))
	}

	c := &Catalog{
		attackWeights: append([]int(nil), r.AttackWeights...),
		scaling:       make(map[int]Scaling, len(r.Scaling)),
		monsterIndex:  make(map[entities.Archetype]*monsterInfo, len(r.Monsters)),
		stanceIndex:   make(map[entities.Stance]*StanceInfo, len(r.Stances)),
		merchant:      make(map[int][]entities.Equipment, len(r.Merchant)),
	}

	for _, s := range r.Scaling {
		c.scaling[s.Level] = Scaling{Damage: s.Damage, Health: s.Health}
	}

	for _, m := range r.Monsters {
		archetype := entities.Archetype(m.Archetype)
		if _, dup := c.monsterIndex[archetype]; dup {
			return nil, rgerr.Validationf("monster %s listed twice", m.Archetype)
		}
		if m.Health <= 0 {
			return nil, rgerr.Validationf("monster %s needs positive health", m.Archetype)
		}
		attacks, err := buildAttacks(m.Archetype, m.Attacks, entities.Category.IsMonsterCategory)
		if err != nil {
			return nil, err
		}
		info := &monsterInfo{archetype: archetype, health: m.Health, attacks: attacks}
		c.monsters = append(c.monsters, info)
		c.monsterIndex[archetype] = info
	}
	if len(c.monsters) == 0 {
		return nil, rgerr.Validation("catalog has no monsters")
	}

	for _, s := range r.Stances {
		stance := entities.Stance(s.Name)
		if _, dup := c.stanceIndex[stance]; dup {
			return nil, rgerr.Validationf("stance %s listed twice", s.Name)
		}
		attacks, err := buildAttacks(s.Name, s.Attacks, entities.Category.IsCharacterCategory)
		if err != nil {
			return nil, err
		}
		info := &StanceInfo{
			Stance:      stance,
			UnlockLevel: s.UnlockLevel,
			Description: s.Description,
			Attacks:     attacks,
		}
		c.stances = append(c.stances, info)
		c.stanceIndex[stance] = info
	}
	if len(c.stances) == 0 {
		return nil, rgerr.Validation("catalog has no stances")
	}

	for _, m := range r.Merchant {
		offers := make([]entities.Equipment, 0, len(m.Offers))
		for _, o := range m.Offers {
			offers = append(offers, entities.Equipment{
				Slot:     entities.Slot(o.Slot),
				Name:     o.Name,
				Modifier: o.Modifier,
			})
		}
		c.merchant[m.Level] = offers
	}

	for _, e := range r.Encounters {
		kind := EncounterKind(e.Kind)
		switch kind {
		case EncounterEnvironment, EncounterFriendly:
		case EncounterMonster:
			for _, member := range e.Members {
				if _, ok := c.monsterIndex[entities.Archetype(member)]; !ok {
					return nil, rgerr.Validationf("encounter pool %s names unknown monster %s", e.Name, member)
				}
			}
		default:
			return nil, rgerr.Validationf("encounter pool %s has unknown kind %q", e.Name, e.Kind)
		}
		if len(e.Members) == 0 {
			return nil, rgerr.Validationf("encounter pool %s is empty", e.Name)
		}
		c.encounters = append(c.encounters, EncounterPool{
			Kind:    kind,
			Name:    e.Name,
			Weight:  e.Weight,
			Members: append([]string(nil), e.Members...),
		})
	}

	return c, nil
}

func buildAttacks(owner string, raw []rawAttack, allowed func(entities.Category) bool) ([]entities.Attack, error) {
	if len(raw) != MovesPerSet {
		return nil, rgerr.Validationf("%s needs %d attacks, got %d", owner, MovesPerSet, len(raw))
	}

	attacks := make([]entities.Attack, 0, len(raw))
	for _, a := range raw {
		category, err := entities.ParseCategory(a.Category)
		if err != nil {
			return nil, rgerr.WrapWithCode(err, rgerr.CodeValidation, owner+": "+a.Name)
		}
		if !allowed(category) {
			return nil, rgerr.Validationf("%s: %s cannot use category %s", owner, a.Name, category)
		}
		if a.Damage < 0 {
			return nil, rgerr.Validationf("%s: %s has negative damage", owner, a.Name)
		}
		attacks = append(attacks, entities.Attack{
			Name:        a.Name,
			Description: a.Description,
			Category:    category,
			Damage:      a.Damage,
		})
	}
	return attacks, nil
}
