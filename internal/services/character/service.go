package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"fmt"

	"github.com/KirkDiggler/reapers-guild/internal/catalog"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"go.uber.org/zap"
)

const (
	startingHealth = 200
	startingKi     = 60

	rewardCrystals   = 8
	rewardExperience = 35
	maxLevelHealth   = 25
	maxLevelDamage   = 0.04

	levelUpExperience = 100
	levelUpHealth     = 50
	levelUpKi         = 15
	levelUpDamage     = 0.1

	healthPotRestore = 70
	shardRestore     = 30

	mineralPots   = 2
	mineralShards = 2
)

var titles = map[int]string{
	1: "the Amateur",
	2: "the Novice",
	3: "the Accepted",
}

// Service defines the character service interface. Every method mutates the
// character in place and returns the transcript text describing the change.
type Service interface {
	// MakeCharacter creates a level 1 character with the starting kit
	MakeCharacter(name string) (*entities.Character, error)

	// AwardMonsterRewards pays out Crystals plus experience or, at max level,
	// a permanent stat bump
	AwardMonsterRewards(c *entities.Character) string

	// LevelUp promotes the character when it has enough experience. The bool
	// reports whether a level was gained.
	LevelUp(c *entities.Character) (string, bool, error)

	// UseItem consumes one item from the inventory
	UseItem(c *entities.Character, item entities.Item) (string, error)

	// SwitchStance changes the active move-set
	SwitchStance(c *entities.Character, stance entities.Stance) (string, error)

	// Equip swaps the gear in a slot and re-applies every equipment modifier
	Equip(c *entities.Character, gear entities.Equipment) (*EquipResult, error)

	// RestAtHotSpring fully restores Health and Ki
	RestAtHotSpring(c *entities.Character) string

	// CollectMinerals adds Health Pots and Shards
	CollectMinerals(c *entities.Character) string
}

// EquipResult describes a completed equip
type EquipResult struct {
	Equipped string
	Bonus    string
}

type service struct {
	catalog *catalog.Catalog
	log     *zap.SugaredLogger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog *catalog.Catalog
	Logger  *zap.SugaredLogger
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	svc := &service{
		catalog: cfg.Catalog,
		log:     cfg.Logger,
	}
	if svc.log == nil {
		svc.log = zap.S()
	}
	return svc
}

// MakeCharacter creates a level 1 character with the starting kit
func (s *service) MakeCharacter(name string) (*entities.Character, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	equipment := make(map[entities.Slot]*entities.Equipment, len(entities.Slots))
	for _, slot := range entities.Slots {
		equipment[slot] = nil
	}

	c := &entities.Character{
		Name:                  name,
		Title:                 titles[1],
		Level:                 1,
		Health:                startingHealth,
		CurrentHealth:         startingHealth,
		Ki:                    startingKi,
		CurrentKi:             startingKi,
		DefenseModifier:       1.0,
		DamageModifier:        1.0,
		ActiveDefenseModifier: 1.0,
		Items: map[entities.Item]int{
			entities.ItemHealthPot: 0,
			entities.ItemShard:     0,
		},
		Equipment:    equipment,
		Status:       entities.NewCharacterStatus(),
		Stances:      s.catalog.StancesUnlockedAt(1),
		ActiveStance: entities.StanceBear,
	}

	s.log.Debugw("character created", "name", name)
	return c, nil
}

// AwardMonsterRewards pays out a defeated monster
func (s *service) AwardMonsterRewards(c *entities.Character) string {
	c.Crystals += rewardCrystals
	message := fmt.Sprintf("You have slain your foe!\nYou gained %d Crystals!\nTotal Crystals: %d\n", rewardCrystals, c.Crystals)

	if c.Level == entities.MaxLevel {
		c.Health += maxLevelHealth
		c.CurrentHealth = c.Health
		c.DamageModifier += maxLevelDamage
		message += fmt.Sprintf("Your maximum Health has increased by %d and Damage by 4%%!", maxLevelHealth)
	} else {
		c.Experience += rewardExperience
		message += fmt.Sprintf("You gained %d experience!", rewardExperience)
	}

	s.log.Debugw("rewards granted", "crystals", c.Crystals, "experience", c.Experience, "level", c.Level)
	return message
}

// LevelUp promotes the character one level when it qualifies
func (s *service) LevelUp(c *entities.Character) (string, bool, error) {
	if c.Level >= entities.MaxLevel || c.Experience < levelUpExperience {
		return "", false, nil
	}

	c.Level++
	c.Title = titles[c.Level]
	c.Health += levelUpHealth
	c.CurrentHealth = c.Health
	c.Ki += levelUpKi
	c.CurrentKi = c.Ki
	c.DamageModifier += levelUpDamage
	c.Experience = 0

	message := fmt.Sprintf("Level Up! You are now level %d!\nNew title: %s\nHealth increased to %d\nKi increased to %d",
		c.Level, c.Title, c.Health, c.Ki)

	unlocked := s.catalog.StancesUnlockedAt(c.Level)
	if len(unlocked) == 0 {
		return "", false, rgerr.Internalf("no stance unlocks at level %d", c.Level)
	}
	for _, stance := range unlocked {
		c.Stances = append(c.Stances, stance)
		message += fmt.Sprintf("\nNew stance unlocked: %s", stance)
	}

	s.log.Infow("character leveled up", "name", c.Name, "level", c.Level)
	return message, true, nil
}

// SwitchStance changes the active move-set. Picking the current stance is
// still a completed action.
func (s *service) SwitchStance(c *entities.Character, stance entities.Stance) (string, error) {
	if !c.HasStance(stance) {
		return "", rgerr.InvalidArgumentf("stance %s is not unlocked", stance).
			WithMeta("stance", string(stance))
	}

	info, err := s.catalog.Stance(stance)
	if err != nil {
		return "", err
	}

	c.ActiveStance = stance
	return fmt.Sprintf("You adopt the %s stance!\n%s", stance, info.Description), nil
}

// Equip swaps the gear in a slot. Modifiers from everything worn are removed
// before the swap and applied again after it.
func (s *service) Equip(c *entities.Character, gear entities.Equipment) (*EquipResult, error) {
	if !isSlot(gear.Slot) {
		return nil, rgerr.InvalidArgumentf("unknown equipment slot %s", gear.Slot)
	}
	if c.Equipment == nil {
		c.Equipment = make(map[entities.Slot]*entities.Equipment, len(entities.Slots))
	}

	applyEquipment(c, -1)
	equipped := gear
	c.Equipment[gear.Slot] = &equipped
	applyEquipment(c, 1)

	result := &EquipResult{Equipped: fmt.Sprintf("You have equipped %s!", gear.Name)}
	if gear.Slot.BoostsDefense() {
		result.Bonus = fmt.Sprintf("Your Defense Modifier increased to %v!", c.DefenseModifier)
	} else {
		result.Bonus = fmt.Sprintf("Your Damage Modifier increased to %v!", c.DamageModifier)
	}

	s.log.Debugw("equipment changed", "slot", gear.Slot, "name", gear.Name,
		"defense_modifier", c.DefenseModifier, "damage_modifier", c.DamageModifier)
	return result, nil
}

func applyEquipment(c *entities.Character, sign float64) {
	for _, slot := range entities.Slots {
		gear := c.Equipment[slot]
		if gear == nil {
			continue
		}
		if slot.BoostsDefense() {
			c.DefenseModifier += sign * gear.Modifier
		} else {
			c.DamageModifier += sign * gear.Modifier
		}
	}
}

func isSlot(slot entities.Slot) bool {
	for _, s := range entities.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
