package testutils

import (
	"github.com/KirkDiggler/reapers-guild/internal/entities"
)

// CreateTestCharacter returns a level 1 character with the starting kit and
// no equipment
func CreateTestCharacter(name string) *entities.Character {
	return &entities.Character{
		Name:                  name,
		Title:                 "the Amateur",
		Level:                 1,
		Health:                200,
		CurrentHealth:         200,
		Ki:                    60,
		CurrentKi:             60,
		DefenseModifier:       1.0,
		DamageModifier:        1.0,
		ActiveDefenseModifier: 1.0,
		Items: map[entities.Item]int{
			entities.ItemHealthPot: 0,
			entities.ItemShard:     0,
		},
		Equipment: map[entities.Slot]*entities.Equipment{
			entities.SlotHelmet: nil,
			entities.SlotArmour: nil,
			entities.SlotRing:   nil,
			entities.SlotAmulet: nil,
		},
		Status:       entities.NewCharacterStatus(),
		Stances:      []entities.Stance{entities.StanceBear},
		ActiveStance: entities.StanceBear,
	}
}

// CreateTestMonster returns an unscaled monster with the given health
func CreateTestMonster(archetype entities.Archetype, health int) *entities.Monster {
	return &entities.Monster{
		Name:           string(archetype),
		Archetype:      archetype,
		Health:         health,
		CurrentHealth:  health,
		DamageModifier: 1.0,
		HealthModifier: 1.0,
		Status:         entities.NewMonsterStatus(),
	}
}

// CreateTestTranscript returns a finished battle record
func CreateTestTranscript(id, characterName string, result entities.Result) *entities.Transcript {
	return &entities.Transcript{
		ID:            id,
		CharacterName: characterName,
		MonsterName:   "Ghoul",
		Archetype:     "Ghoul",
		Result:        result,
		Turns:         5,
		Lines:         []string{"You strike first!", "You used Heavy Strike!"},
	}
}
