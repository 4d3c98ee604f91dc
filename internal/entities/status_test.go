package entities_test

import (
	"testing"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestNewStatus_KeySets(t *testing.T) {
	assert.Equal(t, entities.Status{
		entities.EffectPoison: 0, entities.EffectBleed: 0,
		entities.EffectShell: 0, entities.EffectBerserk: 0,
	}, entities.NewCharacterStatus())

	assert.Equal(t, entities.Status{
		entities.EffectBuff: 0, entities.EffectSnared: 0,
	}, entities.NewMonsterStatus())
}

func TestStatus_TickAllZeroIsNoop(t *testing.T) {
	s := entities.NewCharacterStatus()

	expired := s.Tick(entities.CharacterEffects)

	assert.Empty(t, expired)
	assert.Equal(t, entities.NewCharacterStatus(), s)
}

func TestStatus_TickExpiresExactlyOnce(t *testing.T) {
	for d := 1; d <= 6; d++ {
		s := entities.NewCharacterStatus()
		s.Add(entities.EffectShell, d)

		expirations := 0
		for i := 0; i < d+3; i++ {
			for _, e := range s.Tick(entities.CharacterEffects) {
				assert.Equal(t, entities.EffectShell, e)
				expirations++
			}
			assert.GreaterOrEqual(t, s[entities.EffectShell], 0, "never negative")
		}

		assert.Equal(t, 1, expirations, "duration %d", d)
		assert.Equal(t, 0, s[entities.EffectShell])
	}
}

func TestStatus_TickOrder(t *testing.T) {
	s := entities.Status{
		entities.EffectShell: 1, entities.EffectBerserk: 1,
		entities.EffectPoison: 1, entities.EffectBleed: 5,
	}

	expired := s.Tick(entities.CharacterEffects)

	assert.Equal(t, []entities.Effect{entities.EffectPoison, entities.EffectShell, entities.EffectBerserk}, expired)
	assert.Equal(t, 4, s[entities.EffectBleed])
}

func TestStatus_AddAndReset(t *testing.T) {
	s := entities.NewMonsterStatus()

	s.Add(entities.EffectSnared, 2)
	s.Add(entities.EffectSnared, 2)
	s.Add(entities.EffectBuff, 0)
	s.Add(entities.EffectBuff, -3)

	assert.Equal(t, 4, s[entities.EffectSnared])
	assert.True(t, s.Active(entities.EffectSnared))
	assert.False(t, s.Active(entities.EffectBuff))

	s.Reset()
	assert.Equal(t, entities.NewMonsterStatus(), s)
}
