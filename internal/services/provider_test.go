package services_test

import (
	"context"
	"testing"

	mockdice "github.com/KirkDiggler/reapers-guild/internal/dice/mock"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
	"github.com/KirkDiggler/reapers-guild/internal/services"
	"github.com/KirkDiggler/reapers-guild/internal/services/battle"
	mockbattle "github.com/KirkDiggler/reapers-guild/internal/services/battle/mock"
	"github.com/KirkDiggler/reapers-guild/internal/testutils"
	"github.com/KirkDiggler/reapers-guild/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewProvider_Defaults(t *testing.T) {
	p := services.NewProvider(&services.ProviderConfig{})

	assert.NotNil(t, p.Catalog)
	assert.NotNil(t, p.Roller)
	assert.NotNil(t, p.Bus)
	assert.NotNil(t, p.Transcripts)
	assert.NotNil(t, p.CharacterService)
	assert.NotNil(t, p.BattleService)
	assert.NotNil(t, p.EncounterService)
	assert.Equal(t, 24, p.EncounterService.NewPool().Remaining())
}

func TestNewProvider_BattlesAreArchived(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := mockbattle.NewMockPrompter(ctrl)
	prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(&battle.Action{Kind: battle.ActionAttack}, nil)

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1})

	p := services.NewProvider(&services.ProviderConfig{
		Roller:        roller,
		UUIDGenerator: uuid.NewSequentialGenerator("b"),
	})

	c := testutils.CreateTestCharacter("Aki")
	out, err := p.BattleService.Run(context.Background(), &battle.RunInput{
		Character: c,
		Monster:   testutils.CreateTestMonster("Ghoul", 10),
		Prompter:  prompter,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ResultVictory, out.Result)

	stored, err := p.Transcripts.ListByCharacter(context.Background(), "Aki")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "b-1", stored[0].ID)
	assert.Equal(t, out.Transcript.Lines, stored[0].Lines)
}
