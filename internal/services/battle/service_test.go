package battle_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/KirkDiggler/reapers-guild/internal/catalog"
	"github.com/KirkDiggler/reapers-guild/internal/combat"
	mockdice "github.com/KirkDiggler/reapers-guild/internal/dice/mock"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"github.com/KirkDiggler/reapers-guild/internal/events"
	mocktranscripts "github.com/KirkDiggler/reapers-guild/internal/repositories/transcripts/mock"
	"github.com/KirkDiggler/reapers-guild/internal/services/battle"
	mockbattle "github.com/KirkDiggler/reapers-guild/internal/services/battle/mock"
	"github.com/KirkDiggler/reapers-guild/internal/services/character"
	"github.com/KirkDiggler/reapers-guild/internal/testutils"
	"github.com/KirkDiggler/reapers-guild/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	heavyStrike = "You used Heavy Strike! A powerful blow with massive physical damage. You dealt 20 damage!"
	clawSlash   = "Monster used Claw Slash! A basic claw swipe that deals physical damage. You took 10 damage!"
)

type fixture struct {
	svc      battle.Service
	roller   *mockdice.ManualMockRoller
	prompter *mockbattle.MockPrompter
	repo     *mocktranscripts.MockRepository
}

func setup(t *testing.T, bus *events.Bus) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	cat := catalog.Default()

	f := &fixture{
		roller:   mockdice.NewManualMockRoller(),
		prompter: mockbattle.NewMockPrompter(ctrl),
		repo:     mocktranscripts.NewMockRepository(ctrl),
	}
	f.svc = battle.NewService(&battle.ServiceConfig{
		Catalog:          cat,
		Roller:           f.roller,
		CharacterService: character.NewService(&character.ServiceConfig{Catalog: cat}),
		Bus:              bus,
		Transcripts:      f.repo,
		UUIDGenerator:    uuid.NewSequentialGenerator("battle"),
	})
	return f
}

func attack(idx int) *battle.Action {
	return &battle.Action{Kind: battle.ActionAttack, Attack: idx}
}

func status(hp, ki, monsterHP, monsterMax int) string {
	return fmt.Sprintf("Your Health: %d/200\nYour Ki: %d/60\nGhoul's Health: %d/%d", hp, ki, monsterHP, monsterMax)
}

func TestNewService_Required(t *testing.T) {
	cat := catalog.Default()
	roller := mockdice.NewManualMockRoller()

	assert.PanicsWithValue(t, "catalog is required", func() {
		battle.NewService(&battle.ServiceConfig{})
	})
	assert.PanicsWithValue(t, "roller is required", func() {
		battle.NewService(&battle.ServiceConfig{Catalog: cat})
	})
	assert.PanicsWithValue(t, "character service is required", func() {
		battle.NewService(&battle.ServiceConfig{Catalog: cat, Roller: roller})
	})
}

func TestRun_Victory(t *testing.T) {
	f := setup(t, nil)
	c := testutils.CreateTestCharacter("Aki")
	m := testutils.CreateTestMonster("Ghoul", 30)

	f.roller.SetRolls([]int{1, 10})
	f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(attack(0), nil).Times(2)

	var archived *entities.Transcript
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tr *entities.Transcript) error {
			archived = tr
			return nil
		})

	out, err := f.svc.Run(context.Background(), &battle.RunInput{Character: c, Monster: m, Prompter: f.prompter})
	require.NoError(t, err)

	assert.Equal(t, "battle-1", out.BattleID)
	assert.Equal(t, entities.ResultVictory, out.Result)
	assert.Equal(t, 3, out.Turns)
	assert.Same(t, m, out.Monster)
	assert.Equal(t, -10, m.CurrentHealth)
	assert.Equal(t, 190, c.CurrentHealth)
	assert.Equal(t, 8, c.Crystals)
	assert.Equal(t, 35, c.Experience)
	assert.Equal(t, 0, f.roller.Remaining())

	assert.Equal(t, []string{
		"You strike first!",
		status(200, 60, 30, 30),
		heavyStrike,
		status(200, 60, 10, 30),
		clawSlash,
		status(190, 60, 10, 30),
		heavyStrike,
		"You have slain your foe!\nYou gained 8 Crystals!\nTotal Crystals: 8\nYou gained 35 experience!",
	}, out.Transcript.Lines)

	require.NotNil(t, archived)
	assert.Same(t, out.Transcript, archived)
	assert.Equal(t, "Aki", archived.CharacterName)
	assert.Equal(t, "Ghoul", archived.MonsterName)
	assert.Equal(t, entities.Archetype("Ghoul"), archived.Archetype)
}

func TestRun_NotEnoughKi(t *testing.T) {
	f := setup(t, nil)
	c := testutils.CreateTestCharacter("Aki")
	c.CurrentKi = 5
	m := testutils.CreateTestMonster("Ghoul", 20)

	f.roller.SetRolls([]int{1})
	gomock.InOrder(
		f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(attack(1), nil),
		f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(attack(0), nil),
	)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out, err := f.svc.Run(context.Background(), &battle.RunInput{Character: c, Monster: m, Prompter: f.prompter})
	require.NoError(t, err)

	assert.Equal(t, entities.ResultVictory, out.Result)
	assert.Equal(t, 1, out.Turns)
	assert.Equal(t, 5, c.CurrentKi)
	require.Len(t, out.Transcript.Lines, 5)
	assert.Equal(t, "You don't have enough Ki to use this attack! Choose another action.", out.Transcript.Lines[2])
	assert.Equal(t, heavyStrike, out.Transcript.Lines[3])
}

func TestRun_InvalidAttackIndex(t *testing.T) {
	f := setup(t, nil)
	c := testutils.CreateTestCharacter("Aki")
	m := testutils.CreateTestMonster("Ghoul", 20)

	f.roller.SetRolls([]int{1})
	gomock.InOrder(
		f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(attack(3), nil),
		f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(attack(0), nil),
	)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out, err := f.svc.Run(context.Background(), &battle.RunInput{Character: c, Monster: m, Prompter: f.prompter})
	require.NoError(t, err)
	assert.Equal(t, "Invalid choice. Please enter a number between 0 and 3", out.Transcript.Lines[2])
}

func TestRun_SnaredMonsterLosesTurn(t *testing.T) {
	f := setup(t, nil)
	c := testutils.CreateTestCharacter("Aki")
	m := testutils.CreateTestMonster("Ghoul", 20)
	m.Status[entities.EffectSnared] = 2

	f.roller.SetRolls([]int{2})
	f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(attack(0), nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out, err := f.svc.Run(context.Background(), &battle.RunInput{Character: c, Monster: m, Prompter: f.prompter})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Turns)
	assert.Equal(t, 1, m.Status[entities.EffectSnared])
	assert.Equal(t, 200, c.CurrentHealth)
	assert.Equal(t, []string{
		"The Ghoul strikes first!",
		status(200, 60, 20, 20),
		"Ghoul is snared and cannot move this turn!",
		status(200, 60, 20, 20),
		heavyStrike,
		"You have slain your foe!\nYou gained 8 Crystals!\nTotal Crystals: 8\nYou gained 35 experience!",
	}, out.Transcript.Lines)
}

func TestRun_BossLinesUseArchetype(t *testing.T) {
	f := setup(t, nil)
	c := testutils.CreateTestCharacter("Aki")
	boss, err := combat.NewBoss(catalog.Default(), "Ghoul")
	require.NoError(t, err)
	boss.CurrentHealth = 20
	boss.Status[entities.EffectSnared] = 2

	f.roller.SetRolls([]int{2})
	f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(attack(0), nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out, err := f.svc.Run(context.Background(), &battle.RunInput{Character: c, Monster: boss, Prompter: f.prompter})
	require.NoError(t, err)

	assert.Equal(t, entities.ResultVictory, out.Result)
	require.GreaterOrEqual(t, len(out.Transcript.Lines), 5)
	assert.Equal(t, []string{
		"The Ghoul strikes first!",
		status(200, 60, 20, 500),
		"Ghoul is snared and cannot move this turn!",
		status(200, 60, 20, 500),
		heavyStrike,
	}, out.Transcript.Lines[:5])
}

func TestRun_Defeat(t *testing.T) {
	f := setup(t, nil)
	c := testutils.CreateTestCharacter("Aki")
	c.CurrentHealth = 10
	c.DamageModifier = 1.5
	c.Status[entities.EffectBerserk] = 3
	m := testutils.CreateTestMonster("Ghoul", 100)

	f.roller.SetRolls([]int{2, 1})
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out, err := f.svc.Run(context.Background(), &battle.RunInput{Character: c, Monster: m, Prompter: f.prompter})
	require.NoError(t, err)

	assert.Equal(t, entities.ResultDefeat, out.Result)
	assert.Equal(t, 1, out.Turns)
	assert.Equal(t, 0, c.CurrentHealth)
	assert.Equal(t, 0, c.Crystals)
	assert.InDelta(t, 1.0, c.DamageModifier, 1e-9)
	assert.Equal(t, entities.NewCharacterStatus(), c.Status)
	assert.Equal(t, []string{
		"The Ghoul strikes first!",
		"Your Health: 10/200\nYour Ki: 60/60\nGhoul's Health: 100/100",
		clawSlash + "\nYou have been defeated!",
	}, out.Transcript.Lines)
}

func TestRun_PoisonFinishesCharacter(t *testing.T) {
	f := setup(t, nil)
	c := testutils.CreateTestCharacter("Aki")
	c.CurrentHealth = 5
	c.Status[entities.EffectPoison] = 2
	m := testutils.CreateTestMonster("Ghoul", 100)

	f.roller.SetRolls([]int{1})
	f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(attack(0), nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out, err := f.svc.Run(context.Background(), &battle.RunInput{Character: c, Monster: m, Prompter: f.prompter})
	require.NoError(t, err)

	assert.Equal(t, entities.ResultDefeat, out.Result)
	assert.Equal(t, 0, c.CurrentHealth)
	assert.Equal(t, 80, m.CurrentHealth)
	assert.Equal(t, 0, c.Status[entities.EffectPoison])
	assert.Equal(t, "You take 5 damage from Poison!", out.Transcript.Lines[len(out.Transcript.Lines)-1])
}

func TestRun_StanceAndItemTurns(t *testing.T) {
	f := setup(t, nil)
	c := testutils.CreateTestCharacter("Aki")
	c.Stances = append(c.Stances, entities.StanceTurtle)
	c.Items[entities.ItemHealthPot] = 1
	c.CurrentHealth = 100
	m := testutils.CreateTestMonster("Ghoul", 15)

	f.roller.SetRolls([]int{1, 10, 10})

	var views []*battle.TurnView
	record := func(a *battle.Action) func(context.Context, *battle.TurnView) (*battle.Action, error) {
		return func(_ context.Context, v *battle.TurnView) (*battle.Action, error) {
			views = append(views, v)
			return a, nil
		}
	}
	gomock.InOrder(
		f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).
			DoAndReturn(record(&battle.Action{Kind: battle.ActionStance, Stance: entities.StanceSnake})),
		f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).
			DoAndReturn(record(&battle.Action{Kind: battle.ActionStance, Stance: entities.StanceTurtle})),
		f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).
			DoAndReturn(record(&battle.Action{Kind: battle.ActionItem, Item: entities.ItemShard})),
		f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).
			DoAndReturn(record(&battle.Action{Kind: battle.ActionItem, Item: entities.ItemHealthPot})),
		f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).
			DoAndReturn(record(attack(0))),
	)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	out, err := f.svc.Run(context.Background(), &battle.RunInput{Character: c, Monster: m, Prompter: f.prompter})
	require.NoError(t, err, "archive failures are not battle failures")

	assert.Equal(t, entities.ResultVictory, out.Result)
	assert.Equal(t, 5, out.Turns)
	assert.Equal(t, 150, c.CurrentHealth)
	assert.Equal(t, 0, c.Items[entities.ItemHealthPot])
	assert.Equal(t, entities.StanceTurtle, c.ActiveStance)

	lines := strings.Join(out.Transcript.Lines, "\n")
	assert.Contains(t, lines, "Invalid stance. Please select from the available options.")
	assert.Contains(t, lines, "You adopt the Turtle stance!")
	assert.Contains(t, lines, "Invalid item. Please select from the available options.")
	assert.Contains(t, lines, "You used a Health Potion and restored 70 health!")
	assert.Contains(t, lines, "You used Bash!")

	require.Len(t, views, 5)
	assert.Equal(t, "Heavy Strike", views[0].Attacks[0].Name)
	assert.Equal(t, "Bash", views[4].Attacks[0].Name)
	assert.Same(t, m, views[4].Monster)
}

func TestRun_ArchetypeIsScaledToLevel(t *testing.T) {
	f := setup(t, nil)
	c := testutils.CreateTestCharacter("Aki")
	c.Level = 2

	c.CurrentHealth = 10
	f.roller.SetRolls([]int{2, 1})
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out, err := f.svc.Run(context.Background(), &battle.RunInput{Character: c, Archetype: "Ghoul", Prompter: f.prompter})
	require.NoError(t, err)

	assert.Equal(t, entities.ResultDefeat, out.Result)
	assert.Equal(t, 125, out.Monster.Health)
	assert.InDelta(t, 1.2, out.Monster.DamageModifier, 1e-9)
	assert.LessOrEqual(t, c.CurrentHealth, -1)
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		f := setup(t, nil)
		_, err := f.svc.Run(context.Background(), nil)
		assert.True(t, rgerr.IsInvalidArgument(err))

		_, err = f.svc.Run(context.Background(), &battle.RunInput{Character: testutils.CreateTestCharacter("Aki")})
		assert.True(t, rgerr.IsInvalidArgument(err))
	})

	t.Run("unknown archetype", func(t *testing.T) {
		f := setup(t, nil)
		_, err := f.svc.Run(context.Background(), &battle.RunInput{
			Character: testutils.CreateTestCharacter("Aki"),
			Archetype: "Kraken",
			Prompter:  f.prompter,
		})
		assert.True(t, rgerr.IsNotFound(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		f := setup(t, nil)
		f.roller.SetRolls([]int{1})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.svc.Run(ctx, &battle.RunInput{
			Character: testutils.CreateTestCharacter("Aki"),
			Monster:   testutils.CreateTestMonster("Ghoul", 100),
			Prompter:  f.prompter,
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("prompter failure", func(t *testing.T) {
		f := setup(t, nil)
		f.roller.SetRolls([]int{1})
		f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(nil, errors.New("stdin closed"))

		_, err := f.svc.Run(context.Background(), &battle.RunInput{
			Character: testutils.CreateTestCharacter("Aki"),
			Monster:   testutils.CreateTestMonster("Ghoul", 100),
			Prompter:  f.prompter,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stdin closed")
	})

	t.Run("roller exhausted", func(t *testing.T) {
		f := setup(t, nil)
		_, err := f.svc.Run(context.Background(), &battle.RunInput{
			Character: testutils.CreateTestCharacter("Aki"),
			Monster:   testutils.CreateTestMonster("Ghoul", 100),
			Prompter:  f.prompter,
		})
		assert.Error(t, err)
	})
}

func TestRun_PrintsTranscript(t *testing.T) {
	var out bytes.Buffer
	bus := events.NewBus(nil)
	bus.SubscribeAll(events.TranscriptEventTypes, events.NewTranscriptPrinter(&out))

	f := setup(t, bus)
	f.roller.SetRolls([]int{1})
	f.prompter.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(attack(0), nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Run(context.Background(), &battle.RunInput{
		Character: testutils.CreateTestCharacter("Aki"),
		Monster:   testutils.CreateTestMonster("Ghoul", 20),
		Prompter:  f.prompter,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "You strike first!\nYour Health: 200/200\n"))
	assert.Contains(t, out.String(), heavyStrike+"\n")

	// the recorder unsubscribes when the battle ends
	out.Reset()
	require.NoError(t, bus.Emit(events.NewBattleEvent(events.EventTypeNotice, "battle-1", 1, "late")))
	assert.Equal(t, "late\n", out.String())
}
