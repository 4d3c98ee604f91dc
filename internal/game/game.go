// Package game is the outer loop: walk the board, resolve encounters, and
// face the Calamity Beast once enough Crystals are collected.
package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/reapers-guild/internal/catalog"
	"github.com/KirkDiggler/reapers-guild/internal/combat"
	"github.com/KirkDiggler/reapers-guild/internal/dice"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"github.com/KirkDiggler/reapers-guild/internal/services/battle"
	"github.com/KirkDiggler/reapers-guild/internal/services/character"
	"github.com/KirkDiggler/reapers-guild/internal/services/encounter"
	"go.uber.org/zap"
)

const (
	encounterHotSpring = "Hot Spring"
	encounterMerchant  = "Merchant"

	msgCannotMove = "You cannot move in that direction. Please enter a different direction."
)

var (
	bossIntro = []string{
		"\nYou feel a powerful presence approaching...",
		"The ground trembles beneath your feet.",
		"A massive creature emerges from the shadows!\n",
		"You prepare yourself for the final battle!",
	}

	hotSpringIntro = []string{
		"You've discovered a steaming hot spring nestled between large rocks!",
		"The water has a slight blue hue and smells faintly of minerals.",
	}

	lostText = []string{
		"Your quest to become Accepted has ended.",
		"So much blood spills from your guts.",
		"You let go of your family heirloom.",
		"There is only regret as you close your eyes for the final time.",
	}
)

// Outcome is how a run ended
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
	// OutcomeStranded means every tile was cleared below the Crystal goal
	OutcomeStranded Outcome = "stranded"
)

// Result is the end state of a run
type Result struct {
	Outcome   Outcome
	Character *entities.Character
	Battles   int
}

// Game runs one playthrough
type Game struct {
	catalog     *catalog.Catalog
	roller      dice.Roller
	characters  character.Service
	battles     battle.Service
	encounters  encounter.Service
	console     Console
	boardSize   int
	crystalGoal int
	log         *zap.SugaredLogger
}

// Config holds the game's dependencies
type Config struct {
	Catalog          *catalog.Catalog
	Roller           dice.Roller
	CharacterService character.Service
	BattleService    battle.Service
	EncounterService encounter.Service
	Console          Console
	// BoardSize defaults to 5
	BoardSize int
	// CrystalGoal defaults to 100
	CrystalGoal int
	Logger      *zap.SugaredLogger
}

// New creates a game
func New(cfg *Config) *Game {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}
	if cfg.CharacterService == nil {
		panic("character service is required")
	}
	if cfg.BattleService == nil {
		panic("battle service is required")
	}
	if cfg.EncounterService == nil {
		panic("encounter service is required")
	}
	if cfg.Console == nil {
		panic("console is required")
	}

	g := &Game{
		catalog:     cfg.Catalog,
		roller:      cfg.Roller,
		characters:  cfg.CharacterService,
		battles:     cfg.BattleService,
		encounters:  cfg.EncounterService,
		console:     cfg.Console,
		boardSize:   cfg.BoardSize,
		crystalGoal: cfg.CrystalGoal,
		log:         cfg.Logger,
	}
	if g.boardSize == 0 {
		g.boardSize = 5
	}
	if g.crystalGoal == 0 {
		g.crystalGoal = 100
	}
	if g.log == nil {
		g.log = zap.S()
	}
	return g
}

// Play runs the game from character creation to the end
func (g *Game) Play(ctx context.Context) (*Result, error) {
	name, err := g.console.AskName(ctx, character.ValidateName)
	if err != nil {
		return nil, err
	}
	c, err := g.characters.MakeCharacter(name)
	if err != nil {
		return nil, err
	}
	g.console.Say(fmt.Sprintf("Thank you! Enjoy your time %s!", name))

	result := &Result{Character: c}
	board := NewBoard(g.boardSize)
	pool := g.encounters.NewPool()
	c.Position = board.Start()

	for combat.CharacterAlive(c) && c.Crystals < g.crystalGoal {
		board.Visit(c.Position)
		if board.Remaining() == 0 {
			g.log.Infow("board cleared below crystal goal", "crystals", c.Crystals, "goal", g.crystalGoal)
			g.console.Say("There is nothing left to find here.")
			result.Outcome = OutcomeStranded
			return result, nil
		}

		g.console.ShowBoard(board.Render(c.Position))
		if err := g.move(ctx, board, c); err != nil {
			return nil, err
		}

		if board.HasEncounter(c.Position) {
			if err := g.encounter(ctx, c, pool, result); err != nil {
				return nil, err
			}
			if !combat.CharacterAlive(c) {
				g.lose(result)
				return result, nil
			}
		}

		message, leveled, err := g.characters.LevelUp(c)
		if err != nil {
			return nil, err
		}
		if leveled {
			g.console.Say(message)
		}
	}

	if !combat.CharacterAlive(c) {
		g.lose(result)
		return result, nil
	}
	return g.finalBattle(ctx, c, result)
}

func (g *Game) move(ctx context.Context, board *Board, c *entities.Character) error {
	for {
		direction, err := g.console.AskDirection(ctx)
		if err != nil {
			return err
		}
		if board.CanMove(c.Position, direction) {
			c.Position = Step(c.Position, direction)
			return nil
		}
		g.console.Say(msgCannotMove)
	}
}

func (g *Game) encounter(ctx context.Context, c *entities.Character, pool *encounter.Pool, result *Result) error {
	enc, err := g.encounters.Draw(pool)
	if rgerr.IsExhausted(err) {
		g.log.Debugw("encounter pool exhausted", "position", c.Position)
		return nil
	}
	if err != nil {
		return err
	}

	g.console.Say(fmt.Sprintf("You encountered: %s", enc.Name))

	switch {
	case enc.Kind == catalog.EncounterEnvironment && enc.Name == encounterHotSpring:
		return g.hotSpring(ctx, c)
	case enc.Kind == catalog.EncounterFriendly && enc.Name == encounterMerchant:
		return g.merchant(ctx, c)
	case enc.Kind == catalog.EncounterMonster:
		result.Battles++
		_, err := g.battles.Run(ctx, &battle.RunInput{
			Character: c,
			Archetype: enc.Archetype(),
			Prompter:  g.console,
		})
		return err
	default:
		return rgerr.Internalf("no handler for %s encounter %s", enc.Kind, enc.Name)
	}
}

func (g *Game) hotSpring(ctx context.Context, c *entities.Character) error {
	g.console.Say(strings.Join(hotSpringIntro, "\n"))

	choice, err := g.console.AskHotSpring(ctx)
	if err != nil {
		return err
	}
	switch choice {
	case SpringBathe:
		g.console.Say(g.characters.RestAtHotSpring(c))
	case SpringCollect:
		g.console.Say(g.characters.CollectMinerals(c))
	default:
		return rgerr.InvalidArgumentf("unknown hot spring choice %d", choice)
	}
	return nil
}

func (g *Game) merchant(ctx context.Context, c *entities.Character) error {
	offers, err := g.catalog.MerchantOffers(c.Level)
	if err != nil {
		return err
	}

	idx, err := g.console.AskEquipment(ctx, offers)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(offers) {
		return rgerr.InvalidArgumentf("offer %d out of range", idx)
	}

	gear := offers[idx]
	equipped, err := g.characters.Equip(c, gear)
	if err != nil {
		return err
	}

	g.console.Say(equipped.Equipped)
	g.console.Say(fmt.Sprintf("The merchant hands you the %s.", gear.Name))
	g.console.Say("Merchant: 'May it serve you well on your journey!'")
	g.console.Say(equipped.Bonus)
	return nil
}

func (g *Game) finalBattle(ctx context.Context, c *entities.Character, result *Result) (*Result, error) {
	g.console.Say(strings.Join(bossIntro, "\n"))
	c.CurrentHealth = c.Health
	c.CurrentKi = c.Ki

	archetypes := g.catalog.Archetypes()
	idx, err := dice.Pick(g.roller, len(archetypes))
	if err != nil {
		return nil, rgerr.Wrap(err, "failed to pick the boss")
	}
	boss, err := combat.NewBoss(g.catalog, archetypes[idx])
	if err != nil {
		return nil, err
	}
	g.console.Say(fmt.Sprintf("The %s appears!", boss.Name))

	result.Battles++
	outcome, err := g.battles.Run(ctx, &battle.RunInput{
		Character: c,
		Monster:   boss,
		Prompter:  g.console,
	})
	if err != nil {
		return nil, err
	}

	if outcome.Result != entities.ResultVictory {
		g.lose(result)
		return result, nil
	}

	g.console.Say(strings.Join([]string{
		"\nCongratulations! You have defeated the Calamity Beast!",
		"You collect its rare Crystal and return to the Reaper's Guild.",
		"\nDarrow: 'ZEHAHAHAHA! You've done it! You are now an Accepted member of the Reaper's Guild!'",
		fmt.Sprintf("%s, you have completed your quest.", c.Name),
	}, "\n"))
	g.log.Infow("game won", "character", c.Name, "battles", result.Battles)
	result.Outcome = OutcomeWon
	return result, nil
}

func (g *Game) lose(result *Result) {
	g.console.Say(strings.Join(lostText, "\n"))
	g.log.Infow("game lost", "character", result.Character.Name, "battles", result.Battles)
	result.Outcome = OutcomeLost
}
