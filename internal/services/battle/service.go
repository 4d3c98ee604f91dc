// Package battle runs one fight between the character and a monster, from
// the first-strike coin flip to rewards.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=mockbattle -source=service.go

import (
	"context"

	"github.com/KirkDiggler/reapers-guild/internal/catalog"
	"github.com/KirkDiggler/reapers-guild/internal/combat"
	"github.com/KirkDiggler/reapers-guild/internal/dice"
	"github.com/KirkDiggler/reapers-guild/internal/effects"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"github.com/KirkDiggler/reapers-guild/internal/events"
	"github.com/KirkDiggler/reapers-guild/internal/repositories/transcripts"
	"github.com/KirkDiggler/reapers-guild/internal/services/character"
	"github.com/KirkDiggler/reapers-guild/internal/uuid"
	"go.uber.org/zap"
)

// Service defines the battle service interface
type Service interface {
	// Run plays a battle to the end. The character is mutated in place.
	Run(ctx context.Context, input *RunInput) (*Outcome, error)
}

// RunInput contains data for running a battle
type RunInput struct {
	Character *entities.Character
	// Archetype builds a monster scaled to the character's level. Ignored
	// when Monster is set.
	Archetype entities.Archetype
	// Monster is a prebuilt opponent, such as the boss
	Monster  *entities.Monster
	Prompter Prompter
}

// Outcome is the terminal state of a battle
type Outcome struct {
	BattleID   string
	Result     entities.Result
	Turns      int
	Monster    *entities.Monster
	Transcript *entities.Transcript
}

type service struct {
	catalog          *catalog.Catalog
	roller           dice.Roller
	resolver         *combat.Resolver
	effects          *effects.Processor
	characterService character.Service
	bus              *events.Bus
	transcripts      transcripts.Repository
	uuidGenerator    uuid.Generator
	log              *zap.SugaredLogger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog          *catalog.Catalog
	Roller           dice.Roller
	CharacterService character.Service
	// Bus receives every transcript line. A private bus is used when nil.
	Bus *events.Bus
	// Transcripts archives finished battles when set
	Transcripts   transcripts.Repository
	UUIDGenerator uuid.Generator
	Logger        *zap.SugaredLogger
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}
	if cfg.CharacterService == nil {
		panic("character service is required")
	}

	svc := &service{
		catalog:          cfg.Catalog,
		roller:           cfg.Roller,
		characterService: cfg.CharacterService,
		bus:              cfg.Bus,
		transcripts:      cfg.Transcripts,
		uuidGenerator:    cfg.UUIDGenerator,
		log:              cfg.Logger,
	}

	if svc.log == nil {
		svc.log = zap.S()
	}
	if svc.bus == nil {
		svc.bus = events.NewBus(svc.log)
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	svc.resolver = combat.NewResolver(&combat.ResolverConfig{
		Catalog: svc.catalog,
		Roller:  svc.roller,
		Logger:  svc.log,
	})
	svc.effects = effects.NewProcessor(svc.log)

	return svc
}

// Run plays a battle to the end
func (s *service) Run(ctx context.Context, input *RunInput) (*Outcome, error) {
	if input == nil || input.Character == nil {
		return nil, rgerr.InvalidArgument("character is required")
	}
	if input.Prompter == nil {
		return nil, rgerr.InvalidArgument("prompter is required")
	}

	monster := input.Monster
	if monster == nil {
		var err error
		monster, err = combat.NewMonster(s.catalog, input.Archetype, input.Character.Level)
		if err != nil {
			return nil, err
		}
	}

	b := &fight{
		svc:       s,
		id:        s.uuidGenerator.New(),
		character: input.Character,
		monster:   monster,
		prompter:  input.Prompter,
	}
	log := s.log.With("battle_id", b.id, "archetype", monster.Archetype)

	recorder := events.NewTranscriptRecorder(b.id)
	s.bus.SubscribeAll(events.TranscriptEventTypes, recorder)
	defer func() {
		for _, t := range events.TranscriptEventTypes {
			s.bus.Unsubscribe(t, recorder.ID())
		}
	}()

	log.Debugw("battle started", "monster_health", monster.CurrentHealth, "character_health", input.Character.CurrentHealth)

	result, err := b.run(ctx)
	if err != nil {
		log.Errorw("battle aborted", "error", err, "turns", b.turns)
		return nil, err
	}

	outcome := &Outcome{
		BattleID: b.id,
		Result:   result,
		Turns:    b.turns,
		Monster:  monster,
		Transcript: &entities.Transcript{
			ID:            b.id,
			CharacterName: input.Character.Name,
			MonsterName:   monster.Name,
			Archetype:     monster.Archetype,
			Result:        result,
			Turns:         b.turns,
			Lines:         recorder.Lines(),
		},
	}

	log.Infow("battle finished", "result", result, "turns", b.turns)
	s.archive(ctx, outcome.Transcript)
	return outcome, nil
}

// archive stores the transcript. The battle already happened, so a storage
// failure is only logged.
func (s *service) archive(ctx context.Context, t *entities.Transcript) {
	if s.transcripts == nil {
		return
	}
	if err := s.transcripts.Create(ctx, t); err != nil {
		s.log.Warnw("failed to archive transcript", "battle_id", t.ID, "error", err)
	}
}
