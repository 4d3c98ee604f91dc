package services

import (
	"github.com/KirkDiggler/reapers-guild/internal/catalog"
	"github.com/KirkDiggler/reapers-guild/internal/dice"
	"github.com/KirkDiggler/reapers-guild/internal/events"
	"github.com/KirkDiggler/reapers-guild/internal/repositories/transcripts"
	battleService "github.com/KirkDiggler/reapers-guild/internal/services/battle"
	characterService "github.com/KirkDiggler/reapers-guild/internal/services/character"
	encounterService "github.com/KirkDiggler/reapers-guild/internal/services/encounter"
	"github.com/KirkDiggler/reapers-guild/internal/uuid"
	"go.uber.org/zap"
)

// Provider holds all service instances
type Provider struct {
	Catalog          *catalog.Catalog
	Roller           dice.Roller
	Bus              *events.Bus
	Transcripts      transcripts.Repository
	CharacterService characterService.Service
	BattleService    battleService.Service
	EncounterService encounterService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog              *catalog.Catalog
	Roller               dice.Roller
	Bus                  *events.Bus
	TranscriptRepository transcripts.Repository
	UUIDGenerator        uuid.Generator
	Logger               *zap.SugaredLogger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	log := cfg.Logger
	if log == nil {
		log = zap.S()
	}

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus(log)
	}

	// Use in-memory repository if none provided
	transcriptRepo := cfg.TranscriptRepository
	if transcriptRepo == nil {
		transcriptRepo = transcripts.NewInMemoryRepository(transcripts.NewTimeProvider())
	}

	charService := characterService.NewService(&characterService.ServiceConfig{
		Catalog: cat,
		Logger:  log.Named("character"),
	})

	return &Provider{
		Catalog:          cat,
		Roller:           roller,
		Bus:              bus,
		Transcripts:      transcriptRepo,
		CharacterService: charService,
		BattleService: battleService.NewService(&battleService.ServiceConfig{
			Catalog:          cat,
			Roller:           roller,
			CharacterService: charService,
			Bus:              bus,
			Transcripts:      transcriptRepo,
			UUIDGenerator:    cfg.UUIDGenerator,
			Logger:           log.Named("battle"),
		}),
		EncounterService: encounterService.NewService(&encounterService.ServiceConfig{
			Catalog: cat,
			Roller:  roller,
			Logger:  log.Named("encounter"),
		}),
	}
}
