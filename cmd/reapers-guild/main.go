package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/reapers-guild/internal/config"
	"github.com/KirkDiggler/reapers-guild/internal/dice"
	"github.com/KirkDiggler/reapers-guild/internal/events"
	"github.com/KirkDiggler/reapers-guild/internal/game"
	"github.com/KirkDiggler/reapers-guild/internal/handlers/cli"
	"github.com/KirkDiggler/reapers-guild/internal/logging"
	"github.com/KirkDiggler/reapers-guild/internal/repositories/transcripts"
	"github.com/KirkDiggler/reapers-guild/internal/services"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Debug("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providerConfig := &services.ProviderConfig{
		Roller: newRoller(cfg.Game.Seed, logger),
		Logger: logger,
	}

	// Keep Redis client for cleanup
	if redisClient := connectRedis(ctx, cfg.Redis.URL, logger); redisClient != nil {
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				logger.Warnw("Failed to close Redis", "error", closeErr)
			}
		}()
		providerConfig.TranscriptRepository = transcripts.NewRedis(redisClient)
	}

	provider := services.NewProvider(providerConfig)
	provider.Bus.SubscribeAll(events.TranscriptEventTypes, events.NewTranscriptPrinter(os.Stdout))

	terminal := cli.NewTerminal(&cli.TerminalConfig{
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: logger.Named("cli"),
	})

	g := game.New(&game.Config{
		Catalog:          provider.Catalog,
		Roller:           provider.Roller,
		CharacterService: provider.CharacterService,
		BattleService:    provider.BattleService,
		EncounterService: provider.EncounterService,
		Console:          terminal,
		BoardSize:        cfg.Game.BoardSize,
		CrystalGoal:      cfg.Game.CrystalGoal,
		Logger:           logger.Named("game"),
	})

	fmt.Println("Welcome to the Reaper's Guild!")
	result, err := g.Play(ctx)
	if err != nil {
		logger.Errorw("Game stopped", "error", err)
		os.Exit(1)
	}
	logger.Infow("Game over", "outcome", result.Outcome, "battles", result.Battles, "crystals", result.Character.Crystals)
}

func newRoller(seed int64, logger *zap.SugaredLogger) dice.Roller {
	if seed == 0 {
		return dice.NewRandomRoller()
	}
	logger.Infow("Using seeded dice", "seed", seed)
	return dice.NewSeededRoller(seed)
}

// connectRedis returns nil when no URL is set or Redis is unreachable; the
// game then archives transcripts in memory.
func connectRedis(ctx context.Context, url string, logger *zap.SugaredLogger) *redis.Client {
	if url == "" {
		logger.Debug("No REDIS_URL found, using in-memory transcripts")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Warnw("Failed to parse Redis URL, using in-memory transcripts", "error", err)
		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warnw("Failed to connect to Redis, using in-memory transcripts", "error", err)
		_ = client.Close()
		return nil
	}

	logger.Infow("Using Redis for transcripts", "addr", opts.Addr)
	return client
}
