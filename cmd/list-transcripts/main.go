package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/reapers-guild/internal/repositories/transcripts"
)

func main() {
	full := flag.Bool("full", false, "print every transcript line")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: list-transcripts [-full] <character name>")
		os.Exit(2)
	}
	name := flag.Arg(0)

	_ = godotenv.Load()
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := transcripts.NewRedis(client)
	list, err := repo.ListByCharacter(ctx, name)
	if err != nil {
		log.Fatalf("Failed to list transcripts: %v", err)
	}

	fmt.Printf("Found %d battles for %s:\n", len(list), name)
	for _, t := range list {
		fmt.Printf("  %s  %s  %-8s vs %-24s %d turns\n",
			t.CreatedAt.Format("2006-01-02 15:04:05"), t.ID, t.Result, t.MonsterName, t.Turns)
		if *full {
			for _, line := range t.Lines {
				fmt.Printf("      %s\n", strings.ReplaceAll(line, "\n", "\n      "))
			}
		}
	}
}
