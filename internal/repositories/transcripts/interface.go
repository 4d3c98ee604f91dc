// Package transcripts archives the records of finished battles. The archive
// is write-once history and is never loaded back into game state.
package transcripts

//go:generate mockgen -destination=mock/mock_repository.go -package=mocktranscripts -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
)

// Repository defines the interface for transcript storage operations
type Repository interface {
	// Create stamps CreatedAt and stores a new transcript
	Create(ctx context.Context, transcript *entities.Transcript) error
	Get(ctx context.Context, id string) (*entities.Transcript, error)
	Delete(ctx context.Context, id string) error
	// ListByCharacter returns every transcript for a character name, oldest first
	ListByCharacter(ctx context.Context, characterName string) ([]*entities.Transcript, error)
}
