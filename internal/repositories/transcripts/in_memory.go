package transcripts

import (
	"context"
	"sync"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
)

type inMemoryRepository struct {
	mu           sync.RWMutex
	transcripts  map[string]*entities.Transcript
	byCharacter  map[string][]string
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a transcript repository that lives for the
// process only. A nil time provider uses the system clock.
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = NewTimeProvider()
	}
	return &inMemoryRepository{
		transcripts:  make(map[string]*entities.Transcript),
		byCharacter:  make(map[string][]string),
		timeProvider: timeProvider,
	}
}

func (r *inMemoryRepository) Create(_ context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return rgerr.InvalidArgument("transcript cannot be nil")
	}
	if transcript.ID == "" {
		return rgerr.InvalidArgument("transcript ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transcripts[transcript.ID]; exists {
		return rgerr.AlreadyExistsf("transcript %s already exists", transcript.ID).
			WithMeta("transcript_id", transcript.ID)
	}

	transcript.CreatedAt = r.timeProvider.Now()
	r.transcripts[transcript.ID] = copyTranscript(transcript)
	r.byCharacter[transcript.CharacterName] = append(r.byCharacter[transcript.CharacterName], transcript.ID)
	return nil
}

func (r *inMemoryRepository) Get(_ context.Context, id string) (*entities.Transcript, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.transcripts[id]
	if !exists {
		return nil, rgerr.NotFoundf("transcript %s not found", id).WithMeta("transcript_id", id)
	}
	return copyTranscript(t), nil
}

func (r *inMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, exists := r.transcripts[id]
	if !exists {
		return rgerr.NotFoundf("transcript %s not found", id).WithMeta("transcript_id", id)
	}

	delete(r.transcripts, id)
	ids := r.byCharacter[t.CharacterName]
	for i, existing := range ids {
		if existing == id {
			r.byCharacter[t.CharacterName] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func (r *inMemoryRepository) ListByCharacter(_ context.Context, characterName string) ([]*entities.Transcript, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byCharacter[characterName]
	result := make([]*entities.Transcript, 0, len(ids))
	for _, id := range ids {
		result = append(result, copyTranscript(r.transcripts[id]))
	}
	sortByCreated(result)
	return result, nil
}

func copyTranscript(t *entities.Transcript) *entities.Transcript {
	out := *t
	out.Lines = append([]string(nil), t.Lines...)
	return &out
}
