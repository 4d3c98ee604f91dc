package transcripts

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Data is the stored JSON form of a transcript
type Data struct {
	ID            string    `json:"id"`
	CharacterName string    `json:"character_name"`
	MonsterName   string    `json:"monster_name"`
	Archetype     string    `json:"archetype"`
	Result        string    `json:"result"`
	Turns         int       `json:"turns"`
	Lines         []string  `json:"lines"`
	CreatedAt     time.Time `json:"created_at"`
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	// TTL expires stored transcripts; zero keeps them forever
	TTL time.Duration
}

// NewRedisRepository creates a Redis-backed transcript repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	repo := &redisRepo{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
		ttl:          cfg.TTL,
	}
	if repo.timeProvider == nil {
		repo.timeProvider = NewTimeProvider()
	}
	return repo
}

// NewRedis creates a Redis repository with default settings
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func transcriptKey(id string) string {
	return fmt.Sprintf("transcript:%s", id)
}

func characterKey(name string) string {
	return fmt.Sprintf("character:%s:transcripts", name)
}

func (r *redisRepo) Create(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return rgerr.InvalidArgument("transcript cannot be nil")
	}
	if transcript.ID == "" {
		return rgerr.InvalidArgument("transcript ID is required")
	}

	exists, err := r.client.Exists(ctx, transcriptKey(transcript.ID)).Result()
	if err != nil {
		return rgerr.Wrap(err, "failed to check transcript existence")
	}
	if exists > 0 {
		return rgerr.AlreadyExistsf("transcript %s already exists", transcript.ID).
			WithMeta("transcript_id", transcript.ID)
	}

	transcript.CreatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(toData(transcript))
	if err != nil {
		return rgerr.Wrap(err, "failed to marshal transcript data")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, transcriptKey(transcript.ID), string(jsonData), r.ttl)
	pipe.SAdd(ctx, characterKey(transcript.CharacterName), transcript.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return rgerr.Wrap(err, "failed to store transcript in Redis")
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Transcript, error) {
	jsonData, err := r.client.Get(ctx, transcriptKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, rgerr.NotFoundf("transcript %s not found", id).WithMeta("transcript_id", id)
		}
		return nil, rgerr.Wrap(err, "failed to get transcript from Redis")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, rgerr.Wrap(err, "failed to unmarshal transcript data")
	}

	return toTranscript(&data), nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	transcript, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, transcriptKey(id))
	pipe.SRem(ctx, characterKey(transcript.CharacterName), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return rgerr.Wrap(err, "failed to delete transcript from Redis")
	}

	return nil
}

func (r *redisRepo) ListByCharacter(ctx context.Context, characterName string) ([]*entities.Transcript, error) {
	ids, err := r.client.SMembers(ctx, characterKey(characterName)).Result()
	if err != nil {
		return nil, rgerr.Wrap(err, "failed to get character transcripts from Redis")
	}

	results := make([]*entities.Transcript, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			transcript, err := r.Get(gctx, id)
			if err != nil {
				// expired entries leave their id behind in the set
				if rgerr.IsNotFound(err) {
					return nil
				}
				return rgerr.Wrapf(err, "failed to get transcript %s", id)
			}
			results[i] = transcript
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	transcripts := make([]*entities.Transcript, 0, len(results))
	for _, t := range results {
		if t != nil {
			transcripts = append(transcripts, t)
		}
	}
	sortByCreated(transcripts)
	return transcripts, nil
}

func sortByCreated(transcripts []*entities.Transcript) {
	sort.SliceStable(transcripts, func(i, j int) bool {
		if transcripts[i].CreatedAt.Equal(transcripts[j].CreatedAt) {
			return transcripts[i].ID < transcripts[j].ID
		}
		return transcripts[i].CreatedAt.Before(transcripts[j].CreatedAt)
	})
}

func toData(t *entities.Transcript) *Data {
	if t == nil {
		return nil
	}

	return &Data{
		ID:            t.ID,
		CharacterName: t.CharacterName,
		MonsterName:   t.MonsterName,
		Archetype:     string(t.Archetype),
		Result:        string(t.Result),
		Turns:         t.Turns,
		Lines:         t.Lines,
		CreatedAt:     t.CreatedAt,
	}
}

func toTranscript(data *Data) *entities.Transcript {
	if data == nil {
		return nil
	}

	return &entities.Transcript{
		ID:            data.ID,
		CharacterName: data.CharacterName,
		MonsterName:   data.MonsterName,
		Archetype:     entities.Archetype(data.Archetype),
		Result:        entities.Result(data.Result),
		Turns:         data.Turns,
		Lines:         data.Lines,
		CreatedAt:     data.CreatedAt,
	}
}
