package transcripts

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	mocktranscripts "github.com/KirkDiggler/reapers-guild/internal/repositories/transcripts/mock"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocktranscripts.MockTimeProvider
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocktranscripts.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
	s.now = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) transcript(id string) *entities.Transcript {
	return &entities.Transcript{
		ID:            id,
		CharacterName: "Aki",
		MonsterName:   "Ghoul",
		Archetype:     "Ghoul",
		Result:        entities.ResultVictory,
		Turns:         7,
		Lines:         []string{"You strike first!", "You have slain your foe!"},
	}
}

func (s *RedisRepoTestSuite) stored(t *entities.Transcript) string {
	data, err := json.Marshal(toData(t))
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	transcript := s.transcript("battle-1")

	expected := *transcript
	expected.CreatedAt = s.now

	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectExists("transcript:battle-1").SetVal(0)
	s.mock.ExpectSet("transcript:battle-1", s.stored(&expected), 0).SetVal("OK")
	s.mock.ExpectSAdd("character:Aki:transcripts", "battle-1").SetVal(1)

	err := s.repo.Create(ctx, transcript)
	s.NoError(err)
	s.Equal(s.now, transcript.CreatedAt)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	s.mock.ExpectExists("transcript:battle-1").SetVal(1)

	err := s.repo.Create(context.Background(), s.transcript("battle-1"))
	s.True(rgerr.Is(err, rgerr.CodeAlreadyExists))
}

func (s *RedisRepoTestSuite) TestCreate_Errors() {
	ctx := context.Background()

	// Input validation
	s.True(rgerr.IsInvalidArgument(s.repo.Create(ctx, nil)))
	s.True(rgerr.IsInvalidArgument(s.repo.Create(ctx, &entities.Transcript{})))

	// Dependency error
	s.mock.ExpectExists("transcript:battle-1").SetErr(errors.New("redis error"))
	s.Error(s.repo.Create(ctx, s.transcript("battle-1")))

	transcript := s.transcript("battle-2")
	expected := *transcript
	expected.CreatedAt = s.now
	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectExists("transcript:battle-2").SetVal(0)
	s.mock.ExpectSet("transcript:battle-2", s.stored(&expected), 0).SetErr(errors.New("redis error"))
	s.Error(s.repo.Create(ctx, transcript))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	transcript := s.transcript("battle-1")
	transcript.CreatedAt = s.now

	// Happy path
	s.mock.ExpectGet("transcript:battle-1").SetVal(s.stored(transcript))

	got, err := s.repo.Get(ctx, "battle-1")
	s.Require().NoError(err)
	s.Equal(transcript, got)

	// Missing key
	s.mock.ExpectGet("transcript:nope").RedisNil()

	_, err = s.repo.Get(ctx, "nope")
	s.True(rgerr.IsNotFound(err))
	s.Equal("nope", rgerr.GetMeta(err)["transcript_id"])

	// Dependency error
	s.mock.ExpectGet("transcript:battle-1").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "battle-1")
	s.Error(err)
	s.False(rgerr.IsNotFound(err))

	// Corrupt data
	s.mock.ExpectGet("transcript:battle-1").SetVal("{not json")

	_, err = s.repo.Get(ctx, "battle-1")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	transcript := s.transcript("battle-1")
	transcript.CreatedAt = s.now

	s.mock.ExpectGet("transcript:battle-1").SetVal(s.stored(transcript))
	s.mock.ExpectDel("transcript:battle-1").SetVal(1)
	s.mock.ExpectSRem("character:Aki:transcripts", "battle-1").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "battle-1"))

	s.mock.ExpectGet("transcript:battle-9").RedisNil()
	s.True(rgerr.IsNotFound(s.repo.Delete(ctx, "battle-9")))
}

func (s *RedisRepoTestSuite) TestListByCharacter() {
	ctx := context.Background()
	s.mock.MatchExpectationsInOrder(false)

	older := s.transcript("battle-1")
	older.CreatedAt = s.now
	newer := s.transcript("battle-2")
	newer.CreatedAt = s.now.Add(time.Minute)

	s.mock.ExpectSMembers("character:Aki:transcripts").SetVal([]string{"battle-2", "battle-1", "battle-3"})
	s.mock.ExpectGet("transcript:battle-2").SetVal(s.stored(newer))
	s.mock.ExpectGet("transcript:battle-1").SetVal(s.stored(older))
	s.mock.ExpectGet("transcript:battle-3").RedisNil()

	got, err := s.repo.ListByCharacter(ctx, "Aki")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("battle-1", got[0].ID)
	s.Equal("battle-2", got[1].ID)
}

func (s *RedisRepoTestSuite) TestListByCharacter_Errors() {
	ctx := context.Background()

	s.mock.ExpectSMembers("character:Aki:transcripts").SetErr(errors.New("redis error"))
	_, err := s.repo.ListByCharacter(ctx, "Aki")
	s.Error(err)

	s.mock.ExpectSMembers("character:Aki:transcripts").SetVal([]string{"battle-1"})
	s.mock.ExpectGet("transcript:battle-1").SetErr(errors.New("redis error"))
	_, err = s.repo.ListByCharacter(ctx, "Aki")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestListByCharacter_Empty() {
	s.mock.ExpectSMembers("character:Nobody:transcripts").SetVal([]string{})

	got, err := s.repo.ListByCharacter(context.Background(), "Nobody")
	s.NoError(err)
	s.Empty(got)
}
