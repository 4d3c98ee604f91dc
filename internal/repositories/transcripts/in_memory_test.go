package transcripts_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"github.com/KirkDiggler/reapers-guild/internal/repositories/transcripts"
	mocktranscripts "github.com/KirkDiggler/reapers-guild/internal/repositories/transcripts/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	clock := mocktranscripts.NewMockTimeProvider(ctrl)
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	gomock.InOrder(
		clock.EXPECT().Now().Return(start.Add(time.Hour)),
		clock.EXPECT().Now().Return(start),
		clock.EXPECT().Now().Return(start),
	)

	repo := transcripts.NewInMemoryRepository(clock)

	first := &entities.Transcript{ID: "b1", CharacterName: "Aki", Result: entities.ResultVictory, Lines: []string{"one"}}
	second := &entities.Transcript{ID: "b2", CharacterName: "Aki", Result: entities.ResultDefeat}
	other := &entities.Transcript{ID: "b3", CharacterName: "Sora"}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, other))
	assert.Equal(t, start.Add(time.Hour), first.CreatedAt)

	t.Run("get returns a copy", func(t *testing.T) {
		got, err := repo.Get(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, first, got)

		got.Lines[0] = "changed"
		again, err := repo.Get(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, "one", again.Lines[0])
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		err := repo.Create(ctx, &entities.Transcript{ID: "b1"})
		assert.True(t, rgerr.Is(err, rgerr.CodeAlreadyExists))
	})

	t.Run("list is oldest first", func(t *testing.T) {
		list, err := repo.ListByCharacter(ctx, "Aki")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "b2", list[0].ID)
		assert.Equal(t, "b1", list[1].ID)

		none, err := repo.ListByCharacter(ctx, "Nobody")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "b2"))

		_, err := repo.Get(ctx, "b2")
		assert.True(t, rgerr.IsNotFound(err))
		assert.True(t, rgerr.IsNotFound(repo.Delete(ctx, "b2")))

		list, err := repo.ListByCharacter(ctx, "Aki")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "b1", list[0].ID)
	})

	t.Run("invalid input", func(t *testing.T) {
		assert.True(t, rgerr.IsInvalidArgument(repo.Create(ctx, nil)))
		assert.True(t, rgerr.IsInvalidArgument(repo.Create(ctx, &entities.Transcript{})))
	})
}
