package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/marbles-backend/internal/entity"
	"github.com/rocketscienceinc/marbles-backend/testing/suite"
)

func finishedGame(id string, winner int) *entity.Game {
	game := sampleGame(id)
	game.Status = entity.StatusFinished
	game.Winner = &winner
	game.TurnCount = 42
	return game
}

func TestArchiveRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a finished game", func(t *testing.T) {
		archiveRepo := NewArchiveRepository(suite.NewArchiveDB(t))

		// Given: a finished game with a winner
		game := finishedGame("123", 1)

		// When: saving it
		err := archiveRepo.Save(ctx, game)

		// Then: no error and the record is queryable
		require.NoError(t, err)

		games, err := archiveRepo.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "123", games[0].ID)
		assert.Equal(t, 1, games[0].Winner)
		assert.Equal(t, 2, games[0].Players)
		assert.Equal(t, 42, games[0].Turns)
		assert.False(t, games[0].FinishedAt.IsZero())
	})

	t.Run("Refuses a game without a winner", func(t *testing.T) {
		archiveRepo := NewArchiveRepository(suite.NewArchiveDB(t))

		// Given: a game that is not finished
		game := sampleGame("123")

		// When: saving it
		err := archiveRepo.Save(ctx, game)

		// Then: the archive rejects it
		assert.Error(t, err)
	})

	t.Run("Saving the same game twice keeps one row", func(t *testing.T) {
		archiveRepo := NewArchiveRepository(suite.NewArchiveDB(t))

		game := finishedGame("123", 0)

		require.NoError(t, archiveRepo.Save(ctx, game))
		require.NoError(t, archiveRepo.Save(ctx, game))

		games, err := archiveRepo.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, games, 1)
	})
}

func TestArchiveRepository_Recent(t *testing.T) {
	ctx := context.Background()

	archiveRepo := NewArchiveRepository(suite.NewArchiveDB(t))

	// Given: three archived games
	for i, id := range []string{"aaa", "bbb", "ccc"} {
		require.NoError(t, archiveRepo.Save(ctx, finishedGame(id, i%2)))
	}

	// When: listing with a limit of 2
	games, err := archiveRepo.Recent(ctx, 2)

	// Then: only two rows come back
	require.NoError(t, err)
	assert.Len(t, games, 2)
}
