package marbles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/marbles-backend/internal/apperror"
	"github.com/rocketscienceinc/marbles-backend/internal/entity"
)

func TestNewGame(t *testing.T) {
	t.Run("Builds the initial aggregate", func(t *testing.T) {
		// Given: a four player game with one computer opponent
		game, err := NewGame("abc", 4, []string{"Alice"}, []int{3}, entity.DifficultyHard)
		require.NoError(t, err)

		// Then: colors follow player index and all marbles are in start
		assert.Equal(t, "abc", game.ID)
		assert.Equal(t, entity.StatusRolling, game.Status)
		assert.Equal(t, 0, game.CurrentPlayer)
		assert.Nil(t, game.Winner)

		require.Len(t, game.Players, 4)
		assert.Equal(t, "Alice", game.Players[0].Name)
		assert.Equal(t, "Player 2", game.Players[1].Name)
		assert.Equal(t, entity.ColorRed, game.Players[0].Color)
		assert.Equal(t, entity.ColorYellow, game.Players[3].Color)

		assert.False(t, game.Players[0].IsAI)
		assert.True(t, game.Players[3].IsAI)
		assert.Equal(t, entity.DifficultyHard, game.Players[3].AIDifficulty)
		assert.Empty(t, game.Players[0].AIDifficulty)

		require.Len(t, game.Marbles, 16)
		for _, marble := range game.Marbles {
			assert.Equal(t, entity.StartPosition, marble.Position)
		}
		assert.Equal(t, "y3", game.Marbles[15].ID)
	})

	t.Run("Supports two players", func(t *testing.T) {
		game, err := NewGame("abc", 2, nil, nil, "")
		require.NoError(t, err)
		assert.Len(t, game.Marbles, 8)
	})

	t.Run("Rejects invalid player counts", func(t *testing.T) {
		_, err := NewGame("abc", 1, nil, nil, "")
		assert.ErrorIs(t, err, apperror.ErrInvalidPlayerCount)

		_, err = NewGame("abc", 5, nil, nil, "")
		assert.ErrorIs(t, err, apperror.ErrInvalidPlayerCount)
	})
}

func TestRoll(t *testing.T) {
	t.Run("A roll with moves transitions to moving", func(t *testing.T) {
		// Given: a fresh game and a rolled 6
		game := newTestGame(t)

		// When: rolling
		moves, err := Roll(game, 6)

		// Then: the move set is non-empty and a move is awaited
		require.NoError(t, err)
		assert.NotEmpty(t, moves)
		assert.Equal(t, entity.StatusMoving, game.Status)
		assert.Equal(t, 6, game.DiceValue)
		assert.Equal(t, 0, game.CurrentPlayer)
	})

	t.Run("A roll without moves skips to the next player", func(t *testing.T) {
		// Given: a fresh game where a 3 cannot move anything
		game := newTestGame(t)

		// When: rolling
		moves, err := Roll(game, 3)

		// Then: the turn passes without an error
		require.NoError(t, err)
		assert.Empty(t, moves)
		assert.Equal(t, entity.StatusRolling, game.Status)
		assert.Equal(t, 1, game.CurrentPlayer)
		assert.Equal(t, 0, game.DiceValue)
	})

	t.Run("Rolling while a move is awaited is rejected", func(t *testing.T) {
		// Given: a game already in the moving status
		game := newTestGame(t)
		_, err := Roll(game, 6)
		require.NoError(t, err)

		// When: rolling again
		_, err = Roll(game, 4)

		// Then: the state transition is rejected and the state kept
		assert.ErrorIs(t, err, apperror.ErrInvalidStateTransition)
		assert.Equal(t, 6, game.DiceValue)
		assert.Equal(t, entity.StatusMoving, game.Status)
	})

	t.Run("Rolling in a finished game is rejected", func(t *testing.T) {
		game := newTestGame(t)
		game.Status = entity.StatusFinished

		_, err := Roll(game, 2)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestDefaultDice(t *testing.T) {
	// Then: values stay within 1..6
	for i := 0; i < 100; i++ {
		value := DefaultDice()
		assert.GreaterOrEqual(t, value, 1)
		assert.LessOrEqual(t, value, 6)
	}
}
