package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/marbles-backend/internal/apperror"
)

func twoPlayerGame() *Game {
	return &Game{
		ID: "test",
		Players: []*Player{
			{ID: 0, Name: "Alice", Color: ColorRed},
			{ID: 1, Name: "Bob", Color: ColorBlue, IsAI: true, AIDifficulty: DifficultyNormal},
		},
		Marbles: []*Marble{
			{ID: "r0", PlayerID: 0, Color: ColorRed, Position: StartPosition},
			{ID: "r1", PlayerID: 0, Color: ColorRed, Position: 5},
			{ID: "r2", PlayerID: 0, Color: ColorRed, Position: 56},
			{ID: "r3", PlayerID: 0, Color: ColorRed, Position: 59},
			{ID: "b0", PlayerID: 1, Color: ColorBlue, Position: 14},
		},
		Status: StatusRolling,
	}
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsRolling returns true when waiting for a roll", func(t *testing.T) {
		game := &Game{Status: StatusRolling}
		assert.True(t, game.IsRolling())
		assert.False(t, game.IsMoving())
	})

	t.Run("IsMoving returns true when a move is awaited", func(t *testing.T) {
		game := &Game{Status: StatusMoving}
		assert.True(t, game.IsMoving())
	})

	t.Run("IsFinished returns true for the terminal status", func(t *testing.T) {
		game := &Game{Status: StatusFinished}
		assert.True(t, game.IsFinished())
	})
}

func TestGame_ActivePlayer(t *testing.T) {
	// Given: a two player game with blue to move
	game := twoPlayerGame()
	game.CurrentPlayer = 1

	// Then: the active player is blue and computer-controlled
	assert.Equal(t, "Bob", game.ActivePlayer().Name)
	assert.True(t, game.IsAITurn())
}

func TestGame_MarbleByID(t *testing.T) {
	t.Run("Finds an existing marble", func(t *testing.T) {
		game := twoPlayerGame()

		marble, err := game.MarbleByID("r1")

		require.NoError(t, err)
		assert.Equal(t, 5, marble.Position)
	})

	t.Run("Unknown id is an error", func(t *testing.T) {
		game := twoPlayerGame()

		_, err := game.MarbleByID("zz")

		assert.ErrorIs(t, err, apperror.ErrMarbleNotFound)
	})
}

func TestGame_MarblesHome(t *testing.T) {
	// Given: red with marbles at start, track 5, and home cells 56 and 59
	game := twoPlayerGame()

	// Then: two red marbles are home, blue has none
	assert.Equal(t, 2, game.MarblesHome(0))
	assert.Equal(t, 0, game.MarblesHome(1))
	assert.False(t, game.HasWon(0))
}

func TestGame_HasWon(t *testing.T) {
	// Given: all four red marbles inside red's home stretch
	game := twoPlayerGame()
	for i, marble := range game.MarblesOf(0) {
		marble.Position = ColorRed.HomeBase() + i
	}

	// Then: red has won
	assert.True(t, game.HasWon(0))
}

func TestMarblePositions(t *testing.T) {
	t.Run("Classifies the four position spaces", func(t *testing.T) {
		marble := &Marble{ID: "g0", Color: ColorGreen, Position: StartPosition}
		assert.True(t, marble.IsInStart())

		marble.Position = 30
		assert.True(t, marble.IsOnTrack())
		assert.False(t, marble.IsInHome())

		marble.Position = 64
		assert.True(t, marble.IsInHome())
		assert.False(t, marble.IsFinished())

		marble.Position = 67
		assert.True(t, marble.IsFinished())
	})

	t.Run("A home position belongs only to the marble's own color", func(t *testing.T) {
		// Given: a green marble on blue's home range
		marble := &Marble{ID: "g0", Color: ColorGreen, Position: 60}

		// Then: it is not considered home
		assert.False(t, marble.IsInHome())
	})
}

func TestColorTopology(t *testing.T) {
	// Then: each color owns one entry cell and one home base
	assert.Equal(t, 0, ColorRed.EntryPoint())
	assert.Equal(t, 14, ColorBlue.EntryPoint())
	assert.Equal(t, 28, ColorGreen.EntryPoint())
	assert.Equal(t, 42, ColorYellow.EntryPoint())

	assert.Equal(t, 56, ColorRed.HomeBase())
	assert.Equal(t, 60, ColorBlue.HomeBase())
	assert.Equal(t, 64, ColorGreen.HomeBase())
	assert.Equal(t, 68, ColorYellow.HomeBase())
}
