package marbles

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/marbles-backend/internal/apperror"
	"github.com/rocketscienceinc/marbles-backend/internal/entity"
)

// Dice - produces a value in 1..6. Injectable so tests can fix the roll.
type Dice func() int

func DefaultDice() int {
	return rand.Intn(6) + 1 //nolint: gosec // game dice, not crypto
}

// NewGame - builds the initial aggregate: colors assigned by player index,
// all marbles in their start areas, player 0 to roll first.
func NewGame(id string, numPlayers int, names []string, aiPlayers []int, aiDifficulty string) (*entity.Game, error) {
	if numPlayers < 2 || numPlayers > len(entity.Colors) {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidPlayerCount, numPlayers)
	}

	if aiDifficulty == "" {
		aiDifficulty = entity.DifficultyNormal
	}

	isAI := make(map[int]bool, len(aiPlayers))
	for _, playerID := range aiPlayers {
		isAI[playerID] = true
	}

	game := &entity.Game{
		ID:     id,
		Status: entity.StatusRolling,
	}

	for i := 0; i < numPlayers; i++ {
		color := entity.Colors[i]

		name := fmt.Sprintf("Player %d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}

		player := &entity.Player{
			ID:    i,
			Name:  name,
			Color: color,
			IsAI:  isAI[i],
		}
		if player.IsAI {
			player.AIDifficulty = aiDifficulty
		}
		game.Players = append(game.Players, player)

		for j := 0; j < entity.MarblesPerPlayer; j++ {
			game.Marbles = append(game.Marbles, &entity.Marble{
				ID:       fmt.Sprintf("%c%d", color[0], j),
				PlayerID: i,
				Color:    color,
				Position: entity.StartPosition,
			})
		}
	}

	return game, nil
}

// Roll - the rolling->moving transition. Stores the dice value and returns
// the legal move set; an empty set skips the turn to the next player, which
// is a normal outcome rather than an error.
func Roll(game *entity.Game, diceValue int) ([]entity.Move, error) {
	if !game.IsRolling() {
		if game.IsFinished() {
			return nil, apperror.ErrGameFinished
		}
		return nil, fmt.Errorf("%w: cannot roll in status %q", apperror.ErrInvalidStateTransition, game.Status)
	}

	game.DiceValue = diceValue

	moves := ValidMoves(game, game.CurrentPlayer, diceValue)
	if len(moves) > 0 {
		game.Status = entity.StatusMoving
	} else {
		advanceTurn(game, false)
	}

	return moves, nil
}
