package marbles

import (
	"fmt"

	"github.com/rocketscienceinc/marbles-backend/internal/apperror"
	"github.com/rocketscienceinc/marbles-backend/internal/entity"
)

// MoveResult - what one applied move did to the game.
type MoveResult struct {
	Move        entity.Move    `json:"move"`
	Captured    *entity.Marble `json:"captured,omitempty"`
	ReachedHome bool           `json:"reached_home"`
	GameOver    bool           `json:"game_over"`
	Winner      *int           `json:"winner,omitempty"`
	ExtraTurn   bool           `json:"extra_turn"`
}

// ApplyMove - executes one move from the current legal set. Any rejection
// leaves the aggregate untouched.
func ApplyMove(game *entity.Game, marbleID string, toPosition int) (*MoveResult, error) {
	if !game.IsMoving() {
		if game.IsFinished() {
			return nil, apperror.ErrGameFinished
		}
		return nil, fmt.Errorf("%w: cannot move in status %q", apperror.ErrInvalidStateTransition, game.Status)
	}

	marble, err := game.MarbleByID(marbleID)
	if err != nil {
		return nil, err
	}

	if marble.PlayerID != game.CurrentPlayer {
		return nil, apperror.ErrNotYourTurn
	}

	move, err := matchLegalMove(game, marbleID, toPosition)
	if err != nil {
		return nil, err
	}

	rolledSix := game.DiceValue == 6

	var captured *entity.Marble
	if move.IsCapture() {
		captured, err = game.MarbleByID(move.CapturedMarbleID)
		if err != nil {
			return nil, err
		}
		captured.Position = entity.StartPosition
	}

	marble.Position = move.ToPosition

	result := &MoveResult{
		Move:        move,
		Captured:    captured,
		ReachedHome: marble.IsInHome(),
	}

	if game.HasWon(game.CurrentPlayer) {
		winner := game.CurrentPlayer
		game.Status = entity.StatusFinished
		game.Winner = &winner
		game.DiceValue = 0

		result.GameOver = true
		result.Winner = &winner

		return result, nil
	}

	result.ExtraTurn = rolledSix
	advanceTurn(game, rolledSix)

	return result, nil
}

// matchLegalMove - a submitted (marble, destination) pair must match one
// entry of the move set regenerated from the stored dice value.
func matchLegalMove(game *entity.Game, marbleID string, toPosition int) (entity.Move, error) {
	for _, move := range ValidMoves(game, game.CurrentPlayer, game.DiceValue) {
		if move.MarbleID == marbleID && move.ToPosition == toPosition {
			return move, nil
		}
	}

	return entity.Move{}, fmt.Errorf("%w: marble %s to %d", apperror.ErrIllegalMove, marbleID, toPosition)
}

// advanceTurn - back to rolling, for the same player after a 6 or for the
// next player otherwise.
func advanceTurn(game *entity.Game, rolledSix bool) {
	game.TurnCount++

	if !rolledSix {
		game.CurrentPlayer = (game.CurrentPlayer + 1) % len(game.Players)
	}

	game.Status = entity.StatusRolling
	game.DiceValue = 0
}
