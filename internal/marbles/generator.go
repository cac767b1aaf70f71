package marbles

import "github.com/rocketscienceinc/marbles-backend/internal/entity"

// ValidMoves - every legal move for a player given a dice value. Pure with
// respect to the game aggregate; an empty result means the turn is skipped.
func ValidMoves(game *entity.Game, playerID, diceValue int) []entity.Move {
	var moves []entity.Move

	for _, marble := range game.MarblesOf(playerID) {
		if move, ok := moveForMarble(game, marble, diceValue); ok {
			moves = append(moves, move)
		}
	}

	return moves
}

// moveForMarble - the single candidate move for one marble, if any.
func moveForMarble(game *entity.Game, marble *entity.Marble, diceValue int) (entity.Move, bool) {
	switch {
	case marble.IsInStart():
		return enteringMove(game, marble, diceValue)
	case marble.IsOnTrack():
		return trackMove(game, marble, diceValue)
	case marble.IsInHome():
		return homeMove(game, marble, diceValue)
	}

	return entity.Move{}, false
}

// enteringMove - leaving the start area requires a 6 and lands on the
// color's own entry cell. An own marble already on the entry cell blocks;
// an opponent marble does not (entry cells are safe, so it is not captured).
func enteringMove(game *entity.Game, marble *entity.Marble, diceValue int) (entity.Move, bool) {
	if diceValue != 6 {
		return entity.Move{}, false
	}

	entry := marble.Color.EntryPoint()
	if blockedByOwnMarble(game, entry, marble.PlayerID) {
		return entity.Move{}, false
	}

	return entity.Move{
		MarbleID:         marble.ID,
		Color:            marble.Color,
		FromPosition:     entity.StartPosition,
		ToPosition:       entry,
		IsEnteringTrack:  true,
		CapturedMarbleID: captureTarget(game, entry, marble.PlayerID),
	}, true
}

func trackMove(game *entity.Game, marble *entity.Marble, diceValue int) (entity.Move, bool) {
	destination, ok := TrackDestination(marble.Color, marble.Position, diceValue)
	if !ok {
		return entity.Move{}, false
	}

	if blockedByOwnMarble(game, destination, marble.PlayerID) {
		return entity.Move{}, false
	}

	return entity.Move{
		MarbleID:         marble.ID,
		Color:            marble.Color,
		FromPosition:     marble.Position,
		ToPosition:       destination,
		CapturedMarbleID: captureTarget(game, destination, marble.PlayerID),
	}, true
}

// homeMove - advancing inside the home stretch; overshooting past the last
// home cell is not a move.
func homeMove(game *entity.Game, marble *entity.Marble, diceValue int) (entity.Move, bool) {
	base := marble.Color.HomeBase()

	offset := marble.Position - base + diceValue
	if offset >= entity.HomeSize {
		return entity.Move{}, false
	}

	destination := base + offset
	if blockedByOwnMarble(game, destination, marble.PlayerID) {
		return entity.Move{}, false
	}

	return entity.Move{
		MarbleID:     marble.ID,
		Color:        marble.Color,
		FromPosition: marble.Position,
		ToPosition:   destination,
	}, true
}

func blockedByOwnMarble(game *entity.Game, position, playerID int) bool {
	for _, marble := range game.Marbles {
		if marble.PlayerID == playerID && marble.Position == position {
			return true
		}
	}
	return false
}

// captureTarget - the opponent marble captured by landing on a position.
// Safe cells and home cells are never capturable.
func captureTarget(game *entity.Game, position, playerID int) string {
	if position >= entity.TrackSize || IsSafeCell(position) {
		return ""
	}

	for _, marble := range game.Marbles {
		if marble.PlayerID != playerID && marble.Position == position {
			return marble.ID
		}
	}

	return ""
}
