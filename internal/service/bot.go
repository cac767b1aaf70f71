package service

import (
	"math/rand"

	"github.com/rocketscienceinc/marbles-backend/internal/entity"
	"github.com/rocketscienceinc/marbles-backend/internal/marbles"
)

type BotService interface {
	ChooseMove(game *entity.Game, moves []entity.Move) entity.Move
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// ChooseMove - picks one move from a non-empty legal set on behalf of the
// active computer player. The empty set is the turn machine's skip path and
// never reaches here.
func (that *botService) ChooseMove(game *entity.Game, moves []entity.Move) entity.Move {
	switch game.ActivePlayer().AIDifficulty {
	case entity.DifficultyEasy:
		return moves[rand.Intn(len(moves))] //nolint: gosec // game randomness
	case entity.DifficultyHard:
		return that.bestScoredMove(game, moves)
	default:
		return that.priorityMove(game, moves)
	}
}

// priorityMove - the default strategy: captures first, then entering the
// track, then reaching the home stretch, then advancing the marble furthest
// along its own lap. Ties go to the lowest marble id so play is deterministic.
func (that *botService) priorityMove(game *entity.Game, moves []entity.Move) entity.Move {
	if move, ok := firstByID(moves, func(m entity.Move) bool {
		return m.IsCapture()
	}); ok {
		return move
	}

	if move, ok := firstByID(moves, func(m entity.Move) bool {
		return m.IsEnteringTrack
	}); ok {
		return move
	}

	if move, ok := firstByID(moves, func(m entity.Move) bool {
		return m.ToPosition >= entity.TrackSize
	}); ok {
		return move
	}

	best := moves[0]
	bestProgress := lapProgress(best.Color, best.FromPosition)
	for _, move := range moves[1:] {
		progress := lapProgress(move.Color, move.FromPosition)
		if progress > bestProgress || (progress == bestProgress && move.MarbleID < best.MarbleID) {
			best = move
			bestProgress = progress
		}
	}

	return best
}

// firstByID - the matching move with the lowest marble id.
func firstByID(moves []entity.Move, match func(entity.Move) bool) (entity.Move, bool) {
	var best entity.Move
	found := false

	for _, move := range moves {
		if !match(move) {
			continue
		}
		if !found || move.MarbleID < best.MarbleID {
			best = move
			found = true
		}
	}

	return best, found
}

// lapProgress - how far a marble has travelled measured from its own entry
// point; home cells count past a full lap.
func lapProgress(color entity.Color, position int) int {
	switch {
	case position == entity.StartPosition:
		return -1
	case position < entity.TrackSize:
		return (position - color.EntryPoint() + entity.TrackSize) % entity.TrackSize
	default:
		return entity.TrackSize + position - color.HomeBase()
	}
}

// bestScoredMove - the hard strategy: positional scoring with defensive and
// blocking adjustments, deterministic argmax.
func (that *botService) bestScoredMove(game *entity.Game, moves []entity.Move) entity.Move {
	best := moves[0]
	bestScore := that.scoreMoveAdvanced(game, best)

	for _, move := range moves[1:] {
		score := that.scoreMoveAdvanced(game, move)
		if score > bestScore || (score == bestScore && move.MarbleID < best.MarbleID) {
			best = move
			bestScore = score
		}
	}

	return best
}

func (that *botService) scoreMove(game *entity.Game, move entity.Move) float64 {
	score := 0.0
	base := move.Color.HomeBase()

	// deeper into the home stretch is worth more
	if move.ToPosition >= base {
		score += 100 + float64(move.ToPosition-base)*25
	}

	if move.IsCapture() {
		score += 50
		if captured, err := game.MarbleByID(move.CapturedMarbleID); err == nil && captured.Position >= 0 {
			// capturing a marble further along hurts the opponent more
			score += float64(captured.Position) * 0.5
		}
	}

	if move.IsEnteringTrack {
		score += 40
	}

	if move.FromPosition >= 0 && move.ToPosition < base {
		progress := move.ToPosition - move.FromPosition
		if progress < 0 {
			progress += entity.TrackSize
		}
		score += float64(progress)
	}

	if marbles.IsSafeCell(move.ToPosition) {
		score += 15
	}

	return score
}

func (that *botService) scoreMoveAdvanced(game *entity.Game, move entity.Move) float64 {
	score := that.scoreMove(game, move)

	mover := game.ActivePlayer()

	if move.ToPosition < entity.TrackSize && !marbles.IsSafeCell(move.ToPosition) {
		score -= that.dangerAt(game, move.ToPosition, mover.ID)
	}

	score += that.blockingValue(game, move.ToPosition, mover.ID)
	score += that.spreadValue(game, move, mover.ID)

	return score
}

// dangerAt - expected capture pressure: each opponent marble one dice throw
// behind the cell contributes one sixth of a capture.
func (that *botService) dangerAt(game *entity.Game, position, playerID int) float64 {
	danger := 0.0

	for _, marble := range game.Marbles {
		if marble.PlayerID == playerID || !marble.IsOnTrack() {
			continue
		}

		for dice := 1; dice <= 6; dice++ {
			if (marble.Position+dice)%entity.TrackSize == position {
				danger += 10.0 / 6.0
			}
		}
	}

	return danger
}

// blockingValue - standing in the last stretch of an opponent's path to its
// entry point denies it the home turn.
func (that *botService) blockingValue(game *entity.Game, position, playerID int) float64 {
	value := 0.0

	for _, marble := range game.Marbles {
		if marble.PlayerID == playerID || !marble.IsOnTrack() {
			continue
		}

		entry := marble.Color.EntryPoint()
		distanceToHome := (entry - marble.Position + entity.TrackSize) % entity.TrackSize
		if distanceToHome <= 0 || distanceToHome >= 14 {
			continue
		}

		pathPos := marble.Position
		for step := 0; step < distanceToHome; step++ {
			pathPos = (pathPos + 1) % entity.TrackSize
			if pathPos == position {
				value += 5
				break
			}
		}
	}

	return value
}

// spreadValue - with most marbles still parked, getting another one out
// beats shuffling the ones already on the track.
func (that *botService) spreadValue(game *entity.Game, move entity.Move, playerID int) float64 {
	if !move.IsEnteringTrack {
		return 0
	}

	inStart := 0
	for _, marble := range game.MarblesOf(playerID) {
		if marble.IsInStart() {
			inStart++
		}
	}

	if inStart > 2 {
		return 10
	}

	return 0
}
