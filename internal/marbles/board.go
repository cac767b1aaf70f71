package marbles

import "github.com/rocketscienceinc/marbles-backend/internal/entity"

// CellKind - classification of a board coordinate.
type CellKind int

const (
	CellStart CellKind = iota
	CellTrack
	CellSafeEntry
	CellHome
)

// safeCells - the four entry cells; no capture happens on them regardless of
// the occupant's color.
var safeCells = [...]int{0, 14, 28, 42}

func IsSafeCell(pos int) bool {
	for _, cell := range safeCells {
		if pos == cell {
			return true
		}
	}
	return false
}

// CellAt - the kind of board cell at a position.
func CellAt(pos int) CellKind {
	switch {
	case pos == entity.StartPosition:
		return CellStart
	case IsSafeCell(pos):
		return CellSafeEntry
	case pos >= 0 && pos < entity.TrackSize:
		return CellTrack
	default:
		return CellHome
	}
}

// HomeRange - the inclusive cell range reserved to a color's home stretch.
func HomeRange(color entity.Color) (int, int) {
	base := color.HomeBase()
	return base, base + entity.HomeSize - 1
}

// HomeOwner - which color owns a home cell.
func HomeOwner(pos int) (entity.Color, bool) {
	for _, color := range entity.Colors {
		lo, hi := HomeRange(color)
		if pos >= lo && pos <= hi {
			return color, true
		}
	}
	return "", false
}

// TrackDestination - the position reached by advancing steps cells from a
// track cell, wrapping at cell 55 and diverting into the mover's own home
// stretch once the walk passes its entry point again (a completed lap).
// Returns false when the move would overshoot the last home cell.
func TrackDestination(color entity.Color, from, steps int) (int, bool) {
	entry := color.EntryPoint()

	pos := from
	for i := 1; i <= steps; i++ {
		pos = (pos + 1) % entity.TrackSize
		if pos != entry {
			continue
		}

		remaining := steps - i
		if remaining == 0 {
			// exact landing on the entry cell, still on track
			return pos, true
		}
		if remaining <= entity.HomeSize {
			return color.HomeBase() + remaining - 1, true
		}
		return 0, false
	}

	return pos, true
}
