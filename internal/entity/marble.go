package entity

const (
	// TrackSize - number of cells on the shared circular track.
	TrackSize = 56
	// HomeSize - number of cells in each color's private home stretch.
	HomeSize = 4
	// MarblesPerPlayer - fixed marble count per player for the whole game.
	MarblesPerPlayer = 4

	// StartPosition - a marble waiting in its private start area.
	StartPosition = -1
)

type Marble struct {
	ID       string `json:"id"`
	PlayerID int    `json:"player_id"`
	Color    Color  `json:"color"`
	Position int    `json:"position"`
}

func (that *Marble) IsInStart() bool {
	return that.Position == StartPosition
}

func (that *Marble) IsOnTrack() bool {
	return that.Position >= 0 && that.Position < TrackSize
}

func (that *Marble) IsInHome() bool {
	base := that.Color.HomeBase()
	return that.Position >= base && that.Position < base+HomeSize
}

// IsFinished - the marble sits on the last cell of its home stretch.
func (that *Marble) IsFinished() bool {
	return that.Position == that.Color.HomeBase()+HomeSize-1
}
