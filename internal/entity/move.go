package entity

// Move - a candidate action produced by the move generator for one roll.
// Moves are regenerated on every roll and discarded once one is applied.
type Move struct {
	MarbleID         string `json:"marble_id"`
	Color            Color  `json:"color"`
	FromPosition     int    `json:"from_position"`
	ToPosition       int    `json:"to_position"`
	IsEnteringTrack  bool   `json:"is_entering_track"`
	CapturedMarbleID string `json:"captured_marble_id,omitempty"`
}

func (that *Move) IsCapture() bool {
	return that.CapturedMarbleID != ""
}
