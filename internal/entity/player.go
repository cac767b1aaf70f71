package entity

// Color - one of the four fixed marble colors; also fixes a player's entry
// point and home stretch on the board.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
)

// Colors - in player-index order: player 0 is always red, player 1 blue, etc.
var Colors = []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

type Player struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Color        Color  `json:"color"`
	IsAI         bool   `json:"is_ai"`
	AIDifficulty string `json:"ai_difficulty,omitempty"`
}

// EntryPoint - the track cell where this color's marbles enter from start.
// Entry cells double as safe cells for every color.
func (that Color) EntryPoint() int {
	switch that {
	case ColorRed:
		return 0
	case ColorBlue:
		return 14
	case ColorGreen:
		return 28
	case ColorYellow:
		return 42
	}
	return 0
}

// HomeBase - the first of the four home stretch cells reserved to this color.
func (that Color) HomeBase() int {
	switch that {
	case ColorRed:
		return 56
	case ColorBlue:
		return 60
	case ColorGreen:
		return 64
	case ColorYellow:
		return 68
	}
	return 56
}
