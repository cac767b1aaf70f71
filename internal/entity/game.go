package entity

import (
	"fmt"

	"github.com/rocketscienceinc/marbles-backend/internal/apperror"
)

const (
	StatusRolling  = "rolling"
	StatusMoving   = "moving"
	StatusFinished = "finished"
)

// Game - the single mutable aggregate for one session. Marbles and the dice
// value have no lifecycle outside it.
type Game struct {
	ID            string    `json:"id"`
	Players       []*Player `json:"players"`
	Marbles       []*Marble `json:"marbles"`
	CurrentPlayer int       `json:"current_player"`
	DiceValue     int       `json:"dice_value,omitempty"`
	Status        string    `json:"status"`
	Winner        *int      `json:"winner"`
	TurnCount     int       `json:"turn_count"`
}

func (that *Game) IsRolling() bool {
	return that.Status == StatusRolling
}

func (that *Game) IsMoving() bool {
	return that.Status == StatusMoving
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// ActivePlayer - the player whose turn it is.
func (that *Game) ActivePlayer() *Player {
	return that.Players[that.CurrentPlayer]
}

func (that *Game) IsAITurn() bool {
	return that.ActivePlayer().IsAI
}

func (that *Game) MarbleByID(id string) (*Marble, error) {
	for _, marble := range that.Marbles {
		if marble.ID == id {
			return marble, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", apperror.ErrMarbleNotFound, id)
}

// MarblesOf - all four marbles belonging to one player.
func (that *Game) MarblesOf(playerID int) []*Marble {
	marbles := make([]*Marble, 0, MarblesPerPlayer)
	for _, marble := range that.Marbles {
		if marble.PlayerID == playerID {
			marbles = append(marbles, marble)
		}
	}
	return marbles
}

// MarblesHome - how many of a player's marbles sit inside its home stretch.
func (that *Game) MarblesHome(playerID int) int {
	count := 0
	for _, marble := range that.MarblesOf(playerID) {
		if marble.IsInHome() {
			count++
		}
	}
	return count
}

// HasWon - a player wins the instant all four marbles occupy home cells.
func (that *Game) HasWon(playerID int) bool {
	return that.MarblesHome(playerID) == MarblesPerPlayer
}
