package apperror

import "errors"

var (
	ErrGameFinished           = errors.New("game is already finished")
	ErrInvalidStateTransition = errors.New("operation not allowed in current game status")
	ErrIllegalMove            = errors.New("move is not in the legal move set")
	ErrNotYourTurn            = errors.New("it's not your turn")
	ErrNotAITurn              = errors.New("current player is not computer-controlled")
	ErrMarbleNotFound         = errors.New("marble not found")
	ErrInvalidPlayerCount     = errors.New("game requires between 2 and 4 players")
)
