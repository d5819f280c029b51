package apperror

import "errors"

var (
	ErrGameOver      = errors.New("game is over")
	ErrOffBoard      = errors.New("stone is off the board")
	ErrWrongPlayer   = errors.New("wrong player")
	ErrDuplicateMove = errors.New("duplicate move")
)
