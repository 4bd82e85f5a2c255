package game

import (
	"errors"

	"github.com/daystram/ykchess/position"
)

var (
	ErrInvalidSquare      = position.ErrInvalidSquare
	ErrEmptySource        = errors.New("no piece on source square")
	ErrWrongSideToMove    = errors.New("piece belongs to the side not to move")
	ErrIllegalDestination = errors.New("destination not reachable")
	ErrKingExposed        = errors.New("move leaves own king in check")
	ErrEmptyHistory       = errors.New("no move to undo")
	ErrGameOver           = errors.New("game is over")
)
