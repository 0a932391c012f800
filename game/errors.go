package game

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate out of bounds")
	ErrCellOccupied      = errors.New("cell is occupied")
	ErrNoLegalMoves      = errors.New("no legal moves")
)
