package game

import (
	"fmt"
	"strings"
)

// Stone is the occupancy of a cell. Black moves first and scores positive.
type Stone int

const (
	White Stone = -1
	Empty Stone = 0
	Black Stone = 1
)

func (s Stone) Opponent() Stone {
	return -s
}

// Sign is +1 for Black and -1 for White.
func (s Stone) Sign() float64 {
	switch s {
	case Black:
		return 1
	case White:
		return -1
	default:
		panic(fmt.Sprintf("stone %d has no sign", s))
	}
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

type Coord struct {
	Row int
	Col int
}

// NoCoord marks the absence of a move.
var NoCoord = Coord{Row: -1, Col: -1}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Board is a square grid of stones plus the bookkeeping used by the
// terminal detector: the last placed stone and the number of empty cells.
type Board struct {
	size       int
	cells      []Stone
	emptyCells int
	last       Coord
}

func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("invalid board size %d", size))
	}
	return &Board{
		size:       size,
		cells:      make([]Stone, size*size),
		emptyCells: size * size,
		last:       NoCoord,
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < b.size && c.Col < b.size
}

// At returns the stone at c, or Empty when c is out of bounds.
func (b *Board) At(c Coord) Stone {
	if !b.InBounds(c) {
		return Empty
	}
	return b.cells[b.index(c)]
}

// IsEmpty reports whether c is on the board and unoccupied.
func (b *Board) IsEmpty(c Coord) bool {
	return b.InBounds(c) && b.cells[b.index(c)] == Empty
}

func (b *Board) EmptyCells() int {
	return b.emptyCells
}

func (b *Board) LastMove() Coord {
	return b.last
}

// Place puts a stone on an empty cell and records it as the last move.
func (b *Board) Place(c Coord, s Stone) error {
	if s != Black && s != White {
		return fmt.Errorf("cannot place stone %d at %v: not a player", s, c)
	}
	if !b.InBounds(c) {
		return fmt.Errorf("cannot place at %v: %w", c, ErrInvalidCoordinate)
	}
	if b.cells[b.index(c)] != Empty {
		return fmt.Errorf("cannot place at %v: %w", c, ErrCellOccupied)
	}
	b.cells[b.index(c)] = s
	b.emptyCells--
	b.last = c
	return nil
}

// Undo clears an occupied cell. It does not touch the last move; search
// code should prefer Speculate, which restores it too.
func (b *Board) Undo(c Coord) {
	if !b.InBounds(c) || b.cells[b.index(c)] == Empty {
		panic(fmt.Sprintf("cannot undo %v: cell is not occupied", c))
	}
	b.cells[b.index(c)] = Empty
	b.emptyCells++
}

// Speculate places s at c and returns a function that restores the cell,
// the empty count and the previous last move. The cell must be empty.
func (b *Board) Speculate(c Coord, s Stone) (restore func()) {
	prev := b.last
	if err := b.Place(c, s); err != nil {
		panic(fmt.Sprintf("speculative placement: %v", err))
	}
	return func() {
		b.Undo(c)
		b.last = prev
	}
}

// EmptyCoords lists every empty cell in row-major order.
func (b *Board) EmptyCoords() []Coord {
	coords := make([]Coord, 0, b.emptyCells)
	for i, s := range b.cells {
		if s == Empty {
			coords = append(coords, Coord{Row: i / b.size, Col: i % b.size})
		}
	}
	return coords
}

func (b *Board) Clone() *Board {
	cells := make([]Stone, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:       b.size,
		cells:      cells,
		emptyCells: b.emptyCells,
		last:       b.last,
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			switch b.cells[row*b.size+col] {
			case Black:
				sb.WriteString("x|")
			case White:
				sb.WriteString("o|")
			default:
				sb.WriteString(".|")
			}
			if col < b.size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) index(c Coord) int {
	return c.Row*b.size + c.Col
}
