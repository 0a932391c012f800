package game

import "fmt"

type Status int

const (
	Ongoing Status = iota
	Win
	Draw
)

func (s Status) String() string {
	switch s {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Result is the terminal status of a board. Winner is Empty unless Status is Win.
type Result struct {
	Status Status
	Winner Stone
}

func (r Result) IsOver() bool {
	return r.Status != Ongoing
}

func (r Result) String() string {
	if r.Status == Win {
		return fmt.Sprintf("win(%s)", r.Winner)
	}
	return r.Status.String()
}

// WinLength is the number of contiguous stones that ends the game.
const WinLength = 5

// Axes are the four line directions: vertical, horizontal and both diagonals.
var Axes = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// CountDirection counts contiguous s stones starting from the neighbor of c
// in direction (dr, dc). The cell c itself is not inspected.
func (b *Board) CountDirection(c Coord, dr, dc int, s Stone) int {
	count := 0
	next := Coord{Row: c.Row + dr, Col: c.Col + dc}
	for b.InBounds(next) && b.cells[b.index(next)] == s {
		count++
		next = Coord{Row: next.Row + dr, Col: next.Col + dc}
	}
	return count
}

// LineLength is the length of the s line through c along an axis, counting c.
func (b *Board) LineLength(c Coord, dr, dc int, s Stone) int {
	return 1 + b.CountDirection(c, dr, dc, s) + b.CountDirection(c, -dr, -dc, s)
}

// IsFive reports whether a stone s at c completes at least five in a row.
func (b *Board) IsFive(c Coord, s Stone) bool {
	if c.Row < 0 || c.Col < 0 {
		return false
	}
	for _, axis := range Axes {
		if b.LineLength(c, axis[0], axis[1], s) >= WinLength {
			return true
		}
	}
	return false
}

// CheckResult classifies the board after s was placed at last.
func (b *Board) CheckResult(last Coord, s Stone) Result {
	if s != Empty && b.IsFive(last, s) {
		return Result{Status: Win, Winner: s}
	}
	if b.emptyCells <= 0 {
		return Result{Status: Draw}
	}
	return Result{Status: Ongoing}
}

// Status checks the result for the recorded last move.
func (b *Board) Status() Result {
	return b.CheckResult(b.last, b.At(b.last))
}
