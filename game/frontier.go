package game

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// BoundRadius is how far from a stone an empty cell stays a move candidate.
const BoundRadius = 2

// Frontier maps candidate empty cells to the number of stones within
// BoundRadius of them. Occupied cells are never keys.
type Frontier map[Coord]int

// Delta records what one Update changed so that Revert can undo it.
type Delta struct {
	Cell    Coord
	Prior   int
	Touched []Coord
}

func NewFrontier() Frontier {
	return Frontier{}
}

// NewFrontierFromBoard computes the frontier of an arbitrary board.
func NewFrontierFromBoard(b *Board) Frontier {
	f := NewFrontier()
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			c := Coord{Row: row, Col: col}
			if b.At(c) != Empty {
				f.Update(b, c)
			}
		}
	}
	return f
}

func (f Frontier) Weight(c Coord) int {
	return f[c]
}

func (f Frontier) Len() int {
	return len(f)
}

func (f Frontier) Clone() Frontier {
	return maps.Clone(f)
}

// Update registers the stone just placed at c: c leaves the frontier and
// every empty cell in the surrounding block gains one weight.
func (f Frontier) Update(b *Board, c Coord) Delta {
	if b.IsEmpty(c) {
		panic(fmt.Sprintf("frontier update at %v: cell is empty", c))
	}
	d := Delta{Cell: c, Prior: f[c]}
	delete(f, c)
	for dr := -BoundRadius; dr <= BoundRadius; dr++ {
		for dc := -BoundRadius; dc <= BoundRadius; dc++ {
			n := Coord{Row: c.Row + dr, Col: c.Col + dc}
			if b.IsEmpty(n) {
				f[n]++
				d.Touched = append(d.Touched, n)
			}
		}
	}
	return d
}

// Revert undoes the Update that produced d.
func (f Frontier) Revert(d Delta) {
	for _, n := range d.Touched {
		f[n]--
		if f[n] <= 0 {
			delete(f, n)
		}
	}
	if d.Prior > 0 {
		f[d.Cell] = d.Prior
	}
}

// ChildNodes orders candidates by descending weight, then row-major.
func (f Frontier) ChildNodes() []Coord {
	coords := make([]Coord, 0, len(f))
	for c := range f {
		coords = append(coords, c)
	}
	slices.SortStableFunc(coords, func(a, b Coord) int {
		if f[a] != f[b] {
			return f[b] - f[a]
		}
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return coords
}
