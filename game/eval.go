package game

// LineScores maps the length of the line a stone would join to its
// magnitude. Index is the line length; lengths of WinLength or more score
// the last entry.
var LineScores = [WinLength + 1]float64{0, 0, 100, 1000, 10000, 100000}

// BoundBonus weighs the frontier density of a placement.
const BoundBonus = 0.1

// Evaluate returns the running score after mover plays at c, given the
// score before the move. Lines are counted as if mover's stone were at c,
// whether or not it has been placed yet. Positive scores favor Black.
func Evaluate(b *Board, c Coord, prior float64, mover Stone, f Frontier) float64 {
	score := 0.0
	for _, axis := range Axes {
		score += lineScore(b.LineLength(c, axis[0], axis[1], mover))
	}
	return prior + score*mover.Sign() + BoundBonus*float64(f.Weight(c))
}

func lineScore(count int) float64 {
	if count >= WinLength {
		return LineScores[WinLength]
	}
	return LineScores[count]
}
