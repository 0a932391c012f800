package searcher

import (
	"context"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"math"
)

// AlphaBeta is minimax with alpha-beta pruning. For the same position,
// depth and move ordering it selects the same move as Minimax.
type AlphaBeta struct {
	settings
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{settings: newSettings(options)}
}

func (a *AlphaBeta) FindMove(ctx context.Context, pos Position) (game.Coord, metrics.SearchMetric, error) {
	return treeSearch(ctx, pos, a.settings, StrategyAlphaBeta)
}

// alphaBeta scores a node within the window (alpha, beta). Alpha is the
// value Black is already assured of, beta the value White is assured of.
func (s *search) alphaBeta(depth int, score float64, last game.Coord, mover game.Stone, alpha, beta float64) (float64, error) {
	s.metrics.AddNode()
	if s.leaf(depth, last, mover) {
		s.metrics.AddLeaf()
		return score, nil
	}
	if s.ctx.Err() != nil {
		return 0, errAborted
	}

	if mover == game.Black {
		best := math.Inf(-1)
		for _, c := range s.frontier.ChildNodes() {
			value, err := s.child(c, depth, score, mover, alpha, beta)
			if err != nil {
				return 0, err
			}
			best = max(best, value)
			if best >= beta {
				s.metrics.AddCutoff()
				return best, nil
			}
			alpha = max(alpha, best)
		}
		return best, nil
	}

	best := math.Inf(1)
	for _, c := range s.frontier.ChildNodes() {
		value, err := s.child(c, depth, score, mover, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = min(best, value)
		if best <= alpha {
			s.metrics.AddCutoff()
			return best, nil
		}
		beta = min(beta, best)
	}
	return best, nil
}
