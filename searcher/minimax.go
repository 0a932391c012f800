package searcher

import (
	"context"
	"gomoku/experiments/metrics"
	"gomoku/game"
)

// Minimax searches every frontier move to a fixed depth.
type Minimax struct {
	settings
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{settings: newSettings(options)}
}

func (m *Minimax) FindMove(ctx context.Context, pos Position) (game.Coord, metrics.SearchMetric, error) {
	return treeSearch(ctx, pos, m.settings, StrategyMinimax)
}

// minimax scores the node where mover is to play after the stone at last
// brought the running score to score.
func (s *search) minimax(depth int, score float64, last game.Coord, mover game.Stone) (float64, error) {
	s.metrics.AddNode()
	if s.leaf(depth, last, mover) {
		s.metrics.AddLeaf()
		return score, nil
	}
	if s.ctx.Err() != nil {
		return 0, errAborted
	}

	var best float64
	for i, c := range s.frontier.ChildNodes() {
		value, err := s.child(c, depth, score, mover, 0, 0)
		if err != nil {
			return 0, err
		}
		if i == 0 || better(mover, value, best) {
			best = value
		}
	}
	return best, nil
}
