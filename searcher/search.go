package searcher

import (
	"context"
	"errors"
	"fmt"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"math"

	"github.com/rs/zerolog/log"
)

var errAborted = errors.New("search aborted")

// search is one depth-first traversal. The board and frontier are
// mutated in place and every placement is undone before its frame returns.
type search struct {
	ctx      context.Context
	board    *game.Board
	frontier game.Frontier
	metrics  metrics.Collector
	pruning  bool
}

func newSearch(ctx context.Context, pos Position, collector metrics.Collector, pruning bool) *search {
	return &search{
		ctx:      ctx,
		board:    pos.Board,
		frontier: pos.Frontier,
		metrics:  collector,
		pruning:  pruning,
	}
}

// treeSearch runs minimax or alpha-beta from pos and returns the move.
func treeSearch(ctx context.Context, pos Position, s settings, strategy Strategy) (game.Coord, metrics.SearchMetric, error) {
	s.metrics.Start(string(strategy), s.depth)
	if s.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.duration)
		defer cancel()
	}

	tree := newSearch(ctx, pos, s.metrics, strategy == StrategyAlphaBeta)
	move, err := tree.chooseMove(pos.Score, pos.Mover, s.depth)
	if errors.Is(err, errAborted) {
		s.metrics.SetAborted()
		if move != game.NoCoord {
			log.Warn().Msgf("%s search cut short at depth %d, playing best scored move %v", strategy, s.depth, move)
			err = nil
		} else {
			err = fmt.Errorf("%s search: %w", strategy, ctx.Err())
		}
	}
	metric := s.metrics.Complete()
	if err != nil {
		return game.NoCoord, metric, err
	}
	log.Debug().Msgf("%s chose %v for %s (nodes=%d leaves=%d cutoffs=%d)",
		strategy, move, pos.Mover, metric.Nodes, metric.Leaves, metric.Cutoffs)
	return move, metric, nil
}

// chooseMove scores every root candidate and keeps the first one reaching
// the best value for mover. On abort it returns the best move scored so far.
func (s *search) chooseMove(score float64, mover game.Stone, depth int) (game.Coord, error) {
	candidates := s.frontier.ChildNodes()
	if len(candidates) == 0 {
		return game.NoCoord, game.ErrNoLegalMoves
	}
	s.metrics.AddNode()

	alpha, beta := math.Inf(-1), math.Inf(1)
	best := game.NoCoord
	bestValue := 0.0
	for _, c := range candidates {
		if s.ctx.Err() != nil {
			return best, errAborted
		}
		value, err := s.child(c, depth, score, mover, alpha, beta)
		if err != nil {
			return best, err
		}
		if best == game.NoCoord || better(mover, value, bestValue) {
			best, bestValue = c, value
		}
		if s.pruning {
			if mover == game.Black {
				alpha = max(alpha, bestValue)
			} else {
				beta = min(beta, bestValue)
			}
		}
	}
	return best, nil
}

// child plays mover at c, scores the resulting node and takes the move back.
func (s *search) child(c game.Coord, depth int, score float64, mover game.Stone, alpha, beta float64) (float64, error) {
	next := game.Evaluate(s.board, c, score, mover, s.frontier)
	restore := s.board.Speculate(c, mover)
	defer restore()
	delta := s.frontier.Update(s.board, c)
	defer s.frontier.Revert(delta)

	if s.pruning {
		return s.alphaBeta(depth-1, next, c, mover.Opponent(), alpha, beta)
	}
	return s.minimax(depth-1, next, c, mover.Opponent())
}

// leaf reports whether the node after the stone at last is a base case.
func (s *search) leaf(depth int, last game.Coord, mover game.Stone) bool {
	if depth <= 0 || s.board.CheckResult(last, mover.Opponent()).IsOver() {
		return true
	}
	// Nothing left to expand.
	return s.frontier.Len() == 0
}
