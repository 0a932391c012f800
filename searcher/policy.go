package searcher

import (
	"context"
	"gomoku/experiments/metrics"
	"gomoku/game"

	"github.com/rs/zerolog/log"
)

// Greedy evaluates each frontier move one ply deep and plays the best one.
type Greedy struct {
	settings
}

func NewGreedy(options ...Option) *Greedy {
	return &Greedy{settings: newSettings(options)}
}

func (g *Greedy) FindMove(ctx context.Context, pos Position) (game.Coord, metrics.SearchMetric, error) {
	g.metrics.Start(string(StrategyGreedy), 1)

	best := game.NoCoord
	bestValue := 0.0
	for _, c := range pos.Frontier.ChildNodes() {
		g.metrics.AddNode()
		g.metrics.AddLeaf()
		value := game.Evaluate(pos.Board, c, pos.Score, pos.Mover, pos.Frontier)
		if best == game.NoCoord || better(pos.Mover, value, bestValue) {
			best, bestValue = c, value
		}
	}
	metric := g.metrics.Complete()
	if best == game.NoCoord {
		return best, metric, game.ErrNoLegalMoves
	}

	log.Debug().Msgf("greedy chose %v for %s with value %.1f", best, pos.Mover, bestValue)
	return best, metric, nil
}

// Random plays a uniformly chosen empty cell anywhere on the board.
type Random struct {
	settings
}

func NewRandom(options ...Option) *Random {
	return &Random{settings: newSettings(options)}
}

func (r *Random) FindMove(ctx context.Context, pos Position) (game.Coord, metrics.SearchMetric, error) {
	r.metrics.Start(string(StrategyRandom), 0)
	empty := pos.Board.EmptyCoords()
	metric := r.metrics.Complete()
	if len(empty) == 0 {
		return game.NoCoord, metric, game.ErrNoLegalMoves
	}
	return empty[r.rng.Intn(len(empty))], metric, nil
}
