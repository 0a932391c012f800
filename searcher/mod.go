package searcher

import (
	"context"
	"errors"
	"fmt"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"strings"
)

type Strategy string

const (
	StrategyRandom    Strategy = "random"
	StrategyGreedy    Strategy = "greedy"
	StrategyMinimax   Strategy = "minimax"
	StrategyAlphaBeta Strategy = "alphabeta"
)

var Strategies = []Strategy{StrategyRandom, StrategyGreedy, StrategyMinimax, StrategyAlphaBeta}

var ErrUnknownStrategy = errors.New("unknown strategy")

// Position is the input of a move search. Board and Frontier are borrowed:
// searches mutate them speculatively and restore them before returning.
type Position struct {
	Board    *game.Board
	Frontier game.Frontier
	Score    float64    // Running evaluation of the board, positive favors Black
	Mover    game.Stone // Side to play
}

// Policy picks a move for the side to play.
type Policy interface {
	FindMove(ctx context.Context, pos Position) (game.Coord, metrics.SearchMetric, error)
}

func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Strategies {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func NewPolicy(strategy Strategy, options ...Option) (Policy, error) {
	switch strategy {
	case StrategyRandom:
		return NewRandom(options...), nil
	case StrategyGreedy:
		return NewGreedy(options...), nil
	case StrategyMinimax:
		return NewMinimax(options...), nil
	case StrategyAlphaBeta:
		return NewAlphaBeta(options...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// better reports whether a improves on b for mover: Black maximizes,
// White minimizes.
func better(mover game.Stone, a, b float64) bool {
	if mover == game.Black {
		return a > b
	}
	return a < b
}
