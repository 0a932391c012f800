package engine

import (
	"context"
	"errors"
	"fmt"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not this player's turn")
)

// State is one game in progress: the board, its frontier, the running
// evaluation and the side to move.
type State struct {
	board    *game.Board
	frontier game.Frontier
	score    float64
	turn     game.Stone
	result   game.Result
	moves    int
	rng      *rand.Rand
}

type GameOption func(s *State)

// WithSeed fixes the randomness used by fallback moves.
func WithSeed(seed uint64) GameOption {
	return func(s *State) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewGame starts an empty game with Black to move.
func NewGame(size int, options ...GameOption) *State {
	s := &State{
		board:    game.NewBoard(size),
		frontier: game.NewFrontier(),
		turn:     game.Black,
		result:   game.Result{Status: game.Ongoing},
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

// Board returns a copy of the current board.
func (s *State) Board() *game.Board {
	return s.board.Clone()
}

// Frontier returns a copy of the current move candidates.
func (s *State) Frontier() game.Frontier {
	return s.frontier.Clone()
}

func (s *State) Score() float64 {
	return s.score
}

func (s *State) Turn() game.Stone {
	return s.turn
}

func (s *State) Moves() int {
	return s.moves
}

func (s *State) TerminalStatus() game.Result {
	return s.result
}

// ApplyMove plays player's stone at c and returns the resulting status.
func (s *State) ApplyMove(c game.Coord, player game.Stone) (game.Result, error) {
	if err := s.checkTurn(player); err != nil {
		return s.result, err
	}
	if !s.board.IsEmpty(c) {
		// Let the board report which precondition failed.
		return s.result, s.board.Place(c, player)
	}

	s.score = game.Evaluate(s.board, c, s.score, player, s.frontier)
	if err := s.board.Place(c, player); err != nil {
		return s.result, err
	}
	s.frontier.Update(s.board, c)
	s.result = s.board.CheckResult(c, player)
	s.turn = player.Opponent()
	s.moves++
	return s.result, nil
}

// ChooseMove runs the named strategy for player at the given depth.
func (s *State) ChooseMove(ctx context.Context, strategy searcher.Strategy, player game.Stone, depth int) (game.Coord, metrics.SearchMetric, error) {
	policy, err := searcher.NewPolicy(strategy, searcher.WithDepth(depth), searcher.WithRand(s.rng))
	if err != nil {
		return game.NoCoord, metrics.SearchMetric{}, err
	}
	return s.ChooseMoveWith(ctx, policy, player)
}

// ChooseMoveWith asks policy for player's move. The returned cell is always
// empty: an invalid answer from the policy is replaced by a fallback move.
func (s *State) ChooseMoveWith(ctx context.Context, policy searcher.Policy, player game.Stone) (game.Coord, metrics.SearchMetric, error) {
	if err := s.checkTurn(player); err != nil {
		return game.NoCoord, metrics.SearchMetric{}, err
	}

	// Opening move in the center, as nothing is on the frontier yet.
	if s.moves == 0 && s.board.EmptyCells() == s.board.Size()*s.board.Size() {
		center := game.Coord{Row: s.board.Size() / 2, Col: s.board.Size() / 2}
		return center, metrics.SearchMetric{}, nil
	}

	pos := searcher.Position{
		Board:    s.board,
		Frontier: s.frontier,
		Score:    s.score,
		Mover:    player,
	}
	move, metric, err := policy.FindMove(ctx, pos)
	if err != nil {
		return game.NoCoord, metric, fmt.Errorf("failed to choose move for %s: %w", player, err)
	}

	if !s.board.IsEmpty(move) {
		fallback := s.fallbackMove()
		log.Warn().Msgf("policy returned invalid move %v for %s, playing %v instead", move, player, fallback)
		move = fallback
	}
	return move, metric, nil
}

// fallbackMove is the highest weighted frontier cell, or a random empty
// cell when the frontier is empty.
func (s *State) fallbackMove() game.Coord {
	if candidates := s.frontier.ChildNodes(); len(candidates) > 0 {
		return candidates[0]
	}
	empty := s.board.EmptyCoords()
	if len(empty) == 0 {
		panic("fallback move requested on a full board")
	}
	return empty[s.rng.Intn(len(empty))]
}

func (s *State) checkTurn(player game.Stone) error {
	if s.result.IsOver() {
		return ErrGameOver
	}
	if player != s.turn {
		return fmt.Errorf("%s cannot move: %w", player, ErrNotYourTurn)
	}
	return nil
}
