package engine

import (
	"context"
	"fmt"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/meta"
	"gomoku/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalEngine plays two policies against each other on one board.
type LocalEngine struct {
	State    *State
	Agents   map[game.Stone]searcher.Policy
	MaxTurns int
}

func NewLocalEngine(size int, black, white searcher.Policy, options ...GameOption) *LocalEngine {
	if black == nil || white == nil {
		panic("both players need a policy")
	}
	return &LocalEngine{
		State:    NewGame(size, options...),
		Agents:   map[game.Stone]searcher.Policy{game.Black: black, game.White: white},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run plays until the game ends or MaxTurns moves were made.
func (e *LocalEngine) Run(ctx context.Context) (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.State.Turn()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric
	elapsed := map[game.Stone]time.Duration{}
	counts := map[game.Stone]int{}

	log.Info().Msgf("%s is starting", e.State.Turn())

	for !e.State.TerminalStatus().IsOver() && e.State.Moves() < e.MaxTurns {
		player := e.State.Turn()

		start := time.Now()
		move, searchMetric, err := e.State.ChooseMoveWith(ctx, e.Agents[player], player)
		took := time.Since(start)
		if err != nil {
			return e.State.TerminalStatus(), gameMetric, moveMetrics, err
		}

		result, err := e.State.ApplyMove(move, player)
		if err != nil {
			return result, gameMetric, moveMetrics, fmt.Errorf("failed to apply move %v: %w", move, err)
		}

		elapsed[player] += took
		counts[player]++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.State.Moves(),
			Player:       int(player),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("move %d: %s plays %v in %s", e.State.Moves(), player, move, took)
	}

	result := e.State.TerminalStatus()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.Moves()
	gameMetric.Winner = winnerName(result)
	gameMetric.BlackMoves = counts[game.Black]
	gameMetric.WhiteMoves = counts[game.White]
	gameMetric.BlackAvgMove = average(elapsed[game.Black], counts[game.Black])
	gameMetric.WhiteAvgMove = average(elapsed[game.White], counts[game.White])

	if result.IsOver() {
		log.Info().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, result)
	} else {
		log.Info().Msgf("stopped after %d moves (no winner yet)", gameMetric.TotalMoves)
	}
	log.Info().Msgf("black moves: %d, avg time: %s; white moves: %d, avg time: %s; total: %s",
		gameMetric.BlackMoves, gameMetric.BlackAvgMove, gameMetric.WhiteMoves, gameMetric.WhiteAvgMove, gameMetric.Duration)

	return result, gameMetric, moveMetrics, nil
}

func winnerName(result game.Result) string {
	if result.Status == game.Win {
		return result.Winner.String()
	}
	return "None"
}

func average(total time.Duration, count int) time.Duration {
	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}
