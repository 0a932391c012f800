package main

import (
	"context"
	"flag"
	"fmt"
	"gomoku/engine"
	"gomoku/experiments"
	"gomoku/meta"
	"gomoku/searcher"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	black := flag.String("black", string(searcher.StrategyAlphaBeta), "Black player's strategy (random, greedy, minimax, alphabeta)")
	white := flag.String("white", string(searcher.StrategyGreedy), "White player's strategy")
	depth := flag.Int("depth", meta.DEFAULT_DEPTH, "Search depth in plies for minimax and alpha-beta")
	duration := flag.Duration("duration", 0, "Wall-clock budget per move, 0 for none")
	size := flag.Int("size", meta.BOARD_SIZE, "Board width and height")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for random moves")
	experiment := flag.String("experiment", "", "Run an experiment instead of one game (strategies, depth)")
	out := flag.String("out", "experiments", "Directory for experiment results")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *level, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	ctx := context.Background()
	if *experiment != "" {
		runExperiment(ctx, *experiment, *size, *depth, *out)
		return
	}
	runGame(ctx, *black, *white, *size, *depth, *duration, *seed)
}

func runGame(ctx context.Context, blackName, whiteName string, size, depth int, duration time.Duration, seed uint64) {
	black := createPolicy(blackName, depth, duration, seed)
	white := createPolicy(whiteName, depth, duration, seed+1)

	e := engine.NewLocalEngine(size, black, white, engine.WithSeed(seed))
	result, gameMetric, _, err := e.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	fmt.Print(e.State.Board())
	fmt.Printf("Winner: %s (%s) after %d moves in %s\n", gameMetric.Winner, result, gameMetric.TotalMoves, gameMetric.Duration)
}

func createPolicy(name string, depth int, duration time.Duration, seed uint64) searcher.Policy {
	strategy, err := searcher.ParseStrategy(name)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid strategy")
	}
	policy, err := searcher.NewPolicy(strategy,
		searcher.WithDepth(depth),
		searcher.WithDuration(duration),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create policy")
	}
	return policy
}

func runExperiment(ctx context.Context, name string, size, depth int, out string) {
	var x experiments.Experiment
	switch name {
	case "strategies":
		x = experiments.StrategyExperiment(size, depth)
	case "depth":
		x = experiments.DepthExperiment(size, depth)
	default:
		log.Fatal().Msgf("unknown experiment %q", name)
	}
	x.OutDir = out

	results, err := x.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}
	for _, config := range x.Configs {
		log.Info().Msgf("agent %d (%s, depth %d): %d wins", config.ID, config.Strategy, config.Depth, results.Wins[config.ID])
	}
	log.Info().Msgf("draws: %d", results.Draws)
}
