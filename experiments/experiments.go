package experiments

import (
	"context"
	"fmt"
	"gomoku/engine"
	"gomoku/experiments/metrics"
	"gomoku/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const NumGames = 5 // Per match up

// Experiment is a set of match ups between agent configurations. Each match
// up is {black, white}.
type Experiment struct {
	Name      string
	BoardSize int
	NumGames  int
	Configs   []metrics.AgentConfig
	MatchUps  [][2]metrics.AgentConfig
	OutDir    string // Root directory for result files, empty to skip writing
}

type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]int // Wins per AgentConfig.ID
	Draws int
}

// StrategyExperiment pits every strategy against every other at the same
// depth, each side playing Black once per pairing.
func StrategyExperiment(boardSize, depth int) Experiment {
	configs := make([]metrics.AgentConfig, 0, len(searcher.Strategies))
	for i, strategy := range searcher.Strategies {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Strategy: string(strategy), Depth: depth, Seed: uint64(i + 1)})
	}
	matchUps := [][2]metrics.AgentConfig{}
	for _, a := range configs {
		for _, b := range configs {
			if a.ID != b.ID {
				matchUps = append(matchUps, [2]metrics.AgentConfig{a, b})
			}
		}
	}
	return Experiment{
		Name:      "strategies",
		BoardSize: boardSize,
		NumGames:  NumGames,
		Configs:   configs,
		MatchUps:  matchUps,
	}
}

// DepthExperiment plays alpha-beta at increasing depths against a depth 1 baseline.
func DepthExperiment(boardSize, maxDepth int) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Strategy: string(searcher.StrategyAlphaBeta), Depth: 1}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 1; depth <= maxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Strategy: string(searcher.StrategyAlphaBeta), Depth: depth}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline}, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{
		Name:      "depth",
		BoardSize: boardSize,
		NumGames:  1, // Deterministic agents replay the same game
		Configs:   configs,
		MatchUps:  matchUps,
	}
}

func (x Experiment) Run(ctx context.Context) (Results, error) {
	results := Results{Wins: map[int]int{}}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchUp := range x.MatchUps {
		config1, config2 := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between black=%+v and white=%+v...", mi+1, len(x.MatchUps), config1, config2)

		for i := 0; i < x.NumGames; i++ {
			record, moves, err := x.runGame(ctx, config1, config2, uint64(i))
			if err != nil {
				return results, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			results.Games = append(results.Games, record)
			results.Moves = append(results.Moves, moves...)
			switch record.Winner {
			case "Black":
				results.Wins[config1.ID]++
			case "White":
				results.Wins[config2.ID]++
			default:
				results.Draws++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(x.MatchUps), i+1, record.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	if x.OutDir != "" {
		if err := x.store(results); err != nil {
			return results, err
		}
	}
	return results, nil
}

func (x Experiment) store(results Results) error {
	writer, err := metrics.NewWriter(x.OutDir, x.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(results.Games); err != nil {
		return err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return err
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame plays one game; game varies the random seeds between repeats.
func (x Experiment) runGame(ctx context.Context, config1, config2 metrics.AgentConfig, game uint64) (metrics.GameRecord, []metrics.MoveRecord, error) {
	black, err := createPolicy(config1, game)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	white, err := createPolicy(config2, game)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.NewLocalEngine(x.BoardSize, black, white, engine.WithSeed(config1.Seed^config2.Seed^game))
	_, gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:         uuid.NewString(),
		Agent1:     config1.ID,
		Agent2:     config2.ID,
		GameMetric: gameMetric,
	}
	moves := make([]metrics.MoveRecord, 0, len(moveMetrics))
	for _, mm := range moveMetrics {
		moves = append(moves, metrics.MoveRecord{Game: record.ID, MoveMetric: mm})
	}
	return record, moves, nil
}

func createPolicy(config metrics.AgentConfig, game uint64) (searcher.Policy, error) {
	strategy, err := searcher.ParseStrategy(config.Strategy)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	options = append(options, searcher.WithSeed(config.Seed+game))

	return searcher.NewPolicy(strategy, options...)
}
