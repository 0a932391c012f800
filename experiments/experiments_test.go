package experiments

import (
	"context"
	"gomoku/experiments/metrics"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestExperimentRun(t *testing.T) {
	t.Run("records every game and move", func(t *testing.T) {
		greedy := metrics.AgentConfig{ID: 1, Strategy: "greedy"}
		random := metrics.AgentConfig{ID: 2, Strategy: "random", Seed: 9}
		x := Experiment{
			Name:      "smoke",
			BoardSize: 9,
			NumGames:  2,
			Configs:   []metrics.AgentConfig{greedy, random},
			MatchUps:  [][2]metrics.AgentConfig{{greedy, random}},
			OutDir:    t.TempDir(),
		}

		results, err := x.Run(context.Background())

		require.NoError(t, err)
		require.Len(t, results.Games, 2)
		total := 0
		for _, g := range results.Games {
			_, err := uuid.Parse(g.ID)
			require.NoError(t, err, "Game records should be identified by UUID")
			require.Equal(t, 1, g.Agent1)
			require.Equal(t, 2, g.Agent2)
			total += g.TotalMoves
		}
		require.Len(t, results.Moves, total)
		require.Equal(t, 2, results.Wins[1]+results.Wins[2]+results.Draws)

		dirs, err := os.ReadDir(filepath.Join(x.OutDir, "smoke"))
		require.NoError(t, err)
		require.Len(t, dirs, 1)
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(x.OutDir, "smoke", dirs[0].Name(), name))
		}
	})

	t.Run("unknown strategy fails the experiment", func(t *testing.T) {
		bad := metrics.AgentConfig{ID: 1, Strategy: "mcts"}
		x := Experiment{Name: "bad", BoardSize: 9, NumGames: 1, MatchUps: [][2]metrics.AgentConfig{{bad, bad}}}

		_, err := x.Run(context.Background())

		require.Error(t, err)
	})
}

func TestStrategyExperiment(t *testing.T) {
	x := StrategyExperiment(15, 2)

	require.Len(t, x.Configs, 4)
	require.Len(t, x.MatchUps, 12, "Every ordered pair of distinct strategies")
	for _, m := range x.MatchUps {
		require.NotEqual(t, m[0].ID, m[1].ID)
	}
}

func TestDepthExperiment(t *testing.T) {
	x := DepthExperiment(9, 3)

	require.Len(t, x.Configs, 4)
	require.Len(t, x.MatchUps, 6, "Each depth plays both colors against the baseline")
	require.Equal(t, 1, x.NumGames)
}
