package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts search work", func(t *testing.T) {
		c := NewCollector()
		c.Start("alphabeta", 3)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddCutoff()

		got := c.Complete()

		require.Equal(t, "alphabeta", got.Strategy)
		require.Equal(t, 3, got.Depth)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Leaves)
		require.Equal(t, 1, got.Cutoffs)
		require.False(t, got.Aborted)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 2)
		c.AddNode()
		c.SetAborted()

		c.Start("minimax", 2)

		got := c.Complete()
		require.Zero(t, got.Nodes, "Counters should reset between searches")
		require.False(t, got.Aborted)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax", 2)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Strategy: "minimax", Depth: 2},
		{ID: 2, Strategy: "alphabeta", Depth: 3, Duration: time.Second, Seed: 7},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{ID: "game-1", Agent1: 1, Agent2: 2, GameMetric: GameMetric{StartingPlayer: 1, Winner: "Black", TotalMoves: 9}},
	}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{Game: "game-1", MoveMetric: MoveMetric{Step: 1, Player: 1, SearchMetric: SearchMetric{Strategy: "minimax", Nodes: 5}}},
	}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, configs, 3, "Header plus one row per config")
	require.Equal(t, []string{"2", "alphabeta", "3", "1s", "7"}, configs[2])

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "game-1", games[1][0])
	require.Equal(t, "Black", games[1][4])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, "5", moves[1][6])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}
