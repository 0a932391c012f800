package searcher

import (
	"gomoku/experiments/metrics"
	"gomoku/meta"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(s *settings)

type settings struct {
	depth    int
	duration time.Duration
	rng      *rand.Rand
	metrics  metrics.Collector
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		depth:   meta.DEFAULT_DEPTH,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

// WithDepth sets the number of plies searched by minimax and alpha-beta.
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithDuration bounds a search by wall-clock time. The best fully scored
// root move is returned when the budget runs out.
func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}
