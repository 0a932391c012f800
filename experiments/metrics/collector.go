package metrics

import (
	"time"
)

type SearchMetric struct {
	Strategy string
	Depth    int
	Duration time.Duration
	Nodes    int // Positions expanded, root included
	Leaves   int // Static evaluations returned at the depth or terminal bound
	Cutoffs  int // Alpha-beta prunes
	Aborted  bool
}

type MoveMetric struct {
	Step   int
	Player int // +1 Black, -1 White
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	BlackMoves     int
	WhiteMoves     int
	BlackAvgMove   time.Duration
	WhiteAvgMove   time.Duration
}

// Collector counts search work. Search is single-threaded, so counters
// need no synchronization.
type Collector interface {
	Start(strategy string, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetAborted()
	Complete() SearchMetric
}

type collector struct {
	strategy  string
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
	aborted   bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, depth int) {
	*m = collector{strategy: strategy, depth: depth, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) SetAborted() {
	m.aborted = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy: m.strategy,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Cutoffs:  m.cutoffs,
		Aborted:  m.aborted,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth int) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddLeaf()                         {}
func (m *dummyCollector) AddCutoff()                       {}
func (m *dummyCollector) SetAborted()                      {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
