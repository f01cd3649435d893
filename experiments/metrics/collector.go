package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Engine     string
	Goroutines int
	Depth      int
	Duration   time.Duration
	Nodes      int
	CacheHits  int
	Aborts     int
	CacheSize  int
}

type MoveMetric struct {
	Step  int
	Piece string
	Move  string
	SearchMetric
}

type GameMetric struct {
	StartingPiece string
	Winner        string // Empty on a tie
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

type Collector interface {
	Start(engine string, goroutines, depth int)
	AddNode()
	AddCacheHit()
	AddAbort()
	Complete() SearchMetric
}

type collector struct {
	engine     string
	goroutines int
	depth      int
	startTime  time.Time
	nodes      atomic.Int64
	cacheHits  atomic.Int64
	aborts     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(engine string, goroutines, depth int) {
	m.startTime = time.Now()
	m.engine = engine
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
	m.cacheHits.Store(0)
	m.aborts.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) AddAbort() {
	m.aborts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Engine:     m.engine,
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		CacheHits:  int(m.cacheHits.Load()),
		Aborts:     int(m.aborts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(engine string, goroutines, depth int) {}
func (m *dummyCollector) AddNode()                                   {}
func (m *dummyCollector) AddCacheHit()                               {}
func (m *dummyCollector) AddAbort()                                  {}
func (m *dummyCollector) Complete() SearchMetric                     { return SearchMetric{} }
