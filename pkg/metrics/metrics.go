package metrics

import (
	"sync"
	"time"
)

// Tracker accumulates per-query metrics in process memory. Counters reset on
// restart; nothing is persisted.
type Tracker struct {
	mu          sync.Mutex
	total       int
	cacheHits   int
	errors      int
	latencies   []time.Duration
	errorCounts map[string]int
}

type Snapshot struct {
	TotalQueries int            `json:"total_queries"`
	CacheHits    int            `json:"cache_hits"`
	Errors       int            `json:"errors"`
	AvgLatency   time.Duration  `json:"avg_latency"`
	ErrorCounts  map[string]int `json:"error_counts"`
}

func NewTracker() *Tracker {
	return &Tracker{
		errorCounts: make(map[string]int),
	}
}

// TrackQuery records the outcome of one chat request. errKind is empty on
// success, otherwise a short label such as "upstream".
func (t *Tracker) TrackQuery(latency time.Duration, cacheHit bool, errKind string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total++
	t.latencies = append(t.latencies, latency)
	if cacheHit {
		t.cacheHits++
	}
	if errKind != "" {
		t.errors++
		t.errorCounts[errKind]++
	}
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sum time.Duration
	for _, l := range t.latencies {
		sum += l
	}
	var avg time.Duration
	if len(t.latencies) > 0 {
		avg = sum / time.Duration(len(t.latencies))
	}

	counts := make(map[string]int, len(t.errorCounts))
	for k, v := range t.errorCounts {
		counts[k] = v
	}

	return Snapshot{
		TotalQueries: t.total,
		CacheHits:    t.cacheHits,
		Errors:       t.errors,
		AvgLatency:   avg,
		ErrorCounts:  counts,
	}
}
