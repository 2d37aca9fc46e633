// README: In-process conversation metrics (counters + latency aggregates).
package stats

import (
	"sync"
	"time"
)

// Recorder accumulates per-process conversation metrics. All methods are
// safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	started    time.Time
	requests   int64
	fallbacks  int64
	categories map[string]int64
	totalTime  time.Duration
	maxTime    time.Duration
}

// Snapshot is a point-in-time copy of the metrics.
type Snapshot struct {
	UptimeSeconds int64            `json:"uptime_seconds"`
	Requests      int64            `json:"requests"`
	Fallbacks     int64            `json:"fallbacks"`
	Categories    map[string]int64 `json:"categories"`
	AvgLatencyMs  int64            `json:"avg_latency_ms"`
	MaxLatencyMs  int64            `json:"max_latency_ms"`
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{started: time.Now(), categories: make(map[string]int64)}
}

// Record registers one processed message.
func (r *Recorder) Record(category string, elapsed time.Duration, fallback bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests++
	r.categories[category]++
	r.totalTime += elapsed
	if elapsed > r.maxTime {
		r.maxTime = elapsed
	}
	if fallback {
		r.fallbacks++
	}
}

// Current returns a copy of the metrics.
func (r *Recorder) Current() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		UptimeSeconds: int64(time.Since(r.started).Seconds()),
		Requests:      r.requests,
		Fallbacks:     r.fallbacks,
		Categories:    make(map[string]int64, len(r.categories)),
		MaxLatencyMs:  r.maxTime.Milliseconds(),
	}
	for k, v := range r.categories {
		snap.Categories[k] = v
	}
	if r.requests > 0 {
		snap.AvgLatencyMs = (r.totalTime / time.Duration(r.requests)).Milliseconds()
	}
	return snap
}
