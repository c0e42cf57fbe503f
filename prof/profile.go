// Package prof collects coarse wall-clock timings for the verification
// phases, keyed by label. Intended for the cmd tools, not for production
// telemetry.
package prof

import (
	"sort"
	"sync"
	"time"
)

// Stat aggregates every duration recorded under one label.
type Stat struct {
	Label string
	Count int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Mean is the average duration per recorded call.
func (s Stat) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

var (
	mu     sync.Mutex
	record map[string]Stat
)

// Track logs the duration since start under the given label.
//
//	defer prof.Track(time.Now(), "verify")
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	defer mu.Unlock()
	if record == nil {
		record = make(map[string]Stat)
	}
	s, ok := record[label]
	if !ok {
		s = Stat{Label: label, Min: elapsed, Max: elapsed}
	}
	s.Count++
	s.Total += elapsed
	if elapsed < s.Min {
		s.Min = elapsed
	}
	if elapsed > s.Max {
		s.Max = elapsed
	}
	record[label] = s
}

// SnapshotAndReset returns the aggregated stats sorted by label and clears
// the recorder.
func SnapshotAndReset() []Stat {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Stat, 0, len(record))
	for _, s := range record {
		out = append(out, s)
	}
	record = nil
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
