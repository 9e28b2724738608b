// Package metrics holds the data model shared by the benchmark tooling:
// raw CSV records, the typed per-run series derived from them, and the
// JSON sample format written by the sustained-load sampler.
package metrics

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	bytesPerMiB = 1024.0 * 1024.0
	nsPerMilli  = 1e6
)

// Record is one CSV row, column name -> raw string value.
type Record map[string]string

// Series holds the five typed sequences derived from a metrics CSV,
// index-aligned to the original row order. All slices have equal length.
type Series struct {
	Times       []time.Time
	AllocMB     []float64
	HeapAllocMB []float64
	Goroutines  []int
	NumGC       []int
	PauseMS     []float64
}

// Len returns the number of parsed rows.
func (s *Series) Len() int { return len(s.Times) }

// ParseSeries converts records into a Series in row order. The first field
// that is absent or fails conversion aborts the whole parse; there is no
// per-row recovery.
func ParseSeries(records []Record) (*Series, error) {
	s := &Series{
		Times:       make([]time.Time, 0, len(records)),
		AllocMB:     make([]float64, 0, len(records)),
		HeapAllocMB: make([]float64, 0, len(records)),
		Goroutines:  make([]int, 0, len(records)),
		NumGC:       make([]int, 0, len(records)),
		PauseMS:     make([]float64, 0, len(records)),
	}
	for i, rec := range records {
		t, err := timeField(rec, i, "time")
		if err != nil {
			return nil, err
		}
		alloc, err := intField(rec, i, "alloc")
		if err != nil {
			return nil, err
		}
		heapAlloc, err := intField(rec, i, "heap_alloc")
		if err != nil {
			return nil, err
		}
		goroutines, err := intField(rec, i, "num_goroutine")
		if err != nil {
			return nil, err
		}
		numGC, err := intField(rec, i, "num_gc")
		if err != nil {
			return nil, err
		}
		pauseNs, err := intField(rec, i, "pause_total_ns")
		if err != nil {
			return nil, err
		}
		s.Times = append(s.Times, t)
		s.AllocMB = append(s.AllocMB, float64(alloc)/bytesPerMiB)
		s.HeapAllocMB = append(s.HeapAllocMB, float64(heapAlloc)/bytesPerMiB)
		s.Goroutines = append(s.Goroutines, int(goroutines))
		s.NumGC = append(s.NumGC, int(numGC))
		s.PauseMS = append(s.PauseMS, float64(pauseNs)/nsPerMilli)
	}
	return s, nil
}

func intField(rec Record, row int, col string) (int64, error) {
	v, ok := rec[col]
	if !ok {
		return 0, fmt.Errorf("row %d: missing column %q", row+1, col)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: column %q: %w", row+1, col, err)
	}
	return n, nil
}

// timeField parses an RFC3339 timestamp; a timezone-naive value
// (no offset suffix) is accepted as-is and treated as UTC.
func timeField(rec Record, row int, col string) (time.Time, error) {
	v, ok := rec[col]
	if !ok {
		return time.Time{}, fmt.Errorf("row %d: missing column %q", row+1, col)
	}
	raw := strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("row %d: column %q: %w", row+1, col, err)
	}
	return t, nil
}
