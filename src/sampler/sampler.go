// Package sampler captures runtime and system metrics on a fixed interval
// while a sustained workload runs, producing the sample files the summary
// and plotting tools consume.
package sampler

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/liaoran123/BenchMetrics/src/metrics"
)

// Collect reads a single sample: Go runtime stats plus best-effort
// system-wide CPU and memory usage (zero when unavailable).
func Collect(now time.Time) metrics.Sample {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s := metrics.Sample{
		Time:         now.Format(time.RFC3339),
		NumGoroutine: runtime.NumGoroutine(),
		Alloc:        ms.Alloc,
		TotalAlloc:   ms.TotalAlloc,
		Sys:          ms.Sys,
		HeapAlloc:    ms.HeapAlloc,
		HeapSys:      ms.HeapSys,
		NumGC:        ms.NumGC,
		PauseTotalNs: ms.PauseTotalNs,
	}
	// CPU uses interval=0 (delta since the previous call).
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.MemPercent = vm.UsedPercent
	}
	return s
}

// Sampler collects samples on a ticker until its context ends.
type Sampler struct {
	Interval time.Duration

	mu      sync.Mutex
	samples []metrics.Sample
}

// New returns a Sampler with the given interval.
func New(interval time.Duration) *Sampler {
	return &Sampler{Interval: interval}
}

// Run blocks, appending one sample per tick, and returns when ctx ends.
func (s *Sampler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			sample := Collect(t)
			s.mu.Lock()
			s.samples = append(s.samples, sample)
			s.mu.Unlock()
		}
	}
}

// Samples returns a copy of everything collected so far.
func (s *Sampler) Samples() []metrics.Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]metrics.Sample, len(s.samples))
	copy(out, s.samples)
	return out
}
