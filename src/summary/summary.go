// Package summary aggregates sampled runtime metrics into per-metric
// distribution statistics for the human-readable run summary.
package summary

import (
	"fmt"
	"io"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/liaoran123/BenchMetrics/src/metrics"
)

// Histogram bounds: 1 unit up to 1 TiB (bytes) which also comfortably covers
// goroutine counts and cumulative pause nanoseconds. Three significant
// figures keeps percentile error under 0.1%.
const (
	histMin     = 1
	histMax     = int64(1) << 40
	histSigFigs = 3
)

// Stats holds the distribution of one metric across a run. Min, Max and Mean
// are exact; the percentiles come from an HDR histogram of the values.
type Stats struct {
	Count int
	Min   int64
	Max   int64
	Mean  float64
	P50   int64
	P95   int64
	P99   int64
}

// Summary holds per-metric distributions for one sample set.
type Summary struct {
	GeneratedAt time.Time
	Alloc       Stats
	HeapAlloc   Stats
	Goroutines  Stats
	PauseNs     Stats
}

// Summarize computes distribution statistics over the sample set.
func Summarize(samples []metrics.Sample) Summary {
	sum := Summary{GeneratedAt: time.Now()}
	n := len(samples)
	alloc := make([]int64, n)
	heapAlloc := make([]int64, n)
	goroutines := make([]int64, n)
	pauseNs := make([]int64, n)
	for i, s := range samples {
		alloc[i] = int64(s.Alloc)
		heapAlloc[i] = int64(s.HeapAlloc)
		goroutines[i] = int64(s.NumGoroutine)
		pauseNs[i] = int64(s.PauseTotalNs)
	}
	sum.Alloc = describe(alloc)
	sum.HeapAlloc = describe(heapAlloc)
	sum.Goroutines = describe(goroutines)
	sum.PauseNs = describe(pauseNs)
	return sum
}

func describe(values []int64) Stats {
	st := Stats{Count: len(values)}
	if len(values) == 0 {
		return st
	}
	hist := hdrhistogram.New(histMin, histMax, histSigFigs)
	var total float64
	st.Min = values[0]
	st.Max = values[0]
	for _, v := range values {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		total += float64(v)
		rec := v
		if rec < histMin {
			rec = histMin
		}
		if rec > histMax {
			rec = histMax
		}
		// cannot fail: rec is clamped into [histMin, histMax] above
		_ = hist.RecordValue(rec)
	}
	st.Mean = total / float64(len(values))
	st.P50 = hist.ValueAtQuantile(50)
	st.P95 = hist.ValueAtQuantile(95)
	st.P99 = hist.ValueAtQuantile(99)
	return st
}

// WriteText writes the summary in the fixed report layout.
func (s Summary) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Sustained metrics summary (generated: %s)\n\n", s.GeneratedAt.Format(time.RFC3339)); err != nil {
		return err
	}
	writeBytesSection(w, "Alloc", s.Alloc)
	writeBytesSection(w, "HeapAlloc", s.HeapAlloc)
	fmt.Fprintln(w, "NumGoroutine:")
	fmt.Fprintf(w, "  min: %d\n", s.Goroutines.Min)
	fmt.Fprintf(w, "  mean: %.2f\n", s.Goroutines.Mean)
	fmt.Fprintf(w, "  p50: %d\n", s.Goroutines.P50)
	fmt.Fprintf(w, "  p95: %d\n", s.Goroutines.P95)
	fmt.Fprintf(w, "  p99: %d\n", s.Goroutines.P99)
	fmt.Fprintf(w, "  max: %d\n\n", s.Goroutines.Max)
	fmt.Fprintln(w, "PauseTotalNs:")
	fmt.Fprintf(w, "  min: %d ns\n", s.PauseNs.Min)
	fmt.Fprintf(w, "  mean: %.0f ns\n", s.PauseNs.Mean)
	fmt.Fprintf(w, "  p50: %d ns\n", s.PauseNs.P50)
	fmt.Fprintf(w, "  p95: %d ns\n", s.PauseNs.P95)
	fmt.Fprintf(w, "  p99: %d ns\n", s.PauseNs.P99)
	fmt.Fprintf(w, "  max: %d ns\n", s.PauseNs.Max)
	return nil
}

func writeBytesSection(w io.Writer, name string, st Stats) {
	fmt.Fprintf(w, "%s:\n", name)
	fmt.Fprintf(w, "  min: %s\n", FormatBytes(float64(st.Min)))
	fmt.Fprintf(w, "  mean: %s\n", FormatBytes(st.Mean))
	fmt.Fprintf(w, "  p50: %s\n", FormatBytes(float64(st.P50)))
	fmt.Fprintf(w, "  p95: %s\n", FormatBytes(float64(st.P95)))
	fmt.Fprintf(w, "  p99: %s\n", FormatBytes(float64(st.P99)))
	fmt.Fprintf(w, "  max: %s\n\n", FormatBytes(float64(st.Max)))
}

// FormatBytes renders a byte quantity with a human unit.
func FormatBytes(f float64) string {
	units := []string{"B", "KB", "MB", "GB"}
	i := 0
	for f >= 1024 && i < len(units)-1 {
		f /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", f, units[i])
}
