package summary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liaoran123/BenchMetrics/src/metrics"
)

func TestSummarizeExactAndPercentileStats(t *testing.T) {
	samples := make([]metrics.Sample, 0, 100)
	for i := 1; i <= 100; i++ {
		samples = append(samples, metrics.Sample{
			NumGoroutine: i,
			Alloc:        uint64(i) * 1048576,
			HeapAlloc:    uint64(i) * 524288,
			PauseTotalNs: uint64(i) * 1000000,
		})
	}
	sum := Summarize(samples)

	require.Equal(t, 100, sum.Goroutines.Count)
	assert.EqualValues(t, 1, sum.Goroutines.Min)
	assert.EqualValues(t, 100, sum.Goroutines.Max)
	assert.InDelta(t, 50.5, sum.Goroutines.Mean, 1e-9)
	// HDR percentiles are exact to 3 significant figures
	assert.InEpsilon(t, 50, float64(sum.Goroutines.P50), 0.01)
	assert.InEpsilon(t, 95, float64(sum.Goroutines.P95), 0.01)
	assert.InEpsilon(t, 99, float64(sum.Goroutines.P99), 0.01)

	assert.EqualValues(t, 1048576, sum.Alloc.Min)
	assert.EqualValues(t, 100*1048576, sum.Alloc.Max)
	assert.InEpsilon(t, 50*1048576, float64(sum.Alloc.P50), 0.01)
	assert.InEpsilon(t, 50*1000000, float64(sum.PauseNs.P50), 0.01)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	assert.Zero(t, sum.Alloc.Count)
	assert.Zero(t, sum.Alloc.Max)
}

func TestSummarizeZeroValuesClampIntoHistogram(t *testing.T) {
	samples := []metrics.Sample{{PauseTotalNs: 0}, {PauseTotalNs: 0}}
	sum := Summarize(samples)
	assert.EqualValues(t, 0, sum.PauseNs.Min)
	assert.LessOrEqual(t, sum.PauseNs.P99, int64(1))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512.00 B", FormatBytes(512))
	assert.Equal(t, "1.00 MB", FormatBytes(1048576))
	assert.Equal(t, "2.50 GB", FormatBytes(2.5*1024*1024*1024))
}

func TestWriteTextLayout(t *testing.T) {
	samples := []metrics.Sample{
		{NumGoroutine: 8, Alloc: 1048576, HeapAlloc: 524288, PauseTotalNs: 1000000},
		{NumGoroutine: 12, Alloc: 2097152, HeapAlloc: 1048576, PauseTotalNs: 3000000},
	}
	var buf bytes.Buffer
	require.NoError(t, Summarize(samples).WriteText(&buf))
	out := buf.String()
	for _, section := range []string{"Alloc:", "HeapAlloc:", "NumGoroutine:", "PauseTotalNs:"} {
		assert.True(t, strings.Contains(out, section), "missing section %s in:\n%s", section, out)
	}
	assert.Contains(t, out, "p99")
	assert.Contains(t, out, "MB")
	assert.Contains(t, out, "ns")
}
