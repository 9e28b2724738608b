// benchplot renders the sustained-benchmark metrics CSV as four time-series
// charts in the current directory. It takes no flags: the input path and the
// output names are fixed by the benchmark workflow, so a run is always
//
//	benchplot  ->  bench_alloc.png bench_goroutines.png bench_numgc.png bench_pause.png
//
// A missing CSV reports on stdout and exits non-zero; a malformed row aborts
// before any image is written.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/liaoran123/BenchMetrics/src/charts"
	"github.com/liaoran123/BenchMetrics/src/metrics"
)

const csvPath = "bench_sustained_metrics_round2.csv"

const (
	allocPNG      = "bench_alloc.png"
	goroutinesPNG = "bench_goroutines.png"
	numGCPNG      = "bench_numgc.png"
	pausePNG      = "bench_pause.png"
)

// errMissingCSV marks the already-reported missing-input case so main can
// exit non-zero without printing a second error.
var errMissingCSV = errors.New("csv not found")

func run(stdout io.Writer) error {
	if _, err := os.Stat(csvPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(stdout, "CSV not found: %s\n", csvPath)
			return errMissingCSV
		}
		return fmt.Errorf("stat %s: %w", csvPath, err)
	}
	records, err := metrics.ReadCSV(csvPath)
	if err != nil {
		return err
	}
	series, err := metrics.ParseSeries(records)
	if err != nil {
		return err
	}
	caption := charts.SpanCaption(series)
	outputs := []struct {
		name  string
		build func(*metrics.Series) chart.Chart
	}{
		{allocPNG, charts.Alloc},
		{goroutinesPNG, charts.Goroutines},
		{numGCPNG, charts.GCCount},
		{pausePNG, charts.Pause},
	}
	if series.Len() == 0 {
		// Header-only input: go-chart cannot draw empty series, so fall back
		// to blank images of the same sizes and finish normally.
		for _, out := range outputs {
			if err := charts.WriteBlank(out.name, out.name == allocPNG); err != nil {
				return fmt.Errorf("%s: %w", out.name, err)
			}
			fmt.Fprintf(stdout, "wrote %s\n", out.name)
		}
		return nil
	}
	for _, out := range outputs {
		ch := out.build(series)
		if err := charts.WritePNG(ch, caption, out.name); err != nil {
			return fmt.Errorf("%s: %w", out.name, err)
		}
		fmt.Fprintf(stdout, "wrote %s\n", out.name)
	}
	return nil
}

func main() {
	if err := run(os.Stdout); err != nil {
		if !errors.Is(err, errMissingCSV) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
