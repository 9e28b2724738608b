// benchsummary turns the sampled metrics JSON from a sustained benchmark run
// into a per-metric distribution summary and the CSV consumed by benchplot.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/liaoran123/BenchMetrics/src/metrics"
	"github.com/liaoran123/BenchMetrics/src/summary"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "bench_sustained_metrics_round2.json", "Path to the sampled metrics JSON")
	flag.Parse()

	samples, err := metrics.ReadSamples(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(samples) == 0 {
		fmt.Println("no samples found")
		return
	}

	sum := summary.Summarize(samples)
	base := strings.TrimSuffix(file, filepath.Ext(file))

	txtPath := base + "_summary.txt"
	f, err := os.Create(txtPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: create summary: %v\n", err)
		os.Exit(1)
	}
	if err := sum.WriteText(f); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "error: write summary: %v\n", err)
		os.Exit(1)
	}
	f.Close()

	csvPath := base + ".csv"
	if err := metrics.WriteCSV(samples, csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: write csv: %v\n", err)
	} else {
		fmt.Printf("wrote %s\n", csvPath)
	}
	fmt.Printf("wrote %s\n", txtPath)
}
