// benchsample runs a synthetic sustained allocation workload while sampling
// Go runtime and system metrics on an interval, then writes the samples as
// JSON (and optionally the benchplot CSV). Flags take their defaults from
// BENCHSAMPLE_* environment variables so CI runs need no argument plumbing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/liaoran123/BenchMetrics/src/logging"
	"github.com/liaoran123/BenchMetrics/src/metrics"
	"github.com/liaoran123/BenchMetrics/src/sampler"
)

type config struct {
	Duration time.Duration `env:"BENCHSAMPLE_DURATION"`
	Interval time.Duration `env:"BENCHSAMPLE_INTERVAL"`
	Workers  int           `env:"BENCHSAMPLE_WORKERS"`
	Batch    int           `env:"BENCHSAMPLE_BATCH"`
	Out      string        `env:"BENCHSAMPLE_OUT"`
	CSV      string        `env:"BENCHSAMPLE_CSV"`
	LogLevel string        `env:"BENCHSAMPLE_LOG_LEVEL"`
}

func defaults() config {
	cfg := config{
		Duration: 60 * time.Second,
		Interval: 5 * time.Second,
		Workers:  4,
		Batch:    64,
		Out:      "bench_sustained_metrics_round2.json",
		LogLevel: "info",
	}
	if err := env.Parse(&cfg); err != nil {
		logging.Warnf("env overrides ignored: %v", err)
	}
	return cfg
}

func main() {
	cfg := defaults()
	flag.DurationVar(&cfg.Duration, "duration", cfg.Duration, "How long to run the workload")
	flag.DurationVar(&cfg.Interval, "interval", cfg.Interval, "Sampling interval")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent allocation workers")
	flag.IntVar(&cfg.Batch, "batch", cfg.Batch, "Chunks allocated per worker pass")
	flag.StringVar(&cfg.Out, "out", cfg.Out, "Output JSON samples file")
	flag.StringVar(&cfg.CSV, "csv", cfg.CSV, "Optional CSV export path")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	flag.Parse()
	logging.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	s := sampler.New(cfg.Interval)
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	logging.Infof("sustained run: duration=%s interval=%s workers=%d batch=%d", cfg.Duration, cfg.Interval, cfg.Workers, cfg.Batch)
	start := time.Now()
	if err := sampler.Churn(ctx, cfg.Workers, cfg.Batch); err != nil {
		fmt.Fprintf(os.Stderr, "error: workload: %v\n", err)
		os.Exit(1)
	}
	<-done
	logging.Since(start, "sustained run")

	samples := s.Samples()
	if len(samples) == 0 {
		logging.Warnf("no samples captured; interval %s longer than duration %s?", cfg.Interval, cfg.Duration)
		return
	}
	if err := metrics.WriteSamples(samples, cfg.Out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", cfg.Out)
	if cfg.CSV != "" {
		if err := metrics.WriteCSV(samples, cfg.CSV); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", cfg.CSV)
	}
	logging.Infof("captured %d samples", len(samples))
}
