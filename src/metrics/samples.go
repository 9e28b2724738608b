package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Sample is one runtime snapshot captured during a sustained benchmark run.
// Field names match the JSON emitted by the sampler; the CSV export uses a
// subset plus the best-effort system columns.
type Sample struct {
	Time         string  `json:"time"`
	NumGoroutine int     `json:"num_goroutine"`
	Alloc        uint64  `json:"alloc"`
	TotalAlloc   uint64  `json:"total_alloc"`
	Sys          uint64  `json:"sys"`
	HeapAlloc    uint64  `json:"heap_alloc"`
	HeapSys      uint64  `json:"heap_sys"`
	NumGC        uint32  `json:"num_gc"`
	PauseTotalNs uint64  `json:"pause_total_ns"`
	CPUPercent   float64 `json:"cpu_percent,omitempty"`
	MemPercent   float64 `json:"mem_percent,omitempty"`
}

// ReadSamples loads a JSON array of samples as written by WriteSamples.
func ReadSamples(path string) ([]Sample, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s []Sample
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// WriteSamples writes the samples as an indented JSON array.
func WriteSamples(samples []Sample, path string) error {
	b, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// csvHeader is the canonical column order consumed by the plotting tool.
// The two system columns at the end are extra; readers that only know the
// runtime columns ignore them.
var csvHeader = []string{"time", "num_goroutine", "alloc", "heap_alloc", "num_gc", "pause_total_ns", "cpu_percent", "mem_percent"}

// WriteCSV exports the samples in the plotter's CSV format.
func WriteCSV(samples []Sample, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			s.Time,
			strconv.Itoa(s.NumGoroutine),
			strconv.FormatUint(s.Alloc, 10),
			strconv.FormatUint(s.HeapAlloc, 10),
			strconv.FormatUint(uint64(s.NumGC), 10),
			strconv.FormatUint(s.PauseTotalNs, 10),
			strconv.FormatFloat(s.CPUPercent, 'f', 2, 64),
			strconv.FormatFloat(s.MemPercent, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
