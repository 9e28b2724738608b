package metrics

import (
	"strings"
	"testing"
	"time"
)

func row(t, alloc, heapAlloc, goroutines, numGC, pauseNs string) Record {
	return Record{
		"time":           t,
		"alloc":          alloc,
		"heap_alloc":     heapAlloc,
		"num_goroutine":  goroutines,
		"num_gc":         numGC,
		"pause_total_ns": pauseNs,
	}
}

func TestParseSeriesConversions(t *testing.T) {
	records := []Record{
		row("2025-08-30T12:00:00Z", "1048576", "2097152", "8", "3", "1000000"),
		row("2025-08-30T12:00:05Z", "0", "0", "12", "4", "0"),
	}
	s, err := ParseSeries(records)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 rows got %d", s.Len())
	}
	if s.AllocMB[0] != 1.0 {
		t.Fatalf("1048576 bytes should be exactly 1.0 MB, got %v", s.AllocMB[0])
	}
	if s.HeapAllocMB[0] != 2.0 {
		t.Fatalf("2097152 bytes should be exactly 2.0 MB, got %v", s.HeapAllocMB[0])
	}
	if s.AllocMB[1] != 0.0 {
		t.Fatalf("0 bytes should be 0.0 MB, got %v", s.AllocMB[1])
	}
	if s.PauseMS[0] != 1.0 {
		t.Fatalf("1000000 ns should be exactly 1.0 ms, got %v", s.PauseMS[0])
	}
	if s.Goroutines[0] != 8 || s.NumGC[1] != 4 {
		t.Fatalf("count columns mismatched: %+v", s)
	}
	want := time.Date(2025, 8, 30, 12, 0, 5, 0, time.UTC)
	if !s.Times[1].Equal(want) {
		t.Fatalf("time[1] = %v want %v", s.Times[1], want)
	}
}

func TestParseSeriesKeepsRowOrder(t *testing.T) {
	// Deliberately out of chronological order; parse must not re-sort.
	records := []Record{
		row("2025-08-30T12:00:10Z", "3145728", "1", "1", "1", "1"),
		row("2025-08-30T12:00:00Z", "1048576", "1", "1", "1", "1"),
		row("2025-08-30T12:00:05Z", "2097152", "1", "1", "1", "1"),
	}
	s, err := ParseSeries(records)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 rows got %d", s.Len())
	}
	if s.AllocMB[0] != 3.0 || s.AllocMB[1] != 1.0 || s.AllocMB[2] != 2.0 {
		t.Fatalf("rows re-ordered: %v", s.AllocMB)
	}
	if !s.Times[0].After(s.Times[1]) {
		t.Fatalf("expected insertion order preserved, got sorted times")
	}
}

func TestParseSeriesNonNumericAllocAborts(t *testing.T) {
	records := []Record{
		row("2025-08-30T12:00:00Z", "1048576", "1", "1", "1", "1"),
		row("2025-08-30T12:00:05Z", "abc", "1", "1", "1", "1"),
	}
	_, err := ParseSeries(records)
	if err == nil {
		t.Fatal("expected conversion error for alloc=abc")
	}
	if !strings.Contains(err.Error(), `"alloc"`) || !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("error should name row and column: %v", err)
	}
}

func TestParseSeriesMissingColumn(t *testing.T) {
	rec := row("2025-08-30T12:00:00Z", "1", "1", "1", "1", "1")
	delete(rec, "pause_total_ns")
	_, err := ParseSeries([]Record{rec})
	if err == nil {
		t.Fatal("expected error for missing pause_total_ns")
	}
	if !strings.Contains(err.Error(), "missing column") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseSeriesNaiveTimestamp(t *testing.T) {
	records := []Record{row("2025-08-30T12:00:00", "1", "1", "1", "1", "1")}
	s, err := ParseSeries(records)
	if err != nil {
		t.Fatalf("naive timestamp should parse: %v", err)
	}
	if s.Times[0].Hour() != 12 {
		t.Fatalf("unexpected time: %v", s.Times[0])
	}
}
