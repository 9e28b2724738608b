// Package charts renders the benchmark metric series as time-series line
// charts and writes them out as PNG files. Each chart is built and rendered
// independently; nothing is shared between images.
package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/liaoran123/BenchMetrics/src/metrics"
)

const (
	wideWidth  = 1200
	wideHeight = 600
	rowHeight  = 400
)

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: col,
	}
}

// timeSeries builds one line. A single-point series is padded to two points
// so go-chart has a non-zero X range to draw.
func timeSeries(name string, times []time.Time, ys []float64, st chart.Style) chart.TimeSeries {
	if len(times) == 1 {
		t2 := times[0].Add(1 * time.Second)
		return chart.TimeSeries{Name: name, XValues: []time.Time{times[0], t2}, YValues: []float64{ys[0], ys[0]}, Style: st}
	}
	return chart.TimeSeries{Name: name, XValues: times, YValues: ys, Style: st}
}

func intsToFloats(a []int) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = float64(v)
	}
	return out
}

// Alloc builds the Alloc/HeapAlloc overlay chart (the only one with a legend).
func Alloc(s *metrics.Series) chart.Chart {
	series := []chart.Series{
		timeSeries("Alloc (MB)", s.Times, s.AllocMB, lineStyle(chart.ColorBlue)),
		timeSeries("HeapAlloc (MB)", s.Times, s.HeapAllocMB, lineStyle(chart.ColorAlternateGray)),
	}
	maxY := maxOf(s.AllocMB, s.HeapAllocMB)
	ch := chart.Chart{
		Title:      "Alloc / HeapAlloc over time",
		Width:      wideWidth,
		Height:     wideHeight,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 48}},
		XAxis:      timeXAxis(s.Times),
		YAxis:      yAxis("MB", maxY),
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// Goroutines builds the goroutine-count chart.
func Goroutines(s *metrics.Series) chart.Chart {
	ys := intsToFloats(s.Goroutines)
	return chart.Chart{
		Title:      "Goroutines over time",
		Width:      wideWidth,
		Height:     rowHeight,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 48}},
		XAxis:      timeXAxis(s.Times),
		YAxis:      yAxis("Count", maxOf(ys)),
		Series:     []chart.Series{timeSeries("Goroutines", s.Times, ys, lineStyle(chart.ColorGreen))},
	}
}

// GCCount builds the cumulative GC-cycle chart.
func GCCount(s *metrics.Series) chart.Chart {
	ys := intsToFloats(s.NumGC)
	return chart.Chart{
		Title:      "NumGC over time",
		Width:      wideWidth,
		Height:     rowHeight,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 48}},
		XAxis:      timeXAxis(s.Times),
		YAxis:      yAxis("Count", maxOf(ys)),
		Series:     []chart.Series{timeSeries("NumGC", s.Times, ys, lineStyle(chart.ColorAlternateGray))},
	}
}

// Pause builds the cumulative GC pause chart in milliseconds.
func Pause(s *metrics.Series) chart.Chart {
	return chart.Chart{
		Title:      "GC PauseTotal over time",
		Width:      wideWidth,
		Height:     rowHeight,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 48}},
		XAxis:      timeXAxis(s.Times),
		YAxis:      yAxis("ms", maxOf(s.PauseMS)),
		Series:     []chart.Series{timeSeries("PauseTotal (ms)", s.Times, s.PauseMS, lineStyle(chart.ColorRed))},
	}
}

// SpanCaption describes the sample count and time span, stamped onto each image.
func SpanCaption(s *metrics.Series) string {
	if s.Len() == 0 {
		return ""
	}
	first := s.Times[0]
	last := s.Times[s.Len()-1]
	return fmt.Sprintf("%d samples, %s to %s", s.Len(), first.Format("2006-01-02 15:04:05"), last.Format("15:04:05"))
}

// WritePNG renders ch, stamps the caption near the bottom-left and writes
// the finished image to path, overwriting any existing file.
func WritePNG(ch chart.Chart, caption, path string) error {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	img = Caption(img, caption)
	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 250, G: 250, B: 250, A: 255})
		}
	}
	return img
}

// WriteBlank writes the no-data fallback image at the same size the populated
// chart would use (wide for the alloc overlay), so an input with zero data
// rows still produces all four output files.
func WriteBlank(path string, wide bool) error {
	h := rowHeight
	if wide {
		h = wideHeight
	}
	var out bytes.Buffer
	if err := png.Encode(&out, blank(wideWidth, h)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func maxOf(seqs ...[]float64) float64 {
	max := 0.0
	for _, ys := range seqs {
		for _, v := range ys {
			if v > max {
				max = v
			}
		}
	}
	return max
}
