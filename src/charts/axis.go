package charts

import (
	"fmt"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// timeXAxis builds the shared X axis: rounded time ticks across the span and
// an explicit range so a single-timestamp series still renders.
func timeXAxis(times []time.Time) chart.XAxis {
	if len(times) == 0 {
		return chart.XAxis{Name: "Time"}
	}
	minT := times[0]
	maxT := times[0]
	for _, t := range times[1:] {
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
	}
	step, labFmt := pickTimeStep(maxT.Sub(minT))
	ticks := makeTimeTicks(minT, maxT, step, labFmt)
	if len(ticks) < 2 {
		next := minT.Add(step)
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(next), Label: next.Format(labFmt)})
	}
	minF := chart.TimeToFloat64(minT)
	maxF := chart.TimeToFloat64(maxT)
	if maxF <= minF {
		maxF = chart.TimeToFloat64(minT.Add(step))
	}
	return chart.XAxis{Name: "Time", Ticks: ticks, Range: &chart.ContinuousRange{Min: minF, Max: maxF}}
}

// pickTimeStep maps a span to a tick interval and label format.
func pickTimeStep(span time.Duration) (time.Duration, string) {
	switch {
	case span <= 2*time.Minute:
		return 10 * time.Second, "15:04:05"
	case span <= 10*time.Minute:
		return 1 * time.Minute, "15:04"
	case span <= 30*time.Minute:
		return 5 * time.Minute, "15:04"
	case span <= 2*time.Hour:
		return 10 * time.Minute, "15:04"
	case span <= 24*time.Hour:
		return 1 * time.Hour, "Jan 2 15:04"
	default:
		return 24 * time.Hour, "Jan 2"
	}
}

// makeTimeTicks returns ticks aligned to step boundaries between minT and maxT.
// Alignment happens in UTC to keep labels stable across DST transitions.
func makeTimeTicks(minT, maxT time.Time, step time.Duration, labelFmt string) []chart.Tick {
	if step <= 0 {
		return nil
	}
	st := int64(step.Seconds())
	if st <= 0 {
		st = 1
	}
	aligned := time.Unix((minT.UTC().Unix()/st)*st, 0).UTC()
	ticks := []chart.Tick{}
	for t := aligned; !t.After(maxT.UTC().Add(step)); t = t.Add(step) {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: t.Format(labelFmt)})
		if len(ticks) > 20 { // keep it readable
			break
		}
	}
	return ticks
}

// yAxis anchors the Y range at zero with a rounded max; every metric here is
// non-negative.
func yAxis(name string, rawMax float64) chart.YAxis {
	if rawMax <= 0 {
		rawMax = 1
	}
	nMax := niceCeil(rawMax * 1.05)
	return chart.YAxis{
		Name:  name,
		Range: &chart.ContinuousRange{Min: 0, Max: nMax},
		Ticks: niceTicks(0, nMax, 6),
	}
}

// niceCeil rounds v up to a "nice" boundary based on its order of magnitude.
func niceCeil(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v/mag) * mag
}

// niceTicks generates up to n tick marks between [min, max] using nice increments.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
