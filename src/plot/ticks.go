package plot

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	chart "github.com/wcharczuk/go-chart/v2"
)

// niceTickValues returns up to about n positions covering [0, max] with a 1/2/2.5/5 x 10^k step.
// Positions never exceed max; the last one may fall short of it.
func niceTickValues(max float64, n int) []float64 {
	if n < 2 || max <= 0 || math.IsNaN(max) || math.IsInf(max, 0) {
		return []float64{0}
	}
	rawStep := max / float64(n-1)
	mag := pow10Floor(rawStep)
	norm := rawStep / mag
	step := mag
	switch {
	case norm <= 1:
		step = 1 * mag
	case norm <= 2:
		step = 2 * mag
	case norm <= 2.5:
		step = 2.5 * mag
	case norm <= 5:
		step = 5 * mag
	default:
		step = 10 * mag
	}
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return []float64{0}
	}
	count := int(math.Floor(max/step+1e-9)) + 1
	if count > n+1 {
		count = n + 1
	}
	out := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		v := float64(i) * step
		// Rounding only cleans float noise; below 1e-5 it would merge distinct ticks.
		if step >= 1e-5 {
			v = round6(v)
		}
		if v > max {
			v = max
		}
		out = append(out, v)
	}
	return out
}

// pow10Floor returns 10^floor(log10(x)) safeguarding tiny values.
func pow10Floor(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Pow(10, math.Floor(math.Log10(x)))
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// buildTicks lays ticks over rng and labels them with format. The range end always gets a
// tick so the engine scales the axis to the full domain.
func buildTicks(rng *chart.ContinuousRange, n int, format func(float64) string) []chart.Tick {
	vals := niceTickValues(rng.Max-rng.Min, n)
	ticks := make([]chart.Tick, 0, len(vals)+1)
	for _, v := range vals {
		x := rng.Min + v
		ticks = append(ticks, chart.Tick{Value: x, Label: format(x)})
	}
	last := ticks[len(ticks)-1].Value
	// Skip the closing tick when it would crowd the previous label.
	if rng.Max-last > (rng.Max-rng.Min)/float64(4*n) {
		ticks = append(ticks, chart.Tick{Value: rng.Max, Label: format(rng.Max)})
	}
	return ticks
}

// formatNumericTick renders a compact decimal label.
func formatNumericTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av == 0:
		return "0"
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	case av >= 1e-4:
		return strconv.FormatFloat(v, 'f', 4, 64)
	default:
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
}

func formatBytesTick(v float64) string {
	if v <= 0 {
		return "0 B"
	}
	// float64(math.MaxUint64) rounds up to 2^64, which does not convert.
	if v >= float64(math.MaxUint64) {
		return humanize.IBytes(math.MaxUint64)
	}
	return humanize.IBytes(uint64(math.Round(v)))
}
