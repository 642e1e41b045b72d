package plot

import (
	"math"

	"github.com/dustin/go-humanize"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/landesfeind/procrec/src/logging"
	"github.com/landesfeind/procrec/src/types"
)

// Scale is a linear mapping from a value domain to a pixel range.
type Scale struct {
	Domain [2]float64
	Range  [2]float64
}

// Scales bundles the three per-chart scales.
type Scales struct {
	X      Scale
	CPU    Scale
	Memory Scale
}

// Span is the width of the domain.
func (s Scale) Span() float64 { return s.Domain[1] - s.Domain[0] }

// Map translates v from the domain into the range. A zero-width domain maps every value onto
// the start of the range, which draws a flat line along the axis.
func (s Scale) Map(v float64) float64 {
	span := s.Span()
	if span == 0 {
		return s.Range[0]
	}
	return s.Range[0] + (v-s.Domain[0])/span*(s.Range[1]-s.Range[0])
}

// AxisRange converts the domain into a go-chart range. The span is widened to minSpan only
// when the domain is degenerate; the engine refuses zero-width ranges.
func (s Scale) AxisRange(minSpan float64) *chart.ContinuousRange {
	lo, hi := s.Domain[0], s.Domain[1]
	if hi-lo <= 0 || math.IsNaN(hi-lo) {
		hi = lo + minSpan
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// BuildScales computes the X, CPU and memory scales. All domains start at 0 and end at the
// maximum observed value across the whole sequence, so input order does not matter. Negative
// maxima and an empty sequence collapse to a zero-width domain.
func BuildScales(data []types.Sample, l Layout) Scales {
	w, h := float64(l.Width), float64(l.Height)
	return Scales{
		X:      Scale{Domain: [2]float64{0, maxTS(data)}, Range: [2]float64{0, w}},
		CPU:    Scale{Domain: [2]float64{0, maxCPU(data)}, Range: [2]float64{h, 0}},
		Memory: Scale{Domain: [2]float64{0, float64(maxRSS(data))}, Range: [2]float64{h, 0}},
	}
}

func maxTS(data []types.Sample) float64 {
	max := 0.0
	for _, s := range data {
		if s.TS > max {
			max = s.TS
		}
	}
	return max
}

func maxCPU(data []types.Sample) float64 {
	max := 0.0
	for _, s := range data {
		if s.CPU > max {
			max = s.CPU
		}
	}
	return max
}

func maxRSS(data []types.Sample) uint64 {
	var max uint64
	for _, s := range data {
		if s.RSS > max {
			max = s.RSS
		}
	}
	logging.Infof("found maximum memory at %d (%s)", max, humanize.IBytes(max))
	return max
}
