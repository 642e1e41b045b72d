package plot

import "github.com/landesfeind/procrec/src/types"

// Point is one (x, y) coordinate pair.
type Point struct {
	X float64
	Y float64
}

// Series is an ordered coordinate sequence for one metric.
type Series []Point

// XValues returns the x coordinates in order.
func (s Series) XValues() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.X
	}
	return out
}

// YValues returns the y coordinates in order.
func (s Series) YValues() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Y
	}
	return out
}

// ProjectCPU maps each sample to (ts, cpu), one pair per sample in input order.
func ProjectCPU(data []types.Sample) Series {
	out := make(Series, len(data))
	for i, s := range data {
		out[i] = Point{X: s.TS, Y: s.CPU}
	}
	return out
}

// ProjectMemory maps each sample to (ts, rss), one pair per sample in input order.
func ProjectMemory(data []types.Sample) Series {
	out := make(Series, len(data))
	for i, s := range data {
		out[i] = Point{X: s.TS, Y: float64(s.RSS)}
	}
	return out
}
