package plot

import (
	"math"

	"github.com/pkg/errors"
)

// AxisSide selects which vertical axis a view is bound to.
type AxisSide int

const (
	AxisLeft AxisSide = iota
	AxisRight
)

// Marker is the glyph drawn at each data point.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerCircle
)

// Unit controls how axis values are labelled.
type Unit int

const (
	UnitNumber Unit = iota
	UnitPercent
	UnitBytes
)

// LegendPosition places the legend relative to the plot area.
type LegendPosition int

const (
	LegendBottom LegendPosition = iota
	LegendNone
)

// Margins are the padding between canvas edge and plot area.
type Margins struct {
	Top, Right, Bottom, Left int
}

// Canvas is the image size and its margins.
type Canvas struct {
	Width   int
	Height  int
	Margins Margins
}

// View is one line series bound to the shared X scale and its own Y scale.
type View struct {
	Name   string
	Points Series
	X      Scale
	Y      Scale
	Axis   AxisSide
	Unit   Unit
	Color  string
	Marker Marker
	// ShowLabels draws the value next to every point.
	ShowLabels bool
}

// AxisLabels are the names printed along each axis.
type AxisLabels struct {
	Bottom string
	Left   string
	Right  string
}

// Descriptor is the complete description of one chart as built by Compose. Render reads it
// without modifying it; callers that change fields must call Validate again before rendering.
type Descriptor struct {
	Title  string
	Canvas Canvas
	Scales Scales
	// Views holds the CPU view first and the memory view second.
	Views  []View
	Labels AxisLabels
	Legend LegendPosition
	Layout Layout
}

const (
	LabelBottom = "Seconds after start"
	LabelLeft   = "CPU Usage [%]"
	LabelRight  = "RSS Memory Usage"
)

// Validate checks that the descriptor is drawable: a canvas larger than its margins, one
// view per Y axis, and x/y sequences of equal length with finite values.
func (d *Descriptor) Validate() error {
	const op = "descriptor"
	if d == nil {
		return newError(KindInvalidGeometry, op, errors.New("nil descriptor"))
	}
	m := d.Canvas.Margins
	if d.Canvas.Width <= m.Left+m.Right || d.Canvas.Height <= m.Top+m.Bottom {
		return newError(KindInvalidGeometry, op, errors.Errorf("canvas %dx%d is smaller than its margins", d.Canvas.Width, d.Canvas.Height))
	}
	if len(d.Views) == 0 {
		return newError(KindInvalidGeometry, op, errors.New("no views"))
	}
	seen := map[AxisSide]bool{}
	for _, v := range d.Views {
		if seen[v.Axis] {
			return newError(KindInvalidGeometry, op, errors.Errorf("view %q shares an axis with another view", v.Name))
		}
		seen[v.Axis] = true
		if len(v.Points) == 0 {
			return newError(KindInvalidGeometry, op, errors.Errorf("view %q has no points", v.Name))
		}
		for i, p := range v.Points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				return newError(KindInvalidGeometry, op, errors.Errorf("view %q point %d is not finite", v.Name, i))
			}
		}
	}
	return nil
}
