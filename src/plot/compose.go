package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/landesfeind/procrec/src/types"
)

// Title returns "PID <pid>" when a process was attached to, otherwise the command line.
func Title(opts types.Opts) string {
	if opts.PID != nil {
		return fmt.Sprintf("PID %d", *opts.PID)
	}
	return strings.Join(opts.Command, " ")
}

// Compose validates the input and builds the chart descriptor. An empty sequence yields
// ErrEmptyInput; non-finite or negative timestamps and CPU values yield ErrInvalidGeometry.
// Samples need not be sorted.
func Compose(data []types.Sample, opts types.Opts, l Layout) (*Descriptor, error) {
	const op = "compose"
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, newError(KindEmptyInput, op, errors.New("no samples to plot"))
	}
	for i, s := range data {
		if !finiteNonNegative(s.TS) || !finiteNonNegative(s.CPU) {
			return nil, newError(KindInvalidGeometry, op, errors.Errorf("sample %d has ts=%v cpu=%v", i, s.TS, s.CPU))
		}
	}

	scales := BuildScales(data, l)
	cpu := View{
		Name:   "CPU",
		Points: ProjectCPU(data),
		X:      scales.X,
		Y:      scales.CPU,
		Axis:   AxisLeft,
		Unit:   UnitPercent,
		Color:  l.CPUColor,
		Marker: MarkerCircle,
	}
	mem := View{
		Name:   "RSS",
		Points: ProjectMemory(data),
		X:      scales.X,
		Y:      scales.Memory,
		Axis:   AxisRight,
		Unit:   UnitBytes,
		Color:  l.MemoryColor,
		Marker: MarkerCircle,
	}

	return &Descriptor{
		Title: Title(opts),
		Canvas: Canvas{
			Width:   l.CanvasWidth(),
			Height:  l.CanvasHeight(),
			Margins: Margins{Top: l.Margin, Right: l.Margin, Bottom: l.Margin, Left: l.Margin},
		},
		Scales: scales,
		Views:  []View{cpu, mem},
		Labels: AxisLabels{Bottom: LabelBottom, Left: LabelLeft, Right: LabelRight},
		Legend: LegendBottom,
		Layout: l,
	}, nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
