package plot

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/landesfeind/procrec/src/logging"
	"github.com/landesfeind/procrec/src/types"
)

// Format is the image encoding of the output file.
type Format int

const (
	FormatPNG Format = iota
	FormatSVG
)

// FormatFromPath picks SVG for a .svg extension and PNG for anything else.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatPNG
}

// Engine turns a descriptor into encoded image bytes.
type Engine interface {
	Encode(d *Descriptor, f Format, w io.Writer) error
}

// GoChartEngine renders descriptors with go-chart.
type GoChartEngine struct{}

// Encode implements Engine.
func (GoChartEngine) Encode(d *Descriptor, f Format, w io.Writer) error {
	ch := toChart(d)
	provider := chart.PNG
	if f == FormatSVG {
		provider = chart.SVG
	}
	return ch.Render(provider, w)
}

func toChart(d *Descriptor) chart.Chart {
	l := d.Layout
	m := d.Canvas.Margins
	xr := d.Scales.X.AxisRange(l.MinSpan)
	ch := chart.Chart{
		Title:  d.Title,
		Width:  d.Canvas.Width,
		Height: d.Canvas.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: m.Top, Left: m.Left, Right: m.Right, Bottom: m.Bottom, IsSet: true},
		},
		XAxis: chart.XAxis{
			Name:  d.Labels.Bottom,
			Range: xr,
			Ticks: buildTicks(xr, l.TickCount, formatNumericTick),
		},
	}
	for _, v := range d.Views {
		yr := v.Y.AxisRange(l.MinSpan)
		axis := chart.YAxis{Range: yr, Ticks: buildTicks(yr, l.TickCount, unitFormatter(v.Unit))}
		seriesAxis := chart.YAxisPrimary
		// go-chart draws the primary axis on the right and the secondary on the left.
		if v.Axis == AxisLeft {
			axis.Name = d.Labels.Left
			ch.YAxisSecondary = axis
			seriesAxis = chart.YAxisSecondary
		} else {
			axis.Name = d.Labels.Right
			ch.YAxis = axis
		}
		ch.Series = append(ch.Series, viewSeries(v, seriesAxis, l)...)
	}
	if d.Legend == LegendBottom {
		ch.Elements = []chart.Renderable{bottomLegend(d)}
	}
	return ch
}

func viewSeries(v View, axis chart.YAxisType, l Layout) []chart.Series {
	col := parseColor(v.Color)
	st := chart.Style{StrokeColor: col, StrokeWidth: l.StrokeWidth}
	if v.Marker == MarkerCircle {
		st.DotColor = col
		st.DotWidth = l.DotWidth
	}
	out := []chart.Series{chart.ContinuousSeries{
		Name:    v.Name,
		Style:   st,
		YAxis:   axis,
		XValues: v.Points.XValues(),
		YValues: v.Points.YValues(),
	}}
	if v.ShowLabels {
		format := unitFormatter(v.Unit)
		ann := chart.AnnotationSeries{Name: v.Name + " labels", YAxis: axis}
		for _, p := range v.Points {
			ann.Annotations = append(ann.Annotations, chart.Value2{XValue: p.X, YValue: p.Y, Label: format(p.Y)})
		}
		out = append(out, ann)
	}
	return out
}

func unitFormatter(u Unit) func(float64) string {
	switch u {
	case UnitBytes:
		return formatBytesTick
	case UnitPercent:
		return func(v float64) string { return formatNumericTick(v) + "%" }
	default:
		return formatNumericTick
	}
}

// Render encodes d and writes it to path, creating or truncating the file. The image is
// encoded in memory first so a failed encode leaves an existing file untouched.
func Render(d *Descriptor, path string, e Engine) error {
	const op = "render"
	if err := d.Validate(); err != nil {
		return err
	}
	if e == nil {
		e = GoChartEngine{}
	}
	f := FormatFromPath(path)
	var buf bytes.Buffer
	if err := e.Encode(d, f, &buf); err != nil {
		return newError(KindEncodingFailure, op, err)
	}
	out := buf.Bytes()
	if f == FormatPNG && strings.TrimSpace(d.Layout.Footer) != "" {
		stamped, err := stampFooter(out, d.Layout.Footer)
		if err != nil {
			return newError(KindEncodingFailure, op, err)
		}
		out = stamped
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return newError(KindIOFailure, op, errors.Wrapf(err, "write %s", path))
	}
	logging.Debugf("wrote %s (%d bytes)", path, len(out))
	return nil
}

// Plot composes the chart for data and writes it to opts.Output.
func Plot(data []types.Sample, opts types.Opts, l Layout) error {
	defer logging.TimeTrack(time.Now(), "plot")
	d, err := Compose(data, opts, l)
	if err != nil {
		return err
	}
	return Render(d, opts.Output, nil)
}
