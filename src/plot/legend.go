package plot

import (
	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	legendSwatchWidth = 28
	legendSwatchGap   = 8
	legendItemGap     = 32
)

// bottomLegend draws one swatch and name per view, centred in the bottom margin.
func bottomLegend(d *Descriptor) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if len(d.Views) == 0 {
			return
		}
		style := chart.Style{
			FontSize:  d.Layout.LegendFontSize,
			FontColor: chart.ColorBlack,
		}.InheritFrom(defaults)
		style.WriteTextOptionsToRenderer(r)

		widths := make([]int, len(d.Views))
		total, textHeight := 0, 0
		for i, v := range d.Views {
			tb := r.MeasureText(v.Name)
			widths[i] = legendSwatchWidth + legendSwatchGap + tb.Width()
			total += widths[i]
			if tb.Height() > textHeight {
				textHeight = tb.Height()
			}
		}
		total += legendItemGap * (len(d.Views) - 1)

		x := (d.Canvas.Width - total) / 2
		y := d.Canvas.Height - d.Canvas.Margins.Bottom/2
		for i, v := range d.Views {
			col := parseColor(v.Color)
			r.SetStrokeColor(col)
			r.SetStrokeWidth(d.Layout.StrokeWidth + 1)
			r.MoveTo(x, y)
			r.LineTo(x+legendSwatchWidth, y)
			r.Stroke()
			if v.Marker == MarkerCircle {
				r.SetFillColor(col)
				r.Circle(d.Layout.DotWidth+1, x+legendSwatchWidth/2, y)
				r.FillStroke()
			}
			style.WriteTextOptionsToRenderer(r)
			r.Text(v.Name, x+legendSwatchWidth+legendSwatchGap, y+textHeight/2)
			x += widths[i] + legendItemGap
		}
	}
}
