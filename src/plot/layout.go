package plot

import (
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v2"
)

// Layout holds the presentation defaults of a chart. Callers override fields to restyle a
// chart without touching scale or series computation.
type Layout struct {
	// Width and Height size the plot area and are the pixel ranges of the scales.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// MarginAllowance is added to both Width and Height to obtain the canvas size.
	MarginAllowance int `yaml:"margin_allowance"`
	// Margin is applied uniformly on all four sides.
	Margin int `yaml:"margin"`

	CPUColor    string  `yaml:"cpu_color"`
	MemoryColor string  `yaml:"memory_color"`
	StrokeWidth float64 `yaml:"stroke_width"`
	DotWidth    float64 `yaml:"dot_width"`

	// MinSpan is the axis span used in place of a zero-width domain.
	MinSpan float64 `yaml:"min_span"`
	// TickCount is the desired number of ticks per axis.
	TickCount      int     `yaml:"tick_count"`
	LegendFontSize float64 `yaml:"legend_font_size"`
	// Footer is an optional note stamped at the bottom-left of PNG output.
	Footer string `yaml:"footer"`
}

// DefaultLayout returns the stock 1500x800 plot on a 1700x1000 canvas.
func DefaultLayout() Layout {
	return Layout{
		Width:           1500,
		Height:          800,
		MarginAllowance: 200,
		Margin:          100,
		CPUColor:        "B22222", // firebrick
		MemoryColor:     "4682B4", // steelblue
		StrokeWidth:     1.5,
		DotWidth:        3,
		MinSpan:         1,
		TickCount:       8,
		LegendFontSize:  12,
	}
}

// LoadLayout reads YAML from r on top of DefaultLayout.
func LoadLayout(r io.Reader) (Layout, error) {
	l := DefaultLayout()
	stream, err := io.ReadAll(r)
	if err != nil {
		return l, errors.Wrap(err, "read layout")
	}
	if err := yaml.UnmarshalStrict(stream, &l); err != nil {
		return l, errors.Wrap(err, "parse layout")
	}
	return l, l.Validate()
}

// CanvasWidth is the full image width.
func (l Layout) CanvasWidth() int { return l.Width + l.MarginAllowance }

// CanvasHeight is the full image height.
func (l Layout) CanvasHeight() int { return l.Height + l.MarginAllowance }

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate rejects layouts that cannot produce a drawable canvas.
func (l Layout) Validate() error {
	const op = "layout"
	switch {
	case l.Width <= 0 || l.Height <= 0:
		return newError(KindInvalidGeometry, op, errors.Errorf("plot size must be positive, got %dx%d", l.Width, l.Height))
	case l.MarginAllowance < 0 || l.Margin < 0:
		return newError(KindInvalidGeometry, op, errors.Errorf("margins must not be negative"))
	case 2*l.Margin >= l.CanvasWidth() || 2*l.Margin >= l.CanvasHeight():
		return newError(KindInvalidGeometry, op, errors.Errorf("margin %d leaves no room on a %dx%d canvas", l.Margin, l.CanvasWidth(), l.CanvasHeight()))
	case l.MinSpan <= 0:
		return newError(KindInvalidGeometry, op, errors.Errorf("min_span must be positive, got %v", l.MinSpan))
	case l.TickCount < 2:
		return newError(KindInvalidGeometry, op, errors.Errorf("tick_count must be at least 2, got %d", l.TickCount))
	}
	for name, c := range map[string]string{"cpu_color": l.CPUColor, "memory_color": l.MemoryColor} {
		if !hexColor.MatchString(strings.TrimSpace(c)) {
			return newError(KindInvalidGeometry, op, errors.Errorf("%s %q is not a hex color", name, c))
		}
	}
	return nil
}

func parseColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
}
