package plot

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landesfeind/procrec/src/types"
)

func intPtr(v int) *int { return &v }

func sampleRun() []types.Sample {
	return []types.Sample{
		{TS: 0, CPU: 3, RSS: 10 << 20},
		{TS: 1, CPU: 80, RSS: 12 << 20},
		{TS: 2, CPU: 130, RSS: 40 << 20},
		{TS: 3, CPU: 95, RSS: 38 << 20},
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "PID 42", Title(types.Opts{PID: intPtr(42), Command: []string{"ignored"}}))
	assert.Equal(t, "sleep 10", Title(types.Opts{Command: []string{"sleep", "10"}}))
	assert.Equal(t, "", Title(types.Opts{}))
}

func TestCompose_Descriptor(t *testing.T) {
	data := sampleRun()
	d, err := Compose(data, types.Opts{Command: []string{"make", "-j8"}}, DefaultLayout())
	require.NoError(t, err)

	assert.Equal(t, "make -j8", d.Title)
	assert.Equal(t, Canvas{Width: 1700, Height: 1000, Margins: Margins{100, 100, 100, 100}}, d.Canvas)
	assert.Equal(t, AxisLabels{Bottom: "Seconds after start", Left: "CPU Usage [%]", Right: "RSS Memory Usage"}, d.Labels)
	assert.Equal(t, LegendBottom, d.Legend)

	require.Len(t, d.Views, 2)
	cpu, mem := d.Views[0], d.Views[1]
	assert.Equal(t, AxisLeft, cpu.Axis)
	assert.Equal(t, AxisRight, mem.Axis)
	assert.Equal(t, d.Scales.X, cpu.X)
	assert.Equal(t, d.Scales.X, mem.X)
	assert.Equal(t, d.Scales.CPU, cpu.Y)
	assert.Equal(t, d.Scales.Memory, mem.Y)
	assert.Equal(t, MarkerCircle, cpu.Marker)
	assert.Equal(t, MarkerCircle, mem.Marker)
	assert.False(t, cpu.ShowLabels)
	assert.False(t, mem.ShowLabels)
	assert.NotEqual(t, cpu.Color, mem.Color)
	assert.Equal(t, ProjectCPU(data), cpu.Points)
	assert.Equal(t, ProjectMemory(data), mem.Points)
	assert.Equal(t, 130.0, d.Scales.CPU.Domain[1])
	assert.Equal(t, float64(40<<20), d.Scales.Memory.Domain[1])
}

func TestCompose_EmptyInput(t *testing.T) {
	_, err := Compose(nil, types.Opts{PID: intPtr(1)}, DefaultLayout())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.NotErrorIs(t, err, ErrIO)
}

func TestCompose_RejectsNonFinite(t *testing.T) {
	for _, s := range []types.Sample{
		{TS: math.NaN()},
		{TS: 1, CPU: math.Inf(1)},
		{TS: -1},
	} {
		_, err := Compose([]types.Sample{{TS: 0}, s}, types.Opts{}, DefaultLayout())
		assert.ErrorIs(t, err, ErrInvalidGeometry, "%+v", s)
	}
}

func TestCompose_RejectsBadLayout(t *testing.T) {
	l := DefaultLayout()
	l.Width = 0
	_, err := Compose(sampleRun(), types.Opts{}, l)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestLoadLayout_OverlaysDefaults(t *testing.T) {
	l, err := LoadLayout(strings.NewReader("width: 800\ncpu_color: \"#00ff00\"\nfooter: host-a\n"))
	require.NoError(t, err)
	assert.Equal(t, 800, l.Width)
	assert.Equal(t, 800, l.Height)
	assert.Equal(t, "#00ff00", l.CPUColor)
	assert.Equal(t, "4682B4", l.MemoryColor)
	assert.Equal(t, "host-a", l.Footer)
	assert.Equal(t, 1000, l.CanvasWidth())
}

func TestLoadLayout_Invalid(t *testing.T) {
	_, err := LoadLayout(strings.NewReader("cpu_color: red\n"))
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = LoadLayout(strings.NewReader("no_such_key: 1\n"))
	assert.Error(t, err)

	_, err = LoadLayout(strings.NewReader("margin: 900\n"))
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestError_Messages(t *testing.T) {
	assert.Equal(t, "empty input", ErrEmptyInput.Error())
	err := newError(KindIOFailure, "render", assert.AnError)
	assert.Contains(t, err.Error(), "render: io failure: ")
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, assert.AnError)
}
