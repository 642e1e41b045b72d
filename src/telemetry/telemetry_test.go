package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landesfeind/procrec/src/plot"
)

func TestObserveRender(t *testing.T) {
	r := NewRecorder()
	r.ObserveRender(20*time.Millisecond, 12, nil)
	r.ObserveRender(time.Millisecond, 0, plot.ErrEmptyInput)
	r.ObserveRender(time.Millisecond, 5, &plot.Error{Kind: plot.KindIOFailure, Op: "render", Err: os.ErrPermission})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.renders.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.renders.WithLabelValues("empty_input")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.renders.WithLabelValues("io_failure")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.samples))

	mfs, err := r.Gatherer().Gather()
	require.NoError(t, err)
	var observed uint64
	for _, mf := range mfs {
		if mf.GetName() == "procplot_render_duration_seconds" {
			observed = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(3), observed)
}

func TestResult(t *testing.T) {
	assert.Equal(t, "invalid_geometry", Result(errors.Wrap(plot.ErrInvalidGeometry, "layout")))
	assert.Equal(t, "encoding_failure", Result(plot.ErrEncoding))
	assert.Equal(t, "error", Result(errors.New("other")))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveRender(time.Second, 3, nil)
	p := filepath.Join(t.TempDir(), "procplot.prom")

	require.NoError(t, r.WriteTextfile(p))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `procplot_renders_total{result="ok"} 1`)
	assert.Contains(t, string(b), "procplot_samples 3")
}
