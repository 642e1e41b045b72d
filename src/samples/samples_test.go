package samples

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landesfeind/procrec/src/types"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_JSONL(t *testing.T) {
	p := writeFile(t, "run.jsonl", `{"ts":0,"cpu":1.5,"rss":1024}

{"ts":1,"cpu":150,"rss":4096}
`)
	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []types.Sample{{TS: 0, CPU: 1.5, RSS: 1024}, {TS: 1, CPU: 150, RSS: 4096}}, got)
}

func TestLoad_JSONLBadLine(t *testing.T) {
	p := writeFile(t, "bad.jsonl", "{\"ts\":0}\nnot json\n")
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), p)
}

func TestLoad_CSVWithHeader(t *testing.T) {
	p := writeFile(t, "run.CSV", "ts,cpu,rss\n# warmup done\n0,0.5,100\n2.5, 99.9, 2048\n")
	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []types.Sample{{TS: 0, CPU: 0.5, RSS: 100}, {TS: 2.5, CPU: 99.9, RSS: 2048}}, got)
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("0,1,2\nx,1,2\n"))
	assert.ErrorContains(t, err, "row 2 ts")

	_, err = ReadCSV(strings.NewReader("0,1,-5\n"))
	assert.ErrorContains(t, err, "row 1 rss")

	_, err = ReadCSV(strings.NewReader("0,1\n"))
	assert.Error(t, err)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]types.Sample{
		{TS: 4, CPU: 50, RSS: 300},
		{TS: 1, CPU: 150, RSS: 100},
		{TS: 2, CPU: 100, RSS: 200},
	})
	assert.Equal(t, Summary{Count: 3, Duration: 4, MaxCPU: 150, MeanCPU: 100, MaxRSS: 300, MeanRSS: 200}, s)
	assert.Equal(t, Summary{}, Summarize(nil))
}
