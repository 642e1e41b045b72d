package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landesfeind/procrec/src/types"
)

func TestProject_OnePairPerSampleInOrder(t *testing.T) {
	data := []types.Sample{
		{TS: 0, CPU: 1.5, RSS: 1024},
		{TS: 3, CPU: 0, RSS: 2048},
		{TS: 1, CPU: 120, RSS: 0},
	}
	cpu := ProjectCPU(data)
	mem := ProjectMemory(data)
	require.Len(t, cpu, len(data))
	require.Len(t, mem, len(data))

	for i, s := range data {
		assert.Equal(t, Point{X: s.TS, Y: s.CPU}, cpu[i])
		assert.Equal(t, Point{X: s.TS, Y: float64(s.RSS)}, mem[i])
	}
	assert.Equal(t, []float64{0, 3, 1}, cpu.XValues())
	assert.Equal(t, []float64{1024, 2048, 0}, mem.YValues())
}

func TestProject_Empty(t *testing.T) {
	assert.Empty(t, ProjectCPU(nil))
	assert.Empty(t, ProjectMemory(nil))
}
