package memory

import (
	"errors"
	"os"
	"testing"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	assert.IsType(t, &SystemSampler{}, s)

	s, err = New(KindSystem)
	require.NoError(t, err)
	assert.IsType(t, &SystemSampler{}, s)

	s, err = New(KindProcess)
	require.NoError(t, err)
	assert.IsType(t, &ProcessSampler{}, s)

	_, err = New("gpu")
	assert.ErrorContains(t, err, `unknown sampler "gpu"`)
}

func TestSystemSampler_ConvertsToMB(t *testing.T) {
	s := &SystemSampler{read: func() (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Used: 512 * 1024 * 1024}, nil
	}}
	assert.Equal(t, 512.0, s.Sample())
}

func TestSystemSampler_KeepsLastReadingOnError(t *testing.T) {
	calls := 0
	s := &SystemSampler{read: func() (*mem.VirtualMemoryStat, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("procfs unavailable")
		}
		return &mem.VirtualMemoryStat{Used: 3 * 1024 * 1024}, nil
	}}

	assert.Equal(t, 3.0, s.Sample())
	assert.Equal(t, 3.0, s.Sample())
	assert.Equal(t, 2, calls)
}

func TestProcessSampler_ConvertsToMB(t *testing.T) {
	s := &ProcessSampler{read: func() (*process.MemoryInfoStat, error) {
		return &process.MemoryInfoStat{RSS: 1536 * 1024}, nil
	}}
	assert.Equal(t, 1.5, s.Sample())
}

func TestSamplers_LiveReadings(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping live OS readings in short mode")
	}

	assert.Greater(t, NewSystemSampler().Sample(), 0.0)

	ps, err := NewProcessSampler(int32(os.Getpid()))
	require.NoError(t, err)
	assert.Greater(t, ps.Sample(), 0.0)
}
