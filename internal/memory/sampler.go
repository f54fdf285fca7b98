package memory

import (
	"fmt"
	"os"

	"sortbench/internal/telemetry"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Sampler returns the currently used memory in megabytes.
type Sampler interface {
	Sample() float64
}

// Kinds accepted by New.
const (
	KindSystem  = "system"
	KindProcess = "process"
)

const bytesPerMB = 1024 * 1024

// New returns the sampler for kind.
func New(kind string) (Sampler, error) {
	switch kind {
	case "", KindSystem:
		return NewSystemSampler(), nil
	case KindProcess:
		return NewProcessSampler(int32(os.Getpid()))
	default:
		return nil, fmt.Errorf("unknown sampler %q (expected %q or %q)", kind, KindSystem, KindProcess)
	}
}

// SystemSampler reads system-wide used memory. Readings include every other
// process on the host, so deltas are not a per-call allocation count.
type SystemSampler struct {
	read func() (*mem.VirtualMemoryStat, error)
	last float64
}

func NewSystemSampler() *SystemSampler {
	return &SystemSampler{read: mem.VirtualMemory}
}

// Sample refreshes the system memory statistics. On a failed read the previous
// value is returned.
func (s *SystemSampler) Sample() float64 {
	vm, err := s.read()
	if err != nil {
		telemetry.LogError("Failed to read system memory", err, "fallback_mb", s.last)
		return s.last
	}
	s.last = float64(vm.Used) / bytesPerMB
	return s.last
}

// ProcessSampler reads the resident set size of a single process.
type ProcessSampler struct {
	read func() (*process.MemoryInfoStat, error)
	last float64
}

func NewProcessSampler(pid int32) (*ProcessSampler, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return nil, fmt.Errorf("failed to open process %d: %w", pid, err)
	}
	return &ProcessSampler{read: p.MemoryInfo}, nil
}

// Sample returns the process RSS in MB. On a failed read the previous value is returned.
func (s *ProcessSampler) Sample() float64 {
	info, err := s.read()
	if err != nil {
		telemetry.LogError("Failed to read process memory", err, "fallback_mb", s.last)
		return s.last
	}
	s.last = float64(info.RSS) / bytesPerMB
	return s.last
}
