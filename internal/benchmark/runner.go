package benchmark

import (
	"runtime"
	"time"

	"sortbench/internal/memory"
	"sortbench/internal/sorting"
)

// Runner takes a single measurement.
type Runner struct {
	// ForceGC runs runtime.GC before the initial memory sample.
	ForceGC bool

	now func() time.Time
}

func NewRunner(forceGC bool) *Runner {
	return &Runner{ForceGC: forceGC, now: time.Now}
}

// Measure samples memory, times alg over data, samples memory again and
// returns the assembled Result. data is only read.
func (r *Runner) Measure(alg sorting.Algorithm, data []int, sampler memory.Sampler) Result {
	if r.ForceGC {
		runtime.GC()
	}

	initial := sampler.Sample()

	start := r.now()
	sorted := alg.Fn(data)
	elapsed := r.now().Sub(start)
	// Keep the output live until the timer stopped.
	runtime.KeepAlive(sorted)

	final := sampler.Sample()

	return Result{
		Algorithm:       alg.Name,
		DataSize:        len(data),
		ExecutionTime:   elapsed.Seconds(),
		MemoryUsedMB:    final - initial,
		InitialMemoryMB: initial,
		FinalMemoryMB:   final,
	}
}
