package benchmark

import (
	"fmt"

	"sortbench/internal/dataset"
	"sortbench/internal/memory"
	"sortbench/internal/sorting"
	"sortbench/internal/telemetry"
)

// Observer receives progress callbacks from a Suite. Any field may be nil.
type Observer struct {
	SizeStarted      func(size int)
	AlgorithmStarted func(size int, alg sorting.Algorithm)
	ResultRecorded   func(res Result)
}

// Suite runs every configured algorithm against every configured size.
type Suite struct {
	config   Config
	loader   dataset.Loader
	sampler  memory.Sampler
	runner   *Runner
	observer Observer
}

func NewSuite(cfg Config, loader dataset.Loader, sampler memory.Sampler) *Suite {
	return &Suite{
		config:  cfg,
		loader:  loader,
		sampler: sampler,
		runner:  NewRunner(cfg.ForceGC),
	}
}

// WithObserver sets the progress observer and returns the suite.
func (s *Suite) WithObserver(o Observer) *Suite {
	s.observer = o
	return s
}

// Run loads each dataset once and measures every algorithm against it in
// configuration order. Results are size-major, algorithm-minor. The first
// load failure aborts the run and discards everything measured so far.
func (s *Suite) Run() ([]Result, error) {
	if len(s.config.Sizes) == 0 {
		return nil, fmt.Errorf("no dataset sizes configured")
	}
	if len(s.config.Algorithms) == 0 {
		return nil, fmt.Errorf("no algorithms configured")
	}

	results := make([]Result, 0, len(s.config.Sizes)*len(s.config.Algorithms))

	for _, size := range s.config.Sizes {
		if s.observer.SizeStarted != nil {
			s.observer.SizeStarted(size)
		}

		data, err := s.loader.Load(size)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset for size %d: %w", size, err)
		}
		if len(data) != size {
			telemetry.LogWarn("Dataset length differs from requested size", "size", size, "elements", len(data))
		}

		for _, alg := range s.config.Algorithms {
			if s.observer.AlgorithmStarted != nil {
				s.observer.AlgorithmStarted(size, alg)
			}

			res := s.runner.Measure(alg, data, s.sampler)
			telemetry.LogDebug("Measured",
				"algorithm", res.Algorithm,
				"size", res.DataSize,
				"execution_time", res.ExecutionTime,
				"memory_used_mb", res.MemoryUsedMB,
			)
			results = append(results, res)

			if s.observer.ResultRecorded != nil {
				s.observer.ResultRecorded(res)
			}
		}
	}

	return results, nil
}
