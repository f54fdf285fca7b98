package config

import (
	"fmt"
	"strings"

	"sortbench/internal/memory"
	"sortbench/internal/sorting"
)

// Validate validates configuration values and returns an error listing every problem found.
func Validate(cfg *Config) error {
	var errors []string

	// Validate sizes (non-empty, positive)
	if len(cfg.Sizes) == 0 {
		errors = append(errors, "sizes must not be empty")
	}
	for _, size := range cfg.Sizes {
		if size <= 0 {
			errors = append(errors, fmt.Sprintf("sizes must be positive, got: %d", size))
		}
	}

	// Validate algorithms (non-empty, registered)
	if len(cfg.Algorithms) == 0 {
		errors = append(errors, "algorithms must not be empty")
	}
	for _, key := range cfg.Algorithms {
		if _, ok := sorting.Lookup(key); !ok {
			errors = append(errors, fmt.Sprintf("unknown algorithm %q (known: %s)", key, strings.Join(sorting.Keys(), ", ")))
		}
	}

	switch cfg.Sampler {
	case memory.KindSystem, memory.KindProcess:
	default:
		errors = append(errors, fmt.Sprintf("sampler must be %q or %q, got: %q", memory.KindSystem, memory.KindProcess, cfg.Sampler))
	}

	if strings.TrimSpace(cfg.Source) == "" {
		errors = append(errors, "source must not be empty")
	}
	if strings.ContainsAny(cfg.Source, `/\`) {
		errors = append(errors, fmt.Sprintf("source must not contain path separators, got: %q", cfg.Source))
	}

	if cfg.DataDir == "" {
		errors = append(errors, "data_dir must not be empty")
	}
	if cfg.ResultsDir == "" {
		errors = append(errors, "results_dir must not be empty")
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
