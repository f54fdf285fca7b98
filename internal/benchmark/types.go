package benchmark

import (
	"time"

	"sortbench/internal/sorting"
)

// Result represents a single (algorithm, size) measurement.
type Result struct {
	Algorithm       string  `json:"algorithm"`
	DataSize        int     `json:"data_size"`
	ExecutionTime   float64 `json:"execution_time"`
	MemoryUsedMB    float64 `json:"memory_used_mb"`
	InitialMemoryMB float64 `json:"initial_memory_mb"`
	FinalMemoryMB   float64 `json:"final_memory_mb"`
}

// Run represents the results of a single suite execution.
type Run struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Results   []Result  `json:"results"`
}

// Config enumerates what a suite measures.
type Config struct {
	Sizes      []int
	Algorithms []sorting.Algorithm
	// ForceGC runs a garbage collection before each measurement.
	ForceGC bool
}

// DefaultSizes are the dataset sizes measured when nothing else is configured.
var DefaultSizes = []int{1000, 5000, 10000}

// DefaultConfig measures Insertion Sort and Bubble Sort over DefaultSizes.
func DefaultConfig() Config {
	return Config{
		Sizes:      append([]int(nil), DefaultSizes...),
		Algorithms: sorting.Default(),
	}
}
