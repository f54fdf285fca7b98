package benchmark

import "fmt"

type Comparison struct {
	Algorithm         string
	DataSize          int
	ExecutionTimeDiff float64 // Percentage change
	MemoryUsedDiff    float64 // Absolute change in MB
	Prev              Result
	Curr              Result
}

type resultKey struct {
	algorithm string
	size      int
}

// Compare matches results by (algorithm, size).
// It returns comparisons in curr's order for pairs present in both collections.
func Compare(prev, curr []Result) []Comparison {
	prevMap := make(map[resultKey]Result)
	for _, r := range prev {
		prevMap[resultKey{r.Algorithm, r.DataSize}] = r
	}

	var comparisons []Comparison
	for _, c := range curr {
		p, ok := prevMap[resultKey{c.Algorithm, c.DataSize}]
		if !ok {
			continue
		}

		comp := Comparison{
			Algorithm:      c.Algorithm,
			DataSize:       c.DataSize,
			MemoryUsedDiff: c.MemoryUsedMB - p.MemoryUsedMB,
			Prev:           p,
			Curr:           c,
		}
		if p.ExecutionTime > 0 {
			comp.ExecutionTimeDiff = (c.ExecutionTime - p.ExecutionTime) / p.ExecutionTime * 100
		}

		comparisons = append(comparisons, comp)
	}
	return comparisons
}

// Regressed reports whether the run got slower by more than threshold percent.
func (c Comparison) Regressed(threshold float64) bool {
	return c.ExecutionTimeDiff > threshold
}

// Improved reports whether the run got faster by more than threshold percent.
func (c Comparison) Improved(threshold float64) bool {
	return c.ExecutionTimeDiff < -threshold
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s/%d: %+.2f%% time, %+.2f MB memory", c.Algorithm, c.DataSize, c.ExecutionTimeDiff, c.MemoryUsedDiff)
}
