package sorting

import (
	"fmt"
	"sort"
	"strings"
)

// Algorithm pairs a display name with its sort function.
type Algorithm struct {
	Name string
	Fn   Func
}

// Keys used in configuration to select algorithms.
const (
	KeyInsertion = "insertion"
	KeyBubble    = "bubble"
)

var registry = map[string]Algorithm{
	KeyInsertion: {Name: "Insertion Sort", Fn: InsertionSort},
	KeyBubble:    {Name: "Bubble Sort", Fn: BubbleSort},
}

// DefaultKeys is the algorithm list used when nothing else is configured.
var DefaultKeys = []string{KeyInsertion, KeyBubble}

// Lookup returns the algorithm registered under key (case-insensitive).
func Lookup(key string) (Algorithm, bool) {
	alg, ok := registry[strings.ToLower(strings.TrimSpace(key))]
	return alg, ok
}

// Resolve maps configuration keys to algorithms, preserving order.
func Resolve(keys []string) ([]Algorithm, error) {
	algs := make([]Algorithm, 0, len(keys))
	for _, k := range keys {
		alg, ok := Lookup(k)
		if !ok {
			return nil, fmt.Errorf("unknown algorithm %q (known: %s)", k, strings.Join(Keys(), ", "))
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

// Default returns Insertion Sort followed by Bubble Sort.
func Default() []Algorithm {
	algs, _ := Resolve(DefaultKeys)
	return algs
}

// Keys lists the registered keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
