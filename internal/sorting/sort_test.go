package sorting

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var algorithms = []struct {
	name string
	fn   Func
}{
	{"insertion", InsertionSort},
	{"bubble", BubbleSort},
}

func randomInts(r *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		// Keep within the signed 32-bit range used by the fixtures.
		out[i] = int(r.Int31n(1<<30)) - 1<<29
	}
	return out
}

func TestSort_KnownFixture(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			assert.Equal(t, []int{1, 2, 3, 4, 5}, alg.fn([]int{5, 3, 1, 4, 2}))
		})
	}
}

func TestSort_EdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"Empty", []int{}, []int{}},
		{"Single", []int{42}, []int{42}},
		{"Duplicates", []int{3, 1, 3, 1, 2}, []int{1, 1, 2, 3, 3}},
		{"Negatives", []int{0, -5, 7, -1}, []int{-5, -1, 0, 7}},
		{"Reversed", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"AlreadySorted", []int{1, 2, 3}, []int{1, 2, 3}},
	}

	for _, alg := range algorithms {
		for _, tt := range tests {
			t.Run(alg.name+"/"+tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, alg.fn(tt.input))
			})
		}
	}
}

func TestSort_NilInput(t *testing.T) {
	for _, alg := range algorithms {
		assert.Empty(t, alg.fn(nil), alg.name)
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, alg := range algorithms {
		input := randomInts(r, 200)
		snapshot := append([]int(nil), input...)

		out := alg.fn(input)

		assert.Equal(t, snapshot, input, alg.name)
		if len(out) > 0 {
			out[0]++
			assert.Equal(t, snapshot[0], input[0], "%s must return a fresh slice", alg.name)
		}
	}
}

func TestSort_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for round := 0; round < 50; round++ {
		input := randomInts(r, r.Intn(300))

		want := append([]int(nil), input...)
		sort.Ints(want)

		ins := InsertionSort(input)
		bub := BubbleSort(input)

		require.Len(t, ins, len(input))
		assert.True(t, sort.IntsAreSorted(ins))
		assert.Equal(t, want, ins, "insertion sort must be a sorted permutation")
		assert.Equal(t, ins, bub, "both algorithms must agree")

		// Idempotence
		assert.Equal(t, ins, InsertionSort(ins))
		assert.Equal(t, bub, BubbleSort(bub))
	}
}

func BenchmarkInsertionSort(b *testing.B) {
	data := randomInts(rand.New(rand.NewSource(1)), 1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		InsertionSort(data)
	}
}

func BenchmarkBubbleSort(b *testing.B) {
	data := randomInts(rand.New(rand.NewSource(1)), 1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		BubbleSort(data)
	}
}
