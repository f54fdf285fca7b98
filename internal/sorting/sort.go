package sorting

// Func sorts a copy of its input and returns it. The input is never modified.
type Func func([]int) []int

// InsertionSort implements shift-based insertion sort on a copy of arr.
// It is stable and runs in O(n) on already sorted input.
func InsertionSort(arr []int) []int {
	result := make([]int, len(arr))
	copy(result, arr)

	for i := 1; i < len(result); i++ {
		key := result[i]
		j := i - 1
		for j >= 0 && result[j] > key {
			result[j+1] = result[j]
			j--
		}
		result[j+1] = key
	}
	return result
}

// BubbleSort implements adjacent-swap bubble sort on a copy of arr.
// A pass without swaps ends the sort early.
func BubbleSort(arr []int) []int {
	result := make([]int, len(arr))
	copy(result, arr)

	n := len(result)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if result[j] > result[j+1] {
				result[j], result[j+1] = result[j+1], result[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return result
}
