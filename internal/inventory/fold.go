package inventory

// SumDeltas folds a slice of per-slot values by addition.
func SumDeltas(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// AllValidChanges reports whether every paired (slot, delta) is a legal
// transition. Extra entries on either side are ignored; size is checked by
// the callers.
func AllValidChanges(slots []Slot, deltas []int) bool {
	n := min(len(slots), len(deltas))
	for i := 0; i < n; i++ {
		if slots[i].InvalidChange(deltas[i]) {
			return false
		}
	}
	return true
}

// firstInvalidChange returns the index of the first illegal transition, or -1.
func firstInvalidChange(slots []Slot, deltas []int) int {
	n := min(len(slots), len(deltas))
	for i := 0; i < n; i++ {
		if slots[i].InvalidChange(deltas[i]) {
			return i
		}
	}
	return -1
}

// ApplyChanges returns a new slot slice with each delta applied pairwise.
func ApplyChanges(slots []Slot, deltas []int) []Slot {
	n := min(len(slots), len(deltas))
	out := make([]Slot, n)
	for i := 0; i < n; i++ {
		out[i] = slots[i].Change(deltas[i])
	}
	return out
}

// CompareSlots returns the pairwise ordinal comparison of left against right.
func CompareSlots(left, right []Slot) []int {
	n := min(len(left), len(right))
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = left[i].Compare(right[i])
	}
	return out
}
