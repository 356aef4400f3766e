// Package inventory is the reference world model: a fixed-length row of
// item slots, each either occupied or empty. Events add (+) or remove (-)
// an item per slot, and distance is the signed count of slots that are
// fuller or emptier than their counterpart.
package inventory

// Slot is a single inventory position. Occupied orders above Empty.
type Slot bool

const (
	Empty    Slot = false
	Occupied Slot = true
)

// Compare returns 1 if s is occupied and other is empty, -1 for the
// reverse, and 0 when they hold the same value.
func (s Slot) Compare(other Slot) int {
	switch {
	case s == other:
		return 0
	case s == Occupied:
		return 1
	default:
		return -1
	}
}

// InvalidChange reports whether applying delta to s would overfill an
// occupied slot or empty an already empty one.
func (s Slot) InvalidChange(delta int) bool {
	switch {
	case s == Occupied && delta > 0:
		return true
	case s == Empty && delta < 0:
		return true
	default:
		return false
	}
}

// Change returns the slot that results from applying delta. Callers must
// check InvalidChange first; invalid deltas leave the slot unchanged.
func (s Slot) Change(delta int) Slot {
	switch {
	case s == Occupied && delta < 0:
		return Empty
	case s == Empty && delta > 0:
		return Occupied
	default:
		return s
	}
}

func (s Slot) String() string {
	if s == Occupied {
		return "1"
	}
	return "0"
}
