package inventory

import (
	"fmt"

	"github.com/Harshitk-cp/emgine/internal/worldstate"
)

// Distance is the folded slot comparison of two equally sized worlds.
// It is signed: a world emptier than its reference has a negative distance.
type Distance struct {
	size  int
	value int
}

// NewDistance compares left against right slot by slot and sums the result.
func NewDistance(left, right World) (Distance, error) {
	if err := checkSize(left.Size(), right.Size()); err != nil {
		return Distance{}, err
	}
	return Distance{
		size:  left.Size(),
		value: SumDeltas(CompareSlots(left.slots, right.slots)),
	}, nil
}

// DistanceOf builds a distance directly, for thresholds.
func DistanceOf(size, value int) Distance {
	return Distance{size: size, value: value}
}

func (d Distance) Compare(other Distance) int {
	return compareInt(d.value, other.value)
}

// Difference returns d - other as a Change, keeping the sign.
func (d Distance) Difference(other Distance) (Change, error) {
	if err := checkSize(d.size, other.size); err != nil {
		return Change{}, err
	}
	return Change{size: d.size, value: d.value - other.value}, nil
}

// IsFinite is always true: a fixed-size inventory can always be traversed.
func (d Distance) IsFinite() bool { return true }

func (d Distance) ToReal() float64 { return float64(d.value) }
func (d Distance) Value() int      { return d.value }
func (d Distance) Size() int       { return d.size }

func (d Distance) String() string { return fmt.Sprintf("%d/%d", d.value, d.size) }

// Change is a signed distance delta.
type Change struct {
	size  int
	value int
}

// NewChange sums the event's deltas without taking an absolute value: the
// sign says whether the event fills or empties the inventory.
func NewChange(e Event) Change {
	return Change{size: e.Size(), value: SumDeltas(e.deltas)}
}

// ChangeOf builds a change directly, for thresholds.
func ChangeOf(size, value int) Change {
	return Change{size: size, value: value}
}

func (c Change) Compare(other Change) int {
	return compareInt(c.value, other.value)
}

// Difference returns c - other, keeping the sign.
func (c Change) Difference(other Change) (Change, error) {
	if err := checkSize(c.size, other.size); err != nil {
		return Change{}, err
	}
	return Change{size: c.size, value: c.value - other.value}, nil
}

func (c Change) ToReal() float64 { return float64(c.value) }
func (c Change) Value() int      { return c.value }
func (c Change) Size() int       { return c.size }

func (c Change) String() string { return fmt.Sprintf("%+d/%d", c.value, c.size) }

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

var (
	_ worldstate.Distance[Distance, Change] = Distance{}
	_ worldstate.Change[Change]             = Change{}
)
