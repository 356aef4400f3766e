package inventory

import (
	"fmt"
	"strings"

	"github.com/Harshitk-cp/emgine/internal/worldstate"
)

// World is an immutable inventory snapshot.
type World struct {
	slots []Slot
}

// NewWorld copies slots into a new World.
func NewWorld(slots ...Slot) World {
	return World{slots: append([]Slot(nil), slots...)}
}

// Filled returns a World of n occupied slots.
func Filled(n int) World {
	return uniform(n, Occupied)
}

// Emptied returns a World of n empty slots.
func Emptied(n int) World {
	return uniform(n, Empty)
}

func uniform(n int, s Slot) World {
	slots := make([]Slot, n)
	for i := range slots {
		slots[i] = s
	}
	return World{slots: slots}
}

// Size returns the number of slots.
func (w World) Size() int { return len(w.slots) }

// Slots returns a copy of the slot values.
func (w World) Slots() []Slot { return append([]Slot(nil), w.slots...) }

// Occupied returns how many slots hold an item.
func (w World) Occupied() int {
	n := 0
	for _, s := range w.slots {
		if s == Occupied {
			n++
		}
	}
	return n
}

// ApplyEvent returns the World that results from e. The whole event is
// validated before any slot changes, so a failed call has no effect.
func (w World) ApplyEvent(e Event) (World, error) {
	if err := checkSize(w.Size(), e.Size()); err != nil {
		return World{}, err
	}
	if err := checkChanges(w.slots, e.deltas); err != nil {
		return World{}, err
	}
	return World{slots: ApplyChanges(w.slots, e.deltas)}, nil
}

// DistanceTo returns the signed slot imbalance of w relative to other.
func (w World) DistanceTo(other World) (Distance, error) {
	return NewDistance(w, other)
}

// ChangeCausedBy returns the signed sum of the event's deltas. The event
// must be a legal transition of w.
func (w World) ChangeCausedBy(e Event) (Change, error) {
	if err := checkSize(w.Size(), e.Size()); err != nil {
		return Change{}, err
	}
	if err := checkChanges(w.slots, e.deltas); err != nil {
		return Change{}, err
	}
	return NewChange(e), nil
}

// Equal reports whether every slot value of w appears somewhere in other.
// This compares fullness rather than position and is not symmetric:
// [1,1] equals [1,0] but [1,0] does not equal [1,1].
func (w World) Equal(other World) bool {
	if w.Size() != other.Size() {
		return false
	}
	for i := range w.slots {
		found := false
		for j := range other.slots {
			if w.slots[i] == other.slots[j] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SameSlots is strict positional equality.
func (w World) SameSlots(other World) bool {
	if w.Size() != other.Size() {
		return false
	}
	for i := range w.slots {
		if w.slots[i] != other.slots[i] {
			return false
		}
	}
	return true
}

// String renders the world as comma separated 1/0 values, the form ParseWorld reads.
func (w World) String() string {
	parts := make([]string, len(w.slots))
	for i, s := range w.slots {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// ParseWorld reads a comma separated slot list. Accepted values are
// 1/0, true/false, full/empty and x/_ (case-insensitive). An empty string is
// a zero-slot world.
func ParseWorld(s string) (World, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return World{}, nil
	}
	fields := strings.Split(s, ",")
	slots := make([]Slot, len(fields))
	for i, f := range fields {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "1", "true", "full", "x":
			slots[i] = Occupied
		case "0", "false", "empty", "_":
			slots[i] = Empty
		default:
			return World{}, fmt.Errorf("invalid slot %q at position %d", f, i)
		}
	}
	return World{slots: slots}, nil
}

func checkSize(a, b int) error {
	if a != b {
		return fmt.Errorf("%w: %d != %d", worldstate.ErrSizeMismatch, a, b)
	}
	return nil
}

func checkChanges(slots []Slot, deltas []int) error {
	if i := firstInvalidChange(slots, deltas); i >= 0 {
		verb := "overfill"
		if slots[i] == Empty {
			verb = "over-empty"
		}
		return fmt.Errorf("%w: %s slot %d with delta %d", worldstate.ErrInvalidTransition, verb, i, deltas[i])
	}
	return nil
}

var _ worldstate.World[World, Event, Distance, Change] = World{}
