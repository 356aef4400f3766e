package inventory

import (
	"strconv"
	"strings"
)

// Event holds one signed delta per slot: positive adds an item, negative
// removes one, zero leaves the slot alone.
type Event struct {
	deltas      []int
	probability float64
}

// NewEvent returns a certain (probability 1) event.
func NewEvent(deltas ...int) Event {
	return Event{deltas: append([]int(nil), deltas...), probability: 1}
}

// WithProbability returns a copy of e with p clamped into [0,1].
func (e Event) WithProbability(p float64) Event {
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	return Event{deltas: append([]int(nil), e.deltas...), probability: p}
}

func (e Event) Probability() float64 { return e.probability }

func (e Event) Size() int { return len(e.deltas) }

// Deltas returns a copy of the per-slot deltas.
func (e Event) Deltas() []int { return append([]int(nil), e.deltas...) }

// At returns the delta for slot i.
func (e Event) At(i int) int { return e.deltas[i] }

// String renders the deltas as comma separated integers.
func (e Event) String() string {
	parts := make([]string, len(e.deltas))
	for i, d := range e.deltas {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}
