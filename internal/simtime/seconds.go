package simtime

import "fmt"

// Seconds is an instant measured in (non-negative) seconds since the start
// of a simulation.
type Seconds struct {
	t float32
}

// NewSeconds returns an instant at t seconds. Negative times are rejected.
func NewSeconds(t float32) (Seconds, error) {
	if t < 0 {
		return Seconds{}, fmt.Errorf("%w: %v", ErrNegativeTime, t)
	}
	return Seconds{t: t}, nil
}

func (s Seconds) IsAfter(other Seconds) bool     { return s.t > other.t }
func (s Seconds) Equal(other Seconds) bool       { return s.t == other.t }
func (s Seconds) Unit() string                   { return "s" }
func (s Seconds) Value() float32                 { return s.t }
func (s Seconds) Difference(other Seconds) Delta { return Delta{d: s.t - other.t} }

// Delta is a signed difference between two Seconds instants.
type Delta struct {
	d float32
}

func NewDelta(seconds float32) Delta { return Delta{d: seconds} }

func (d Delta) Sum(other Delta) Delta        { return Delta{d: d.d + other.d} }
func (d Delta) Difference(other Delta) Delta { return Delta{d: d.d - other.d} }
func (d Delta) Multiply(v float64) Delta     { return Delta{d: d.d * float32(v)} }
func (d Delta) Compare(other Delta) int      { return compare(d.d, other.d) }
func (d Delta) IsNegative() bool             { return d.d < 0 }
func (d Delta) IsZero() bool                 { return d.d == 0 }
func (d Delta) Value() float32               { return d.d }
func (d Delta) Copy() Delta                  { return Delta{d: d.d} }

func (d Delta) String() string { return fmt.Sprintf("%gs", d.d) }

var (
	_ Instant[Seconds, Delta]  = Seconds{}
	_ Duration[Delta, float32] = Delta{}
)
