package simtime

import (
	"fmt"
	"math"
)

// Tick is an instant counted in discrete simulation steps.
type Tick struct {
	n int64
}

func NewTick(n int64) (Tick, error) {
	if n < 0 {
		return Tick{}, fmt.Errorf("%w: tick %d", ErrNegativeTime, n)
	}
	return Tick{n: n}, nil
}

func (t Tick) IsAfter(other Tick) bool         { return t.n > other.n }
func (t Tick) Equal(other Tick) bool           { return t.n == other.n }
func (t Tick) Unit() string                    { return "tick" }
func (t Tick) Value() int64                    { return t.n }
func (t Tick) Difference(other Tick) TickDelta { return TickDelta{n: t.n - other.n} }

// TickDelta is a signed number of steps.
type TickDelta struct {
	n int64
}

func NewTickDelta(n int64) TickDelta { return TickDelta{n: n} }

func (d TickDelta) Sum(other TickDelta) TickDelta        { return TickDelta{n: d.n + other.n} }
func (d TickDelta) Difference(other TickDelta) TickDelta { return TickDelta{n: d.n - other.n} }

// Multiply scales the delta and rounds to the nearest whole step.
func (d TickDelta) Multiply(v float64) TickDelta {
	return TickDelta{n: int64(math.Round(float64(d.n) * v))}
}

func (d TickDelta) Compare(other TickDelta) int { return compare(d.n, other.n) }
func (d TickDelta) IsNegative() bool            { return d.n < 0 }
func (d TickDelta) IsZero() bool                { return d.n == 0 }
func (d TickDelta) Value() int64                { return d.n }
func (d TickDelta) Copy() TickDelta             { return TickDelta{n: d.n} }

var (
	_ Instant[Tick, TickDelta]   = Tick{}
	_ Duration[TickDelta, int64] = TickDelta{}
)
