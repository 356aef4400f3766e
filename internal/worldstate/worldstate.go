// Package worldstate defines the distance algebra that appraisal is built on.
//
// A World is an immutable snapshot of what an agent perceives. Events move
// a World to a new World, Distances measure how far apart two Worlds are,
// and Changes measure how much a Distance moved. Implementations choose the
// representation; this package fixes only the contract:
//
//   - Compare is a strict weak ordering returning -1, 0 or 1.
//   - a.Difference(b) and b.Difference(a) are additive inverses.
//   - ToReal preserves the ordering under ordinary float comparison.
package worldstate

import (
	"errors"
	"math"
)

var (
	ErrSizeMismatch      = errors.New("world sizes do not match")
	ErrInvalidTransition = errors.New("invalid world transition")
)

// Event describes a world transition.
type Event interface {
	// Probability returns the chance of the event occurring, in [0,1].
	Probability() float64
}

// Real is anything with a real-number projection.
type Real interface {
	ToReal() float64
}

// Change is a signed delta between two distances, or one produced directly by an event.
type Change[C any] interface {
	Real
	Compare(other C) int
	Difference(other C) (C, error)
}

// Distance measures how far one World is from another.
type Distance[D any, C Change[C]] interface {
	Real
	Compare(other D) int
	Difference(other D) (C, error)
	IsFinite() bool
}

// World is a user-defined perceived world state.
type World[W any, E Event, D Distance[D, C], C Change[C]] interface {
	ApplyEvent(e E) (W, error)
	DistanceTo(other W) (D, error)
	ChangeCausedBy(e E) (C, error)
	// Equal is domain-defined and need not be structural equality.
	Equal(other W) bool
}

// Magnitude returns |v.ToReal()|.
func Magnitude(v Real) float64 {
	return math.Abs(v.ToReal())
}
