// Package simtime is the scalar time algebra used by step-discretized
// affective counters. Instants are supplied explicitly by the caller; there
// is no hidden clock.
package simtime

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var ErrNegativeTime = errors.New("time cannot be negative")

// Numeric is the set of scalar representations a duration may expose.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Instant is a totally ordered point in simulated time.
type Instant[I any, D any] interface {
	IsAfter(other I) bool
	Difference(other I) D
	Equal(other I) bool
	Unit() string
}

// Span is the unit-free duration algebra. Every operation returns a new value.
type Span[D any] interface {
	Sum(other D) D
	Difference(other D) D
	Multiply(v float64) D
	// Compare returns -1, 0 or 1.
	Compare(other D) int
	IsNegative() bool
	IsZero() bool
	Copy() D
}

// Duration is a Span that can be read out as a computable value.
type Duration[D any, T Numeric] interface {
	Span[D]
	Value() T
}

func compare[T Numeric](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
