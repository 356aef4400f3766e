// Package affect holds the saturating counters an agent keeps about the
// entities around it: how long it has paid attention to them and how
// attached it is. Counters are owned by a single agent and are not safe
// for concurrent use.
package affect

import (
	"strconv"

	"github.com/Harshitk-cp/emgine/internal/diag"
)

// Counter is the capability shared by every affective counter.
type Counter interface {
	Increment()
	Decrement()
	Add(n int)
	Reset()
	Level() int
}

// Outcome says how a Policy arrived at a new level.
type Outcome int

const (
	Exact Outcome = iota
	Overflow
	Underflow
	Floored
)

// Policy decides where a level lands after a delta is applied. Swap it
// to change counter behaviour without touching the counter types.
type Policy interface {
	Apply(level, delta int) (int, Outcome)
}

// Saturating clamps to the int range and, when Floor is set, never goes
// below it. A result under the floor reports only Floored.
type Saturating struct {
	Floor *int
}

func (s Saturating) Apply(level, delta int) (int, Outcome) {
	v, clamped := SaturatingAdd(level, delta)
	if s.Floor != nil && v < *s.Floor {
		return *s.Floor, Floored
	}
	if clamped {
		if delta > 0 {
			return v, Overflow
		}
		return v, Underflow
	}
	return v, Exact
}

// FlooredAt returns a Saturating policy with the given floor.
func FlooredAt(floor int) Saturating {
	return Saturating{Floor: &floor}
}

// Option configures a counter.
type Option func(*options)

type options struct {
	policy Policy
}

// WithPolicy replaces the counter's default policy.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

func buildOptions(def Policy, opts []Option) options {
	o := options{policy: def}
	for _, opt := range opts {
		opt(&o)
	}
	if o.policy == nil {
		o.policy = def
	}
	return o
}

// level is the shared core of the counters: a value moved by a policy,
// with one diagnostic per anomaly.
type level struct {
	value    int
	policy   Policy
	reporter diag.Reporter
	overflow diag.Code
	floor    diag.Code
}

func (l *level) add(delta int) {
	v, out := l.policy.Apply(l.value, delta)
	switch out {
	case Overflow, Underflow:
		l.reporter.Report(l.overflow, strconv.Itoa(l.value), strconv.Itoa(delta))
	case Floored:
		l.reporter.Report(l.floor, strconv.Itoa(v))
	}
	l.value = v
}

// nonNegative coerces a negative step size to zero, reporting it once.
func nonNegative(n int, code diag.Code, r diag.Reporter) int {
	if n < 0 {
		r.Report(code, strconv.Itoa(n))
		return 0
	}
	return n
}
