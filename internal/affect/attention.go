package affect

import (
	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/simtime"
)

// Attention counts the discrete steps an agent has spent attending to
// something. Each step lasts stepSize. Attention never drops below zero.
type Attention[D simtime.Span[D]] struct {
	steps    level
	stepSize D
	reporter diag.Reporter
}

// NewAttention returns a counter that starts at steps. A negative step
// size is reported and coerced to zero; a negative start is floored.
func NewAttention[D simtime.Span[D]](steps int, stepSize D, reporter diag.Reporter, opts ...Option) *Attention[D] {
	r := diag.OrNop(reporter)
	o := buildOptions(FlooredAt(0), opts)
	a := &Attention[D]{
		steps: level{
			policy:   o.policy,
			reporter: r,
			overflow: diag.AttentionOverflow,
			floor:    diag.AttentionNegative,
		},
		reporter: r,
	}
	a.SetStepSize(stepSize)
	a.steps.add(steps)
	return a
}

// SetStepSize replaces how long one step lasts.
func (a *Attention[D]) SetStepSize(stepSize D) {
	if stepSize.IsNegative() {
		a.reporter.Report(diag.AttentionNegativeStepSize)
		stepSize = stepSize.Multiply(0)
	}
	a.stepSize = stepSize.Copy()
}

func (a *Attention[D]) StepSize() D { return a.stepSize.Copy() }
func (a *Attention[D]) Level() int  { return a.steps.value }

func (a *Attention[D]) Increment() { a.steps.add(1) }
func (a *Attention[D]) Decrement() { a.steps.add(-1) }
func (a *Attention[D]) Add(n int)  { a.steps.add(n) }
func (a *Attention[D]) Reset()     { a.steps.value = 0 }

// TimeAttended is steps times step size.
func (a *Attention[D]) TimeAttended() D {
	return a.stepSize.Multiply(float64(a.steps.value))
}

func (a *Attention[D]) CompareSteps(other *Attention[D]) int {
	switch {
	case a.steps.value < other.steps.value:
		return -1
	case a.steps.value > other.steps.value:
		return 1
	default:
		return 0
	}
}

func (a *Attention[D]) CompareStepSize(other *Attention[D]) int {
	return a.stepSize.Compare(other.stepSize)
}

// AbsoluteDifference returns a one-step counter spanning the gap between
// the two attention times. It returns false when the times are equal.
func (a *Attention[D]) AbsoluteDifference(other *Attention[D]) (*Attention[D], bool) {
	mine, theirs := a.TimeAttended(), other.TimeAttended()
	diff := mine.Difference(theirs)
	if mine.Compare(theirs) < 0 {
		diff = theirs.Difference(mine)
	}
	if diff.IsNegative() || diff.IsZero() {
		return nil, false
	}
	return NewAttention(1, diff, a.reporter), true
}

var _ Counter = (*Attention[simtime.Delta])(nil)
