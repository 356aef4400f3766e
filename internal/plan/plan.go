// Package plan checks whether a sequence of world states is worth pursuing
// and whether a set of known events can carry an agent through it.
package plan

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/worldstate"
)

var (
	ErrEmptyPlan    = errors.New("plan has no steps")
	ErrTooFewEvents = errors.New("too few events to realize plan")
	ErrOutOfBounds  = errors.New("plan step out of bounds")
)

// Plan is an ordered list of world states, first to last.
type Plan[W worldstate.World[W, E, D, C], E worldstate.Event, D worldstate.Distance[D, C], C worldstate.Change[C]] struct {
	steps    []W
	reporter diag.Reporter
}

func New[W worldstate.World[W, E, D, C], E worldstate.Event, D worldstate.Distance[D, C], C worldstate.Change[C]](
	steps []W, reporter diag.Reporter,
) *Plan[W, E, D, C] {
	return &Plan[W, E, D, C]{
		steps:    append([]W(nil), steps...),
		reporter: diag.OrNop(reporter),
	}
}

func (p *Plan[W, E, D, C]) Len() int { return len(p.steps) }

// Steps returns a copy of the plan's states.
func (p *Plan[W, E, D, C]) Steps() []W { return append([]W(nil), p.steps...) }

// IsUseful reports whether the last step is closer to target than the
// first. Distances are compared by magnitude, since a signed distance is
// negative when a step is short of the target.
func (p *Plan[W, E, D, C]) IsUseful(target W) (bool, error) {
	if len(p.steps) == 0 {
		return false, ErrEmptyPlan
	}
	start, err := p.steps[0].DistanceTo(target)
	if err != nil {
		return false, err
	}
	end, err := p.steps[len(p.steps)-1].DistanceTo(target)
	if err != nil {
		return false, err
	}
	return worldstate.Magnitude(end) < worldstate.Magnitude(start), nil
}

// IsFeasible reports whether every step can reach the next one through at
// least one of events. An event that is an illegal transition from a step
// simply does not reach anything.
func (p *Plan[W, E, D, C]) IsFeasible(events []E) (bool, error) {
	transitions := len(p.steps) - 1
	if len(events) < transitions {
		p.reporter.Report(diag.PlanTooFewEvents, strconv.Itoa(len(events)), strconv.Itoa(transitions))
		return false, fmt.Errorf("%w: have %d, need %d", ErrTooFewEvents, len(events), transitions)
	}
	for i := 0; i < transitions; i++ {
		ok, err := p.reaches(p.steps[i], p.steps[i+1], events)
		if err != nil {
			return false, fmt.Errorf("step %d: %w", i, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (p *Plan[W, E, D, C]) reaches(from, to W, events []E) (bool, error) {
	for _, e := range events {
		next, err := from.ApplyEvent(e)
		if errors.Is(err, worldstate.ErrInvalidTransition) {
			continue
		}
		if err != nil {
			return false, err
		}
		if next.Equal(to) {
			return true, nil
		}
	}
	return false, nil
}

// UpdateAt replaces step i with w.
func (p *Plan[W, E, D, C]) UpdateAt(i int, w W) error {
	if i < 0 || i >= len(p.steps) {
		p.reporter.Report(diag.PlanOutOfBounds, strconv.Itoa(i), strconv.Itoa(len(p.steps)))
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfBounds, i, len(p.steps))
	}
	p.steps[i] = w
	return nil
}
