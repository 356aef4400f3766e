// Package goal holds an agent's desired world state, how much it matters,
// and what kind of goal it is.
package goal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/worldstate"
)

// Type tags a goal. A goal may carry several tags at once.
type Type string

const (
	SelfPreservation Type = "self_preservation"
	Gustatory        Type = "gustatory"
)

// AllTypes returns every known goal tag.
func AllTypes() []Type {
	return []Type{SelfPreservation, Gustatory}
}

// ParseType accepts a goal tag name.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case SelfPreservation, Gustatory:
		return t, nil
	}
	return "", fmt.Errorf("unknown goal type %q", s)
}

// Goal is a target world plus a non-negative importance weight.
// Goals are mutable in place; they are owned by a single agent.
type Goal[W worldstate.World[W, E, D, C], E worldstate.Event, D worldstate.Distance[D, C], C worldstate.Change[C]] struct {
	target     W
	importance float64
	types      map[Type]bool
	reporter   diag.Reporter
}

// New returns a goal. Negative importance is reported and clamped to zero.
func New[W worldstate.World[W, E, D, C], E worldstate.Event, D worldstate.Distance[D, C], C worldstate.Change[C]](
	target W, importance float64, reporter diag.Reporter, types ...Type,
) *Goal[W, E, D, C] {
	g := &Goal[W, E, D, C]{
		target:   target,
		types:    make(map[Type]bool, len(types)),
		reporter: diag.OrNop(reporter),
	}
	g.SetImportance(importance)
	g.AddTypes(types...)
	return g
}

func (g *Goal[W, E, D, C]) Target() W           { return g.target }
func (g *Goal[W, E, D, C]) Importance() float64 { return g.importance }

// SetTarget replaces the goal state in place.
func (g *Goal[W, E, D, C]) SetTarget(target W) { g.target = target }

// SetImportance assigns importance, clamping negative values to zero.
func (g *Goal[W, E, D, C]) SetImportance(importance float64) {
	if importance < 0 {
		g.reporter.Report(diag.GoalImportanceNegative, strconv.FormatFloat(importance, 'g', -1, 64))
		importance = 0
	}
	g.importance = importance
}

// AddTypes sets the given tags. Tags are never cleared.
func (g *Goal[W, E, D, C]) AddTypes(types ...Type) {
	for _, t := range types {
		g.types[t] = true
	}
}

func (g *Goal[W, E, D, C]) HasType(t Type) bool { return g.types[t] }

// Types returns the set tags in AllTypes order.
func (g *Goal[W, E, D, C]) Types() []Type {
	var out []Type
	for _, t := range AllTypes() {
		if g.types[t] {
			out = append(out, t)
		}
	}
	return out
}

// IsSatisfiedBy reports whether w matches the goal under the world's own equality.
func (g *Goal[W, E, D, C]) IsSatisfiedBy(w W) bool {
	return g.target.Equal(w)
}

// DistanceTo returns the distance from w to the goal state.
func (g *Goal[W, E, D, C]) DistanceTo(w W) (D, error) {
	return w.DistanceTo(g.target)
}

// DistanceChangeCaused returns how much e moves prior relative to the
// goal: distance before minus distance after.
func (g *Goal[W, E, D, C]) DistanceChangeCaused(prior W, e E) (C, error) {
	var zero C
	before, err := g.DistanceTo(prior)
	if err != nil {
		return zero, err
	}
	next, err := prior.ApplyEvent(e)
	if err != nil {
		return zero, err
	}
	after, err := g.DistanceTo(next)
	if err != nil {
		return zero, err
	}
	return before.Difference(after)
}
