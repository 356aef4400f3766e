// Package appraisal decides whether a goal-relevant event elicits an
// emotion. Each generator is a pure function of a goal, the prior world,
// the event, and elicitation thresholds.
package appraisal

import (
	"errors"
	"fmt"

	"github.com/Harshitk-cp/emgine/internal/goal"
	"github.com/Harshitk-cp/emgine/internal/worldstate"
)

var ErrNotImplemented = errors.New("emotion channel not implemented")

// Channel names an emotion.
type Channel string

const (
	Joy        Channel = "joy"
	Sadness    Channel = "sadness"
	Fear       Channel = "fear"
	Anger      Channel = "anger"
	Disgust    Channel = "disgust"
	Acceptance Channel = "acceptance"
	Interest   Channel = "interest"
	Surprise   Channel = "surprise"
)

// AllChannels returns every channel in a stable order.
func AllChannels() []Channel {
	return []Channel{Joy, Sadness, Fear, Anger, Disgust, Acceptance, Interest, Surprise}
}

// ParseChannel accepts a channel name.
func ParseChannel(s string) (Channel, error) {
	for _, c := range AllChannels() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown emotion channel %q", s)
}

// Gate identifies the elicitation test that rejected an appraisal.
type Gate string

const (
	GatePassed          Gate = ""
	GateSignificance    Gate = "significance"
	GateDirection       Gate = "direction"
	GateGoalType        Gate = "goal_type"
	GateSatisfiedBefore Gate = "satisfied_before"
	GateUnsatisfiedNow  Gate = "unsatisfied_now"
	GateDisruption      Gate = "disruption"
)

// Result is either Elicited, carrying the distances that justified the
// emotion, or NotElicited with the gate that stopped it.
type Result[D any, C any] struct {
	Elicited  bool
	DistPrev  D
	DistNow   D
	DistDelta C
	Gate      Gate
}

func elicited[D, C any](prev, now D, delta C) Result[D, C] {
	return Result[D, C]{Elicited: true, DistPrev: prev, DistNow: now, DistDelta: delta}
}

func notElicited[D, C any](gate Gate) Result[D, C] {
	return Result[D, C]{Gate: gate}
}

// GenerateJoy elicits joy when the event changes the distance to the goal
// by more than epsilonJ and leaves the agent strictly closer to it.
func GenerateJoy[W worldstate.World[W, E, D, C], E worldstate.Event, D worldstate.Distance[D, C], C worldstate.Change[C]](
	g *goal.Goal[W, E, D, C], prior W, e E, epsilonJ C,
) (Result[D, C], error) {
	chg, err := g.DistanceChangeCaused(prior, e)
	if err != nil {
		return Result[D, C]{}, err
	}
	if worldstate.Magnitude(chg) <= epsilonJ.ToReal() {
		return notElicited[D, C](GateSignificance), nil
	}

	prev, now, err := distances(g, prior, e)
	if err != nil {
		return Result[D, C]{}, err
	}
	if worldstate.Magnitude(prev) <= worldstate.Magnitude(now) {
		return notElicited[D, C](GateDirection), nil
	}
	return elicited(prev, now, chg), nil
}

// GenerateDisgust elicits disgust when a gustatory goal that was satisfied
// (distance at most epsilonDS) is pushed out of that region by a change
// larger than epsilonDN. Gates are checked in order and stop at the first failure.
func GenerateDisgust[W worldstate.World[W, E, D, C], E worldstate.Event, D worldstate.Distance[D, C], C worldstate.Change[C]](
	g *goal.Goal[W, E, D, C], prior W, e E, epsilonDS, epsilonDN D,
) (Result[D, C], error) {
	if !g.HasType(goal.Gustatory) {
		return notElicited[D, C](GateGoalType), nil
	}

	prev, err := g.DistanceTo(prior)
	if err != nil {
		return Result[D, C]{}, err
	}
	if prev.Compare(epsilonDS) > 0 {
		return notElicited[D, C](GateSatisfiedBefore), nil
	}

	next, err := prior.ApplyEvent(e)
	if err != nil {
		return Result[D, C]{}, err
	}
	now, err := g.DistanceTo(next)
	if err != nil {
		return Result[D, C]{}, err
	}
	if now.Compare(epsilonDS) <= 0 {
		return notElicited[D, C](GateUnsatisfiedNow), nil
	}

	chg, err := g.DistanceChangeCaused(prior, e)
	if err != nil {
		return Result[D, C]{}, err
	}
	if worldstate.Magnitude(chg) <= epsilonDN.ToReal() {
		return notElicited[D, C](GateDisruption), nil
	}
	return elicited(prev, now, chg), nil
}

func distances[W worldstate.World[W, E, D, C], E worldstate.Event, D worldstate.Distance[D, C], C worldstate.Change[C]](
	g *goal.Goal[W, E, D, C], prior W, e E,
) (D, D, error) {
	var zero D
	prev, err := g.DistanceTo(prior)
	if err != nil {
		return zero, zero, err
	}
	next, err := prior.ApplyEvent(e)
	if err != nil {
		return zero, zero, err
	}
	now, err := g.DistanceTo(next)
	if err != nil {
		return zero, zero, err
	}
	return prev, now, nil
}

func notImplemented(c Channel) error {
	return fmt.Errorf("generate %s: %w", c, ErrNotImplemented)
}

// The remaining channels are part of the public surface but have no
// elicitation rule yet. Calling them always fails.

func GenerateSadness() error    { return notImplemented(Sadness) }
func GenerateFear() error       { return notImplemented(Fear) }
func GenerateAnger() error      { return notImplemented(Anger) }
func GenerateAcceptance() error { return notImplemented(Acceptance) }
func GenerateInterest() error   { return notImplemented(Interest) }
func GenerateSurprise() error   { return notImplemented(Surprise) }
