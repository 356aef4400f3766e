// Package engine runs one event through an agent's goals: appraise each
// goal against the prior world, fold elicited emotions into the intensity
// profile, then apply the event.
package engine

import (
	"fmt"

	"github.com/Harshitk-cp/emgine/internal/appraisal"
	"github.com/Harshitk-cp/emgine/internal/config"
	"github.com/Harshitk-cp/emgine/internal/intensity"
	"github.com/Harshitk-cp/emgine/internal/inventory"
)

type Result = appraisal.Result[inventory.Distance, inventory.Change]

// Appraisal is one channel's verdict for one goal.
type Appraisal struct {
	Goal    int
	Channel appraisal.Channel
	Result  Result
	Change  intensity.Change
	// Profile is the profile after this appraisal's contribution.
	Profile intensity.Profile
}

type Outcome struct {
	World      inventory.World
	Profile    intensity.Profile
	Appraisals []Appraisal
}

// Elicited counts the appraisals that produced an emotion.
func (o *Outcome) Elicited() int {
	n := 0
	for _, a := range o.Appraisals {
		if a.Result.Elicited {
			n++
		}
	}
	return n
}

// Step appraises e for every goal, joy before disgust, all against prior.
// Any world error aborts the step and nothing is returned.
func Step(goals []*inventory.Goal, prior inventory.World, e inventory.Event, profile intensity.Profile, th config.Thresholds) (*Outcome, error) {
	size := prior.Size()
	joyEps := inventory.ChangeOf(size, th.Joy)
	satisfied := inventory.DistanceOf(size, th.DisgustSatisfied)
	notice := inventory.DistanceOf(size, th.DisgustNotice)

	out := &Outcome{Appraisals: make([]Appraisal, 0, 2*len(goals))}
	for i, g := range goals {
		joy, err := appraisal.GenerateJoy(g, prior, e, joyEps)
		if err != nil {
			return nil, fmt.Errorf("goal %d: %w", i, err)
		}
		var chg intensity.Change
		if joy.Elicited {
			chg = intensity.Joy(g.Importance(), joy.DistDelta)
			profile = profile.Apply(appraisal.Joy, chg)
		}
		out.Appraisals = append(out.Appraisals, Appraisal{Goal: i, Channel: appraisal.Joy, Result: joy, Change: chg, Profile: profile})

		disgust, err := appraisal.GenerateDisgust(g, prior, e, satisfied, notice)
		if err != nil {
			return nil, fmt.Errorf("goal %d: %w", i, err)
		}
		chg = 0
		if disgust.Elicited {
			chg = intensity.Disgust(g.Importance(), disgust.DistNow)
			profile = profile.Apply(appraisal.Disgust, chg)
		}
		out.Appraisals = append(out.Appraisals, Appraisal{Goal: i, Channel: appraisal.Disgust, Result: disgust, Change: chg, Profile: profile})
	}

	next, err := prior.ApplyEvent(e)
	if err != nil {
		return nil, err
	}
	out.World = next
	out.Profile = profile
	return out, nil
}
