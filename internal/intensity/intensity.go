// Package intensity accumulates emotion intensity. Every value here is
// immutable: updates return a new value and callers rebind.
package intensity

import (
	"errors"
	"fmt"
	"math"

	"github.com/Harshitk-cp/emgine/internal/appraisal"
	"github.com/Harshitk-cp/emgine/internal/worldstate"
)

var ErrZeroImportance = errors.New("goal importance is zero")

// Intensity is the current affect level of one emotion channel.
type Intensity float64

// Change is an increment to an Intensity.
type Change float64

// Update returns i with c added. There is no clamping.
func (i Intensity) Update(c Change) Intensity {
	return i + Intensity(c)
}

func (i Intensity) Real() float64 { return float64(i) }
func (c Change) Real() float64    { return float64(c) }

// Joy scales the magnitude of the distance change by goal importance.
func Joy(importance float64, distDelta worldstate.Real) Change {
	return Change(math.Abs(distDelta.ToReal()) * importance)
}

// Disgust scales the post-event distance by goal importance.
func Disgust(importance float64, distNow worldstate.Real) Change {
	return Change(distNow.ToReal() * importance)
}

// Fear scales the signed distance change by goal importance.
func Fear(importance float64, distDelta worldstate.Real) Change {
	return Change(distDelta.ToReal() * importance)
}

// FearOfLoss weighs the distance change by how much the threatened goal
// matters relative to the one being pursued.
func FearOfLoss(goalImportance, lostImportance float64, distDelta worldstate.Real) (Change, error) {
	if goalImportance == 0 {
		return 0, fmt.Errorf("fear of loss: %w", ErrZeroImportance)
	}
	return Change(distDelta.ToReal() * (lostImportance / goalImportance)), nil
}

// Surprise scales the largest allowed change by the observed discrepancy.
func Surprise(discrepancy float64, maxDelta Change) Change {
	return Change(discrepancy * maxDelta.Real())
}

func notImplemented(c appraisal.Channel) (Change, error) {
	return 0, fmt.Errorf("intensity %s: %w", c, appraisal.ErrNotImplemented)
}

func Sadness() (Change, error)    { return notImplemented(appraisal.Sadness) }
func Anger() (Change, error)      { return notImplemented(appraisal.Anger) }
func Acceptance() (Change, error) { return notImplemented(appraisal.Acceptance) }
func Interest() (Change, error)   { return notImplemented(appraisal.Interest) }
