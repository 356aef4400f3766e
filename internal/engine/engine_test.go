package engine_test

import (
	"testing"

	"github.com/Harshitk-cp/emgine/internal/appraisal"
	"github.com/Harshitk-cp/emgine/internal/config"
	"github.com/Harshitk-cp/emgine/internal/engine"
	"github.com/Harshitk-cp/emgine/internal/goal"
	"github.com/Harshitk-cp/emgine/internal/intensity"
	"github.com/Harshitk-cp/emgine/internal/inventory"
	"github.com/Harshitk-cp/emgine/internal/worldstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	F = inventory.Occupied
	E = inventory.Empty
)

func TestStep_JoyAccumulatesAcrossGoals(t *testing.T) {
	goals := []*inventory.Goal{
		inventory.NewGoal(inventory.Filled(3), 1, nil),
		inventory.NewGoal(inventory.Filled(3), 2, nil),
	}

	out, err := engine.Step(goals, inventory.Emptied(3), inventory.NewEvent(1, 1, 0), intensity.NewProfile(), config.Thresholds{})
	require.NoError(t, err)

	assert.True(t, out.World.SameSlots(inventory.NewWorld(F, F, E)))
	// 2*1 + 2*2
	assert.Equal(t, intensity.Intensity(6), out.Profile.Get(appraisal.Joy))
	assert.Equal(t, intensity.Intensity(0), out.Profile.Get(appraisal.Disgust))
	assert.Equal(t, 2, out.Elicited())

	require.Len(t, out.Appraisals, 4)
	assert.Equal(t, appraisal.Joy, out.Appraisals[0].Channel)
	assert.Equal(t, appraisal.Disgust, out.Appraisals[1].Channel)
	assert.Equal(t, 1, out.Appraisals[2].Goal)
	assert.Equal(t, intensity.Intensity(2), out.Appraisals[0].Profile.Get(appraisal.Joy))
}

func TestStep_DisgustForGustatoryGoal(t *testing.T) {
	goals := []*inventory.Goal{inventory.NewGoal(inventory.Emptied(3), 1.5, nil, goal.Gustatory)}

	out, err := engine.Step(goals, inventory.Emptied(3), inventory.NewEvent(1, 1, 0), intensity.NewProfile(), config.Thresholds{})
	require.NoError(t, err)

	disgust := out.Appraisals[1]
	require.True(t, disgust.Result.Elicited)
	assert.Equal(t, 3.0, disgust.Change.Real())
	assert.Equal(t, intensity.Intensity(3), out.Profile.Get(appraisal.Disgust))
	assert.Equal(t, appraisal.GateDirection, out.Appraisals[0].Result.Gate)
}

func TestStep_ThresholdSuppressesJoy(t *testing.T) {
	goals := []*inventory.Goal{inventory.NewGoal(inventory.Filled(3), 1, nil)}

	out, err := engine.Step(goals, inventory.Emptied(3), inventory.NewEvent(1, 0, 0), intensity.NewProfile(), config.Thresholds{Joy: 1})
	require.NoError(t, err)

	assert.False(t, out.Appraisals[0].Result.Elicited)
	assert.Equal(t, appraisal.GateSignificance, out.Appraisals[0].Result.Gate)
	assert.True(t, out.World.SameSlots(inventory.NewWorld(F, E, E)))
}

func TestStep_WorldErrorsAbort(t *testing.T) {
	goals := []*inventory.Goal{inventory.NewGoal(inventory.Filled(3), 1, nil)}

	_, err := engine.Step(goals, inventory.Emptied(3), inventory.NewEvent(-1, 0, 0), intensity.NewProfile(), config.Thresholds{})
	assert.ErrorIs(t, err, worldstate.ErrInvalidTransition)

	_, err = engine.Step(goals, inventory.Emptied(3), inventory.NewEvent(1, 0), intensity.NewProfile(), config.Thresholds{})
	assert.ErrorIs(t, err, worldstate.ErrSizeMismatch)

	_, err = engine.Step([]*inventory.Goal{inventory.NewGoal(inventory.Filled(2), 1, nil)}, inventory.Emptied(3), inventory.NewEvent(1, 0, 0), intensity.NewProfile(), config.Thresholds{})
	assert.ErrorIs(t, err, worldstate.ErrSizeMismatch)
}

func TestStep_NoGoalsStillAppliesEvent(t *testing.T) {
	out, err := engine.Step(nil, inventory.Emptied(2), inventory.NewEvent(0, 1), intensity.NewProfile(), config.Thresholds{})
	require.NoError(t, err)
	assert.Empty(t, out.Appraisals)
	assert.True(t, out.World.SameSlots(inventory.NewWorld(E, F)))
}
