package plan_test

import (
	"testing"

	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/inventory"
	"github.com/Harshitk-cp/emgine/internal/plan"
	"github.com/Harshitk-cp/emgine/internal/worldstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	F = inventory.Occupied
	E = inventory.Empty
)

func fillingPlan(rec diag.Reporter) *inventory.Plan {
	return inventory.NewPlan([]inventory.World{
		inventory.Emptied(3),
		inventory.NewWorld(F, E, E),
		inventory.NewWorld(F, F, E),
	}, rec)
}

func TestPlan_IsUseful(t *testing.T) {
	p := fillingPlan(nil)

	useful, err := p.IsUseful(inventory.Filled(3))
	require.NoError(t, err)
	assert.True(t, useful)

	useful, err = p.IsUseful(inventory.Emptied(3))
	require.NoError(t, err)
	assert.False(t, useful)

	_, err = p.IsUseful(inventory.Filled(2))
	assert.ErrorIs(t, err, worldstate.ErrSizeMismatch)

	_, err = inventory.NewPlan(nil, nil).IsUseful(inventory.Filled(3))
	assert.ErrorIs(t, err, plan.ErrEmptyPlan)
}

func TestPlan_IsFeasible(t *testing.T) {
	tests := []struct {
		name   string
		steps  []inventory.World
		events []inventory.Event
		want   bool
	}{
		{
			name:   "each step reachable by some event",
			steps:  []inventory.World{inventory.Emptied(3), inventory.NewWorld(F, E, E), inventory.NewWorld(F, F, E)},
			events: []inventory.Event{inventory.NewEvent(1, 0, 0), inventory.NewEvent(0, 1, 0)},
			want:   true,
		},
		{
			name:   "no event fills everything at once",
			steps:  []inventory.World{inventory.Emptied(3), inventory.Filled(3)},
			events: []inventory.Event{inventory.NewEvent(1, 0, 0), inventory.NewEvent(0, 1, 0)},
			want:   false,
		},
		{
			name:   "only illegal transitions",
			steps:  []inventory.World{inventory.Filled(2), inventory.Emptied(2)},
			events: []inventory.Event{inventory.NewEvent(1, 0)},
			want:   false,
		},
		{
			name:  "single step plan",
			steps: []inventory.World{inventory.Filled(2)},
			want:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec diag.Recorder
			got, err := inventory.NewPlan(tt.steps, &rec).IsFeasible(tt.events)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Zero(t, rec.Len())
		})
	}
}

func TestPlan_IsFeasible_TooFewEvents(t *testing.T) {
	var rec diag.Recorder
	p := fillingPlan(&rec)

	ok, err := p.IsFeasible([]inventory.Event{inventory.NewEvent(1, 0, 0)})
	assert.False(t, ok)
	assert.ErrorIs(t, err, plan.ErrTooFewEvents)
	require.Equal(t, 1, rec.Count(diag.PlanTooFewEvents))
	assert.Equal(t, []string{"1", "2"}, rec.Entries()[0].Args)
}

func TestPlan_IsFeasible_SizeMismatch(t *testing.T) {
	p := fillingPlan(nil)
	_, err := p.IsFeasible([]inventory.Event{inventory.NewEvent(1, 0), inventory.NewEvent(0, 1)})
	assert.ErrorIs(t, err, worldstate.ErrSizeMismatch)
}

func TestPlan_UpdateAt(t *testing.T) {
	var rec diag.Recorder
	p := fillingPlan(&rec)

	require.NoError(t, p.UpdateAt(2, inventory.Filled(3)))
	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Steps()[2].SameSlots(inventory.Filled(3)))

	for _, i := range []int{-1, 3} {
		err := p.UpdateAt(i, inventory.Filled(3))
		assert.ErrorIs(t, err, plan.ErrOutOfBounds)
	}
	assert.Equal(t, 2, rec.Count(diag.PlanOutOfBounds))
	assert.Equal(t, []string{"-1", "3"}, rec.Entries()[0].Args)
	assert.Equal(t, 3, p.Len())
}

func TestPlan_StepsAreCopied(t *testing.T) {
	steps := []inventory.World{inventory.Emptied(2), inventory.Filled(2)}
	p := inventory.NewPlan(steps, nil)
	steps[0] = inventory.Filled(2)

	assert.True(t, p.Steps()[0].SameSlots(inventory.Emptied(2)))
}
