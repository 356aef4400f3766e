package inventory

import (
	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/goal"
)

// Goal is a goal over inventory worlds.
type Goal = goal.Goal[World, Event, Distance, Change]

// NewGoal returns a goal whose target is an inventory world.
func NewGoal(target World, importance float64, reporter diag.Reporter, types ...goal.Type) *Goal {
	return goal.New[World, Event, Distance, Change](target, importance, reporter, types...)
}
