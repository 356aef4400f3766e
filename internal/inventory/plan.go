package inventory

import (
	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/plan"
)

// Plan is a plan over inventory worlds.
type Plan = plan.Plan[World, Event, Distance, Change]

func NewPlan(steps []World, reporter diag.Reporter) *Plan {
	return plan.New[World, Event, Distance, Change](steps, reporter)
}
