package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/Harshitk-cp/emgine/internal/goal"
	"github.com/Harshitk-cp/emgine/internal/inventory"
	"github.com/Harshitk-cp/emgine/internal/store"
	"github.com/Harshitk-cp/emgine/internal/worldstate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidGoal  = errors.New("invalid goal")
	ErrGoalConflict = errors.New("goal with this name already exists")
)

type GoalService struct {
	goals  domain.GoalStore
	affect domain.AffectStore
	logger *zap.Logger
}

func NewGoalService(goals domain.GoalStore, affect domain.AffectStore, logger *zap.Logger) *GoalService {
	return &GoalService{goals: goals, affect: affect, logger: logger}
}

// Add validates g against the agent's world and stores it. Target and
// types are normalized; negative importance is clamped to zero.
func (s *GoalService) Add(ctx context.Context, g *domain.GoalSpec) error {
	state, err := s.affect.Get(ctx, g.AgentID, g.TenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAgentNotFound
		}
		return err
	}
	world, err := inventory.ParseWorld(state.World)
	if err != nil {
		return fmt.Errorf("stored world: %w", err)
	}

	reporter := diag.NewZapReporter(s.logger.With(zap.String("agent_id", g.AgentID.String())))
	built, err := buildGoal(*g, reporter)
	if err != nil {
		return err
	}
	if built.Target().Size() != world.Size() {
		return fmt.Errorf("%w: target has %d slots, world has %d: %w",
			ErrInvalidGoal, built.Target().Size(), world.Size(), worldstate.ErrSizeMismatch)
	}

	g.Target = built.Target().String()
	g.Importance = built.Importance()
	g.Types = typeNames(built.Types())

	if err := s.goals.Create(ctx, g); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrGoalConflict
		}
		return err
	}
	return nil
}

func (s *GoalService) List(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID) ([]domain.GoalSpec, error) {
	return s.goals.ListByAgent(ctx, agentID, tenantID)
}

// buildGoal turns a stored goal into an inventory goal.
func buildGoal(spec domain.GoalSpec, reporter diag.Reporter) (*inventory.Goal, error) {
	target, err := inventory.ParseWorld(spec.Target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGoal, err)
	}
	if target.Size() == 0 {
		return nil, fmt.Errorf("%w: empty target", ErrInvalidGoal)
	}
	types := make([]goal.Type, 0, len(spec.Types))
	for _, name := range spec.Types {
		t, err := goal.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidGoal, err)
		}
		types = append(types, t)
	}
	return inventory.NewGoal(target, spec.Importance, reporter, types...), nil
}

func typeNames(types []goal.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
