package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshitk-cp/emgine/internal/config"
	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/Harshitk-cp/emgine/internal/engine"
	"github.com/Harshitk-cp/emgine/internal/intensity"
	"github.com/Harshitk-cp/emgine/internal/inventory"
	"github.com/Harshitk-cp/emgine/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppraisalOutcome is the agent's affect after one event.
type AppraisalOutcome struct {
	World       string                   `json:"world"`
	Intensities map[string]float64       `json:"intensities"`
	Appraisals  []domain.AppraisalRecord `json:"appraisals"`
}

// AppraisalService runs events through every goal of an agent and folds
// the elicited emotions into its intensity profile.
type AppraisalService struct {
	goals      domain.GoalStore
	affect     domain.AffectStore
	appraisals domain.AppraisalStore
	thresholds config.Thresholds
	locks      *AgentLocks
	logger     *zap.Logger
}

func NewAppraisalService(
	goals domain.GoalStore,
	affect domain.AffectStore,
	appraisals domain.AppraisalStore,
	thresholds config.Thresholds,
	locks *AgentLocks,
	logger *zap.Logger,
) *AppraisalService {
	return &AppraisalService{
		goals:      goals,
		affect:     affect,
		appraisals: appraisals,
		thresholds: thresholds,
		locks:      locks,
		logger:     logger,
	}
}

// Appraise evaluates joy and disgust for every goal against the agent's
// current world, then applies the event. Any world error aborts the call
// before anything is written; the records and the new state are saved in
// one transaction.
func (s *AppraisalService) Appraise(ctx context.Context, agentID, tenantID uuid.UUID, deltas []int, probability float64) (*AppraisalOutcome, error) {
	unlock := s.locks.Lock(agentID)
	defer unlock()

	state, err := s.affect.Get(ctx, agentID, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	prior, err := inventory.ParseWorld(state.World)
	if err != nil {
		return nil, fmt.Errorf("stored world: %w", err)
	}
	profile, err := intensity.ProfileFromMap(state.Intensities)
	if err != nil {
		return nil, fmt.Errorf("stored intensities: %w", err)
	}
	specs, err := s.goals.ListByAgent(ctx, agentID, tenantID)
	if err != nil {
		return nil, err
	}

	event := inventory.NewEvent(deltas...).WithProbability(probability)
	reporter := diag.NewZapReporter(s.logger.With(zap.String("agent_id", agentID.String())))

	goals := make([]*inventory.Goal, len(specs))
	for i, spec := range specs {
		if goals[i], err = buildGoal(spec, reporter); err != nil {
			return nil, fmt.Errorf("goal %s: %w", spec.Name, err)
		}
	}

	out, err := engine.Step(goals, prior, event, profile, s.thresholds)
	if err != nil {
		return nil, err
	}

	records := make([]domain.AppraisalRecord, len(out.Appraisals))
	for i, a := range out.Appraisals {
		records[i] = newRecord(specs[a.Goal], a, event)
		records[i].AgentID = agentID
		records[i].TenantID = tenantID
	}
	state.World = out.World.String()
	state.Intensities = out.Profile.Map()
	if err := s.appraisals.RecordStep(ctx, records, state); err != nil {
		return nil, err
	}

	s.logger.Info("event appraised",
		zap.String("agent_id", agentID.String()),
		zap.String("event", event.String()),
		zap.String("world", state.World),
		zap.Int("goals", len(specs)),
		zap.Int("elicited", out.Elicited()),
	)

	return &AppraisalOutcome{
		World:       state.World,
		Intensities: state.Intensities,
		Appraisals:  records,
	}, nil
}

func (s *AppraisalService) List(ctx context.Context, agentID, tenantID uuid.UUID, limit int) ([]domain.AppraisalRecord, error) {
	return s.appraisals.ListRecent(ctx, agentID, tenantID, limit)
}

// Similar returns past elicited appraisals whose resulting profile is
// closest to the agent's current one.
func (s *AppraisalService) Similar(ctx context.Context, agentID, tenantID uuid.UUID, topK int) ([]domain.AppraisalWithScore, error) {
	state, err := s.affect.Get(ctx, agentID, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	profile, err := intensity.ProfileFromMap(state.Intensities)
	if err != nil {
		return nil, fmt.Errorf("stored intensities: %w", err)
	}
	return s.appraisals.FindSimilar(ctx, agentID, tenantID, profile.Vector(), topK)
}

func newRecord(spec domain.GoalSpec, a engine.Appraisal, e inventory.Event) domain.AppraisalRecord {
	return domain.AppraisalRecord{
		GoalID:       spec.ID,
		Channel:      string(a.Channel),
		Elicited:     a.Result.Elicited,
		Gate:         string(a.Result.Gate),
		DistPrev:     a.Result.DistPrev.ToReal(),
		DistNow:      a.Result.DistNow.ToReal(),
		DistDelta:    a.Result.DistDelta.ToReal(),
		Contribution: a.Change.Real(),
		Event:        e.String(),
		Profile:      a.Profile.Vector(),
	}
}
