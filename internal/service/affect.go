package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshitk-cp/emgine/internal/affect"
	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/Harshitk-cp/emgine/internal/simtime"
	"github.com/Harshitk-cp/emgine/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidAttachmentOp = errors.New("invalid attachment operation")

// AttentionUpdate moves an agent's attention counter. StepSeconds, when
// set, replaces the step size before Steps are added.
type AttentionUpdate struct {
	Steps       int
	StepSeconds *float32
	Reset       bool
}

// AttentionView is the attention counter after an update.
type AttentionView struct {
	Steps               int     `json:"steps"`
	StepSeconds         float32 `json:"step_seconds"`
	TimeAttendedSeconds float32 `json:"time_attended_seconds"`
}

// AffectService mutates an agent's saturating counters.
type AffectService struct {
	affect domain.AffectStore
	locks  *AgentLocks
	logger *zap.Logger
}

func NewAffectService(affect domain.AffectStore, locks *AgentLocks, logger *zap.Logger) *AffectService {
	return &AffectService{affect: affect, locks: locks, logger: logger}
}

func (s *AffectService) Get(ctx context.Context, agentID, tenantID uuid.UUID) (*domain.AffectState, error) {
	st, err := s.affect.Get(ctx, agentID, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *AffectService) Attend(ctx context.Context, agentID, tenantID uuid.UUID, u AttentionUpdate) (*AttentionView, error) {
	unlock := s.locks.Lock(agentID)
	defer unlock()

	st, err := s.Get(ctx, agentID, tenantID)
	if err != nil {
		return nil, err
	}

	a := affect.NewAttention(st.AttentionSteps, simtime.NewDelta(st.AttentionStepSeconds), s.reporter(agentID))
	if u.StepSeconds != nil {
		a.SetStepSize(simtime.NewDelta(*u.StepSeconds))
	}
	if u.Reset {
		a.Reset()
	}
	a.Add(u.Steps)

	st.AttentionSteps = a.Level()
	st.AttentionStepSeconds = a.StepSize().Value()
	if err := s.affect.Upsert(ctx, st); err != nil {
		return nil, fmt.Errorf("save attention: %w", err)
	}
	return &AttentionView{
		Steps:               a.Level(),
		StepSeconds:         a.StepSize().Value(),
		TimeAttendedSeconds: a.TimeAttended().Value(),
	}, nil
}

// Attach applies op to the agent's social attachment. n is the operand
// for add, set and the step size operations; it is ignored otherwise.
func (s *AffectService) Attach(ctx context.Context, agentID, tenantID uuid.UUID, op domain.AttachmentOp, n int) (*domain.AffectState, error) {
	if !domain.ValidAttachmentOp(op) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAttachmentOp, op)
	}

	unlock := s.locks.Lock(agentID)
	defer unlock()

	st, err := s.Get(ctx, agentID, tenantID)
	if err != nil {
		return nil, err
	}

	sa := affect.NewSocialAttachment(st.AttachmentLevel, s.reporter(agentID))
	sa.SetUpSize(st.AttachmentUpSize)
	sa.SetDownSize(st.AttachmentDownSize)

	switch op {
	case domain.AttachmentUp:
		sa.Increment()
	case domain.AttachmentDown:
		sa.Decrement()
	case domain.AttachmentAdd:
		sa.Add(n)
	case domain.AttachmentSet:
		sa.SetLevel(n)
	case domain.AttachmentReset:
		sa.Reset()
	case domain.AttachmentSetUpSize:
		sa.SetUpSize(n)
	case domain.AttachmentSetDownSize:
		sa.SetDownSize(n)
	}

	st.AttachmentLevel = sa.Level()
	st.AttachmentUpSize = sa.UpSize()
	st.AttachmentDownSize = sa.DownSize()
	if err := s.affect.Upsert(ctx, st); err != nil {
		return nil, fmt.Errorf("save attachment: %w", err)
	}
	return st, nil
}

func (s *AffectService) reporter(agentID uuid.UUID) diag.Reporter {
	return diag.NewZapReporter(s.logger.With(zap.String("agent_id", agentID.String())))
}
