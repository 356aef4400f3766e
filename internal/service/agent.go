package service

import (
	"context"
	"errors"

	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/Harshitk-cp/emgine/internal/intensity"
	"github.com/Harshitk-cp/emgine/internal/inventory"
	"github.com/Harshitk-cp/emgine/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AgentService struct {
	store  domain.AgentStore
	slots  int
	logger *zap.Logger
}

// NewAgentService returns a service whose new agents start with an empty
// inventory of the given size.
func NewAgentService(s domain.AgentStore, slots int, logger *zap.Logger) *AgentService {
	return &AgentService{store: s, slots: slots, logger: logger}
}

var (
	ErrAgentNotFound = errors.New("agent not found")
	ErrAgentConflict = errors.New("agent with this external_id already exists")
)

func (s *AgentService) Create(ctx context.Context, a *domain.Agent) error {
	err := s.store.CreateWithState(ctx, a, InitialAffectState(s.slots))
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrAgentConflict
		}
		return err
	}
	s.logger.Info("agent created",
		zap.String("agent_id", a.ID.String()),
		zap.String("external_id", a.ExternalID),
		zap.Int("slots", s.slots),
	)
	return nil
}

func (s *AgentService) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Agent, error) {
	a, err := s.store.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	return a, nil
}

// InitialAffectState is an empty inventory, zero intensities, no
// attention and neutral attachment with unit step sizes.
func InitialAffectState(slots int) *domain.AffectState {
	return &domain.AffectState{
		World:                inventory.Emptied(slots).String(),
		Intensities:          intensity.NewProfile().Map(),
		AttentionStepSeconds: 1,
		AttachmentUpSize:     1,
		AttachmentDownSize:   1,
	}
}
