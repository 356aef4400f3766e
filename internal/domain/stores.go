package domain

import (
	"context"

	"github.com/google/uuid"
)

type TenantStore interface {
	Create(ctx context.Context, t *Tenant) error
	GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*Tenant, error)
}

type AgentStore interface {
	Create(ctx context.Context, a *Agent) error
	// CreateWithState inserts the agent together with its initial affect state.
	CreateWithState(ctx context.Context, a *Agent, initial *AffectState) error
	GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*Agent, error)
	GetByExternalID(ctx context.Context, externalID string, tenantID uuid.UUID) (*Agent, error)
}

type GoalStore interface {
	Create(ctx context.Context, g *GoalSpec) error
	ListByAgent(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID) ([]GoalSpec, error)
}

type AffectStore interface {
	Get(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID) (*AffectState, error)
	Upsert(ctx context.Context, s *AffectState) error
}

type AppraisalStore interface {
	// RecordStep commits the records of one event and the resulting
	// affect state atomically.
	RecordStep(ctx context.Context, records []AppraisalRecord, s *AffectState) error
	ListRecent(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID, limit int) ([]AppraisalRecord, error)
	// FindSimilar ranks elicited appraisals by cosine similarity of their
	// intensity profile to profile.
	FindSimilar(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID, profile []float32, topK int) ([]AppraisalWithScore, error)
}
