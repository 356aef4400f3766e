package service

import (
	"context"

	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAgentStore struct {
	mock.Mock
}

func (m *MockAgentStore) Create(ctx context.Context, a *domain.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentStore) CreateWithState(ctx context.Context, a *domain.Agent, initial *domain.AffectState) error {
	args := m.Called(ctx, a, initial)
	if args.Error(0) == nil {
		a.ID = uuid.New()
		initial.AgentID = a.ID
	}
	return args.Error(0)
}

func (m *MockAgentStore) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Agent, error) {
	args := m.Called(ctx, id, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agent), args.Error(1)
}

func (m *MockAgentStore) GetByExternalID(ctx context.Context, externalID string, tenantID uuid.UUID) (*domain.Agent, error) {
	args := m.Called(ctx, externalID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agent), args.Error(1)
}

type MockGoalStore struct {
	mock.Mock
}

func (m *MockGoalStore) Create(ctx context.Context, g *domain.GoalSpec) error {
	args := m.Called(ctx, g)
	if args.Error(0) == nil {
		g.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockGoalStore) ListByAgent(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID) ([]domain.GoalSpec, error) {
	args := m.Called(ctx, agentID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GoalSpec), args.Error(1)
}

type MockAffectStore struct {
	mock.Mock
}

func (m *MockAffectStore) Get(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID) (*domain.AffectState, error) {
	args := m.Called(ctx, agentID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AffectState), args.Error(1)
}

func (m *MockAffectStore) Upsert(ctx context.Context, s *domain.AffectState) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockAppraisalStore struct {
	mock.Mock
	committed []domain.AppraisalRecord
}

func (m *MockAppraisalStore) RecordStep(ctx context.Context, records []domain.AppraisalRecord, s *domain.AffectState) error {
	args := m.Called(ctx, records, s)
	if err := args.Error(0); err != nil {
		return err
	}
	for i := range records {
		records[i].ID = uuid.New()
	}
	m.committed = append(m.committed, records...)
	return nil
}

func (m *MockAppraisalStore) ListRecent(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID, limit int) ([]domain.AppraisalRecord, error) {
	args := m.Called(ctx, agentID, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AppraisalRecord), args.Error(1)
}

func (m *MockAppraisalStore) FindSimilar(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID, profile []float32, topK int) ([]domain.AppraisalWithScore, error) {
	args := m.Called(ctx, agentID, tenantID, profile, topK)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AppraisalWithScore), args.Error(1)
}

var (
	_ domain.AgentStore     = (*MockAgentStore)(nil)
	_ domain.GoalStore      = (*MockGoalStore)(nil)
	_ domain.AffectStore    = (*MockAffectStore)(nil)
	_ domain.AppraisalStore = (*MockAppraisalStore)(nil)
)
