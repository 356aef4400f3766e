package service

import (
	"context"
	"testing"

	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/Harshitk-cp/emgine/internal/store"
	"github.com/Harshitk-cp/emgine/internal/worldstate"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGoalService_Add(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	goals, affect := new(MockGoalStore), new(MockAffectStore)
	s := NewGoalService(goals, affect, zap.New(core))
	ctx := context.Background()
	agentID, tenantID := uuid.New(), uuid.New()

	affect.On("Get", ctx, agentID, tenantID).Return(&domain.AffectState{World: "0,0,0"}, nil)
	goals.On("Create", ctx, mock.Anything).Return(nil)

	g := &domain.GoalSpec{
		AgentID:    agentID,
		TenantID:   tenantID,
		Name:       "eat",
		Target:     "full, x, 1",
		Importance: -2,
		Types:      []string{"Gustatory", "self_preservation"},
	}
	require.NoError(t, s.Add(ctx, g))

	assert.Equal(t, "1,1,1", g.Target)
	assert.Equal(t, 0.0, g.Importance)
	assert.Equal(t, []string{"self_preservation", "gustatory"}, g.Types)
	assert.NotEqual(t, uuid.Nil, g.ID)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "W-G_IMPORTANCE_IS_NEGATIVE", logs.All()[0].ContextMap()["code"])
}

func TestGoalService_Add_Invalid(t *testing.T) {
	ctx := context.Background()
	agentID, tenantID := uuid.New(), uuid.New()

	tests := []struct {
		name string
		goal domain.GoalSpec
		want error
	}{
		{"bad slot", domain.GoalSpec{Target: "1,maybe,0"}, ErrInvalidGoal},
		{"empty target", domain.GoalSpec{Target: ""}, ErrInvalidGoal},
		{"unknown type", domain.GoalSpec{Target: "1,1,1", Types: []string{"hunger"}}, ErrInvalidGoal},
		{"wrong size", domain.GoalSpec{Target: "1,1"}, worldstate.ErrSizeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goals, affect := new(MockGoalStore), new(MockAffectStore)
			s := NewGoalService(goals, affect, zap.NewNop())
			affect.On("Get", ctx, agentID, tenantID).Return(&domain.AffectState{World: "0,0,0"}, nil)

			g := tt.goal
			g.AgentID, g.TenantID = agentID, tenantID
			err := s.Add(ctx, &g)
			assert.ErrorIs(t, err, tt.want)
			goals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGoalService_Add_Errors(t *testing.T) {
	ctx := context.Background()
	agentID, tenantID := uuid.New(), uuid.New()

	goals, affect := new(MockGoalStore), new(MockAffectStore)
	s := NewGoalService(goals, affect, zap.NewNop())
	affect.On("Get", ctx, agentID, tenantID).Return(nil, store.ErrNotFound).Once()

	err := s.Add(ctx, &domain.GoalSpec{AgentID: agentID, TenantID: tenantID, Target: "1"})
	assert.ErrorIs(t, err, ErrAgentNotFound)

	affect.On("Get", ctx, agentID, tenantID).Return(&domain.AffectState{World: "0"}, nil)
	goals.On("Create", ctx, mock.Anything).Return(store.ErrConflict)
	err = s.Add(ctx, &domain.GoalSpec{AgentID: agentID, TenantID: tenantID, Name: "eat", Target: "1"})
	assert.ErrorIs(t, err, ErrGoalConflict)
}
