package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harshitk-cp/emgine/internal/api/middleware"
	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/Harshitk-cp/emgine/internal/service"
	"github.com/Harshitk-cp/emgine/internal/worldstate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAgents struct{ mock.Mock }

func (m *mockAgents) Create(ctx context.Context, a *domain.Agent) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAgents) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*domain.Agent, error) {
	args := m.Called(ctx, id, tenantID)
	a, _ := args.Get(0).(*domain.Agent)
	return a, args.Error(1)
}

type mockGoals struct{ mock.Mock }

func (m *mockGoals) Add(ctx context.Context, g *domain.GoalSpec) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockGoals) List(ctx context.Context, agentID, tenantID uuid.UUID) ([]domain.GoalSpec, error) {
	args := m.Called(ctx, agentID, tenantID)
	g, _ := args.Get(0).([]domain.GoalSpec)
	return g, args.Error(1)
}

type mockAppraisals struct{ mock.Mock }

func (m *mockAppraisals) Appraise(ctx context.Context, agentID, tenantID uuid.UUID, deltas []int, probability float64) (*service.AppraisalOutcome, error) {
	args := m.Called(ctx, agentID, tenantID, deltas, probability)
	o, _ := args.Get(0).(*service.AppraisalOutcome)
	return o, args.Error(1)
}

func (m *mockAppraisals) List(ctx context.Context, agentID, tenantID uuid.UUID, limit int) ([]domain.AppraisalRecord, error) {
	args := m.Called(ctx, agentID, tenantID, limit)
	r, _ := args.Get(0).([]domain.AppraisalRecord)
	return r, args.Error(1)
}

func (m *mockAppraisals) Similar(ctx context.Context, agentID, tenantID uuid.UUID, topK int) ([]domain.AppraisalWithScore, error) {
	args := m.Called(ctx, agentID, tenantID, topK)
	r, _ := args.Get(0).([]domain.AppraisalWithScore)
	return r, args.Error(1)
}

type mockAffect struct{ mock.Mock }

func (m *mockAffect) Get(ctx context.Context, agentID, tenantID uuid.UUID) (*domain.AffectState, error) {
	args := m.Called(ctx, agentID, tenantID)
	s, _ := args.Get(0).(*domain.AffectState)
	return s, args.Error(1)
}

func (m *mockAffect) Attend(ctx context.Context, agentID, tenantID uuid.UUID, u service.AttentionUpdate) (*service.AttentionView, error) {
	args := m.Called(ctx, agentID, tenantID, u)
	v, _ := args.Get(0).(*service.AttentionView)
	return v, args.Error(1)
}

func (m *mockAffect) Attach(ctx context.Context, agentID, tenantID uuid.UUID, op domain.AttachmentOp, n int) (*domain.AffectState, error) {
	args := m.Called(ctx, agentID, tenantID, op, n)
	s, _ := args.Get(0).(*domain.AffectState)
	return s, args.Error(1)
}

var testTenant = &domain.Tenant{ID: uuid.New(), Name: "acme"}

// serve routes a single request through a chi router so URL params resolve.
func serve(t *testing.T, method, pattern, path string, body any, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	req := httptest.NewRequest(method, path, &buf)
	req = req.WithContext(middleware.WithTenant(req.Context(), testTenant))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestAgentHandler_Create(t *testing.T) {
	svc := new(mockAgents)
	h := NewAgentHandler(svc)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Agent) bool {
		return a.TenantID == testTenant.ID && a.ExternalID == "bot-1"
	})).Return(nil).Once()

	rr := serve(t, http.MethodPost, "/agents", "/agents", map[string]string{"external_id": "bot-1", "name": "Bot"}, h.Create)
	assert.Equal(t, http.StatusCreated, rr.Code)
	svc.AssertExpectations(t)

	rr = serve(t, http.MethodPost, "/agents", "/agents", map[string]string{"name": "Bot"}, h.Create)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.On("Create", mock.Anything, mock.Anything).Return(service.ErrAgentConflict).Once()
	rr = serve(t, http.MethodPost, "/agents", "/agents", map[string]string{"external_id": "dup", "name": "Bot"}, h.Create)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAgentHandler_GetByID(t *testing.T) {
	svc := new(mockAgents)
	h := NewAgentHandler(svc)
	id := uuid.New()

	svc.On("GetByID", mock.Anything, id, testTenant.ID).Return(nil, service.ErrAgentNotFound)

	rr := serve(t, http.MethodGet, "/agents/{id}", "/agents/"+id.String(), nil, h.GetByID)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(t, http.MethodGet, "/agents/{id}", "/agents/not-a-uuid", nil, h.GetByID)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGoalHandler_Create(t *testing.T) {
	svc := new(mockGoals)
	h := NewGoalHandler(svc)
	id := uuid.New()
	path := "/agents/" + id.String() + "/goals"

	svc.On("Add", mock.Anything, mock.MatchedBy(func(g *domain.GoalSpec) bool {
		return g.AgentID == id && g.Importance == 1 && g.Target == "1,1,1"
	})).Return(nil).Once()
	rr := serve(t, http.MethodPost, "/agents/{id}/goals", path, map[string]string{"name": "collect", "target": "1,1,1"}, h.Create)
	assert.Equal(t, http.StatusCreated, rr.Code)

	svc.On("Add", mock.Anything, mock.Anything).Return(fmt.Errorf("%w: %w", service.ErrInvalidGoal, worldstate.ErrSizeMismatch)).Once()
	rr = serve(t, http.MethodPost, "/agents/{id}/goals", path, map[string]string{"name": "short", "target": "1"}, h.Create)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(t, http.MethodPost, "/agents/{id}/goals", path, map[string]string{"name": "no target"}, h.Create)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertExpectations(t)
}

func TestGoalHandler_ListEmpty(t *testing.T) {
	svc := new(mockGoals)
	h := NewGoalHandler(svc)
	id := uuid.New()

	svc.On("List", mock.Anything, id, testTenant.ID).Return(nil, nil)
	rr := serve(t, http.MethodGet, "/agents/{id}/goals", "/agents/"+id.String()+"/goals", nil, h.List)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{}, decode(t, rr)["goals"])
}

func TestAppraisalHandler_Event(t *testing.T) {
	id := uuid.New()
	path := "/agents/" + id.String() + "/events"
	pattern := "/agents/{id}/events"

	t.Run("ok with default probability", func(t *testing.T) {
		svc := new(mockAppraisals)
		svc.On("Appraise", mock.Anything, id, testTenant.ID, []int{1, 0, 0}, 1.0).
			Return(&service.AppraisalOutcome{World: "1,0,0", Intensities: map[string]float64{"joy": 1}}, nil)

		rr := serve(t, http.MethodPost, pattern, path, map[string]any{"deltas": []int{1, 0, 0}}, NewAppraisalHandler(svc).Event)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "1,0,0", decode(t, rr)["world"])
	})

	t.Run("world errors are unprocessable", func(t *testing.T) {
		for _, werr := range []error{worldstate.ErrInvalidTransition, worldstate.ErrSizeMismatch} {
			svc := new(mockAppraisals)
			svc.On("Appraise", mock.Anything, id, testTenant.ID, []int{-1}, 0.5).Return(nil, werr)
			rr := serve(t, http.MethodPost, pattern, path, `{"deltas":[-1],"probability":0.5}`, NewAppraisalHandler(svc).Event)
			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		}
	})

	t.Run("missing deltas", func(t *testing.T) {
		rr := serve(t, http.MethodPost, pattern, path, `{}`, NewAppraisalHandler(new(mockAppraisals)).Event)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := serve(t, http.MethodPost, pattern, path, `{`, NewAppraisalHandler(new(mockAppraisals)).Event)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAppraisalHandler_ListAndSimilar(t *testing.T) {
	id := uuid.New()
	svc := new(mockAppraisals)
	h := NewAppraisalHandler(svc)

	svc.On("List", mock.Anything, id, testTenant.ID, 5).Return([]domain.AppraisalRecord{{Channel: "joy"}}, nil)
	rr := serve(t, http.MethodGet, "/agents/{id}/appraisals", "/agents/"+id.String()+"/appraisals?limit=5", nil, h.List)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode(t, rr)["appraisals"], 1)

	rr = serve(t, http.MethodGet, "/agents/{id}/appraisals", "/agents/"+id.String()+"/appraisals?limit=0", nil, h.List)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.On("Similar", mock.Anything, id, testTenant.ID, 10).Return(nil, nil)
	rr = serve(t, http.MethodGet, "/agents/{id}/appraisals/similar", "/agents/"+id.String()+"/appraisals/similar", nil, h.Similar)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{}, decode(t, rr)["appraisals"])
	svc.AssertExpectations(t)
}

func TestAffectHandler(t *testing.T) {
	id := uuid.New()
	svc := new(mockAffect)
	h := NewAffectHandler(svc)
	base := "/agents/" + id.String()

	seconds := float32(0.5)
	svc.On("Attend", mock.Anything, id, testTenant.ID, service.AttentionUpdate{Steps: 2, StepSeconds: &seconds}).
		Return(&service.AttentionView{Steps: 2, StepSeconds: 0.5, TimeAttendedSeconds: 1}, nil)
	rr := serve(t, http.MethodPost, "/agents/{id}/attention", base+"/attention", `{"steps":2,"step_seconds":0.5}`, h.Attention)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1.0, decode(t, rr)["time_attended_seconds"])

	svc.On("Attach", mock.Anything, id, testTenant.ID, domain.AttachmentUp, 0).
		Return(&domain.AffectState{AttachmentLevel: 1, AttachmentUpSize: 1, AttachmentDownSize: 1}, nil)
	rr = serve(t, http.MethodPost, "/agents/{id}/attachment", base+"/attachment", `{"op":"up"}`, h.Attachment)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1.0, decode(t, rr)["level"])

	svc.On("Attach", mock.Anything, id, testTenant.ID, domain.AttachmentOp("sideways"), 0).
		Return(nil, service.ErrInvalidAttachmentOp)
	rr = serve(t, http.MethodPost, "/agents/{id}/attachment", base+"/attachment", `{"op":"sideways"}`, h.Attachment)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.On("Get", mock.Anything, id, testTenant.ID).Return(nil, service.ErrAgentNotFound)
	rr = serve(t, http.MethodGet, "/agents/{id}/affect", base+"/affect", nil, h.Get)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUnauthenticated(t *testing.T) {
	h := NewGoalHandler(new(mockGoals))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
