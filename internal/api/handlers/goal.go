package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/google/uuid"
)

type GoalService interface {
	Add(ctx context.Context, g *domain.GoalSpec) error
	List(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID) ([]domain.GoalSpec, error)
}

type GoalHandler struct {
	svc GoalService
}

func NewGoalHandler(svc GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

type createGoalRequest struct {
	Name       string   `json:"name"`
	Target     string   `json:"target"`
	Importance *float64 `json:"importance"`
	Types      []string `json:"types,omitempty"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenant, agentID, ok := agentScope(w, r)
	if !ok {
		return
	}

	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Target == "" {
		writeError(w, http.StatusBadRequest, "target is required")
		return
	}

	importance := 1.0
	if req.Importance != nil {
		importance = *req.Importance
	}

	g := &domain.GoalSpec{
		AgentID:    agentID,
		TenantID:   tenant.ID,
		Name:       req.Name,
		Target:     req.Target,
		Importance: importance,
		Types:      req.Types,
	}
	if err := h.svc.Add(r.Context(), g); err != nil {
		writeServiceError(w, err, "failed to create goal")
		return
	}

	writeJSON(w, http.StatusCreated, g)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	tenant, agentID, ok := agentScope(w, r)
	if !ok {
		return
	}

	goals, err := h.svc.List(r.Context(), agentID, tenant.ID)
	if err != nil {
		writeServiceError(w, err, "failed to list goals")
		return
	}
	if goals == nil {
		goals = []domain.GoalSpec{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"goals": goals})
}
