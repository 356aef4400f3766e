package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/emgine/internal/api/middleware"
	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/google/uuid"
)

type AgentService interface {
	Create(ctx context.Context, a *domain.Agent) error
	GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Agent, error)
}

type AgentHandler struct {
	svc AgentService
}

func NewAgentHandler(svc AgentService) *AgentHandler {
	return &AgentHandler{svc: svc}
}

type createAgentRequest struct {
	ExternalID string         `json:"external_id"`
	Name       string         `json:"name"`
	Metadata   map[string]any `json:"metadata"`
}

func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ExternalID == "" {
		writeError(w, http.StatusBadRequest, "external_id is required")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	agent := &domain.Agent{
		TenantID:   tenant.ID,
		ExternalID: req.ExternalID,
		Name:       req.Name,
		Metadata:   req.Metadata,
	}
	if err := h.svc.Create(r.Context(), agent); err != nil {
		writeServiceError(w, err, "failed to create agent")
		return
	}

	writeJSON(w, http.StatusCreated, agent)
}

func (h *AgentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tenant, agentID, ok := agentScope(w, r)
	if !ok {
		return
	}

	agent, err := h.svc.GetByID(r.Context(), agentID, tenant.ID)
	if err != nil {
		writeServiceError(w, err, "failed to get agent")
		return
	}

	writeJSON(w, http.StatusOK, agent)
}
