package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/Harshitk-cp/emgine/internal/service"
	"github.com/google/uuid"
)

type AppraisalService interface {
	Appraise(ctx context.Context, agentID, tenantID uuid.UUID, deltas []int, probability float64) (*service.AppraisalOutcome, error)
	List(ctx context.Context, agentID, tenantID uuid.UUID, limit int) ([]domain.AppraisalRecord, error)
	Similar(ctx context.Context, agentID, tenantID uuid.UUID, topK int) ([]domain.AppraisalWithScore, error)
}

type AppraisalHandler struct {
	svc AppraisalService
}

func NewAppraisalHandler(svc AppraisalService) *AppraisalHandler {
	return &AppraisalHandler{svc: svc}
}

type eventRequest struct {
	Deltas      []int    `json:"deltas"`
	Probability *float64 `json:"probability,omitempty"`
}

// Event appraises one event against every goal of the agent and applies it.
func (h *AppraisalHandler) Event(w http.ResponseWriter, r *http.Request) {
	tenant, agentID, ok := agentScope(w, r)
	if !ok {
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Deltas) == 0 {
		writeError(w, http.StatusBadRequest, "deltas is required")
		return
	}
	probability := 1.0
	if req.Probability != nil {
		probability = *req.Probability
	}

	out, err := h.svc.Appraise(r.Context(), agentID, tenant.ID, req.Deltas, probability)
	if err != nil {
		writeServiceError(w, err, "failed to appraise event")
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *AppraisalHandler) List(w http.ResponseWriter, r *http.Request) {
	tenant, agentID, ok := agentScope(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.svc.List(r.Context(), agentID, tenant.ID, limit)
	if err != nil {
		writeServiceError(w, err, "failed to list appraisals")
		return
	}
	if records == nil {
		records = []domain.AppraisalRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"appraisals": records})
}

func (h *AppraisalHandler) Similar(w http.ResponseWriter, r *http.Request) {
	tenant, agentID, ok := agentScope(w, r)
	if !ok {
		return
	}
	topK, err := queryInt(r, "top_k", 10)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	similar, err := h.svc.Similar(r.Context(), agentID, tenant.ID, topK)
	if err != nil {
		writeServiceError(w, err, "failed to find similar appraisals")
		return
	}
	if similar == nil {
		similar = []domain.AppraisalWithScore{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"appraisals": similar})
}
