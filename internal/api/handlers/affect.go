package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/Harshitk-cp/emgine/internal/service"
	"github.com/google/uuid"
)

type AffectService interface {
	Get(ctx context.Context, agentID, tenantID uuid.UUID) (*domain.AffectState, error)
	Attend(ctx context.Context, agentID, tenantID uuid.UUID, u service.AttentionUpdate) (*service.AttentionView, error)
	Attach(ctx context.Context, agentID, tenantID uuid.UUID, op domain.AttachmentOp, n int) (*domain.AffectState, error)
}

type AffectHandler struct {
	svc AffectService
}

func NewAffectHandler(svc AffectService) *AffectHandler {
	return &AffectHandler{svc: svc}
}

func (h *AffectHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant, agentID, ok := agentScope(w, r)
	if !ok {
		return
	}

	st, err := h.svc.Get(r.Context(), agentID, tenant.ID)
	if err != nil {
		writeServiceError(w, err, "failed to get affect")
		return
	}

	writeJSON(w, http.StatusOK, st)
}

type attentionRequest struct {
	Steps       int      `json:"steps"`
	StepSeconds *float32 `json:"step_seconds,omitempty"`
	Reset       bool     `json:"reset,omitempty"`
}

func (h *AffectHandler) Attention(w http.ResponseWriter, r *http.Request) {
	tenant, agentID, ok := agentScope(w, r)
	if !ok {
		return
	}

	var req attentionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.Attend(r.Context(), agentID, tenant.ID, service.AttentionUpdate{
		Steps:       req.Steps,
		StepSeconds: req.StepSeconds,
		Reset:       req.Reset,
	})
	if err != nil {
		writeServiceError(w, err, "failed to update attention")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

type attachmentRequest struct {
	Op    string `json:"op"`
	Value int    `json:"value,omitempty"`
}

func (h *AffectHandler) Attachment(w http.ResponseWriter, r *http.Request) {
	tenant, agentID, ok := agentScope(w, r)
	if !ok {
		return
	}

	var req attachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.svc.Attach(r.Context(), agentID, tenant.ID, domain.AttachmentOp(req.Op), req.Value)
	if err != nil {
		writeServiceError(w, err, "failed to update attachment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"level":     st.AttachmentLevel,
		"up_size":   st.AttachmentUpSize,
		"down_size": st.AttachmentDownSize,
	})
}
