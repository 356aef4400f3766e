package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Harshitk-cp/emgine/internal/api/middleware"
	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/Harshitk-cp/emgine/internal/service"
	"github.com/Harshitk-cp/emgine/internal/worldstate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service and world errors to a status code.
// World errors mean the request was well formed but impossible.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrAgentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAgentConflict), errors.Is(err, service.ErrGoalConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidGoal), errors.Is(err, service.ErrInvalidAttachmentOp):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, worldstate.ErrSizeMismatch), errors.Is(err, worldstate.ErrInvalidTransition):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

// agentScope reads the tenant and the {id} URL param. It writes the error
// response itself and returns ok=false when either is missing or invalid.
func agentScope(w http.ResponseWriter, r *http.Request) (tenant *domain.Tenant, agentID uuid.UUID, ok bool) {
	tenant = middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil, uuid.Nil, false
	}
	agentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid agent id")
		return nil, uuid.Nil, false
	}
	return tenant, agentID, true
}

// queryInt reads a positive integer query parameter, returning def when absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}
