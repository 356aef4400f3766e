package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Harshitk-cp/emgine/internal/domain"
)

type contextKey string

const tenantContextKey contextKey = "tenant"

// APIKeyHeader is accepted as an alternative to a bearer token.
const APIKeyHeader = "X-API-Key"

func TenantFromContext(ctx context.Context) *domain.Tenant {
	t, _ := ctx.Value(tenantContextKey).(*domain.Tenant)
	return t
}

// WithTenant returns ctx carrying t, as APIKeyAuth does after a successful lookup.
func WithTenant(ctx context.Context, t *domain.Tenant) context.Context {
	return context.WithValue(ctx, tenantContextKey, t)
}

// APIKeyAuth resolves the caller's tenant from the API key and rejects the
// request when the key is missing or unknown.
func APIKeyAuth(tenants domain.TenantStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, msg := apiKeyFrom(r)
			if key == "" {
				writeError(w, http.StatusUnauthorized, msg)
				return
			}

			tenant, err := tenants.GetByAPIKeyHash(r.Context(), HashAPIKey(key))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid API key")
				return
			}

			noteTenant(r.Context(), tenant.ID.String())
			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), tenant)))
		})
	}
}

func apiKeyFrom(r *http.Request) (key string, problem string) {
	if k := r.Header.Get(APIKeyHeader); k != "" {
		return k, ""
	}
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", "missing authorization header"
	}
	scheme, token, found := strings.Cut(auth, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", "invalid authorization header format"
	}
	return token, ""
}

// HashAPIKey is the only form in which keys are stored.
func HashAPIKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:])
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
