package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant owns agents. Requests authenticate as a tenant by API key.
type Tenant struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	APIKeyHash string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
