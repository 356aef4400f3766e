package domain

import (
	"time"

	"github.com/google/uuid"
)

// GoalSpec is a stored goal. Target uses the inventory text form ("1,0,1").
type GoalSpec struct {
	ID         uuid.UUID `json:"id"`
	AgentID    uuid.UUID `json:"agent_id"`
	TenantID   uuid.UUID `json:"tenant_id,omitempty"`
	Name       string    `json:"name"`
	Target     string    `json:"target"`
	Importance float64   `json:"importance"`
	Types      []string  `json:"types"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
