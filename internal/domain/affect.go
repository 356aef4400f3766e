package domain

import (
	"time"

	"github.com/google/uuid"
)

// AffectState is everything the service remembers about one agent between
// events: its perceived world, per-channel intensities, and counters.
type AffectState struct {
	AgentID     uuid.UUID          `json:"agent_id"`
	TenantID    uuid.UUID          `json:"tenant_id,omitempty"`
	World       string             `json:"world"`
	Intensities map[string]float64 `json:"intensities"`

	AttentionSteps       int     `json:"attention_steps"`
	AttentionStepSeconds float32 `json:"attention_step_seconds"`

	AttachmentLevel    int `json:"attachment_level"`
	AttachmentUpSize   int `json:"attachment_up_size"`
	AttachmentDownSize int `json:"attachment_down_size"`

	UpdatedAt time.Time `json:"updated_at"`
}

// AttachmentOp names a social attachment transition.
type AttachmentOp string

const (
	AttachmentUp          AttachmentOp = "up"
	AttachmentDown        AttachmentOp = "down"
	AttachmentAdd         AttachmentOp = "add"
	AttachmentSet         AttachmentOp = "set"
	AttachmentReset       AttachmentOp = "reset"
	AttachmentSetUpSize   AttachmentOp = "set_up_size"
	AttachmentSetDownSize AttachmentOp = "set_down_size"
)

func ValidAttachmentOp(op AttachmentOp) bool {
	switch op {
	case AttachmentUp, AttachmentDown, AttachmentAdd, AttachmentSet, AttachmentReset, AttachmentSetUpSize, AttachmentSetDownSize:
		return true
	}
	return false
}
