package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppraisalRecord is one goal/channel evaluation of one event. Records are
// kept whether or not the emotion was elicited; Gate says what stopped it.
type AppraisalRecord struct {
	ID           uuid.UUID `json:"id"`
	AgentID      uuid.UUID `json:"agent_id"`
	TenantID     uuid.UUID `json:"tenant_id,omitempty"`
	GoalID       uuid.UUID `json:"goal_id"`
	Channel      string    `json:"channel"`
	Elicited     bool      `json:"elicited"`
	Gate         string    `json:"gate,omitempty"`
	DistPrev     float64   `json:"dist_prev"`
	DistNow      float64   `json:"dist_now"`
	DistDelta    float64   `json:"dist_delta"`
	Contribution float64   `json:"contribution"`
	Event        string    `json:"event"`
	Profile      []float32 `json:"profile,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type AppraisalWithScore struct {
	AppraisalRecord
	Score float32 `json:"score"`
}
