package store

import (
	"context"
	"errors"

	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AffectStore struct {
	db *pgxpool.Pool
}

func NewAffectStore(db *pgxpool.Pool) *AffectStore {
	return &AffectStore{db: db}
}

func (s *AffectStore) Get(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID) (*domain.AffectState, error) {
	st := &domain.AffectState{}
	err := s.db.QueryRow(ctx,
		`SELECT agent_id, tenant_id, world, intensities,
		        attention_steps, attention_step_seconds,
		        attachment_level, attachment_up_size, attachment_down_size, updated_at
		 FROM affect_states WHERE agent_id = $1 AND tenant_id = $2`,
		agentID, tenantID,
	).Scan(&st.AgentID, &st.TenantID, &st.World, &st.Intensities,
		&st.AttentionSteps, &st.AttentionStepSeconds,
		&st.AttachmentLevel, &st.AttachmentUpSize, &st.AttachmentDownSize, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *AffectStore) Upsert(ctx context.Context, st *domain.AffectState) error {
	return upsertAffect(ctx, s.db, st)
}

func upsertAffect(ctx context.Context, q querier, st *domain.AffectState) error {
	if st.Intensities == nil {
		st.Intensities = map[string]float64{}
	}
	return q.QueryRow(ctx,
		`INSERT INTO affect_states (agent_id, tenant_id, world, intensities,
		        attention_steps, attention_step_seconds,
		        attachment_level, attachment_up_size, attachment_down_size)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (agent_id) DO UPDATE SET
		        world = EXCLUDED.world,
		        intensities = EXCLUDED.intensities,
		        attention_steps = EXCLUDED.attention_steps,
		        attention_step_seconds = EXCLUDED.attention_step_seconds,
		        attachment_level = EXCLUDED.attachment_level,
		        attachment_up_size = EXCLUDED.attachment_up_size,
		        attachment_down_size = EXCLUDED.attachment_down_size,
		        updated_at = NOW()
		 RETURNING updated_at`,
		st.AgentID, st.TenantID, st.World, st.Intensities,
		st.AttentionSteps, st.AttentionStepSeconds,
		st.AttachmentLevel, st.AttachmentUpSize, st.AttachmentDownSize,
	).Scan(&st.UpdatedAt)
}
