package store

import (
	"context"
	"fmt"

	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
)

const appraisalColumns = `id, agent_id, tenant_id, goal_id, channel, elicited, gate,
		dist_prev, dist_now, dist_delta, contribution, event, profile, created_at`

type AppraisalStore struct {
	db *pgxpool.Pool
}

func NewAppraisalStore(db *pgxpool.Pool) *AppraisalStore {
	return &AppraisalStore{db: db}
}

// RecordStep stores the appraisals of one event together with the affect
// state they produced. Either all of it is committed or none of it is.
func (s *AppraisalStore) RecordStep(ctx context.Context, records []domain.AppraisalRecord, st *domain.AffectState) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i := range records {
		if err := insertAppraisal(ctx, tx, &records[i]); err != nil {
			return fmt.Errorf("record appraisal: %w", err)
		}
	}
	if err := upsertAffect(ctx, tx, st); err != nil {
		return fmt.Errorf("save affect: %w", err)
	}
	return tx.Commit(ctx)
}

func insertAppraisal(ctx context.Context, q querier, r *domain.AppraisalRecord) error {
	var profile *pgvector.Vector
	if len(r.Profile) > 0 {
		v := pgvector.NewVector(r.Profile)
		profile = &v
	}
	return q.QueryRow(ctx,
		`INSERT INTO appraisals (agent_id, tenant_id, goal_id, channel, elicited, gate,
		        dist_prev, dist_now, dist_delta, contribution, event, profile)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at`,
		r.AgentID, r.TenantID, r.GoalID, r.Channel, r.Elicited, r.Gate,
		r.DistPrev, r.DistNow, r.DistDelta, r.Contribution, r.Event, profile,
	).Scan(&r.ID, &r.CreatedAt)
}

func (s *AppraisalStore) ListRecent(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID, limit int) ([]domain.AppraisalRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(ctx,
		`SELECT `+appraisalColumns+`
		 FROM appraisals WHERE agent_id = $1 AND tenant_id = $2
		 ORDER BY created_at DESC
		 LIMIT $3`,
		agentID, tenantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list appraisals: %w", err)
	}
	defer rows.Close()

	var out []domain.AppraisalRecord
	for rows.Next() {
		r, err := scanAppraisal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *AppraisalStore) FindSimilar(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID, profile []float32, topK int) ([]domain.AppraisalWithScore, error) {
	if topK <= 0 {
		topK = 10
	}
	vec := pgvector.NewVector(profile)

	rows, err := s.db.Query(ctx,
		`SELECT `+appraisalColumns+`, 1 - (profile <=> $3) AS score
		 FROM appraisals
		 WHERE agent_id = $1 AND tenant_id = $2 AND elicited AND profile IS NOT NULL
		 ORDER BY profile <=> $3
		 LIMIT $4`,
		agentID, tenantID, vec, topK,
	)
	if err != nil {
		return nil, fmt.Errorf("similar appraisals: %w", err)
	}
	defer rows.Close()

	var out []domain.AppraisalWithScore
	for rows.Next() {
		var (
			r     domain.AppraisalRecord
			vec   *pgvector.Vector
			score float32
		)
		if err := rows.Scan(&r.ID, &r.AgentID, &r.TenantID, &r.GoalID, &r.Channel, &r.Elicited, &r.Gate,
			&r.DistPrev, &r.DistNow, &r.DistDelta, &r.Contribution, &r.Event, &vec, &r.CreatedAt, &score); err != nil {
			return nil, err
		}
		if vec != nil {
			r.Profile = vec.Slice()
		}
		out = append(out, domain.AppraisalWithScore{AppraisalRecord: r, Score: score})
	}
	return out, rows.Err()
}

func scanAppraisal(rows pgx.Rows) (domain.AppraisalRecord, error) {
	var (
		r   domain.AppraisalRecord
		vec *pgvector.Vector
	)
	err := rows.Scan(&r.ID, &r.AgentID, &r.TenantID, &r.GoalID, &r.Channel, &r.Elicited, &r.Gate,
		&r.DistPrev, &r.DistNow, &r.DistDelta, &r.Contribution, &r.Event, &vec, &r.CreatedAt)
	if err != nil {
		return r, err
	}
	if vec != nil {
		r.Profile = vec.Slice()
	}
	return r, nil
}
