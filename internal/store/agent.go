package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const agentColumns = `id, tenant_id, external_id, name, metadata, created_at, updated_at`

type AgentStore struct {
	db *pgxpool.Pool
}

func NewAgentStore(db *pgxpool.Pool) *AgentStore {
	return &AgentStore{db: db}
}

func (s *AgentStore) Create(ctx context.Context, a *domain.Agent) error {
	return insertAgent(ctx, s.db, a)
}

// CreateWithState inserts the agent and its initial affect state in one
// transaction, so an agent never exists without a world.
func (s *AgentStore) CreateWithState(ctx context.Context, a *domain.Agent, st *domain.AffectState) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertAgent(ctx, tx, a); err != nil {
		return err
	}
	st.AgentID = a.ID
	st.TenantID = a.TenantID
	if err := upsertAffect(ctx, tx, st); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *AgentStore) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Agent, error) {
	return scanAgent(s.db.QueryRow(ctx,
		`SELECT `+agentColumns+` FROM agents WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	))
}

func (s *AgentStore) GetByExternalID(ctx context.Context, externalID string, tenantID uuid.UUID) (*domain.Agent, error) {
	return scanAgent(s.db.QueryRow(ctx,
		`SELECT `+agentColumns+` FROM agents WHERE external_id = $1 AND tenant_id = $2`,
		externalID, tenantID,
	))
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertAgent(ctx context.Context, q querier, a *domain.Agent) error {
	err := q.QueryRow(ctx,
		`INSERT INTO agents (tenant_id, external_id, name, metadata)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		a.TenantID, a.ExternalID, a.Name, a.Metadata,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return mapWriteError(err)
}

func scanAgent(row pgx.Row) (*domain.Agent, error) {
	a := &domain.Agent{}
	err := row.Scan(&a.ID, &a.TenantID, &a.ExternalID, &a.Name, &a.Metadata, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrConflict
	}
	return err
}
