package store

import (
	"context"
	"fmt"

	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GoalStore struct {
	db *pgxpool.Pool
}

func NewGoalStore(db *pgxpool.Pool) *GoalStore {
	return &GoalStore{db: db}
}

func (s *GoalStore) Create(ctx context.Context, g *domain.GoalSpec) error {
	if g.Types == nil {
		g.Types = []string{}
	}
	err := s.db.QueryRow(ctx,
		`INSERT INTO goals (agent_id, tenant_id, name, target, importance, types)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		g.AgentID, g.TenantID, g.Name, g.Target, g.Importance, g.Types,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	return mapWriteError(err)
}

// ListByAgent returns an agent's goals oldest first, the order they are appraised in.
func (s *GoalStore) ListByAgent(ctx context.Context, agentID uuid.UUID, tenantID uuid.UUID) ([]domain.GoalSpec, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, agent_id, tenant_id, name, target, importance, types, created_at, updated_at
		 FROM goals WHERE agent_id = $1 AND tenant_id = $2
		 ORDER BY created_at ASC, id ASC`,
		agentID, tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.GoalSpec
	for rows.Next() {
		var g domain.GoalSpec
		if err := rows.Scan(&g.ID, &g.AgentID, &g.TenantID, &g.Name, &g.Target, &g.Importance, &g.Types, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
