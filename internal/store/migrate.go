package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileDimensions is the width of the stored intensity profile, one
// column per emotion channel.
const ProfileDimensions = 8

var schema = fmt.Sprintf(`
CREATE EXTENSION IF NOT EXISTS vector;
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS tenants (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	api_key_hash TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS agents (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
	external_id TEXT NOT NULL,
	name TEXT NOT NULL,
	metadata JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (tenant_id, external_id)
);

CREATE TABLE IF NOT EXISTS goals (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	agent_id UUID NOT NULL REFERENCES agents(id) ON DELETE CASCADE,
	tenant_id UUID NOT NULL,
	name TEXT NOT NULL,
	target TEXT NOT NULL,
	importance DOUBLE PRECISION NOT NULL CHECK (importance >= 0),
	types TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (agent_id, name)
);

CREATE TABLE IF NOT EXISTS affect_states (
	agent_id UUID PRIMARY KEY REFERENCES agents(id) ON DELETE CASCADE,
	tenant_id UUID NOT NULL,
	world TEXT NOT NULL,
	intensities JSONB NOT NULL DEFAULT '{}',
	attention_steps BIGINT NOT NULL DEFAULT 0,
	attention_step_seconds REAL NOT NULL DEFAULT 1,
	attachment_level BIGINT NOT NULL DEFAULT 0,
	attachment_up_size BIGINT NOT NULL DEFAULT 1,
	attachment_down_size BIGINT NOT NULL DEFAULT 1,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS appraisals (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	agent_id UUID NOT NULL REFERENCES agents(id) ON DELETE CASCADE,
	tenant_id UUID NOT NULL,
	goal_id UUID NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
	channel TEXT NOT NULL,
	elicited BOOLEAN NOT NULL,
	gate TEXT NOT NULL DEFAULT '',
	dist_prev DOUBLE PRECISION NOT NULL,
	dist_now DOUBLE PRECISION NOT NULL,
	dist_delta DOUBLE PRECISION NOT NULL,
	contribution DOUBLE PRECISION NOT NULL DEFAULT 0,
	event TEXT NOT NULL,
	profile vector(%d),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_appraisals_agent_created ON appraisals (agent_id, created_at DESC);
`, ProfileDimensions)

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
