package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Statements are applied in order and must stay idempotent; there is no
// separate migration tool, the API binary brings its own schema up at boot.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS payment_orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		gateway_order_id TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		amount BIGINT NOT NULL CHECK (amount > 0),
		currency TEXT NOT NULL,
		receipt TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'created',
		gateway_payment_id TEXT,
		signature TEXT,
		completed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payment_orders_user ON payment_orders (user_id)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		gateway_payment_id TEXT NOT NULL UNIQUE,
		gateway_order_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		amount BIGINT NOT NULL,
		currency TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'captured',
		signature TEXT NOT NULL,
		verified_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_user ON payments (user_id)`,
	`CREATE TABLE IF NOT EXISTS family_plans (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		primary_holder TEXT NOT NULL,
		billing_account TEXT NOT NULL,
		max_members INT NOT NULL DEFAULT 6,
		tier TEXT NOT NULL DEFAULT 'standard',
		shared_balance NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (shared_balance >= 0),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS family_members (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		plan_id UUID NOT NULL REFERENCES family_plans(id),
		user_id TEXT NOT NULL,
		role TEXT NOT NULL,
		display_name TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_family_members_active_user
		ON family_members (plan_id, user_id) WHERE active`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying migration %d: %w", i, err)
		}
	}

	return nil
}
