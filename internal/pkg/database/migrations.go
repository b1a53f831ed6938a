package database

import (
	"context"
	"fmt"
)

// Schema is applied on startup as an ordered list of idempotent statements.
// Foreign references are by identity only: a worker or factory can be removed
// without cascading into its historical ledger rows, which render "Unknown"
// where the reference no longer resolves.
var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		password_hash TEXT NOT NULL,
		full_name VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL DEFAULT 'farmer',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (LOWER(email));`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		token_hash TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens (user_id);`,
	`CREATE TABLE IF NOT EXISTS workers (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		role VARCHAR(50) NOT NULL,
		pay_type VARCHAR(16) NOT NULL,
		pay_rate NUMERIC(18,2) NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_workers_pay_type ON workers (pay_type);`,
	`CREATE TABLE IF NOT EXISTS factories (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		rate_per_kg NUMERIC(18,2) NOT NULL,
		transport_deduction NUMERIC(18,2) NOT NULL DEFAULT 3.0,
		location VARCHAR(100),
		contact VARCHAR(100),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS deliveries (
		id UUID PRIMARY KEY,
		worker_id UUID NOT NULL,
		factory_id UUID,
		quantity_kg NUMERIC(18,2) NOT NULL,
		delivered_at TIMESTAMPTZ NOT NULL,
		comment VARCHAR(500),
		worker_rate NUMERIC(18,2),
		factory_rate NUMERIC(18,2),
		transport_deduction NUMERIC(18,2),
		worker_payment NUMERIC(18,2),
		factory_gross NUMERIC(18,2),
		factory_net_to_farm NUMERIC(18,2),
		farm_profit NUMERIC(18,2),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_deliveries_worker_id ON deliveries (worker_id);`,
	`CREATE INDEX IF NOT EXISTS idx_deliveries_delivered_at ON deliveries (delivered_at);`,
	`CREATE TABLE IF NOT EXISTS advances (
		id UUID PRIMARY KEY,
		worker_id UUID NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		month INT NOT NULL,
		year INT NOT NULL,
		advance_date TIMESTAMPTZ NOT NULL,
		deducted BOOLEAN NOT NULL DEFAULT FALSE,
		notes VARCHAR(500),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_advances_worker_period ON advances (worker_id, year, month);`,
	`CREATE TABLE IF NOT EXISTS fertilizer_obligations (
		id UUID PRIMARY KEY,
		factory_id UUID NOT NULL,
		worker_id UUID,
		bags NUMERIC(18,2) NOT NULL,
		cost_per_bag NUMERIC(18,2) NOT NULL,
		total_cost NUMERIC(18,2) NOT NULL,
		payment_method VARCHAR(32) NOT NULL,
		paid BOOLEAN NOT NULL DEFAULT FALSE,
		payment_date TIMESTAMPTZ,
		obligation_date TIMESTAMPTZ NOT NULL,
		notes VARCHAR(500),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fertilizer_factory_id ON fertilizer_obligations (factory_id);`,
	`CREATE INDEX IF NOT EXISTS idx_fertilizer_worker_id ON fertilizer_obligations (worker_id) WHERE worker_id IS NOT NULL;`,
	`CREATE TABLE IF NOT EXISTS bonus_receipts (
		id UUID PRIMARY KEY,
		factory_id UUID NOT NULL,
		period VARCHAR(16) NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		fertilizer_deductions NUMERIC(18,2) NOT NULL DEFAULT 0,
		net_bonus NUMERIC(18,2) NOT NULL,
		date_received TIMESTAMPTZ NOT NULL,
		notes VARCHAR(500),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_bonus_receipts_period ON bonus_receipts (period);`,
	`CREATE TABLE IF NOT EXISTS payrolls (
		id UUID PRIMARY KEY,
		worker_id UUID NOT NULL,
		month INT NOT NULL,
		year INT NOT NULL,
		total_kg NUMERIC(18,2) NOT NULL DEFAULT 0,
		gross_earnings NUMERIC(18,2) NOT NULL DEFAULT 0,
		total_advances NUMERIC(18,2) NOT NULL DEFAULT 0,
		fertilizer_deduction NUMERIC(18,2) NOT NULL DEFAULT 0,
		total_deductions NUMERIC(18,2) NOT NULL DEFAULT 0,
		net_pay NUMERIC(18,2) NOT NULL DEFAULT 0,
		paid BOOLEAN NOT NULL DEFAULT FALSE,
		payment_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	// The uniqueness constraint is what makes payroll calculation safe to
	// re-run: a raced duplicate insert fails here and is treated as a skip.
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_payrolls_worker_period ON payrolls (worker_id, year, month);`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, db *DB) error {
	for i, stmt := range migrationStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
