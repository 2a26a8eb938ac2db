package postgres

import (
	"context"
	"fmt"
)

// schemaDDL creates the wallet, ledger and outbox tables. Idempotent,
// applied at startup. Indexes follow the query paths: wallet lookup by
// user, history by (wallet, occurred_at), relay scan by (processed,
// created_at), correlation lookups for audit.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS wallets (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		balance NUMERIC(19,2) NOT NULL CHECK (balance >= 0),
		currency CHAR(3) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		version BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS wallet_transactions (
		id UUID PRIMARY KEY,
		wallet_id UUID NOT NULL REFERENCES wallets(id),
		seq BIGSERIAL,
		type TEXT NOT NULL,
		amount NUMERIC(19,2) NOT NULL,
		balance_after NUMERIC(19,2) NOT NULL,
		currency CHAR(3) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		occurred_at TIMESTAMPTZ NOT NULL,
		correlation_id UUID NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_wallet_transactions_wallet_occurred
		ON wallet_transactions (wallet_id, occurred_at)`,
	`CREATE INDEX IF NOT EXISTS idx_wallet_transactions_correlation
		ON wallet_transactions (correlation_id)`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id UUID PRIMARY KEY,
		aggregate_id TEXT NOT NULL,
		event_type TEXT NOT NULL,
		event_data JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		processed BOOLEAN NOT NULL DEFAULT FALSE,
		processed_at TIMESTAMPTZ,
		retry_count INT NOT NULL DEFAULT 0,
		error_message TEXT,
		correlation_id TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
		ON outbox_events (processed, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_correlation
		ON outbox_events (correlation_id)`,
}

// EnsureSchema applies the schema DDL. Safe to run on every startup.
func EnsureSchema(ctx context.Context, pool Pool) error {
	for _, ddl := range schemaDDL {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
