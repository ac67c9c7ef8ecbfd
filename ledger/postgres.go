package ledger

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"upnmigrate/migrate"
)

// PostgresSink mirrors audit rows into a database table for reporting
// across runs. It is an optional secondary sink: the CSV file stays the
// ledger of record.
type PostgresSink struct {
	pool *pgxpool.Pool
	ctx  context.Context
}

// NewPostgresSink connects to the audit database and ensures the audit
// table exists.
func NewPostgresSink(ctx context.Context, dsn string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to audit database: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS upn_audit (
			id           BIGSERIAL PRIMARY KEY,
			date_changed TIMESTAMPTZ NOT NULL,
			mode         TEXT NOT NULL,
			name         TEXT NOT NULL,
			account_key  TEXT NOT NULL,
			old_upn      TEXT NOT NULL,
			new_upn      TEXT NOT NULL,
			status       TEXT NOT NULL,
			details      TEXT NOT NULL
		)
	`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to create audit table: %w", err)
	}

	return &PostgresSink{pool: pool, ctx: ctx}, nil
}

// Append inserts one audit record.
func (s *PostgresSink) Append(rec migrate.AuditRecord) error {
	_, err := s.pool.Exec(s.ctx, `
		INSERT INTO upn_audit (date_changed, mode, name, account_key, old_upn, new_upn, status, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rec.Timestamp, string(rec.Mode), rec.DisplayName, rec.AccountKey, rec.OldUPN, rec.NewUPN, rec.Status, rec.Details)
	if err != nil {
		return fmt.Errorf("insert audit row: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresSink) Close() {
	s.pool.Close()
}
