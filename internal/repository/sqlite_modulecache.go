// Package repository contains the SQLite-backed persistence layer.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/db"
)

// SQLiteModuleCacheRepo stores raw NUSMods module JSON keyed by module code
// and academic year. Entries older than the TTL are treated as misses; a TTL
// of zero disables expiry.
type SQLiteModuleCacheRepo struct {
	db  db.Querier
	ttl time.Duration
	now func() time.Time
}

// NewSQLiteModuleCacheRepo creates a new SQLiteModuleCacheRepo.
func NewSQLiteModuleCacheRepo(conn db.Querier, ttl time.Duration) *SQLiteModuleCacheRepo {
	return &SQLiteModuleCacheRepo{db: conn, ttl: ttl, now: time.Now}
}

// WithClock overrides the repo's clock. Test use only.
func (r *SQLiteModuleCacheRepo) WithClock(now func() time.Time) *SQLiteModuleCacheRepo {
	r.now = now
	return r
}

func (r *SQLiteModuleCacheRepo) Get(ctx context.Context, moduleCode, acadYear string) ([]byte, bool, error) {
	query := `SELECT payload, fetched_at FROM module_cache
		WHERE module_code = ? AND acad_year = ?`
	row := r.db.QueryRowContext(ctx, query, moduleCode, acadYear)

	var payload []byte
	var fetchedAt string
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("scanning module cache entry: %w", err)
	}

	if r.ttl > 0 {
		stored, err := time.Parse(time.RFC3339, fetchedAt)
		if err != nil || r.now().Sub(stored) > r.ttl {
			return nil, false, nil
		}
	}
	return payload, true, nil
}

func (r *SQLiteModuleCacheRepo) Put(ctx context.Context, moduleCode, acadYear string, payload []byte) error {
	query := `INSERT OR REPLACE INTO module_cache (module_code, acad_year, payload, fetched_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		moduleCode, acadYear, payload, r.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storing module cache entry: %w", err)
	}
	return nil
}

// Prune deletes entries older than the TTL and returns the number removed.
// A TTL of zero prunes nothing.
func (r *SQLiteModuleCacheRepo) Prune(ctx context.Context) (int64, error) {
	if r.ttl <= 0 {
		return 0, nil
	}
	cutoff := r.now().UTC().Add(-r.ttl).Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx, `DELETE FROM module_cache WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning module cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned rows: %w", err)
	}
	return n, nil
}
