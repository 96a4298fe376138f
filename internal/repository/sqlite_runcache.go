package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// CacheKey builds the run-cache key for a user/feature pair.
func CacheKey(userID string, feature domain.Feature) string {
	return string(feature) + ":" + userID
}

// SQLiteRunCacheRepo implements RunCacheRepo on the run_cache table.
// Expired entries are treated as absent and lazily overwritten.
type SQLiteRunCacheRepo struct {
	db *sql.DB
}

// NewSQLiteRunCacheRepo creates a new SQLiteRunCacheRepo.
func NewSQLiteRunCacheRepo(db *sql.DB) *SQLiteRunCacheRepo {
	return &SQLiteRunCacheRepo{db: db}
}

func (r *SQLiteRunCacheRepo) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	expiresAt := time.Now().UTC().Add(ttl)
	query := `INSERT INTO run_cache (cache_key, payload, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET payload = excluded.payload, expires_at = excluded.expires_at`
	_, err := r.db.ExecContext(ctx, query, key, string(payload), expiresAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing run cache entry: %w", err)
	}
	return nil
}

func (r *SQLiteRunCacheRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var payload, expiresStr string
	row := r.db.QueryRowContext(ctx,
		`SELECT payload, expires_at FROM run_cache WHERE cache_key = ?`, key)
	if err := row.Scan(&payload, &expiresStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run cache entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("reading run cache entry: %w", err)
	}

	expiresAt, err := time.Parse(time.RFC3339, expiresStr)
	if err != nil {
		return nil, fmt.Errorf("parsing expires_at: %w", err)
	}
	if !time.Now().UTC().Before(expiresAt) {
		return nil, fmt.Errorf("run cache entry expired: %w", ErrNotFound)
	}
	return []byte(payload), nil
}
