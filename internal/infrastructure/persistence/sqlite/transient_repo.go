package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/webfonts/internal/domain/repository"
	"github.com/bnema/webfonts/internal/logging"
)

type transientRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewTransientRepository creates a new SQLite-backed transient repository.
func NewTransientRepository(db *sql.DB) repository.TransientRepository {
	return newTransientRepo(db, time.Now)
}

func newTransientRepo(db *sql.DB, now func() time.Time) *transientRepo {
	return &transientRepo{db: db, now: now}
}

func (r *transientRepo) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var (
		value     []byte
		expiresAt sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM transients WHERE name = ?`, name,
	).Scan(&value, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if expiresAt.Valid && expiresAt.Int64 <= r.now().Unix() {
		logging.FromContext(ctx).Debug().Str("transient", name).Msg("transient expired")
		if err := r.Delete(ctx, name); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	return value, true, nil
}

func (r *transientRepo) Set(ctx context.Context, name string, value []byte, ttl time.Duration) error {
	var expiresAt sql.NullInt64
	if ttl > 0 {
		expiresAt = sql.NullInt64{Int64: r.now().Add(ttl).Unix(), Valid: true}
	}
	if value == nil {
		value = []byte{}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transients (name, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		name, value, expiresAt)
	return err
}

func (r *transientRepo) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transients WHERE name = ?`, name)
	return err
}

func (r *transientRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM transients WHERE expires_at IS NOT NULL AND expires_at <= ?`, now.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
