package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/webfonts/internal/domain/repository"
	"github.com/bnema/webfonts/internal/logging"
)

type optionRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewOptionRepository creates a new SQLite-backed option repository.
func NewOptionRepository(db *sql.DB) repository.OptionRepository {
	return &optionRepo{db: db, now: time.Now}
}

func (r *optionRepo) Get(ctx context.Context, name string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM options WHERE name = ?`, name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *optionRepo) Set(ctx context.Context, name, value string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("option", name).Msg("saving option")

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO options (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		name, value, r.now().Unix())
	return err
}

func (r *optionRepo) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM options WHERE name = ?`, name)
	return err
}
