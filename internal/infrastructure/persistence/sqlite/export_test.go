package sqlite

import (
	"database/sql"
	"time"

	"github.com/bnema/webfonts/internal/domain/repository"
)

// NewTransientRepositoryWithClock exposes the clock seam to external tests.
func NewTransientRepositoryWithClock(db *sql.DB, now func() time.Time) repository.TransientRepository {
	return newTransientRepo(db, now)
}
