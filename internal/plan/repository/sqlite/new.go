package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"sehrimilan/internal/plan/repository"
	"sehrimilan/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	clock func() time.Time
}

// New creates a SQLite-backed Repository for plans.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("plan/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, clock: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("plan/repository/sqlite.%s", method)
}
