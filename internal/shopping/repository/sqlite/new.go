package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"sehrimilan/internal/shopping/repository"
	"sehrimilan/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	clock func() time.Time
}

// New creates a SQLite-backed Repository for shopping lists.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("shopping/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, clock: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("shopping/repository/sqlite.%s", method)
}
