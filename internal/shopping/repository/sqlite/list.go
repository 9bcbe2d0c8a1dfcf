package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"sehrimilan/internal/shopping"
	repo "sehrimilan/internal/shopping/repository"
)

// GetList loads the list of one owner. Entries that fail to decode are treated as an empty list.
func (r *implRepository) GetList(ctx context.Context, opt repo.GetListOptions) (shopping.List, error) {
	const query = `SELECT id, items, updated_at FROM shopping_lists WHERE id = ?`

	var (
		list  shopping.List
		items sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, opt.UserID).Scan(&list.UserID, &items, &list.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return shopping.List{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetList"), err)
		return shopping.List{}, repo.ErrFailedToGet
	}

	if items.Valid && items.String != "" {
		if err := json.Unmarshal([]byte(items.String), &list.Entries); err != nil {
			r.l.Warnf(ctx, "%s: malformed items for %s, treating as empty: %v", r.dsn("GetList"), opt.UserID, err)
			list.Entries = nil
		}
	}
	return list, nil
}

// UpsertList writes the full list, replacing whatever was stored.
func (r *implRepository) UpsertList(ctx context.Context, opt repo.UpsertListOptions) error {
	const query = `
		INSERT INTO shopping_lists (id, items, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET items = excluded.items, updated_at = excluded.updated_at`

	entries := opt.Entries
	if entries == nil {
		entries = []shopping.Entry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("UpsertList"), err)
		return repo.ErrFailedToUpsert
	}

	if _, err := r.db.ExecContext(ctx, query, opt.UserID, string(payload), r.clock().UTC().Truncate(time.Millisecond)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertList"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

// DeleteList removes the list of userID. Deleting a missing list is not an error.
func (r *implRepository) DeleteList(ctx context.Context, userID string) error {
	const query = `DELETE FROM shopping_lists WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteList"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
