package repository

import (
	"context"

	"sehrimilan/internal/shopping"
)

// Repository is the data store of shopping lists, one row per owner.
type Repository interface {
	// GetList returns a zero List (UserID == "") when the owner has none.
	GetList(ctx context.Context, opt GetListOptions) (shopping.List, error)
	UpsertList(ctx context.Context, opt UpsertListOptions) error
	DeleteList(ctx context.Context, userID string) error
}
