package repository

import "sehrimilan/internal/shopping"

// GetListOptions selects the list of one owner.
type GetListOptions struct {
	UserID string
}

// UpsertListOptions replaces the whole list of an owner.
type UpsertListOptions struct {
	UserID  string
	Entries []shopping.Entry
}
