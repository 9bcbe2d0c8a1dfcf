package shopping

import "errors"

var (
	ErrItemNotFound = errors.New("shopping item not found")
	ErrEmptyName    = errors.New("item name is required")
	ErrDemoReadOnly = errors.New("demo shopping list is read-only")
)
