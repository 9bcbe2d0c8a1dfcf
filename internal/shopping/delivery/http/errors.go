package http

import (
	"errors"
	"net/http"

	"sehrimilan/internal/shopping"
	pkgErrors "sehrimilan/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, shopping.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	case errors.Is(err, shopping.ErrEmptyName):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "item name is required")
	case errors.Is(err, shopping.ErrDemoReadOnly):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "demo mode is read-only")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
