package http

import (
	"errors"
	"net/http"

	"sehrimilan/internal/chat"
	pkgErrors "sehrimilan/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")
	case errors.Is(err, chat.ErrReplyFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "Nur is unavailable, please try again")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
