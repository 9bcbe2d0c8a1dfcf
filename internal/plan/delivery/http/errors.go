package http

import (
	"errors"
	"net/http"

	"sehrimilan/internal/plan"
	pkgErrors "sehrimilan/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, plan.ErrPlanNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "no plan yet, generate one first")
	case errors.Is(err, plan.ErrDayNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "day not found in plan")
	case errors.Is(err, plan.ErrInvalidDays):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "days out of the allowed range")
	case errors.Is(err, plan.ErrGenerationFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "sync failed, please try again")
	case errors.Is(err, plan.ErrDemoReadOnly):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "demo mode is read-only")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
