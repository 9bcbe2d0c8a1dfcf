package http

import (
	"github.com/gin-gonic/gin"

	"sehrimilan/internal/middleware"
	"sehrimilan/internal/model"
	pkgErrors "sehrimilan/pkg/errors"
)

// processScope returns the session scope set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processGenerateReq binds and validates the generate request body.
func (h *handler) processGenerateReq(c *gin.Context) (model.Scope, generateReq, error) {
	var req generateReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

// processGetReq binds the plan query parameters.
func (h *handler) processGetReq(c *gin.Context) (model.Scope, getReq, error) {
	var req getReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

// processGetDayReq binds the day index URI param and query parameters.
func (h *handler) processGetDayReq(c *gin.Context) (model.Scope, getDayReq, error) {
	var req getDayReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindUri(&req); err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}
