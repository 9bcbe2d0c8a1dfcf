package http

import (
	"github.com/gin-gonic/gin"

	"sehrimilan/internal/middleware"
	"sehrimilan/internal/model"
	pkgErrors "sehrimilan/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

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

func (h *handler) processAddReq(c *gin.Context) (model.Scope, addReq, error) {
	var req addReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	if err := req.validate(); err != nil {
		return sc, req, h.mapError(err)
	}
	return sc, req, nil
}

func (h *handler) processItemReq(c *gin.Context) (model.Scope, itemReq, error) {
	var req itemReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindUri(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}
