package http

import (
	"github.com/gin-gonic/gin"

	"sehrimilan/internal/middleware"
	"sehrimilan/internal/model"
	pkgErrors "sehrimilan/pkg/errors"
)

func (h *handler) processReplyReq(c *gin.Context) (model.Scope, replyReq, error) {
	var req replyReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, req, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	if err := req.validate(); err != nil {
		return sc, req, h.mapError(err)
	}
	return sc, req, nil
}
