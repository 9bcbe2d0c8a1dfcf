package http

import (
	"github.com/gin-gonic/gin"

	"sehrimilan/internal/shopping"
	"sehrimilan/pkg/response"
)

// Get godoc
// @Summary     Get the shopping list
// @Description Loads the stored list, or extracts one from the current plan when none is stored or refresh is set.
// @Tags        Shopping
// @Produce     json
// @Security    BearerAuth
// @Param       refresh query bool false "Re-extract from the plan"
// @Param       cached  query bool false "Answer from the local cache when possible"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/shopping-list [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processGetReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output.Entries, output.Source))
}

// Add godoc
// @Summary     Add a manual item
// @Description Prepends a hand-entered item to the list.
// @Tags        Shopping
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body addReq true "Item name"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Demo mode"
// @Router      /api/v1/shopping-list/items [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output.Entries, shopping.SourceMutation))
}

// Toggle godoc
// @Summary     Toggle an item
// @Description Flips the completed flag of one item.
// @Tags        Shopping
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} listResp
// @Failure     403 {object} response.Resp "Demo mode"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/shopping-list/items/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Toggle(ctx, sc, req.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output.Entries, shopping.SourceMutation))
}

// Delete godoc
// @Summary     Delete an item
// @Tags        Shopping
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} listResp
// @Failure     403 {object} response.Resp "Demo mode"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/shopping-list/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, sc, req.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output.Entries, shopping.SourceMutation))
}

// Share godoc
// @Summary     Share the list
// @Description Builds a WhatsApp message of pending and completed items.
// @Tags        Shopping
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} shareResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/shopping-list/share [GET]
func (h *handler) Share(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Share(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Share: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newShareResp(output))
}
