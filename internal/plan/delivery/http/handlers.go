package http

import (
	"github.com/gin-gonic/gin"

	"sehrimilan/pkg/response"
)

// Generate godoc
// @Summary     Generate a meal plan
// @Description Generates a Ramadan meal plan in parallel day-range segments and stores it. Clears the shopping list.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body generateReq true "Household and day count"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     403  {object} response.Resp "Demo mode"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Generation failed"
// @Router      /api/v1/plans/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// Get godoc
// @Summary     Get the current plan
// @Description Returns the stored plan split into days, with rendered HTML per day.
// @Tags        Plan
// @Produce     json
// @Security    BearerAuth
// @Param       cached query bool false "Answer from the local cache when possible"
// @Success     200 {object} planResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "No plan yet"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [GET]
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

	response.OK(c, h.newPlanResp(output))
}

// GetDay godoc
// @Summary     Get one day of the plan
// @Description Returns the day at the given 1-based position.
// @Tags        Plan
// @Produce     json
// @Security    BearerAuth
// @Param       index  path  int  true  "Day position (1-based)"
// @Param       cached query bool false "Answer from the local cache when possible"
// @Success     200 {object} getDayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plans/days/{index} [GET]
func (h *handler) GetDay(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processGetDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetDay(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetDay: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGetDayResp(output))
}

// Delete godoc
// @Summary     Clear the plan
// @Description Removes the stored plan.
// @Tags        Plan
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Demo mode"
// @Router      /api/v1/plans [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
