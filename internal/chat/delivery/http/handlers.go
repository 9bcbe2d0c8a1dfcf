package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "sehrimilan/pkg/errors"
	"sehrimilan/pkg/response"
)

// Reply godoc
// @Summary     Ask Nur
// @Description Streams the assistant answer as server-sent events: "fragment" events, then one "done" or "error".
// @Tags        Chat
// @Accept      json
// @Produce     text/event-stream
// @Security    BearerAuth
// @Param       body body replyReq true "Message and prior history"
// @Success     200 {string} string "event stream"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Reply(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processReplyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	output, err := h.uc.Reply(ctx, sc, req.toInput(), func(fragment string) error {
		c.SSEvent(eventFragment, fragmentResp{Text: fragment})
		c.Writer.Flush()
		return ctx.Err()
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Reply: %v", err)
		msg := pkgErrors.ErrInternalServerError.Message
		if httpErr, ok := pkgErrors.AsHTTPError(h.mapError(err)); ok && httpErr.StatusCode != http.StatusInternalServerError {
			msg = httpErr.Message
		}
		c.SSEvent(eventError, errorResp{Message: msg})
		c.Writer.Flush()
		return
	}

	c.SSEvent(eventDone, doneResp{Text: output.Text})
	c.Writer.Flush()
}
