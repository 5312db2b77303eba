package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-assistant/internal/middleware"
	"study-assistant/internal/reminder"
	pkgErrors "study-assistant/pkg/errors"
	"study-assistant/pkg/response"
)

// Add godoc
// @Summary     Add a study reminder
// @Description Appends a reminder to the caller's session. Reminders live in memory only and vanish with the session.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (a new session is created when absent)"
// @Param       body body addReq true "Reminder data"
// @Success     200 {object} reminderResp
// @Failure     400 {object} response.Resp "Bad Request - empty text or malformed date/time"
// @Router      /api/v1/reminders [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := h.toInput(req)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	rem, err := h.uc.Add(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	list, err := h.uc.List(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newReminderResp(rem, len(list)))
}

// List godoc
// @Summary     List study reminders
// @Description Returns the session's reminders in insertion order with 1-indexed display positions.
// @Tags        Reminders
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (a new session is created when absent)"
// @Success     200 {object} listResp
// @Router      /api/v1/reminders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.uc.List(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(list))
}

// ClearAll godoc
// @Summary     Clear all study reminders
// @Description Empties the session's reminder list. Irreversible; individual deletion is not supported.
// @Tags        Reminders
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (a new session is created when absent)"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/reminders [DELETE]
func (h *handler) ClearAll(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearAll(ctx, middleware.GetScope(c)); err != nil {
		h.l.Errorf(ctx, "uc.ClearAll: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reminder.ErrEmptyText):
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
