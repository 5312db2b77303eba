package http

import (
	"github.com/gin-gonic/gin"

	"study-assistant/internal/middleware"
)

// RegisterRoutes maps the reminder endpoints. All routes resolve a
// session; there is no rate limit since nothing here costs a model
// call.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reminders := rg.Group("/reminders", mw.Session())
	{
		reminders.POST("", h.Add)
		reminders.GET("", h.List)
		reminders.DELETE("", h.ClearAll)
	}
}
