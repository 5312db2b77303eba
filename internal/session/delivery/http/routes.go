package http

import (
	"github.com/gin-gonic/gin"

	"study-assistant/internal/middleware"
)

// RegisterRoutes maps the session and model-catalog endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sess := rg.Group("/session", mw.Session())
	{
		sess.GET("/options", h.GetOptions)
		sess.PUT("/options", h.UpdateOptions)
		sess.GET("/stats", h.Stats)
	}

	rg.GET("/models", h.Models)
}
