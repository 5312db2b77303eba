package http

import (
	"github.com/gin-gonic/gin"

	"study-assistant/internal/middleware"
)

// RegisterRoutes maps the study endpoints. Every route resolves a
// session first; dispatch routes are additionally rate limited since
// each one costs a model call.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, requestsPerMin int) {
	study := rg.Group("/study", mw.Session(), mw.RateLimit(requestsPerMin))
	{
		study.POST("/answer", h.Answer)
		study.POST("/summary", h.Summarize)
		study.POST("/notes", h.TopicNotes)
		study.POST("/quiz", h.Quiz)
	}
}
