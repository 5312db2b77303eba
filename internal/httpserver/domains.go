package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"study-assistant/internal/middleware"
	reminderHTTP "study-assistant/internal/reminder/delivery/http"
	reminderUC "study-assistant/internal/reminder/usecase"
	sessionHTTP "study-assistant/internal/session/delivery/http"
	studyHTTP "study-assistant/internal/study/delivery/http"
	studyUC "study-assistant/internal/study/usecase"
	"study-assistant/pkg/datemath"
)

// setupStudyDomain wires the dispatch routes: prompt building plus a
// single model call per request.
func (srv HTTPServer) setupStudyDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := studyUC.New(srv.registry, srv.l)
	h := studyHTTP.New(srv.l, uc)

	studyHTTP.RegisterRoutes(api, h, mw, srv.rateLimitPerMin)

	srv.l.Infof(ctx, "Study domain registered")
	return nil
}

// setupSessionDomain wires the session options, stats and model
// catalog routes.
func (srv HTTPServer) setupSessionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := sessionHTTP.New(srv.l, srv.sessions, srv.registry)

	sessionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Session domain registered")
	return nil
}

// setupReminderDomain wires the reminder routes over the shared
// in-memory repository. The same repository instance backs session
// eviction cleanup, so it arrives prebuilt.
func (srv HTTPServer) setupReminderDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	dates, err := datemath.NewParser(srv.timezone)
	if err != nil {
		srv.l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", srv.timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	uc := reminderUC.New(srv.reminderRepo, srv.l)
	h := reminderHTTP.New(srv.l, uc, dates)

	reminderHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Reminder domain registered")
	return nil
}
