package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"study-assistant/internal/model"
	"study-assistant/internal/session"
	"study-assistant/pkg/log"
)

const (
	// HeaderSessionID identifies the caller's session. Absent or
	// unknown IDs get a fresh session; the resolved ID is echoed back.
	HeaderSessionID = "X-Session-ID"
	// HeaderRequestID echoes the per-request ID for log correlation.
	HeaderRequestID = "X-Request-ID"

	sessionContextKey = "study_session"
)

// Session resolves the caller's session from the X-Session-ID header,
// creating one when missing, and attaches it plus log correlation IDs
// to the request context.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := m.sessions.Resolve(c.GetHeader(HeaderSessionID))
		requestID := uuid.NewString()

		c.Set(sessionContextKey, s)
		c.Header(HeaderSessionID, s.ID)
		c.Header(HeaderRequestID, requestID)

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, log.SessionIDKey, s.ID)
		ctx = context.WithValue(ctx, log.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetSession returns the session attached by the Session middleware.
// The bool is false when the middleware did not run on this route.
func GetSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

// GetScope builds the usecase scope for the current request.
func GetScope(c *gin.Context) model.Scope {
	if s, ok := GetSession(c); ok {
		return model.Scope{SessionID: s.ID}
	}
	return model.Scope{}
}
