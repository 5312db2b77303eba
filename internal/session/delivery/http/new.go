package http

import (
	"study-assistant/internal/session"
	"study-assistant/pkg/llmprovider"
	"study-assistant/pkg/log"
)

// ModelCatalog is the slice of the provider registry this handler
// needs: the model list and per-model readiness.
type ModelCatalog interface {
	Models() []llmprovider.ModelStatus
	Ready(model string) bool
}

type handler struct {
	l        log.Logger
	sessions *session.Manager
	catalog  ModelCatalog
}

// New creates a new HTTP handler for session options and stats.
func New(l log.Logger, sessions *session.Manager, catalog ModelCatalog) *handler {
	return &handler{
		l:        l,
		sessions: sessions,
		catalog:  catalog,
	}
}
