package http

import (
	"study-assistant/internal/study"
	"study-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc study.UseCase
}

// New creates a new HTTP handler for the study domain.
func New(l log.Logger, uc study.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
