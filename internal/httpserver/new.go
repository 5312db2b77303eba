package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	reminderRepo "study-assistant/internal/reminder/repository"
	"study-assistant/internal/session"
	"study-assistant/pkg/llmprovider"
	"study-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domain dependencies
	registry        *llmprovider.Registry
	sessions        *session.Manager
	reminderRepo    reminderRepo.Repository
	rateLimitPerMin int
	timezone        string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Domain dependencies
	Registry        *llmprovider.Registry
	Sessions        *session.Manager
	ReminderRepo    reminderRepo.Repository
	RateLimitPerMin int
	Timezone        string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		registry:        cfg.Registry,
		sessions:        cfg.Sessions,
		reminderRepo:    cfg.ReminderRepo,
		rateLimitPerMin: cfg.RateLimitPerMin,
		timezone:        cfg.Timezone,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.registry == nil {
		return errors.New("provider registry is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	if srv.reminderRepo == nil {
		return errors.New("reminder repository is required")
	}
	return nil
}
