package httpserver

import (
	"github.com/gin-gonic/gin"

	"study-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Your study buddy is online"
	HealthVersion = "1.0.0"
	ServiceName   = "study-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports readiness, including whether any configured model
// can actually serve a dispatch right now.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic. models_ready is false when no provider credential is configured.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	modelsReady := false
	for _, st := range srv.registry.Models() {
		if st.Ready {
			modelsReady = true
			break
		}
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"models_ready": modelsReady,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
