package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	rootMessage   = "Backend is working!"
	healthyStatus = "healthy"
)

// RootResponse represents the service status response
type RootResponse struct {
	Message string `json:"message"`
}

// HealthResponse represents a liveness check response
type HealthResponse struct {
	Status string `json:"status"`
}

// handleRoot reports that the service is up
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{Message: rootMessage})
}

// handleHealth handles health check requests.
// It consults no dependency: a response means the process is live.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: healthyStatus})
}
