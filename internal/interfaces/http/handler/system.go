package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pokedex/backend/internal/infrastructure/logger"
	"github.com/pokedex/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// healthCheckTimeout bounds a single backend ping
const healthCheckTimeout = 3 * time.Second

// Pinger reports whether the storage backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves liveness and readiness endpoints
type SystemHandler struct {
	BaseHandler
	backend   Pinger
	name      string
	version   string
	startTime time.Time
}

// NewSystemHandler creates a handler reporting on backend
func NewSystemHandler(backend Pinger, backendName, version string) *SystemHandler {
	return &SystemHandler{
		backend:   backend,
		name:      backendName,
		version:   version,
		startTime: time.Now(),
	}
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// Ping answers without touching storage
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Health pings the storage backend and answers 503 when it is down
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.backend.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Warn("Storage backend unhealthy", zap.String("backend", h.name), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.Response{
			Success: false,
			Data:    dto.HealthResponse{Status: "unavailable", Backend: h.name},
			Error: &dto.ErrorInfo{
				Code:      dto.ErrCodeServiceUnavailable,
				Message:   "storage backend is not reachable",
				RequestID: requestID(c),
				Timestamp: time.Now().Unix(),
			},
		})
		return
	}

	h.Success(c, dto.HealthResponse{Status: "ok", Backend: h.name})
}
