package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vellaperfumeria/storefront/internal/application/session"
)

// SystemHandler serves operational endpoints
type SystemHandler struct {
	BaseHandler
	registry  *session.Registry
	startedAt time.Time
	version   string
}

// NewSystemHandler creates a system handler
func NewSystemHandler(registry *session.Registry, version string) *SystemHandler {
	return &SystemHandler{
		registry:  registry,
		startedAt: time.Now(),
		version:   version,
	}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// HealthData is the health endpoint payload
type HealthData struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Sessions int    `json:"sessions"`
}

// Health reports process liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, HealthData{
		Status:   "ok",
		Version:  h.version,
		Uptime:   time.Since(h.startedAt).Truncate(time.Second).String(),
		Sessions: h.registry.Len(),
	})
}
