package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/profileranker/backend/models"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Pinger is anything whose liveness can be probed
type Pinger interface {
	Ping(ctx context.Context) error
}

// AgentProber probes the agent backend
type AgentProber interface {
	Health(ctx context.Context) error
}

// HealthHandler reports service health
type HealthHandler struct {
	db    Pinger
	agent AgentProber
}

// NewHealthHandler creates a health handler. Either dependency may be nil.
func NewHealthHandler(db Pinger, agent AgentProber) *HealthHandler {
	return &HealthHandler{db: db, agent: agent}
}

// Health checks the service and, best-effort, its dependencies
// @Summary Health check
// @Description The service is healthy when it can answer; database and agent report "ok" or "unavailable"
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := models.HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.db != nil {
		resp.Database = probe(ctx, "database", h.db.Ping)
	}
	if h.agent != nil {
		resp.Agent = probe(ctx, "agent", h.agent.Health)
	}

	c.JSON(http.StatusOK, resp)
}

func probe(ctx context.Context, name string, check func(context.Context) error) string {
	if err := check(ctx); err != nil {
		log.Printf("[Health] %s unavailable: %v", name, err)
		return "unavailable"
	}
	return "ok"
}
