package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/database"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	dbManager *database.Manager
	logger    coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(dbManager *database.Manager, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		dbManager: dbManager,
		logger:    logger,
	}
}

// healthResponse is the GET /api/health body
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`

	Pool database.ConnectionPoolMetrics `json:"pool"`
}

// Check handles the GET /api/health endpoint
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := h.dbManager.WithTimeout(c.Request.Context())
	defer cancel()

	response := healthResponse{
		Status:   "ok",
		Database: "up",
		Pool:     h.dbManager.PoolMetrics(),
	}

	if err := h.dbManager.Ping(ctx); err != nil {
		h.logger.Error("Health check database ping failed", map[string]any{
			"error": err.Error(),
		})
		response.Status = "degraded"
		response.Database = "down"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
