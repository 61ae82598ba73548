package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
)

// LeaderboardHandler handles leaderboard HTTP requests
type LeaderboardHandler struct {
	leaderboardUseCase usecase.LeaderboardUseCase
	logger             coreport.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler instance
func NewLeaderboardHandler(leaderboardUseCase usecase.LeaderboardUseCase, logger coreport.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUseCase: leaderboardUseCase,
		logger:             logger,
	}
}

// GetLeaderboard handles the GET /api/leaderboard endpoint
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))

	entries, err := h.leaderboardUseCase.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
