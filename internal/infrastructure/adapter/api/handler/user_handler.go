package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
)

// UserHandler handles the user directory HTTP requests
type UserHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// ListUsers handles the GET /api/users endpoint, the receiver picker directory
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.accountUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
