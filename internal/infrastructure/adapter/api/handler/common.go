package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/api/dto"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/api/middleware"
)

// respondError maps domain errors to HTTP status codes and writes the
// standard error body. Unexpected errors are logged and masked as 500s.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsNotFoundError(err):
		statusCode = http.StatusNotFound
		message = err.Error()
	case domainerr.IsAuthError(err):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domainerr.ErrDuplicateEmail), errors.Is(err, domainerr.ErrAlreadyEndorsed):
		statusCode = http.StatusConflict
		message = err.Error()
	case domainerr.IsValidationError(err), domainerr.IsBusinessRuleError(err):
		statusCode = http.StatusBadRequest
		message = err.Error()
	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest writes a 400 for malformed request bodies
func respondBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + detail,
	})
}

// callerID extracts the authenticated user's ID; RequireAuth guarantees it
// is present on protected routes
func callerID(c *gin.Context) (uint64, bool) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
			Message: "Authentication required",
		})
		return 0, false
	}
	return principal.UserID, true
}
