package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/boostly-app/boostly/internal/domain/error"
	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/api/dto"
)

// RecognitionHandler handles recognition-related HTTP requests
type RecognitionHandler struct {
	recognitionUseCase usecase.RecognitionUseCase
	logger             coreport.Logger
}

// NewRecognitionHandler creates a new recognition handler instance
func NewRecognitionHandler(recognitionUseCase usecase.RecognitionUseCase, logger coreport.Logger) *RecognitionHandler {
	return &RecognitionHandler{
		recognitionUseCase: recognitionUseCase,
		logger:             logger,
	}
}

// Send handles the POST /api/recognitions endpoint
func (h *RecognitionHandler) Send(c *gin.Context) {
	senderID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.SendRecognitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	recognition, err := h.recognitionUseCase.Send(c.Request.Context(), senderID, usecase.SendRecognitionRequest{
		ReceiverID: req.ReceiverID,
		Credits:    req.Credits,
		Message:    req.Message,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, recognition)
}

// ListRecent handles the GET /api/recognitions endpoint, the global feed
func (h *RecognitionHandler) ListRecent(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))

	feed, err := h.recognitionUseCase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// ListForReceiver handles the GET /api/recognitions/receiver/:userId endpoint
func (h *RecognitionHandler) ListForReceiver(c *gin.Context) {
	receiverID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return
	}

	feed, err := h.recognitionUseCase.ListForReceiver(c.Request.Context(), receiverID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// parseLimit parses an optional limit query parameter; zero means
// "use the default"
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
