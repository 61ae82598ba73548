package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/api/dto"
)

// EndorsementHandler handles endorsement HTTP requests
type EndorsementHandler struct {
	endorsementUseCase usecase.EndorsementUseCase
	logger             coreport.Logger
}

// NewEndorsementHandler creates a new endorsement handler instance
func NewEndorsementHandler(endorsementUseCase usecase.EndorsementUseCase, logger coreport.Logger) *EndorsementHandler {
	return &EndorsementHandler{
		endorsementUseCase: endorsementUseCase,
		logger:             logger,
	}
}

// Endorse handles the POST /api/endorsements endpoint
func (h *EndorsementHandler) Endorse(c *gin.Context) {
	endorserID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.EndorseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	endorsement, err := h.endorsementUseCase.Endorse(c.Request.Context(), req.RecognitionID, endorserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, endorsement)
}
