package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/falacidadao/ocorrencias-api/internal/dto"
	"github.com/falacidadao/ocorrencias-api/internal/models"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
	"github.com/falacidadao/ocorrencias-api/pkg/response"
)

type occurrenceCreator interface {
	Create(ctx context.Context, req dto.CreateOccurrenceRequest, actor *models.JWTClaims) (*models.Occurrence, error)
}

// OccurrenceHandler exposes complaint registration over HTTP.
type OccurrenceHandler struct {
	service occurrenceCreator
}

// NewOccurrenceHandler constructs the handler.
func NewOccurrenceHandler(service occurrenceCreator) *OccurrenceHandler {
	return &OccurrenceHandler{service: service}
}

// Create godoc
// @Summary Register a citizen occurrence
// @Tags Ocorrências
// @Accept json
// @Produce json
// @Param payload body dto.CreateOccurrenceRequest true "Occurrence payload"
// @Success 200 {object} response.SuccessEnvelope
// @Router /ocorrencias [post]
func (h *OccurrenceHandler) Create(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	var req dto.CreateOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Título e descrição são obrigatórios"))
		return
	}

	occ, err := h.service.Create(c.Request.Context(), req, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, occ, "Ocorrência criada com sucesso!")
}
