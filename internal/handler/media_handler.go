package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/falacidadao/ocorrencias-api/internal/dto"
	"github.com/falacidadao/ocorrencias-api/internal/models"
	"github.com/falacidadao/ocorrencias-api/internal/service"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
	"github.com/falacidadao/ocorrencias-api/pkg/response"
)

type mediaUploader interface {
	Upload(ctx context.Context, upload service.MediaUpload, actor *models.JWTClaims) (*dto.MediaUploadResponse, error)
}

// MediaHandler receives occurrence attachments.
type MediaHandler struct {
	service mediaUploader
}

// NewMediaHandler constructs the handler.
func NewMediaHandler(service mediaUploader) *MediaHandler {
	return &MediaHandler{service: service}
}

// Upload godoc
// @Summary Upload an occurrence photo or video
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Media file"
// @Param type formData string false "photo or video"
// @Success 200 {object} response.SuccessEnvelope
// @Router /media/upload [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Nenhum arquivo enviado"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message))
		return
	}
	defer file.Close()

	result, err := h.service.Upload(c.Request.Context(), service.MediaUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Type:     c.PostForm("type"),
		Content:  file,
	}, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Arquivo enviado com sucesso")
}
