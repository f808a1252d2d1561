package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/falacidadao/ocorrencias-api/internal/dto"
	"github.com/falacidadao/ocorrencias-api/internal/service"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
	"github.com/falacidadao/ocorrencias-api/pkg/response"
)

type dashboardStats interface {
	Stats(ctx context.Context, prefeituraID string) (*dto.DashboardStatsResponse, bool, error)
}

type statsExporter interface {
	Render(ctx context.Context, prefeituraID string, format service.ExportFormat) (*service.ExportArtifact, error)
}

// DashboardHandler serves aggregate complaint statistics.
type DashboardHandler struct {
	service  dashboardStats
	exporter statsExporter
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardStats, exporter statsExporter) *DashboardHandler {
	return &DashboardHandler{service: service, exporter: exporter}
}

// Stats godoc
// @Summary Aggregate complaint statistics for a municipality
// @Tags Dashboard
// @Produce json
// @Param prefeitura_id query string true "Municipality ID"
// @Success 200 {object} response.SuccessEnvelope
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	stats, cacheHit, err := h.service.Stats(c.Request.Context(), c.Query("prefeitura_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if cacheHit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	response.OK(c, stats, "")
}

// Export godoc
// @Summary Download statistics as CSV or PDF
// @Tags Dashboard
// @Produce text/csv,application/pdf
// @Param prefeitura_id query string true "Municipality ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /dashboard/stats/export [get]
func (h *DashboardHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	artifact, err := h.exporter.Render(c.Request.Context(), c.Query("prefeitura_id"), service.ExportFormat(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Content)
}
