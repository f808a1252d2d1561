package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falacidadao/ocorrencias-api/internal/dto"
	"github.com/falacidadao/ocorrencias-api/internal/service"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
)

type dashboardServiceMock struct {
	resp     *dto.DashboardStatsResponse
	cacheHit bool
	err      error
	gotID    string
}

func (m *dashboardServiceMock) Stats(ctx context.Context, prefeituraID string) (*dto.DashboardStatsResponse, bool, error) {
	m.gotID = prefeituraID
	if m.err != nil {
		return nil, false, m.err
	}
	return m.resp, m.cacheHit, nil
}

type exporterMock struct {
	artifact *service.ExportArtifact
	err      error
}

func (m *exporterMock) Render(ctx context.Context, prefeituraID string, format service.ExportFormat) (*service.ExportArtifact, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.artifact, nil
}

func statsFixture() *dto.DashboardStatsResponse {
	return &dto.DashboardStatsResponse{
		EstatisticasGerais: dto.GeneralStats{
			Total:               5,
			Recebidas:           2,
			Resolvidas:          3,
			PercentualResolucao: 60,
		},
		EstatisticasDiarias: []dto.DailyStat{{Date: "2025-03-31", Total: 2, Resolvidas: 1}},
		PeriodoDias:         30,
	}
}

func TestDashboardHandlerStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &dashboardServiceMock{resp: statsFixture()}
	handler := NewDashboardHandler(mockSvc, nil)

	c, w := newGinContext(http.MethodGet, "/dashboard/stats?prefeitura_id=pref-1", nil)

	handler.Stats(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pref-1", mockSvc.gotID)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	var envelope struct {
		Success bool                       `json:"success"`
		Data    dto.DashboardStatsResponse `json:"data"`
		Message string                     `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 60, envelope.Data.EstatisticasGerais.PercentualResolucao)
	assert.Equal(t, 30, envelope.Data.PeriodoDias)
	assert.Empty(t, envelope.Message)
}

func TestDashboardHandlerStatsCacheHitHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&dashboardServiceMock{resp: statsFixture(), cacheHit: true}, nil)

	c, w := newGinContext(http.MethodGet, "/dashboard/stats?prefeitura_id=pref-1", nil)

	handler.Stats(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
}

func TestDashboardHandlerStatsMissingMunicipality(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &dashboardServiceMock{err: appErrors.Clone(appErrors.ErrValidation, "prefeitura_id é obrigatório")}
	handler := NewDashboardHandler(mockSvc, nil)

	c, w := newGinContext(http.MethodGet, "/dashboard/stats", nil)

	handler.Stats(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "prefeitura_id é obrigatório")
}

func TestDashboardHandlerExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exporter := &exporterMock{artifact: &service.ExportArtifact{
		Content:     []byte("indicador,valor\ntotal,5\n"),
		ContentType: "text/csv",
		Filename:    "estatisticas_pref-1.csv",
	}}
	handler := NewDashboardHandler(nil, exporter)

	c, w := newGinContext(http.MethodGet, "/dashboard/stats/export?prefeitura_id=pref-1&format=csv", nil)

	handler.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "estatisticas_pref-1.csv")
	assert.Contains(t, w.Body.String(), "total,5")
}

func TestDashboardHandlerExportError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exporter := &exporterMock{err: appErrors.Clone(appErrors.ErrValidation, "formato inválido, use csv ou pdf")}
	handler := NewDashboardHandler(nil, exporter)

	c, w := newGinContext(http.MethodGet, "/dashboard/stats/export?prefeitura_id=pref-1&format=xlsx", nil)

	handler.Export(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
