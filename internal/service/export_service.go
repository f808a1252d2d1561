package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/falacidadao/ocorrencias-api/internal/dto"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
	"github.com/falacidadao/ocorrencias-api/pkg/export"
)

type statsProvider interface {
	Stats(ctx context.Context, prefeituraID string) (*dto.DashboardStatsResponse, bool, error)
}

// ExportFormat selects the rendered artifact type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportArtifact bundles rendered bytes with transport metadata.
type ExportArtifact struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders dashboard statistics as downloadable documents.
type ExportService struct {
	stats statsProvider
}

// NewExportService constructs the export service.
func NewExportService(stats statsProvider) *ExportService {
	return &ExportService{stats: stats}
}

// Render produces the statistics artifact for a municipality.
func (s *ExportService) Render(ctx context.Context, prefeituraID string, format ExportFormat) (*ExportArtifact, error) {
	resp, _, err := s.stats.Stats(ctx, prefeituraID)
	if err != nil {
		return nil, err
	}

	dataset := buildStatsDataset(resp)
	title := fmt.Sprintf("Estatísticas de ocorrências - prefeitura %s", prefeituraID)

	switch format {
	case FormatCSV, "":
		content, err := export.RenderCSV(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return &ExportArtifact{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("estatisticas_%s.csv", prefeituraID),
		}, nil
	case FormatPDF:
		content, err := export.RenderPDF(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return &ExportArtifact{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("estatisticas_%s.pdf", prefeituraID),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "formato inválido, use csv ou pdf")
	}
}

func buildStatsDataset(resp *dto.DashboardStatsResponse) export.Dataset {
	headers := []string{"indicador", "valor"}
	rows := []map[string]string{
		{"indicador": "total", "valor": strconv.Itoa(resp.EstatisticasGerais.Total)},
		{"indicador": "recebidas", "valor": strconv.Itoa(resp.EstatisticasGerais.Recebidas)},
		{"indicador": "em_analise", "valor": strconv.Itoa(resp.EstatisticasGerais.EmAnalise)},
		{"indicador": "em_atendimento", "valor": strconv.Itoa(resp.EstatisticasGerais.EmAtendimento)},
		{"indicador": "resolvidas", "valor": strconv.Itoa(resp.EstatisticasGerais.Resolvidas)},
		{"indicador": "rejeitadas", "valor": strconv.Itoa(resp.EstatisticasGerais.Rejeitadas)},
		{"indicador": "percentual_resolucao", "valor": strconv.Itoa(resp.EstatisticasGerais.PercentualResolucao)},
	}
	for _, day := range resp.EstatisticasDiarias {
		rows = append(rows, map[string]string{
			"indicador": fmt.Sprintf("dia %s (total/resolvidas)", day.Date),
			"valor":     fmt.Sprintf("%d/%d", day.Total, day.Resolvidas),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
