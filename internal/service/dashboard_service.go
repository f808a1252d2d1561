package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/falacidadao/ocorrencias-api/internal/dto"
	"github.com/falacidadao/ocorrencias-api/internal/models"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
)

type occurrenceStatusLister interface {
	ListStatusByMunicipality(ctx context.Context, prefeituraID string) ([]models.OccurrenceStatusRow, error)
}

// DashboardServiceConfig tunes aggregation behaviour.
type DashboardServiceConfig struct {
	CacheTTL   time.Duration
	PeriodDays int
}

// dashboardCacheKey names the cached stats payload for one municipality.
// Writers invalidate through the same key.
func dashboardCacheKey(prefeituraID string) string {
	return fmt.Sprintf("dash:prefeitura:%s", prefeituraID)
}

// DashboardService computes aggregate complaint statistics per municipality.
type DashboardService struct {
	repo    occurrenceStatusLister
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
	cfg     DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(repo occurrenceStatusLister, cache *CacheService, metrics *MetricsService, logger *zap.Logger, cfg DashboardServiceConfig) *DashboardService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.PeriodDays <= 0 {
		cfg.PeriodDays = 30
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		cfg:     cfg,
	}
}

// Stats returns the aggregate payload and indicates cache utilisation.
func (s *DashboardService) Stats(ctx context.Context, prefeituraID string) (*dto.DashboardStatsResponse, bool, error) {
	if strings.TrimSpace(prefeituraID) == "" {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "prefeitura_id é obrigatório")
	}

	cacheKey := dashboardCacheKey(prefeituraID)
	if s.cache != nil {
		var cached dto.DashboardStatsResponse
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	start := time.Now()
	rows, err := s.repo.ListStatusByMunicipality(ctx, prefeituraID)
	s.metrics.ObserveDBQuery("list_occurrence_status", time.Since(start))
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	resp := &dto.DashboardStatsResponse{
		EstatisticasGerais:  s.buildGeneralStats(rows),
		EstatisticasDiarias: s.buildDailyStats(rows),
		PeriodoDias:         s.cfg.PeriodDays,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, resp, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return resp, false, nil
}

func (s *DashboardService) buildGeneralStats(rows []models.OccurrenceStatusRow) dto.GeneralStats {
	stats := dto.GeneralStats{Total: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case models.StatusRecebido:
			stats.Recebidas++
		case models.StatusEmAnalise:
			stats.EmAnalise++
		case models.StatusEmAtendimento:
			stats.EmAtendimento++
		case models.StatusResolvido:
			stats.Resolvidas++
		case models.StatusRejeitado:
			stats.Rejeitadas++
		}
	}
	if stats.Total > 0 {
		stats.PercentualResolucao = int(math.Round(float64(stats.Resolvidas*100) / float64(stats.Total)))
	}
	return stats
}

// buildDailyStats groups the rolling window by UTC calendar day. The window
// is date-inclusive: a row created exactly PeriodDays ago still counts.
func (s *DashboardService) buildDailyStats(rows []models.OccurrenceStatusRow) []dto.DailyStat {
	today := s.now().UTC().Truncate(24 * time.Hour)
	cutoff := today.AddDate(0, 0, -s.cfg.PeriodDays)

	buckets := make(map[string]*dto.DailyStat)
	for _, row := range rows {
		day := row.CreatedAt.UTC().Truncate(24 * time.Hour)
		if day.Before(cutoff) {
			continue
		}
		key := day.Format("2006-01-02")
		bucket, ok := buckets[key]
		if !ok {
			bucket = &dto.DailyStat{Date: key}
			buckets[key] = bucket
		}
		bucket.Total++
		if row.Status == models.StatusResolvido {
			bucket.Resolvidas++
		}
	}

	daily := make([]dto.DailyStat, 0, len(buckets))
	for _, bucket := range buckets {
		daily = append(daily, *bucket)
	}
	return daily
}
