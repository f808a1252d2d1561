package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falacidadao/ocorrencias-api/internal/dto"
	"github.com/falacidadao/ocorrencias-api/internal/models"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
)

type mockStatusLister struct {
	rows  []models.OccurrenceStatusRow
	err   error
	calls int
}

func (m *mockStatusLister) ListStatusByMunicipality(ctx context.Context, prefeituraID string) ([]models.OccurrenceStatusRow, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

type memoryCacheRepo struct {
	entries map[string][]byte
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.entries == nil {
		m.entries = make(map[string][]byte)
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.entries = nil
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newDashboardService(repo *mockStatusLister, cache *CacheService) *DashboardService {
	svc := NewDashboardService(repo, cache, NewMetricsService(), nil, DashboardServiceConfig{})
	svc.now = fixedClock(time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC))
	return svc
}

func TestDashboardServiceStatsRequiresMunicipality(t *testing.T) {
	svc := newDashboardService(&mockStatusLister{}, nil)

	_, _, err := svc.Stats(context.Background(), "  ")

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "prefeitura_id é obrigatório", appErr.Message)
}

func TestDashboardServiceStatsEmptyDataset(t *testing.T) {
	svc := newDashboardService(&mockStatusLister{}, nil)

	resp, cached, err := svc.Stats(context.Background(), "pref-1")

	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 0, resp.EstatisticasGerais.Total)
	assert.Equal(t, 0, resp.EstatisticasGerais.PercentualResolucao)
	assert.Empty(t, resp.EstatisticasDiarias)
	assert.Equal(t, 30, resp.PeriodoDias)
}

func TestDashboardServiceStatsCountsAndRounds(t *testing.T) {
	now := time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC)
	rows := []models.OccurrenceStatusRow{
		{Status: models.StatusRecebido, CreatedAt: now},
		{Status: models.StatusRecebido, CreatedAt: now},
		{Status: models.StatusResolvido, CreatedAt: now},
		{Status: models.StatusResolvido, CreatedAt: now},
		{Status: models.StatusResolvido, CreatedAt: now},
	}
	svc := newDashboardService(&mockStatusLister{rows: rows}, nil)

	resp, _, err := svc.Stats(context.Background(), "pref-1")

	require.NoError(t, err)
	assert.Equal(t, 5, resp.EstatisticasGerais.Total)
	assert.Equal(t, 2, resp.EstatisticasGerais.Recebidas)
	assert.Equal(t, 3, resp.EstatisticasGerais.Resolvidas)
	assert.Equal(t, 60, resp.EstatisticasGerais.PercentualResolucao)
}

func TestDashboardServiceStatsRoundsHalfUp(t *testing.T) {
	now := time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC)
	rows := []models.OccurrenceStatusRow{
		{Status: models.StatusResolvido, CreatedAt: now},
		{Status: models.StatusRecebido, CreatedAt: now},
		{Status: models.StatusRecebido, CreatedAt: now},
		{Status: models.StatusRecebido, CreatedAt: now},
		{Status: models.StatusRecebido, CreatedAt: now},
		{Status: models.StatusRecebido, CreatedAt: now},
		{Status: models.StatusRecebido, CreatedAt: now},
		{Status: models.StatusRecebido, CreatedAt: now},
	}
	svc := newDashboardService(&mockStatusLister{rows: rows}, nil)

	resp, _, err := svc.Stats(context.Background(), "pref-1")

	require.NoError(t, err)
	// 1/8 = 12.5% rounds up to 13
	assert.Equal(t, 13, resp.EstatisticasGerais.PercentualResolucao)
}

func TestDashboardServiceStatsDailyBuckets(t *testing.T) {
	now := time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC)
	rows := []models.OccurrenceStatusRow{
		{Status: models.StatusRecebido, CreatedAt: now.Add(-2 * time.Hour)},
		{Status: models.StatusResolvido, CreatedAt: now.Add(-4 * time.Hour)},
		{Status: models.StatusRecebido, CreatedAt: now.AddDate(0, 0, -1)},
	}
	svc := newDashboardService(&mockStatusLister{rows: rows}, nil)

	resp, _, err := svc.Stats(context.Background(), "pref-1")

	require.NoError(t, err)
	require.Len(t, resp.EstatisticasDiarias, 2)
	byDate := map[string]dto.DailyStat{}
	for _, day := range resp.EstatisticasDiarias {
		byDate[day.Date] = day
	}
	today := byDate["2025-03-31"]
	assert.Equal(t, 2, today.Total)
	assert.Equal(t, 1, today.Resolvidas)
	yesterday := byDate["2025-03-30"]
	assert.Equal(t, 1, yesterday.Total)
	assert.Equal(t, 0, yesterday.Resolvidas)
}

func TestDashboardServiceStatsWindowExcludesOldRowsFromDailyOnly(t *testing.T) {
	now := time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC)
	rows := []models.OccurrenceStatusRow{
		{Status: models.StatusResolvido, CreatedAt: now.AddDate(0, 0, -45)},
		{Status: models.StatusRecebido, CreatedAt: now.AddDate(0, 0, -30)},
		{Status: models.StatusRecebido, CreatedAt: now},
	}
	svc := newDashboardService(&mockStatusLister{rows: rows}, nil)

	resp, _, err := svc.Stats(context.Background(), "pref-1")

	require.NoError(t, err)
	// gerais covers everything, diárias only the 30-day window (inclusive edge)
	assert.Equal(t, 3, resp.EstatisticasGerais.Total)
	require.Len(t, resp.EstatisticasDiarias, 2)
	dates := []string{resp.EstatisticasDiarias[0].Date, resp.EstatisticasDiarias[1].Date}
	assert.ElementsMatch(t, []string{"2025-03-01", "2025-03-31"}, dates)
}

func TestDashboardServiceStatsCacheRoundTrip(t *testing.T) {
	repo := &mockStatusLister{rows: []models.OccurrenceStatusRow{
		{Status: models.StatusResolvido, CreatedAt: time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC)},
	}}
	cache := NewCacheService(&memoryCacheRepo{}, nil, time.Minute, nil, true)
	svc := newDashboardService(repo, cache)

	first, cached, err := svc.Stats(context.Background(), "pref-1")
	require.NoError(t, err)
	assert.False(t, cached)

	second, cached, err := svc.Stats(context.Background(), "pref-1")
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first, second)
}

func TestDashboardServiceStatsCacheFailureDegrades(t *testing.T) {
	repo := &mockStatusLister{}
	cache := NewCacheService(&failingCacheRepo{}, nil, time.Minute, nil, true)
	svc := newDashboardService(repo, cache)

	_, cached, err := svc.Stats(context.Background(), "pref-1")

	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 1, repo.calls)
}

type failingCacheRepo struct{}

func (f *failingCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	return errors.New("redis down")
}

func (f *failingCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return errors.New("redis down")
}

func (f *failingCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	return errors.New("redis down")
}

func TestDashboardServiceStatsWrapsStoreFailure(t *testing.T) {
	svc := newDashboardService(&mockStatusLister{err: errors.New("timeout")}, nil)

	_, _, err := svc.Stats(context.Background(), "pref-1")

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
}
