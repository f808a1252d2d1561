package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/falacidadao/ocorrencias-api/internal/dto"
	"github.com/falacidadao/ocorrencias-api/internal/models"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
)

type occurrenceStore interface {
	Insert(ctx context.Context, occ *models.Occurrence) (*models.Occurrence, error)
}

type municipalityResolver interface {
	FindByCityState(ctx context.Context, city, state string) (*models.Municipality, error)
}

// OccurrenceServiceConfig pins the municipality occurrences attach to.
type OccurrenceServiceConfig struct {
	City  string
	State string
}

// OccurrenceService creates citizen complaints.
type OccurrenceService struct {
	repo           occurrenceStore
	municipalities municipalityResolver
	validator      *validator.Validate
	cache          *CacheService
	metrics        *MetricsService
	logger         *zap.Logger
	now            func() time.Time
	newID          func() string
	cfg            OccurrenceServiceConfig
}

// NewOccurrenceService constructs the service with sane defaults.
func NewOccurrenceService(repo occurrenceStore, municipalities municipalityResolver, validate *validator.Validate, cache *CacheService, metrics *MetricsService, logger *zap.Logger, cfg OccurrenceServiceConfig) *OccurrenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cfg.City == "" {
		cfg.City = "Jaú"
	}
	if cfg.State == "" {
		cfg.State = "SP"
	}
	return &OccurrenceService{
		repo:           repo,
		municipalities: municipalities,
		validator:      validate,
		cache:          cache,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
		newID:          uuid.NewString,
		cfg:            cfg,
	}
}

// Create validates the payload and persists a new occurrence owned by the
// authenticated caller. Photo/video lists default to empty, never null.
func (s *OccurrenceService) Create(ctx context.Context, req dto.CreateOccurrenceRequest, actor *models.JWTClaims) (*models.Occurrence, error) {
	if actor == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Usuário não está logado")
	}
	if err := s.validator.Struct(req); err != nil || strings.TrimSpace(req.Titulo) == "" || strings.TrimSpace(req.Descricao) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Título e descrição são obrigatórios")
	}

	start := time.Now()
	municipality, err := s.municipalities.FindByCityState(ctx, s.cfg.City, s.cfg.State)
	s.metrics.ObserveDBQuery("find_municipality", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if municipality == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Prefeitura não encontrada")
	}

	occ := &models.Occurrence{
		ID:           s.newID(),
		UserID:       actor.UserID,
		PrefeituraID: municipality.ID,
		Titulo:       req.Titulo,
		Descricao:    req.Descricao,
		CategoriaID:  req.CategoriaID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Endereco:     req.Endereco,
		Fotos:        toStringArray(req.Fotos),
		Videos:       toStringArray(req.Videos),
		Status:       models.StatusRecebido,
		CreatedAt:    s.now().UTC(),
	}

	start = time.Now()
	inserted, err := s.repo.Insert(ctx, occ)
	s.metrics.ObserveDBQuery("insert_occurrence", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	// a new row changes the aggregates, so the cached dashboard payload for
	// this municipality must not outlive the write
	if err := s.cache.Invalidate(ctx, dashboardCacheKey(inserted.PrefeituraID)); err != nil {
		s.logger.Warn("dashboard cache invalidation failed",
			zap.String("prefeitura_id", inserted.PrefeituraID),
			zap.Error(err),
		)
	}

	s.logger.Info("occurrence created",
		zap.String("occurrence_id", inserted.ID),
		zap.String("user_id", inserted.UserID),
		zap.String("prefeitura_id", inserted.PrefeituraID),
	)
	return inserted, nil
}

func toStringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
