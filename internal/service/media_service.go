package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/falacidadao/ocorrencias-api/internal/dto"
	"github.com/falacidadao/ocorrencias-api/internal/models"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
)

type mediaFileStorage interface {
	SaveStream(objectPath string, r io.Reader) (string, error)
	PublicURL(objectPath string) string
}

// MediaUpload carries upload metadata and the stream reader.
type MediaUpload struct {
	Filename string
	Size     int64
	Type     string
	Content  io.Reader
}

// MediaServiceConfig holds the per-type size limits.
type MediaServiceConfig struct {
	PhotoMaxBytes int64
	VideoMaxBytes int64
}

// MediaService stores occurrence attachments and resolves their public URLs.
type MediaService struct {
	storage mediaFileStorage
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
	cfg     MediaServiceConfig
}

// NewMediaService constructs the service with defaults.
func NewMediaService(storage mediaFileStorage, metrics *MetricsService, logger *zap.Logger, cfg MediaServiceConfig) *MediaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PhotoMaxBytes <= 0 {
		cfg.PhotoMaxBytes = 5 * 1024 * 1024
	}
	if cfg.VideoMaxBytes <= 0 {
		cfg.VideoMaxBytes = 50 * 1024 * 1024
	}
	return &MediaService{
		storage: storage,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		cfg:     cfg,
	}
}

// Upload validates size limits and persists the file under the caller's
// folder. The type field is not restricted to photo/video: any other value
// falls back to the photo limit and is pluralized into the path as-is,
// matching the legacy contract.
func (s *MediaService) Upload(ctx context.Context, upload MediaUpload, actor *models.JWTClaims) (*dto.MediaUploadResponse, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if upload.Content == nil || upload.Filename == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Nenhum arquivo enviado")
	}

	maxSize := s.cfg.PhotoMaxBytes
	if upload.Type == "video" {
		maxSize = s.cfg.VideoMaxBytes
	}
	if upload.Size > maxSize {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("Arquivo muito grande. Máximo: %dMB", maxSize/1024/1024))
	}

	objectPath := fmt.Sprintf("%s/%ss/%d_%s",
		actor.UserID,
		upload.Type,
		s.now().UnixMilli(),
		upload.Filename,
	)

	path, err := s.storage.SaveStream(objectPath, upload.Content)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if s.metrics != nil {
		s.metrics.ObserveUploadSize(upload.Size)
	}
	s.logger.Info("media stored",
		zap.String("path", path),
		zap.String("user_id", actor.UserID),
		zap.Int64("size", upload.Size),
		zap.String("type", upload.Type),
	)

	return &dto.MediaUploadResponse{
		FileName:  path,
		PublicURL: s.storage.PublicURL(path),
		Type:      upload.Type,
	}, nil
}
