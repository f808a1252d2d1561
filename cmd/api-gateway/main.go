package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/falacidadao/ocorrencias-api/api/swagger"
	"github.com/falacidadao/ocorrencias-api/internal/handler"
	"github.com/falacidadao/ocorrencias-api/internal/middleware"
	"github.com/falacidadao/ocorrencias-api/internal/repository"
	"github.com/falacidadao/ocorrencias-api/internal/service"
	rediscache "github.com/falacidadao/ocorrencias-api/pkg/cache"
	"github.com/falacidadao/ocorrencias-api/pkg/config"
	"github.com/falacidadao/ocorrencias-api/pkg/database"
	"github.com/falacidadao/ocorrencias-api/pkg/logger"
	corsmiddleware "github.com/falacidadao/ocorrencias-api/pkg/middleware/cors"
	reqidmiddleware "github.com/falacidadao/ocorrencias-api/pkg/middleware/requestid"
	"github.com/falacidadao/ocorrencias-api/pkg/storage"
)

// @title Fala Cidadão API
// @version 1.0.0
// @description Registro de ocorrências urbanas e estatísticas para prefeituras
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	var cacheSvc *service.CacheService
	metricsSvc := service.NewMetricsService()
	if cfg.Dashboard.CacheEnabled {
		redisClient, err := rediscache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, statistics cache disabled", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
			defer cacheRepo.Close()
		}
	}

	mediaStore, err := storage.NewLocalStorage(cfg.Storage.MediaDir, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
	if err != nil {
		logr.Sugar().Fatalw("media storage init failed", "error", err)
	}

	occurrenceRepo := repository.NewOccurrenceRepository(db)
	municipalityRepo := repository.NewMunicipalityRepository(db)

	authSvc := service.NewAuthService(service.AuthConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	})
	occurrenceSvc := service.NewOccurrenceService(occurrenceRepo, municipalityRepo, nil, cacheSvc, metricsSvc, logr, service.OccurrenceServiceConfig{
		City:  cfg.Municipality.City,
		State: cfg.Municipality.State,
	})
	dashboardSvc := service.NewDashboardService(occurrenceRepo, cacheSvc, metricsSvc, logr, service.DashboardServiceConfig{
		CacheTTL:   cfg.Dashboard.CacheTTL,
		PeriodDays: cfg.Dashboard.PeriodDays,
	})
	mediaSvc := service.NewMediaService(mediaStore, metricsSvc, logr, service.MediaServiceConfig{
		PhotoMaxBytes: cfg.Storage.PhotoMaxBytes,
		VideoMaxBytes: cfg.Storage.VideoMaxBytes,
	})
	exportSvc := service.NewExportService(dashboardSvc)

	occurrenceHandler := handler.NewOccurrenceHandler(occurrenceSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, exportSvc)
	mediaHandler := handler.NewMediaHandler(mediaSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	// uploaded media is served straight from disk under the bucket prefix
	r.Static("/storage/"+mediaStore.Bucket(), mediaStore.Root())

	api := r.Group(cfg.APIPrefix)
	api.POST("/ocorrencias", middleware.JWT(authSvc, "Usuário não está logado"), occurrenceHandler.Create)
	api.GET("/dashboard/stats", middleware.OptionalJWT(authSvc), dashboardHandler.Stats)
	api.GET("/dashboard/stats/export", middleware.JWT(authSvc, "Usuário não autorizado"), dashboardHandler.Export)
	api.POST("/media/upload", middleware.JWT(authSvc, "Usuário não autorizado"), mediaHandler.Upload)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
