package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/geo_safety_risk/internal/config"
	"github.com/shenikar/geo_safety_risk/internal/dataset"
	v1 "github.com/shenikar/geo_safety_risk/internal/handler/http/v1"
	"github.com/shenikar/geo_safety_risk/internal/lookup"
	"github.com/shenikar/geo_safety_risk/internal/metrics"
	"github.com/shenikar/geo_safety_risk/internal/repository"
	"github.com/shenikar/geo_safety_risk/internal/risk"
	"github.com/shenikar/geo_safety_risk/internal/service"
	"github.com/shenikar/geo_safety_risk/internal/webhook"
	"github.com/shenikar/geo_safety_risk/pkg/logger"
	"github.com/shenikar/geo_safety_risk/pkg/postgres"
	redisclient "github.com/shenikar/geo_safety_risk/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/geo_safety_risk/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Geo Safety Risk API
// @version 1.0
// @description Crime risk scoring for geographic locations from historical incidents and travel context.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// buildLookups собирает внешние источники адреса, погоды и типа района
func buildLookups(cfg *config.Config, redisClient *goredis.Client, log *logrus.Logger) []service.Option {
	httpClient := &http.Client{Timeout: cfg.LookupTimeout}

	var address lookup.AddressResolver = lookup.NewAddressChain(log,
		lookup.NewNominatimClient(cfg.NominatimURL, cfg.LookupUserAgent, httpClient),
		lookup.NewBigDataCloudClient(cfg.BigDataCloudURL, httpClient),
	)
	if redisClient != nil {
		address = lookup.NewCachedAddressLookup(address, repository.NewAddressCache(redisClient, cfg.GeocodeCacheTTL), log)
	}

	classifiers := []lookup.AreaClassifier{}
	if cfg.OverpassURL != "" {
		classifiers = append(classifiers, lookup.NewOverpassAreaClassifier(cfg.OverpassURL, cfg.LookupTimeout))
	}
	classifiers = append(classifiers, lookup.AddressAreaClassifier{})

	return []service.Option{
		service.WithAddressLookup(address),
		service.WithAreaClassifier(lookup.NewAreaClassifierChain(log, classifiers...)),
		service.WithWeatherLookup(lookup.NewOpenMeteoClient(cfg.OpenMeteoURL, httpClient)),
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// PostgreSQL опционален: без него оценки хранятся в памяти
	var dbpool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err = postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")
	}

	// Redis опционален: кэш геокодирования и очередь вебхуков
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Набор инцидентов
	var pgSource dataset.PostgresSource
	if dbpool != nil {
		pgSource = repository.NewIncidentPostgresRepository(dbpool)
	}
	loader := dataset.NewLoader(cfg, pgSource, log)
	store := repository.NewLiveIncidentStore(loader.LoadOrUnavailable(ctx))
	metrics.IncidentRecordsLoaded.Set(float64(store.Len()))

	if cfg.DatasetReloadCron != "" {
		reloader, err := dataset.NewReloader(cfg.DatasetReloadCron, store, loader, log)
		if err != nil {
			log.Fatalf("Failed to schedule dataset reload: %v", err)
		}
		reloader.Start()
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer stopCancel()
			if err := reloader.Stop(stopCtx); err != nil {
				log.WithError(err).Warn("Dataset reload scheduler did not stop in time")
			}
		}()
	}

	// Вебхуки об оценках высокого риска
	var webhookPublisher webhook.WebhookPublisher
	if redisClient != nil {
		webhookPublisher = webhook.NewRedisWebhookPublisher(redisClient)
		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	}

	// Инициализация репозиториев
	var assessmentRepo service.AssessmentRepository
	if dbpool != nil {
		assessmentRepo = repository.NewAssessmentRepository(dbpool)
	} else {
		assessmentRepo = repository.NewMemoryAssessmentRepository()
	}

	// Инициализация сервисов
	engine := risk.NewEngine(store, risk.WithRadius(cfg.SearchRadiusKm))
	safetyService := service.NewSafetyService(engine, assessmentRepo, store, log, cfg, webhookPublisher,
		buildLookups(cfg, redisClient, log)...)

	// Инициализация хэндлеров
	handler := v1.NewHandler(safetyService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
