// Command incident-import загружает CSV с инцидентами в таблицу crime_incidents.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/config"
	"github.com/shenikar/geo_safety_risk/internal/repository"
	"github.com/shenikar/geo_safety_risk/pkg/logger"
	"github.com/shenikar/geo_safety_risk/pkg/postgres"
	"github.com/sirupsen/logrus"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	path := flag.String("file", cfg.CrimeDataPath, "path to the incident CSV file")
	dsn := flag.String("dsn", cfg.DatabaseURL, "PostgreSQL connection string")
	truncate := flag.Bool("truncate", false, "remove existing incidents before import")
	flag.Parse()

	log := logger.New(cfg.LogLevel)
	if *dsn == "" {
		log.Fatal("DATABASE_URL or -dsn is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := repository.LoadIncidentsCSVFile(*path)
	if err != nil {
		log.Fatalf("Failed to read incident CSV: %v", err)
	}
	log.WithFields(logrus.Fields{
		"path":    *path,
		"records": len(result.Records),
		"skipped": result.Skipped,
	}).Info("Incident CSV parsed")

	dbpool, err := postgres.NewPostgresDB(ctx, *dsn)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	repo := repository.NewIncidentPostgresRepository(dbpool)
	if *truncate {
		if err := repo.Truncate(ctx); err != nil {
			log.Fatalf("Failed to truncate incidents: %v", err)
		}
		log.Info("Existing incidents removed")
	}

	t0 := time.Now()
	inserted, err := repo.InsertBatch(ctx, result.Records)
	if err != nil {
		log.WithField("inserted", inserted).Fatalf("Import interrupted: %v", err)
	}

	log.WithFields(logrus.Fields{
		"inserted": inserted,
		"took":     time.Since(t0).String(),
	}).Info("Incident import completed")
}
