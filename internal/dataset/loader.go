package dataset

import (
	"context"
	"fmt"

	"github.com/shenikar/geo_safety_risk/internal/config"
	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/shenikar/geo_safety_risk/internal/repository"
	"github.com/sirupsen/logrus"
)

// PostgresSource - таблица инцидентов в PostGIS
type PostgresSource interface {
	LoadAll(ctx context.Context) ([]models.IncidentRecord, error)
}

// Loader собирает IncidentStore из источника, выбранного в конфигурации
type Loader struct {
	cfg    *config.Config
	pg     PostgresSource
	logger *logrus.Logger
}

func NewLoader(cfg *config.Config, pg PostgresSource, logger *logrus.Logger) *Loader {
	return &Loader{cfg: cfg, pg: pg, logger: logger}
}

// Load читает набор данных целиком. Ошибка означает, что данных нет.
func (l *Loader) Load(ctx context.Context) (*repository.IncidentStore, error) {
	log := l.logger.WithFields(logrus.Fields{
		"component": "dataset",
		"source":    l.cfg.IncidentSource,
	})

	if l.cfg.IncidentSource == config.IncidentSourcePostgres {
		if l.pg == nil {
			return nil, fmt.Errorf("%w: postgres source is not configured", models.ErrDataUnavailable)
		}
		records, err := l.pg.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		log.WithField("records", len(records)).Info("Incidents loaded from PostgreSQL")
		return repository.NewIncidentStore(records), nil
	}

	if l.cfg.SeedSampleData {
		created, err := repository.SeedSampleCSVFile(l.cfg.CrimeDataPath)
		if err != nil {
			log.WithError(err).Warn("Failed to write sample incident dataset")
		} else if created {
			log.WithField("path", l.cfg.CrimeDataPath).Info("Sample incident dataset created")
		}
	}

	result, err := repository.LoadIncidentsCSVFile(l.cfg.CrimeDataPath)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"path":    l.cfg.CrimeDataPath,
		"records": len(result.Records),
		"skipped": result.Skipped,
	}).Info("Incident dataset loaded")
	return repository.NewIncidentStore(result.Records), nil
}

// LoadOrUnavailable - первая загрузка при старте: без данных сервис работает в режиме "нет данных"
func (l *Loader) LoadOrUnavailable(ctx context.Context) *repository.IncidentStore {
	store, err := l.Load(ctx)
	if err != nil {
		l.logger.WithError(err).WithField("source", l.cfg.IncidentSource).
			Error("Failed to load incident dataset, risk scores will fall back to context only")
		return repository.NewUnavailableIncidentStore()
	}
	return store
}
