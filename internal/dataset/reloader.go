package dataset

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/shenikar/geo_safety_risk/internal/metrics"
	"github.com/shenikar/geo_safety_risk/internal/repository"
	"github.com/sirupsen/logrus"
)

type StoreLoader interface {
	Load(ctx context.Context) (*repository.IncidentStore, error)
}

// Reloader по расписанию перечитывает набор данных и подменяет снимок в LiveIncidentStore.
// Неудачная загрузка оставляет предыдущий снимок.
type Reloader struct {
	cron   *cron.Cron
	store  *repository.LiveIncidentStore
	loader StoreLoader
	logger *logrus.Logger
	mu     sync.Mutex
}

// NewReloader принимает стандартное cron-выражение из пяти полей или дескриптор вида "@every 1h"
func NewReloader(schedule string, store *repository.LiveIncidentStore, loader StoreLoader, logger *logrus.Logger) (*Reloader, error) {
	r := &Reloader{
		cron:   cron.New(),
		store:  store,
		loader: loader,
		logger: logger,
	}

	if _, err := r.cron.AddFunc(schedule, func() {
		_ = r.Reload(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("dataset: invalid reload schedule %q: %w", schedule, err)
	}
	return r, nil
}

func (r *Reloader) Start() {
	r.cron.Start()
	r.logger.WithField("component", "dataset").Info("Dataset reload scheduler started")
}

// Stop дожидается завершения текущей перезагрузки или отмены ctx
func (r *Reloader) Stop(ctx context.Context) error {
	stopCtx := r.cron.Stop()

	select {
	case <-stopCtx.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reload загружает набор данных и при успехе публикует новый снимок
func (r *Reloader) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logger.WithFields(logrus.Fields{
		"component": "dataset",
		"method":    "Reload",
	})

	next, err := r.loader.Load(ctx)
	if err != nil {
		metrics.DatasetReloadsTotal.WithLabelValues("failed").Inc()
		log.WithError(err).Warn("Dataset reload failed, keeping previous snapshot")
		return fmt.Errorf("dataset: reload: %w", err)
	}

	r.store.Replace(next)
	metrics.IncidentRecordsLoaded.Set(float64(next.Len()))
	metrics.DatasetReloadsTotal.WithLabelValues("ok").Inc()
	log.WithField("records", next.Len()).Info("Dataset reloaded")
	return nil
}
