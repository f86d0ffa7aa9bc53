package lookup

import (
	"context"

	"github.com/shenikar/geo_safety_risk/internal/metrics"
	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/sirupsen/logrus"
)

// AddressResolver - источник адресов, который можно закэшировать
type AddressResolver interface {
	Resolve(ctx context.Context, lat, lon float64) (*models.AddressComponents, error)
}

// AddressCache - хранилище адресов по округленным координатам
type AddressCache interface {
	GetAddress(ctx context.Context, lat, lon float64) (*models.AddressComponents, error)
	SetAddress(ctx context.Context, lat, lon float64, addr *models.AddressComponents) error
}

// CachedAddressLookup сначала смотрит в кэш. Ошибки кэша не прерывают запрос.
type CachedAddressLookup struct {
	next   AddressResolver
	cache  AddressCache
	logger *logrus.Logger
}

func NewCachedAddressLookup(next AddressResolver, cache AddressCache, logger *logrus.Logger) *CachedAddressLookup {
	return &CachedAddressLookup{next: next, cache: cache, logger: logger}
}

func (c *CachedAddressLookup) Resolve(ctx context.Context, lat, lon float64) (*models.AddressComponents, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "address_cache",
		"lat":       lat,
		"lon":       lon,
	})

	cached, err := c.cache.GetAddress(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Warn("Failed to read address from cache")
	}
	if cached != nil {
		metrics.GeocodeCacheHitsTotal.Inc()
		return cached, nil
	}
	metrics.GeocodeCacheMissesTotal.Inc()

	addr, err := c.next.Resolve(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetAddress(ctx, lat, lon, addr); err != nil {
		log.WithError(err).Warn("Failed to write address to cache")
	}
	return addr, nil
}
