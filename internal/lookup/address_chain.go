package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/geo_safety_risk/internal/metrics"
	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/sirupsen/logrus"
)

// AddressProvider - один провайдер обратного геокодирования
type AddressProvider interface {
	Name() string
	Resolve(ctx context.Context, lat, lon float64) (*models.AddressComponents, error)
}

// genericAddressMarkers - признаки заглушки вместо реального адреса
var genericAddressMarkers = []string{"location", "coordinates", "unknown", "current location"}

// AddressChain опрашивает провайдеров в фиксированном порядке и возвращает
// первый результат, прошедший проверку. Остальные провайдеры не вызываются.
type AddressChain struct {
	providers []AddressProvider
	logger    *logrus.Logger
}

func NewAddressChain(logger *logrus.Logger, providers ...AddressProvider) *AddressChain {
	return &AddressChain{providers: providers, logger: logger}
}

func (c *AddressChain) Resolve(ctx context.Context, lat, lon float64) (*models.AddressComponents, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "address_chain",
		"lat":       lat,
		"lon":       lon,
	})

	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrLookupFailed, err)
		}

		addr, err := p.Resolve(ctx, lat, lon)
		if err != nil {
			log.WithError(err).WithField("provider", p.Name()).Warn("Address provider failed")
			continue
		}
		if !IsValidAddress(addr) {
			metrics.LookupFailTotal.WithLabelValues(p.Name()).Inc()
			log.WithField("provider", p.Name()).Debug("Address provider returned unusable result")
			continue
		}
		return addr, nil
	}
	return nil, fmt.Errorf("%w: no address provider returned a usable result", models.ErrLookupFailed)
}

// IsValidAddress - адрес должен содержать город или район и не быть заглушкой
func IsValidAddress(addr *models.AddressComponents) bool {
	if addr == nil {
		return false
	}
	formatted := strings.ToLower(strings.TrimSpace(addr.FormattedAddress))
	if formatted == "" {
		return false
	}
	for _, marker := range genericAddressMarkers {
		if strings.Contains(formatted, marker) {
			return false
		}
	}
	return addr.City != "" || addr.Locality != ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func lookupError(provider, msg string) error {
	return fmt.Errorf("%w: %s: %s", models.ErrLookupFailed, provider, msg)
}
