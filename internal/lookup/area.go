package lookup

import (
	"context"
	"strings"

	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	commercialKeywords = []string{"mall", "market", "shop"}
	industrialKeywords = []string{"factory", "industrial"}

	metroCities = map[string]struct{}{
		"delhi": {}, "new delhi": {}, "mumbai": {}, "kolkata": {}, "chennai": {},
		"bangalore": {}, "bengaluru": {}, "hyderabad": {}, "pune": {},
	}
)

// DetectAreaType определяет тип района по компонентам адреса
func DetectAreaType(addr *models.AddressComponents) models.AreaType {
	if addr == nil {
		return models.AreaUnknown
	}

	text := strings.ToLower(strings.Join([]string{
		addr.FormattedAddress, addr.Road, addr.Neighbourhood, addr.Suburb, addr.Locality, addr.City,
	}, " "))

	switch {
	case containsAny(text, commercialKeywords):
		return models.AreaCommercial
	case containsAny(text, industrialKeywords):
		return models.AreaIndustrial
	case addr.Road != "" && addr.HouseNumber == "":
		return models.AreaHighway
	case addr.City == "" && addr.Road == "":
		return models.AreaIsolated
	default:
		return models.AreaResidential
	}
}

// CitySizeOf - размер города по адресу. Без адреса размер считается средним.
func CitySizeOf(addr *models.AddressComponents) models.CitySize {
	if addr == nil {
		return models.CityMedium
	}
	if addr.City == "" {
		return models.CitySmall
	}
	if _, ok := metroCities[strings.ToLower(strings.TrimSpace(addr.City))]; ok {
		return models.CityMetro
	}
	return models.CityMedium
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// AreaClassifier определяет тип района для точки
type AreaClassifier interface {
	Classify(ctx context.Context, loc models.Location, addr *models.AddressComponents) (models.AreaType, error)
}

// AddressAreaClassifier - классификатор по адресу, не делает внешних вызовов
type AddressAreaClassifier struct{}

func (AddressAreaClassifier) Classify(_ context.Context, _ models.Location, addr *models.AddressComponents) (models.AreaType, error) {
	return DetectAreaType(addr), nil
}

// AreaClassifierChain возвращает первый определенный тип района
type AreaClassifierChain struct {
	classifiers []AreaClassifier
	logger      *logrus.Logger
}

func NewAreaClassifierChain(logger *logrus.Logger, classifiers ...AreaClassifier) *AreaClassifierChain {
	return &AreaClassifierChain{classifiers: classifiers, logger: logger}
}

func (c *AreaClassifierChain) Classify(ctx context.Context, loc models.Location, addr *models.AddressComponents) (models.AreaType, error) {
	for _, cl := range c.classifiers {
		areaType, err := cl.Classify(ctx, loc, addr)
		if err != nil {
			c.logger.WithError(err).WithField("component", "area_chain").Warn("Area classifier failed")
			continue
		}
		if areaType != "" && areaType != models.AreaUnknown {
			return areaType, nil
		}
	}
	return models.AreaUnknown, nil
}
