package risk

import (
	"fmt"

	"github.com/shenikar/geo_safety_risk/internal/models"
)

// MaxRecommendations - максимальная длина списка рекомендаций
const MaxRecommendations = 5

const (
	adviceHotspotHigh     = "High-risk crime hotspot - avoid this location if possible"
	adviceHotspotModerate = "Crime hotspot - exercise caution in this area"
	adviceHotspotLow      = "Recorded crime hotspot nearby - maintain normal precautions"
	adviceWellLit         = "Use well-lit routes and avoid shortcuts"
	adviceLiveLocation    = "Share your live location with trusted contacts"
	adviceWeather         = "Exercise extra caution due to weather conditions"
	adviceTrustedRide     = "Consider using trusted transportation options"
	adviceNearPassengers  = "Stay near other passengers and well-lit areas"
	adviceMainRoads       = "Stick to main roads and populated areas"
	adviceAlternative     = "Consider alternative routes or transportation"
	adviceGeneric         = "Stay aware of your surroundings"
)

var categoryAdvice = map[models.Category]string{
	models.CategoryTheft:        "%d theft cases in area - secure valuables",
	models.CategoryRobbery:      "%d robbery incidents - avoid carrying cash",
	models.CategoryAssault:      "%d assault cases - stay in groups",
	models.CategoryBurglary:     "%d burglary incidents - avoid isolated residential areas",
	models.CategoryVehicleCrime: "%d vehicle crimes - secure your vehicle",
}

// adviceList - упорядоченный список без повторов с ограничением длины
type adviceList struct {
	items []string
	seen  map[string]struct{}
	limit int
}

func newAdviceList(limit int) *adviceList {
	return &adviceList{items: make([]string, 0, limit), seen: make(map[string]struct{}), limit: limit}
}

func (l *adviceList) add(s string) {
	if l.full() {
		return
	}
	if _, ok := l.seen[s]; ok {
		return
	}
	l.seen[s] = struct{}{}
	l.items = append(l.items, s)
}

func (l *adviceList) full() bool {
	return len(l.items) >= l.limit
}

// Advise формирует рекомендации по правилам в порядке приоритета.
// Результат всегда содержит хотя бы одну запись.
func Advise(tier models.RiskTier, s models.IncidentSummary, c models.Context) []string {
	out := newAdviceList(MaxRecommendations)

	if s.IsHotspot {
		switch tier {
		case models.TierHigh:
			out.add(adviceHotspotHigh)
		case models.TierModerate:
			out.add(adviceHotspotModerate)
		default:
			out.add(adviceHotspotLow)
		}
	}

	if s.DominantCategory != "" && s.DominantCategory != models.CategoryNone {
		if tmpl, ok := categoryAdvice[s.DominantCategory]; ok {
			out.add(fmt.Sprintf(tmpl, s.DominantCount))
		}
	}

	if c.TimeOfDay == models.TimeEvening || c.TimeOfDay == models.TimeNight {
		out.add(adviceWellLit)
		out.add(adviceLiveLocation)
	}

	if c.Weather.IsAdverse() {
		out.add(adviceWeather)
	}

	switch c.Companionship {
	case models.CompanionAlone:
		out.add(adviceTrustedRide)
	case models.CompanionPublicTransport:
		out.add(adviceNearPassengers)
	}

	if c.AreaType == models.AreaIndustrial || c.AreaType == models.AreaIsolated {
		out.add(adviceMainRoads)
	}

	if tier == models.TierHigh {
		out.add(adviceAlternative)
	}

	if len(out.items) == 0 {
		out.add(adviceGeneric)
	}
	return out.items
}
