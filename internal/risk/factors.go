package risk

import (
	"fmt"

	"github.com/shenikar/geo_safety_risk/internal/models"
)

const factorDataUnavailable = "Incident data unavailable - using general safety guidelines"

// Factors объясняет итоговую оценку в человекочитаемом виде
func Factors(score float64, s models.IncidentSummary, c models.Context, dataAvailable bool) []string {
	factors := make([]string, 0, 8)

	switch {
	case !dataAvailable:
		factors = append(factors, factorDataUnavailable)
	case s.TotalCount == 0:
		factors = append(factors, fmt.Sprintf("No incidents recorded within %s km", formatKm(s.RadiusKm)))
	default:
		factors = append(factors,
			fmt.Sprintf("%d incidents recorded within %s km", s.TotalCount, formatKm(s.RadiusKm)),
			fmt.Sprintf("Area crime rate: %s", s.CrimeRate),
		)
		if s.IsHotspot {
			factors = append(factors, "Crime hotspot area identified from data")
		}
		if s.RecencyKnown && s.RecentCount > 0 {
			factors = append(factors, fmt.Sprintf("%d incidents in the last 30 days", s.RecentCount))
		}
		factors = append(factors, fmt.Sprintf("Most common: %s (%d cases)", s.DominantCategory, s.DominantCount))
	}

	if c.TimeOfDay == models.TimeEvening || c.TimeOfDay == models.TimeNight {
		factors = append(factors, fmt.Sprintf("Time of day: %s", c.TimeOfDay))
	}
	if c.Weather.IsAdverse() {
		factors = append(factors, fmt.Sprintf("Weather conditions: %s", c.Weather))
	}

	switch c.Companionship {
	case models.CompanionAlone:
		factors = append(factors, "Traveling alone")
	case models.CompanionPublicTransport:
		factors = append(factors, "Using public transportation")
	}

	switch c.AreaType {
	case models.AreaIndustrial, models.AreaIsolated, models.AreaHighway:
		factors = append(factors, fmt.Sprintf("Area type: %s", c.AreaType))
	}

	if score <= TierModerateMin {
		factors = append(factors, "Multiple risk factors present")
	}
	return factors
}

func formatKm(km float64) string {
	return fmt.Sprintf("%g", km)
}
