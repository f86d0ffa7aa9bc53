package risk

import (
	"fmt"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/models"
)

const (
	areaSafetyBase        = 7.0
	maxAreaRecommendation = 4
)

// AreaSafetyScore - контекстная оценка района без исторических данных
func AreaSafetyScore(f models.AreaFeatures) float64 {
	score := areaSafetyBase

	switch {
	case f.Hour >= 22 || f.Hour <= 5:
		score -= 2.5
	case f.Hour >= 18:
		score -= 1.5
	default:
		score += 0.5
	}

	switch f.AreaType {
	case models.AreaResidential:
		score += 1.5
	case models.AreaCommercial:
		score += 0.5
	case models.AreaIndustrial:
		score -= 1
	case models.AreaIsolated:
		score -= 2
	}

	switch f.Weather {
	case models.WeatherHeavyRain, models.WeatherStorm, models.WeatherThunderstorm:
		score -= 2
	case models.WeatherRain, models.WeatherFog:
		score -= 1
	}

	switch f.CitySize {
	case models.CityMetro:
		score -= 0.5
	case models.CitySmall:
		score += 1
	}

	if f.DayOfWeek == time.Saturday || f.DayOfWeek == time.Sunday {
		score -= 0.5
	}

	return clamp(round1(score), MinScore, MaxScore)
}

// AreaSafetyFactors перечисляет факторы, снижающие оценку района
func AreaSafetyFactors(score float64, f models.AreaFeatures) []string {
	factors := make([]string, 0, 5)

	if f.Hour >= 18 || f.Hour <= 6 {
		factors = append(factors, "Night time - reduced visibility")
	}

	switch f.Weather {
	case models.WeatherRain, models.WeatherHeavyRain, models.WeatherStorm, models.WeatherThunderstorm, models.WeatherFog:
		factors = append(factors, fmt.Sprintf("Weather: %s", f.Weather))
	}

	switch f.AreaType {
	case models.AreaIndustrial:
		factors = append(factors, "Industrial area")
	case models.AreaIsolated:
		factors = append(factors, "Isolated location")
	case models.AreaHighway:
		factors = append(factors, "Highway/road area")
	}

	switch {
	case score <= 4:
		factors = append(factors, "High risk area")
	case score <= 6:
		factors = append(factors, "Moderate risk area")
	}
	return factors
}

// AreaSafetyRecommendations - не более четырех советов, базовые идут первыми
func AreaSafetyRecommendations(score float64, f models.AreaFeatures) []string {
	out := newAdviceList(maxAreaRecommendation)
	out.add(adviceGeneric)
	out.add("Keep emergency contacts accessible")

	if f.Hour >= 18 {
		out.add("Use well-lit routes")
		out.add("Avoid isolated shortcuts")
	}

	switch f.Weather {
	case models.WeatherRain, models.WeatherStorm, models.WeatherHeavyRain, models.WeatherThunderstorm:
		out.add("Seek shelter if weather worsens")
	}

	switch f.AreaType {
	case models.AreaIndustrial:
		out.add("Stay on main roads")
	case models.AreaIsolated:
		out.add("Share your live location")
	}

	if score <= 5 {
		out.add(adviceTrustedRide)
		out.add("Avoid staying alone")
	}
	return out.items
}

// AnalyzeArea строит отчет о безопасности района по контекстным признакам
func (e *Engine) AnalyzeArea(loc models.Location, f models.AreaFeatures) (*models.AreaSafetyReport, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if f.Hour < 0 || f.Hour > 23 {
		return nil, fmt.Errorf("%w: hour must be within 0..23, got %d", models.ErrInvalidInput, f.Hour)
	}
	if f.DayOfWeek < time.Sunday || f.DayOfWeek > time.Saturday {
		return nil, fmt.Errorf("%w: day_of_week must be within 0..6, got %d", models.ErrInvalidInput, f.DayOfWeek)
	}

	score := AreaSafetyScore(f)
	return &models.AreaSafetyReport{
		Location:        loc,
		SafetyScore:     score,
		Level:           ClassifyAreaSafety(score),
		AreaType:        f.AreaType,
		Factors:         AreaSafetyFactors(score, f),
		Recommendations: AreaSafetyRecommendations(score, f),
		AnalyzedAt:      e.now().UTC(),
	}, nil
}
