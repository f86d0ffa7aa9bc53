package risk

import "github.com/shenikar/geo_safety_risk/internal/models"

const (
	TierLowMin      = 7.0
	TierModerateMin = 4.0

	AreaSafetyLowMin      = 8.0
	AreaSafetyModerateMin = 6.0
	AreaSafetyHighMin     = 4.0
)

// ClassifyTier - уровень риска итоговой оценки (шкала 7/4)
func ClassifyTier(score float64) models.RiskTier {
	switch {
	case score >= TierLowMin:
		return models.TierLow
	case score >= TierModerateMin:
		return models.TierModerate
	default:
		return models.TierHigh
	}
}

// ClassifyAreaSafety - уровень риска для контекстного анализа района (шкала 8/6/4)
func ClassifyAreaSafety(score float64) models.AreaSafetyLevel {
	switch {
	case score >= AreaSafetyLowMin:
		return models.AreaSafetyLow
	case score >= AreaSafetyModerateMin:
		return models.AreaSafetyModerate
	case score >= AreaSafetyHighMin:
		return models.AreaSafetyHigh
	default:
		return models.AreaSafetyVeryHigh
	}
}
