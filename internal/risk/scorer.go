package risk

import (
	"math"

	"github.com/shenikar/geo_safety_risk/internal/models"
)

// Константы шкалы и смешивания сигналов фиксированы и не настраиваются в рантайме.
const (
	MinScore = 1.0
	MaxScore = 10.0

	// EmptyIncidentScore - оценка при отсутствии инцидентов рядом
	EmptyIncidentScore = 8.0
	DensityPenalty     = 0.8
	SeverityPenalty    = 0.4
	NeutralSeverity    = 5.0

	ContextBaseline = 5.0

	IncidentWeight = 0.7
	ContextWeight  = 0.3

	ConfidenceBase        = 0.7
	ConfidencePerIncident = 0.01
	ConfidenceMaxIncident = 20
	ConfidenceCap         = 0.95
	FallbackConfidence    = 0.3
)

// IncidentScore - оценка по историческим данным (путь A)
func IncidentScore(s models.IncidentSummary) float64 {
	if s.TotalCount == 0 {
		return EmptyIncidentScore
	}
	raw := MaxScore - s.DensityPerKm2*DensityPenalty - (s.AvgSeverity-NeutralSeverity)*SeverityPenalty
	return clamp(raw, MinScore, MaxScore)
}

// ContextScore - контекстная оценка (путь B), не ограничивается до смешивания
func ContextScore(c models.Context) float64 {
	return ContextBaseline +
		timeOfDayDelta[c.TimeOfDay] +
		weatherDelta[c.Weather] +
		companionshipDelta[c.Companionship] +
		areaTypeDelta[c.AreaType]
}

// Fuse смешивает два сигнала 70/30, ограничивает шкалой и округляет до 0.1
func Fuse(raw, contextScore float64) float64 {
	return round1(clamp(raw*IncidentWeight+contextScore*ContextWeight, MinScore, MaxScore))
}

// Confidence зависит от объема данных рядом с точкой
func Confidence(total int, dataAvailable bool) float64 {
	if !dataAvailable || total == 0 {
		return FallbackConfidence
	}
	n := total
	if n > ConfidenceMaxIncident {
		n = ConfidenceMaxIncident
	}
	return math.Round(math.Min(ConfidenceCap, ConfidenceBase+float64(n)*ConfidencePerIncident)*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
