package risk

import (
	"math"
	"sort"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/geo"
	"github.com/shenikar/geo_safety_risk/internal/models"
)

const (
	// RecentWindow - инцидент считается недавним, если произошел не раньше now-RecentWindow
	RecentWindow = 30 * 24 * time.Hour

	hotspotHighSeverityAbove = 2
	hotspotTotalAbove        = 10
	hotspotRecentAbove       = 3
)

// Aggregator строит сводку по найденным инцидентам
type Aggregator struct{}

// Summarize считает агрегаты для инцидентов, найденных в круге радиуса radiusKm.
// Все пороги строгие.
func (a *Aggregator) Summarize(incidents []models.IncidentRecord, radiusKm float64, now time.Time) models.IncidentSummary {
	summary := models.IncidentSummary{
		TotalCount:        len(incidents),
		CategoryFrequency: make(map[models.Category]int),
		DominantCategory:  models.CategoryNone,
		RadiusKm:          radiusKm,
	}

	cutoff := now.Add(-RecentWindow)
	areas := make(map[string]int)
	severitySum := 0
	for _, rec := range incidents {
		summary.CategoryFrequency[rec.Category]++

		sev := rec.ResolvedSeverity()
		severitySum += sev
		if sev >= models.HighSeverityThreshold {
			summary.HighSeverityCount++
		}

		if rec.OccurredAt != nil {
			summary.RecencyKnown = true
			if !rec.OccurredAt.Before(cutoff) {
				summary.RecentCount++
			}
		}

		if rec.Area != "" {
			areas[rec.Area]++
		}
	}

	if summary.TotalCount > 0 {
		summary.AvgSeverity = float64(severitySum) / float64(summary.TotalCount)
		summary.DominantCategory, summary.DominantCount = dominantCategory(summary.CategoryFrequency)
	}

	if area := geo.CircleAreaKm2(radiusKm); area > 0 {
		summary.DensityPerKm2 = float64(summary.TotalCount) / area
	}
	summary.CrimeRate = crimeRate(summary.DensityPerKm2)
	summary.AreaLabel = mostFrequent(areas)

	summary.IsHotspot = summary.HighSeverityCount > hotspotHighSeverityAbove ||
		summary.TotalCount > hotspotTotalAbove ||
		summary.RecentCount > hotspotRecentAbove

	return summary
}

// dominantCategory: максимум по числу, при равенстве - более тяжелая категория, затем лексикографически
func dominantCategory(freq map[models.Category]int) (models.Category, int) {
	cats := make([]models.Category, 0, len(freq))
	for c := range freq {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		ci, cj := cats[i], cats[j]
		if freq[ci] != freq[cj] {
			return freq[ci] > freq[cj]
		}
		if si, sj := ci.DefaultSeverity(), cj.DefaultSeverity(); si != sj {
			return si > sj
		}
		return ci < cj
	})
	return cats[0], freq[cats[0]]
}

func mostFrequent(counts map[string]int) string {
	best, bestCount := "", 0
	for k, n := range counts {
		if n > bestCount || (n == bestCount && k < best) {
			best, bestCount = k, n
		}
	}
	return best
}

func crimeRate(density float64) string {
	switch {
	case math.IsNaN(density):
		return "unknown"
	case density > 15:
		return "very_high"
	case density > 10:
		return "high"
	case density > 5:
		return "moderate"
	case density > 2:
		return "low"
	default:
		return "very_low"
	}
}
