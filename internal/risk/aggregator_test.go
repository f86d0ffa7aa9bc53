package risk

import (
	"testing"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/stretchr/testify/assert"
)

func at(d time.Duration) *time.Time {
	ts := fixedNow.Add(-d)
	return &ts
}

func TestAggregator_Summarize(t *testing.T) {
	var agg Aggregator

	t.Run("Empty", func(t *testing.T) {
		s := agg.Summarize(nil, 2, fixedNow)
		assert.Equal(t, 0, s.TotalCount)
		assert.Equal(t, models.CategoryNone, s.DominantCategory)
		assert.False(t, s.RecencyKnown)
		assert.Equal(t, 0.0, s.DensityPerKm2)
		assert.Equal(t, "very_low", s.CrimeRate)
		assert.False(t, s.IsHotspot)
	})

	t.Run("Mixed records", func(t *testing.T) {
		records := []models.IncidentRecord{
			{Category: models.CategoryTheft, OccurredAt: at(24 * time.Hour), Area: "Delhi Central"},
			{Category: models.CategoryTheft, OccurredAt: at(40 * 24 * time.Hour), Area: "Delhi Central"},
			{Category: models.CategoryAssault, Severity: 9, Area: "Karol Bagh"},
			{Category: models.CategoryFraud},
		}
		s := agg.Summarize(records, 1, fixedNow)

		assert.Equal(t, 4, s.TotalCount)
		assert.Equal(t, map[models.Category]int{models.CategoryTheft: 2, models.CategoryAssault: 1, models.CategoryFraud: 1}, s.CategoryFrequency)
		assert.Equal(t, models.CategoryTheft, s.DominantCategory)
		assert.Equal(t, 2, s.DominantCount)
		assert.True(t, s.RecencyKnown)
		assert.Equal(t, 1, s.RecentCount)
		assert.Equal(t, 1, s.HighSeverityCount)
		assert.InDelta(t, (6+6+9+5)/4.0, s.AvgSeverity, 1e-9)
		assert.InDelta(t, 4/3.14159265, s.DensityPerKm2, 1e-6)
		assert.Equal(t, "Delhi Central", s.AreaLabel)
		assert.Equal(t, 1.0, s.RadiusKm)
	})

	t.Run("Recency window edge is inclusive", func(t *testing.T) {
		s := agg.Summarize([]models.IncidentRecord{{Category: models.CategoryTheft, OccurredAt: at(RecentWindow)}}, 2, fixedNow)
		assert.Equal(t, 1, s.RecentCount)
	})

	t.Run("Density uses actual radius", func(t *testing.T) {
		records := repeat(10, models.IncidentRecord{Category: models.CategoryTheft})
		narrow := agg.Summarize(records, 1, fixedNow)
		wide := agg.Summarize(records, 2, fixedNow)
		assert.InDelta(t, 4*wide.DensityPerKm2, narrow.DensityPerKm2, 1e-9)
	})
}

func TestAggregator_DominantCategoryTieBreak(t *testing.T) {
	var agg Aggregator

	t.Run("Heavier category wins a tie", func(t *testing.T) {
		records := []models.IncidentRecord{
			{Category: models.CategoryTheft}, {Category: models.CategoryRobbery},
			{Category: models.CategoryTheft}, {Category: models.CategoryRobbery},
		}
		assert.Equal(t, models.CategoryRobbery, agg.Summarize(records, 2, fixedNow).DominantCategory)
	})

	t.Run("Lexical order for equal severity", func(t *testing.T) {
		records := []models.IncidentRecord{
			{Category: models.CategoryVehicleCrime}, {Category: models.CategoryTheft},
		}
		for i := 0; i < 20; i++ {
			assert.Equal(t, models.CategoryTheft, agg.Summarize(records, 2, fixedNow).DominantCategory)
		}
	})
}

func TestAggregator_HotspotThresholdsAreStrict(t *testing.T) {
	var agg Aggregator

	build := func(total, high, recent int) []models.IncidentRecord {
		out := make([]models.IncidentRecord, 0, total)
		for i := 0; i < total; i++ {
			rec := models.IncidentRecord{Category: models.CategoryFraud}
			if i < high {
				rec.Severity = 8
			}
			if i < recent {
				rec.OccurredAt = at(time.Hour)
			}
			out = append(out, rec)
		}
		return out
	}

	tests := []struct {
		name                string
		total, high, recent int
		expected            bool
	}{
		{"All at threshold", 10, 2, 3, false},
		{"Total crosses", 11, 0, 0, true},
		{"High severity crosses", 5, 3, 0, true},
		{"Recent crosses", 5, 0, 4, true},
		{"Quiet area", 3, 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := agg.Summarize(build(tt.total, tt.high, tt.recent), 2, fixedNow)
			assert.Equal(t, tt.expected, s.IsHotspot)
		})
	}
}
