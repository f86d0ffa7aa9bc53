package risk

import (
	"testing"

	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAdvise(t *testing.T) {
	hotspotTheft := models.IncidentSummary{TotalCount: 12, IsHotspot: true, DominantCategory: models.CategoryTheft, DominantCount: 7}

	tests := []struct {
		name     string
		tier     models.RiskTier
		summary  models.IncidentSummary
		ctx      models.Context
		expected []string
	}{
		{
			name:     "Fallback when nothing fires",
			tier:     models.TierLow,
			summary:  models.IncidentSummary{DominantCategory: models.CategoryNone},
			ctx:      models.Context{TimeOfDay: models.TimeMorning},
			expected: []string{"Stay aware of your surroundings"},
		},
		{
			name:    "Capped at five in priority order",
			tier:    models.TierHigh,
			summary: hotspotTheft,
			ctx: models.Context{
				TimeOfDay:     models.TimeNight,
				Weather:       models.WeatherStorm,
				Companionship: models.CompanionAlone,
				AreaType:      models.AreaIsolated,
			},
			expected: []string{
				"High-risk crime hotspot - avoid this location if possible",
				"7 theft cases in area - secure valuables",
				"Use well-lit routes and avoid shortcuts",
				"Share your live location with trusted contacts",
				"Exercise extra caution due to weather conditions",
			},
		},
		{
			name:    "Moderate hotspot with category without advisory",
			tier:    models.TierModerate,
			summary: models.IncidentSummary{IsHotspot: true, DominantCategory: models.CategoryFraud, DominantCount: 3},
			ctx:     models.Context{AreaType: models.AreaIndustrial},
			expected: []string{
				"Crime hotspot - exercise caution in this area",
				"Stick to main roads and populated areas",
			},
		},
		{
			name:    "High tier appends alternative route",
			tier:    models.TierHigh,
			summary: models.IncidentSummary{DominantCategory: models.CategoryVehicleCrime, DominantCount: 2},
			ctx:     models.Context{Companionship: models.CompanionPublicTransport},
			expected: []string{
				"2 vehicle crimes - secure your vehicle",
				"Stay near other passengers and well-lit areas",
				"Consider alternative routes or transportation",
			},
		},
		{
			name:     "Drizzle is not adverse",
			tier:     models.TierModerate,
			summary:  models.IncidentSummary{DominantCategory: models.CategoryNone},
			ctx:      models.Context{Weather: models.WeatherDrizzle},
			expected: []string{"Stay aware of your surroundings"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Advise(tt.tier, tt.summary, tt.ctx))
		})
	}
}

func TestFactors(t *testing.T) {
	t.Run("With data", func(t *testing.T) {
		s := models.IncidentSummary{
			TotalCount:       5,
			RadiusKm:         1.5,
			CrimeRate:        "low",
			IsHotspot:        true,
			RecencyKnown:     true,
			RecentCount:      4,
			DominantCategory: models.CategoryRobbery,
			DominantCount:    3,
		}
		c := models.Context{TimeOfDay: models.TimeEvening, Weather: models.WeatherFog, Companionship: models.CompanionAlone, AreaType: models.AreaHighway}

		assert.Equal(t, []string{
			"5 incidents recorded within 1.5 km",
			"Area crime rate: low",
			"Crime hotspot area identified from data",
			"4 incidents in the last 30 days",
			"Most common: robbery (3 cases)",
			"Time of day: evening",
			"Weather conditions: fog",
			"Traveling alone",
			"Area type: highway",
			"Multiple risk factors present",
		}, Factors(3.5, s, c, true))
	})

	t.Run("Unknown recency omitted", func(t *testing.T) {
		s := models.IncidentSummary{TotalCount: 2, RadiusKm: 2, CrimeRate: "very_low", DominantCategory: models.CategoryTheft, DominantCount: 2}
		assert.NotContains(t, Factors(8, s, models.Context{}, true), "0 incidents in the last 30 days")
	})
}
