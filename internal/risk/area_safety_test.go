package risk

import (
	"errors"
	"testing"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaSafetyScore(t *testing.T) {
	tests := []struct {
		name     string
		features models.AreaFeatures
		expected float64
	}{
		{
			name:     "Weekday noon in residential small town",
			features: models.AreaFeatures{Hour: 12, DayOfWeek: time.Wednesday, AreaType: models.AreaResidential, Weather: models.WeatherClear, CitySize: models.CitySmall},
			expected: 10,
		},
		{
			name:     "Saturday night isolated storm in metro",
			features: models.AreaFeatures{Hour: 23, DayOfWeek: time.Saturday, AreaType: models.AreaIsolated, Weather: models.WeatherStorm, CitySize: models.CityMetro},
			expected: 1,
		},
		{
			name:     "Evening commercial rain",
			features: models.AreaFeatures{Hour: 19, DayOfWeek: time.Monday, AreaType: models.AreaCommercial, Weather: models.WeatherRain, CitySize: models.CityMedium},
			expected: 5,
		},
		{
			name:     "Early morning unknown area on Sunday",
			features: models.AreaFeatures{Hour: 5, DayOfWeek: time.Sunday, AreaType: models.AreaUnknown, Weather: models.WeatherUnknown, CitySize: models.CityMedium},
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AreaSafetyScore(tt.features), 1e-9)
		})
	}
}

func TestEngine_AnalyzeArea(t *testing.T) {
	engine := newTestEngine(nil, true)

	t.Run("Industrial evening", func(t *testing.T) {
		report, err := engine.AnalyzeArea(point(), models.AreaFeatures{
			Hour: 20, DayOfWeek: time.Tuesday, AreaType: models.AreaIndustrial, Weather: models.WeatherClear, CitySize: models.CityMetro,
		})
		require.NoError(t, err)

		assert.Equal(t, 4.0, report.SafetyScore)
		assert.Equal(t, models.AreaSafetyHigh, report.Level)
		assert.Equal(t, []string{"Night time - reduced visibility", "Industrial area", "High risk area"}, report.Factors)
		assert.Equal(t, []string{
			"Stay aware of your surroundings",
			"Keep emergency contacts accessible",
			"Use well-lit routes",
			"Avoid isolated shortcuts",
		}, report.Recommendations)
		assert.Equal(t, fixedNow, report.AnalyzedAt)
	})

	t.Run("Invalid hour", func(t *testing.T) {
		_, err := engine.AnalyzeArea(point(), models.AreaFeatures{Hour: 24})
		assert.True(t, errors.Is(err, models.ErrInvalidInput))
	})

	t.Run("Invalid location", func(t *testing.T) {
		_, err := engine.AnalyzeArea(models.Location{Latitude: -100}, models.AreaFeatures{Hour: 10})
		assert.True(t, errors.Is(err, models.ErrInvalidInput))
	})
}
