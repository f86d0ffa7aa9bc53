package risk

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

type fakeStore struct {
	records   []models.IncidentRecord
	available bool
}

func (f *fakeStore) Query(models.Location, float64) []models.IncidentRecord {
	return f.records
}

func (f *fakeStore) Available() bool {
	return f.available
}

func newTestEngine(records []models.IncidentRecord, available bool) *Engine {
	return NewEngine(&fakeStore{records: records, available: available}, WithClock(func() time.Time { return fixedNow }))
}

func point() models.Location {
	return models.Location{Latitude: 28.6139, Longitude: 77.2090}
}

func repeat(n int, rec models.IncidentRecord) []models.IncidentRecord {
	out := make([]models.IncidentRecord, n)
	for i := range out {
		out[i] = rec
	}
	return out
}

func TestEngine_AssessRisk_EmptyNightAlone(t *testing.T) {
	engine := newTestEngine(nil, true)
	c := models.Context{
		TimeOfDay:     models.TimeNight,
		Weather:       models.WeatherClear,
		Companionship: models.CompanionAlone,
		AreaType:      models.AreaUnknown,
	}

	report, err := engine.AssessRisk(point(), c)
	require.NoError(t, err)

	assert.Equal(t, 8.0, report.RawScore)
	assert.InDelta(t, 1.0, report.ContextScore, 1e-9)
	assert.Equal(t, 5.9, report.Score)
	assert.Equal(t, models.TierModerate, report.Tier)
	assert.Equal(t, 0.3, report.Confidence)
	assert.Equal(t, models.CategoryNone, report.Summary.DominantCategory)
	assert.False(t, report.Summary.IsHotspot)
	assert.True(t, report.DataAvailable)
	assert.Equal(t, fixedNow, report.AssessedAt)
	assert.Contains(t, report.Factors, "No incidents recorded within 2 km")
	assert.Equal(t, []string{
		"Use well-lit routes and avoid shortcuts",
		"Share your live location with trusted contacts",
		"Consider using trusted transportation options",
	}, report.Recommendations)
}

func TestEngine_AssessRisk_DenseSevereArea(t *testing.T) {
	records := repeat(15, models.IncidentRecord{Latitude: 28.6139, Longitude: 77.2090, Category: models.CategoryAssault, Severity: 8})
	engine := newTestEngine(records, true)

	t.Run("Safe context", func(t *testing.T) {
		report, err := engine.AssessRisk(point(), models.Context{
			TimeOfDay:     models.TimeMorning,
			Weather:       models.WeatherClear,
			Companionship: models.CompanionFamily,
			AreaType:      models.AreaResidential,
		})
		require.NoError(t, err)

		assert.True(t, report.Summary.IsHotspot)
		assert.InDelta(t, 1.19, report.Summary.DensityPerKm2, 0.01)
		assert.InDelta(t, 7.85, report.RawScore, 0.01)
		assert.Equal(t, 8.8, report.Score)
		assert.Equal(t, models.TierLow, report.Tier)
		assert.Equal(t, 0.85, report.Confidence)
		assert.Equal(t, "Recorded crime hotspot nearby - maintain normal precautions", report.Recommendations[0])
		assert.Equal(t, "15 assault cases - stay in groups", report.Recommendations[1])
	})

	t.Run("Hostile context lands on the moderate boundary", func(t *testing.T) {
		report, err := engine.AssessRisk(point(), models.Context{
			TimeOfDay:     models.TimeNight,
			Weather:       models.WeatherThunderstorm,
			Companionship: models.CompanionAlone,
			AreaType:      models.AreaIsolated,
		})
		require.NoError(t, err)

		assert.InDelta(t, -5.0, report.ContextScore, 1e-9)
		assert.Equal(t, 4.0, report.Score)
		assert.Equal(t, models.TierModerate, report.Tier)
		assert.Contains(t, report.Factors, "Multiple risk factors present")
		assert.LessOrEqual(t, len(report.Recommendations), MaxRecommendations)
	})
}

func TestEngine_AssessRisk_StoreUnavailable(t *testing.T) {
	engine := newTestEngine(nil, false)

	report, err := engine.AssessRisk(point(), models.Context{})
	require.NoError(t, err)

	assert.False(t, report.DataAvailable)
	assert.Equal(t, 8.0, report.RawScore)
	assert.Equal(t, 0.3, report.Confidence)
	assert.Equal(t, 7.1, report.Score)
	assert.Equal(t, []string{factorDataUnavailable}, report.Factors)
	assert.Equal(t, []string{"Stay aware of your surroundings"}, report.Recommendations)
}

func TestEngine_AssessRisk_NilStore(t *testing.T) {
	engine := NewEngine(nil)

	report, err := engine.AssessRisk(point(), models.Context{})
	require.NoError(t, err)
	assert.False(t, report.DataAvailable)
}

func TestEngine_AssessRisk_InvalidInput(t *testing.T) {
	engine := newTestEngine(nil, true)

	tests := []struct {
		name string
		loc  models.Location
		ctx  models.Context
	}{
		{"Latitude out of range", models.Location{Latitude: 91, Longitude: 0}, models.Context{}},
		{"Longitude out of range", models.Location{Latitude: 0, Longitude: -181}, models.Context{}},
		{"NaN latitude", models.Location{Latitude: math.NaN(), Longitude: 0}, models.Context{}},
		{"Unknown weather", point(), models.Context{Weather: "hail"}},
		{"Unknown companionship", point(), models.Context{Companionship: "pets"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := engine.AssessRisk(tt.loc, tt.ctx)
			assert.Nil(t, report)
			assert.True(t, errors.Is(err, models.ErrInvalidInput))
		})
	}
}

func TestEngine_AssessRisk_Deterministic(t *testing.T) {
	ts := fixedNow.Add(-48 * time.Hour)
	records := []models.IncidentRecord{
		{Category: models.CategoryTheft, OccurredAt: &ts},
		{Category: models.CategoryRobbery},
		{Category: models.CategoryTheft, Area: "Connaught Place"},
	}
	engine := newTestEngine(records, true)
	c := models.Context{TimeOfDay: models.TimeEvening, Weather: models.WeatherRain}

	first, err := engine.AssessRisk(point(), c)
	require.NoError(t, err)
	second, err := engine.AssessRisk(point(), c)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func randomContext(rng *rand.Rand) models.Context {
	times := []models.TimeOfDay{"", models.TimeMorning, models.TimeAfternoon, models.TimeEvening, models.TimeNight}
	weather := []models.WeatherCondition{"", models.WeatherClear, models.WeatherCloudy, models.WeatherOvercast, models.WeatherDrizzle,
		models.WeatherRain, models.WeatherHeavyRain, models.WeatherFog, models.WeatherStorm, models.WeatherThunderstorm, models.WeatherUnknown}
	companions := []models.Companionship{"", models.CompanionAlone, models.CompanionFriends, models.CompanionFamily,
		models.CompanionPublicTransport, models.CompanionVehicle, models.CompanionIndoorPublic}
	areas := []models.AreaType{"", models.AreaResidential, models.AreaCommercial, models.AreaIndustrial,
		models.AreaHighway, models.AreaIsolated, models.AreaUnknown}

	return models.Context{
		TimeOfDay:     times[rng.Intn(len(times))],
		Weather:       weather[rng.Intn(len(weather))],
		Companionship: companions[rng.Intn(len(companions))],
		AreaType:      areas[rng.Intn(len(areas))],
	}
}

func randomIncidents(rng *rand.Rand) []models.IncidentRecord {
	cats := []models.Category{models.CategoryTheft, models.CategoryRobbery, models.CategoryAssault, models.CategoryBurglary,
		models.CategoryVehicleCrime, models.CategoryFraud, models.CategoryMurder, models.Category("arson")}
	n := rng.Intn(200)
	out := make([]models.IncidentRecord, n)
	for i := range out {
		out[i] = models.IncidentRecord{
			Category: cats[rng.Intn(len(cats))],
			Severity: rng.Intn(11),
		}
		if rng.Intn(2) == 0 {
			ts := fixedNow.Add(-time.Duration(rng.Intn(90*24)) * time.Hour)
			out[i].OccurredAt = &ts
		}
	}
	return out
}

func TestEngine_AssessRisk_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))

	for i := 0; i < 500; i++ {
		engine := newTestEngine(randomIncidents(rng), rng.Intn(5) != 0)
		report, err := engine.AssessRisk(point(), randomContext(rng))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, report.Score, MinScore)
		assert.LessOrEqual(t, report.Score, MaxScore)
		assert.Equal(t, report.Score, math.Round(report.Score*10)/10)
		assert.GreaterOrEqual(t, report.Confidence, 0.0)
		assert.LessOrEqual(t, report.Confidence, 1.0)
		assert.Equal(t, ClassifyTier(report.Score), report.Tier)

		require.NotEmpty(t, report.Recommendations)
		assert.LessOrEqual(t, len(report.Recommendations), MaxRecommendations)
		seen := make(map[string]bool)
		for _, r := range report.Recommendations {
			assert.False(t, seen[r], "duplicate recommendation %q", r)
			seen[r] = true
		}
	}
}
