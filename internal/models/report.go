package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskTier - уровень риска по шкале 7/4
type RiskTier string

const (
	TierLow      RiskTier = "low"
	TierModerate RiskTier = "moderate"
	TierHigh     RiskTier = "high"
)

// AreaSafetyLevel - уровень безопасности района по шкале 8/6/4
type AreaSafetyLevel string

const (
	AreaSafetyLow      AreaSafetyLevel = "low"
	AreaSafetyModerate AreaSafetyLevel = "moderate"
	AreaSafetyHigh     AreaSafetyLevel = "high"
	AreaSafetyVeryHigh AreaSafetyLevel = "very_high"
)

// IncidentSummary - агрегаты по инцидентам вокруг точки, считаются на каждый запрос
type IncidentSummary struct {
	TotalCount        int              `json:"total_count"`
	CategoryFrequency map[Category]int `json:"category_frequency"`
	DominantCategory  Category         `json:"dominant_category"`
	DominantCount     int              `json:"dominant_count"`
	RecentCount       int              `json:"recent_count"`
	RecencyKnown      bool             `json:"recency_known"`
	HighSeverityCount int              `json:"high_severity_count"`
	AvgSeverity       float64          `json:"avg_severity"`
	DensityPerKm2     float64          `json:"density_per_km2"`
	RadiusKm          float64          `json:"radius_km"`
	CrimeRate         string           `json:"crime_rate"`
	AreaLabel         string           `json:"area_label,omitempty"`
	IsHotspot         bool             `json:"is_hotspot"`
}

// RiskReport - итоговая оценка риска для точки
type RiskReport struct {
	ID              uuid.UUID       `json:"id"`
	Location        Location        `json:"location"`
	LocationName    string          `json:"location_name,omitempty"`
	Context         Context         `json:"context"`
	Score           float64         `json:"score"`
	Tier            RiskTier        `json:"tier"`
	RawScore        float64         `json:"raw_score"`
	ContextScore    float64         `json:"context_score"`
	Factors         []string        `json:"factors"`
	Recommendations []string        `json:"recommendations"`
	Confidence      float64         `json:"confidence"`
	DataAvailable   bool            `json:"data_available"`
	Summary         IncidentSummary `json:"summary"`
	AssessedAt      time.Time       `json:"assessed_at"`
}

// AreaFeatures - признаки для контекстной оценки района
type AreaFeatures struct {
	Hour      int
	DayOfWeek time.Weekday
	AreaType  AreaType
	Weather   WeatherCondition
	CitySize  CitySize
}

type CitySize string

const (
	CityMetro  CitySize = "metro"
	CityMedium CitySize = "medium"
	CitySmall  CitySize = "small"
)

// AreaSafetyReport - результат контекстной оценки района без исторических данных
type AreaSafetyReport struct {
	Location        Location          `json:"location"`
	SafetyScore     float64           `json:"safety_score"`
	Level           AreaSafetyLevel   `json:"level"`
	AreaType        AreaType          `json:"area_type"`
	Weather         *WeatherReading   `json:"weather,omitempty"`
	Address         AddressComponents `json:"address"`
	CityName        string            `json:"city_name"`
	AreaName        string            `json:"area_name"`
	Factors         []string          `json:"factors"`
	Recommendations []string          `json:"recommendations"`
	Confidence      float64           `json:"confidence"`
	AnalyzedAt      time.Time         `json:"analyzed_at"`
}
