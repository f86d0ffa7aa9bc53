package v1

import (
	"time"

	"github.com/google/uuid"
)

// AssessRiskRequest DTO для оценки риска в точке
// @Description DTO для оценки риска в точке
type AssessRiskRequest struct {
	UserID        string   `json:"user_id,omitempty" validate:"omitempty,max=255"`
	Latitude      *float64 `json:"latitude" validate:"required,latitude"`
	Longitude     *float64 `json:"longitude" validate:"required,longitude"`
	TimeOfDay     string   `json:"time_of_day,omitempty" validate:"omitempty,oneof=morning afternoon evening night"`
	Weather       string   `json:"weather,omitempty" validate:"omitempty,oneof=clear partly_cloudy cloudy overcast drizzle rain heavy_rain fog storm thunderstorm unknown"`
	Companionship string   `json:"companionship,omitempty" validate:"omitempty,oneof=alone with_friends family public_transport vehicle indoor_public"`
	AreaType      string   `json:"area_type,omitempty" validate:"omitempty,oneof=residential commercial industrial highway isolated unknown"`
	LocationName  string   `json:"location_name,omitempty" validate:"omitempty,max=255"`
}

// AnalyzeLocationRequest DTO для контекстного анализа района
// @Description DTO для контекстного анализа района
type AnalyzeLocationRequest struct {
	UserID    string   `json:"user_id,omitempty" validate:"omitempty,max=255"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Hour      *int     `json:"hour,omitempty" validate:"omitempty,min=0,max=23"`
	DayOfWeek *int     `json:"day_of_week,omitempty" validate:"omitempty,min=0,max=6"`
}

// ContextResponse - контекст, с которым выполнена оценка
type ContextResponse struct {
	TimeOfDay     string `json:"time_of_day"`
	Weather       string `json:"weather"`
	Companionship string `json:"companionship,omitempty"`
	AreaType      string `json:"area_type"`
}

// IncidentSummaryResponse - агрегаты по инцидентам в радиусе
type IncidentSummaryResponse struct {
	TotalCount        int            `json:"total_count"`
	CategoryFrequency map[string]int `json:"category_frequency"`
	DominantCategory  string         `json:"dominant_category"`
	RecentCount       int            `json:"recent_count"`
	HighSeverityCount int            `json:"high_severity_count"`
	AvgSeverity       float64        `json:"avg_severity"`
	DensityPerKm2     float64        `json:"density_per_km2"`
	RadiusKm          float64        `json:"radius_km"`
	CrimeRate         string         `json:"crime_rate"`
	AreaLabel         string         `json:"area_label,omitempty"`
	IsHotspot         bool           `json:"is_hotspot"`
}

// RiskReportResponse DTO для ответа с оценкой риска
// @Description DTO для ответа с оценкой риска
type RiskReportResponse struct {
	ID              uuid.UUID               `json:"id"`
	Latitude        float64                 `json:"latitude"`
	Longitude       float64                 `json:"longitude"`
	LocationName    string                  `json:"location_name"`
	Score           float64                 `json:"score"`
	Tier            string                  `json:"tier"`
	RawScore        float64                 `json:"raw_score"`
	ContextScore    float64                 `json:"context_score"`
	Confidence      float64                 `json:"confidence"`
	DataAvailable   bool                    `json:"data_available"`
	Context         ContextResponse         `json:"context"`
	Factors         []string                `json:"factors"`
	Recommendations []string                `json:"recommendations"`
	Summary         IncidentSummaryResponse `json:"incident_summary"`
	AssessedAt      time.Time               `json:"assessed_at"`
}

// WeatherResponse - текущая погода в точке
type WeatherResponse struct {
	Condition   string   `json:"condition"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// AreaSafetyResponse DTO для ответа с анализом района
// @Description DTO для ответа с анализом района
type AreaSafetyResponse struct {
	Latitude        float64          `json:"latitude"`
	Longitude       float64          `json:"longitude"`
	SafetyScore     float64          `json:"safety_score"`
	RiskLevel       string           `json:"risk_level"`
	AreaType        string           `json:"area_type"`
	CityName        string           `json:"city_name"`
	AreaName        string           `json:"area_name"`
	Address         string           `json:"address,omitempty"`
	Weather         *WeatherResponse `json:"weather,omitempty"`
	Factors         []string         `json:"factors"`
	Recommendations []string         `json:"recommendations"`
	Confidence      float64          `json:"confidence"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
}

// DatasetStatsResponse DTO со сводкой по набору инцидентов
// @Description DTO со сводкой по набору инцидентов
type DatasetStatsResponse struct {
	Available     bool           `json:"available"`
	TotalRecords  int            `json:"total_records"`
	CategoryCount map[string]int `json:"category_count"`
	Areas         []string       `json:"areas"`
	FirstIncident *time.Time     `json:"first_incident,omitempty"`
	LastIncident  *time.Time     `json:"last_incident,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount     int `json:"user_count"`
	WindowMinutes int `json:"window_minutes"`
}
