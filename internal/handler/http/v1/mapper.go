package v1

import "github.com/shenikar/geo_safety_risk/internal/models"

// DTOToAssessmentRequest преобразует DTO оценки риска в запрос сервиса
func DTOToAssessmentRequest(dto AssessRiskRequest) *models.AssessmentRequest {
	return &models.AssessmentRequest{
		UserID:       dto.UserID,
		Location:     models.Location{Latitude: *dto.Latitude, Longitude: *dto.Longitude},
		LocationName: dto.LocationName,
		Context: models.Context{
			TimeOfDay:     models.TimeOfDay(dto.TimeOfDay),
			Weather:       models.WeatherCondition(dto.Weather),
			Companionship: models.Companionship(dto.Companionship),
			AreaType:      models.AreaType(dto.AreaType),
		},
	}
}

// DTOToLocationAnalysisRequest преобразует DTO анализа района в запрос сервиса
func DTOToLocationAnalysisRequest(dto AnalyzeLocationRequest) *models.LocationAnalysisRequest {
	return &models.LocationAnalysisRequest{
		UserID:    dto.UserID,
		Location:  models.Location{Latitude: *dto.Latitude, Longitude: *dto.Longitude},
		Hour:      dto.Hour,
		DayOfWeek: dto.DayOfWeek,
	}
}

// ModelToRiskReportResponse преобразует отчет в DTO для ответа
func ModelToRiskReportResponse(r *models.RiskReport) *RiskReportResponse {
	categories := make(map[string]int, len(r.Summary.CategoryFrequency))
	for cat, n := range r.Summary.CategoryFrequency {
		categories[string(cat)] = n
	}

	return &RiskReportResponse{
		ID:            r.ID,
		Latitude:      r.Location.Latitude,
		Longitude:     r.Location.Longitude,
		LocationName:  r.LocationName,
		Score:         r.Score,
		Tier:          string(r.Tier),
		RawScore:      r.RawScore,
		ContextScore:  r.ContextScore,
		Confidence:    r.Confidence,
		DataAvailable: r.DataAvailable,
		Context: ContextResponse{
			TimeOfDay:     string(r.Context.TimeOfDay),
			Weather:       string(r.Context.Weather),
			Companionship: string(r.Context.Companionship),
			AreaType:      string(r.Context.AreaType),
		},
		Factors:         nonNil(r.Factors),
		Recommendations: nonNil(r.Recommendations),
		Summary: IncidentSummaryResponse{
			TotalCount:        r.Summary.TotalCount,
			CategoryFrequency: categories,
			DominantCategory:  string(r.Summary.DominantCategory),
			RecentCount:       r.Summary.RecentCount,
			HighSeverityCount: r.Summary.HighSeverityCount,
			AvgSeverity:       r.Summary.AvgSeverity,
			DensityPerKm2:     r.Summary.DensityPerKm2,
			RadiusKm:          r.Summary.RadiusKm,
			CrimeRate:         r.Summary.CrimeRate,
			AreaLabel:         r.Summary.AreaLabel,
			IsHotspot:         r.Summary.IsHotspot,
		},
		AssessedAt: r.AssessedAt,
	}
}

// ModelToAreaSafetyResponse преобразует анализ района в DTO для ответа
func ModelToAreaSafetyResponse(r *models.AreaSafetyReport) *AreaSafetyResponse {
	resp := &AreaSafetyResponse{
		Latitude:        r.Location.Latitude,
		Longitude:       r.Location.Longitude,
		SafetyScore:     r.SafetyScore,
		RiskLevel:       string(r.Level),
		AreaType:        string(r.AreaType),
		CityName:        r.CityName,
		AreaName:        r.AreaName,
		Address:         r.Address.FormattedAddress,
		Factors:         nonNil(r.Factors),
		Recommendations: nonNil(r.Recommendations),
		Confidence:      r.Confidence,
		AnalyzedAt:      r.AnalyzedAt,
	}
	if r.Weather != nil {
		resp.Weather = &WeatherResponse{
			Condition:   string(r.Weather.Condition),
			Temperature: r.Weather.Temperature,
		}
	}
	return resp
}

// ModelToDatasetStatsResponse преобразует сводку по данным в DTO
func ModelToDatasetStatsResponse(s models.DatasetStats) *DatasetStatsResponse {
	categories := make(map[string]int, len(s.CategoryCount))
	for cat, n := range s.CategoryCount {
		categories[string(cat)] = n
	}
	return &DatasetStatsResponse{
		Available:     s.Available,
		TotalRecords:  s.TotalRecords,
		CategoryCount: categories,
		Areas:         nonNil(s.Areas),
		FirstIncident: s.FirstIncident,
		LastIncident:  s.LastIncident,
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
