package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/geo_safety_risk/internal/config"
	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/shenikar/geo_safety_risk/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockSafetyService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSafetyService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ptr[T any](v T) *T { return &v }

func TestAssessRisk_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := AssessRiskRequest{
		UserID:        "user-1",
		Latitude:      ptr(28.6139),
		Longitude:     ptr(77.2090),
		TimeOfDay:     "night",
		Companionship: "alone",
	}
	report := &models.RiskReport{
		ID:           reportID,
		Location:     models.Location{Latitude: 28.6139, Longitude: 77.2090},
		LocationName: "Connaught Place",
		Context: models.Context{
			TimeOfDay:     models.TimeNight,
			Weather:       models.WeatherClear,
			Companionship: models.CompanionAlone,
			AreaType:      models.AreaUnknown,
		},
		Score:         5.9,
		Tier:          models.TierModerate,
		RawScore:      8,
		ContextScore:  1,
		Factors:       []string{"Late night hours"},
		Confidence:    0.3,
		DataAvailable: true,
		Summary: models.IncidentSummary{
			CategoryFrequency: map[models.Category]int{},
			DominantCategory:  models.CategoryNone,
			CrimeRate:         "very_low",
		},
		AssessedAt: time.Now(),
	}

	mockService.EXPECT().
		AssessRisk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.AssessmentRequest) (*models.RiskReport, error) {
			assert.Equal(t, "user-1", req.UserID)
			assert.Equal(t, 28.6139, req.Location.Latitude)
			assert.Equal(t, models.TimeNight, req.Context.TimeOfDay)
			assert.Equal(t, models.CompanionAlone, req.Context.Companionship)
			assert.Empty(t, req.Context.Weather) // Будет определено сервисом
			return report, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/risk/assess", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp RiskReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reportID, resp.ID)
	assert.Equal(t, 5.9, resp.Score)
	assert.Equal(t, "moderate", resp.Tier)
	assert.Equal(t, "night", resp.Context.TimeOfDay)
	assert.Equal(t, "none", resp.Summary.DominantCategory)
	assert.NotNil(t, resp.Recommendations)
}

func TestAssessRisk_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AssessRisk(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/risk/assess", bytes.NewBufferString(`{"latitude": 1`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestAssessRisk_ValidationError(t *testing.T) {
	cases := map[string]string{
		"missing latitude":      `{"longitude": 77.2}`,
		"latitude out of range": `{"latitude": 91, "longitude": 77.2}`,
		"unknown weather":       `{"latitude": 28.6, "longitude": 77.2, "weather": "sandstorm"}`,
		"unknown area type":     `{"latitude": 28.6, "longitude": 77.2, "area_type": "beach"}`,
		"unknown companionship": `{"latitude": 28.6, "longitude": 77.2, "companionship": "dog"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().AssessRisk(gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, "POST", "/api/v1/risk/assess", bytes.NewBufferString(body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAssessRisk_ZeroCoordinatesAccepted(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AssessRisk(gomock.Any(), gomock.Any()).
		Return(&models.RiskReport{Tier: models.TierLow, Score: 8.6}, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/risk/assess", bytes.NewBufferString(`{"latitude": 0, "longitude": 0}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssessRisk_ServiceInvalidInput(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: could not assess risk: %w", models.ErrInvalidInput)

	mockService.EXPECT().AssessRisk(gomock.Any(), gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "POST", "/api/v1/risk/assess", bytes.NewBufferString(`{"latitude": 10, "longitude": 20}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssessRisk_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AssessRisk(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/risk/assess", bytes.NewBufferString(`{"latitude": 10, "longitude": 20}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestAnalyzeLocation_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	temp := 31.0
	report := &models.AreaSafetyReport{
		Location:        models.Location{Latitude: 19.076, Longitude: 72.8777},
		SafetyScore:     6.5,
		Level:           models.AreaSafetyModerate,
		AreaType:        models.AreaCommercial,
		Weather:         &models.WeatherReading{Condition: models.WeatherClear, Temperature: &temp},
		Address:         models.AddressComponents{FormattedAddress: "Bandra West, Mumbai"},
		CityName:        "Mumbai",
		AreaName:        "Bandra West",
		Factors:         []string{"Evening hours"},
		Recommendations: []string{"Keep emergency contacts accessible"},
		Confidence:      0.85,
	}

	mockService.EXPECT().
		AnalyzeLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.LocationAnalysisRequest) (*models.AreaSafetyReport, error) {
			require.NotNil(t, req.Hour)
			assert.Equal(t, 19, *req.Hour)
			assert.Nil(t, req.DayOfWeek)
			return report, nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/location/analyze",
		bytes.NewBufferString(`{"latitude": 19.076, "longitude": 72.8777, "hour": 19}`))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AreaSafetyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "moderate", resp.RiskLevel)
	assert.Equal(t, "Mumbai", resp.CityName)
	assert.Equal(t, "Bandra West, Mumbai", resp.Address)
	require.NotNil(t, resp.Weather)
	assert.Equal(t, "clear", resp.Weather.Condition)
}

func TestAnalyzeLocation_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AnalyzeLocation(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/location/analyze",
		bytes.NewBufferString(`{"latitude": 19.076, "longitude": 72.8777, "hour": 24}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "POST", "/api/v1/location/analyze",
		bytes.NewBufferString(`{"latitude": 19.076, "longitude": 72.8777, "day_of_week": 7}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeLocation_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AnalyzeLocation(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/location/analyze", bytes.NewBufferString(`{"latitude": 1, "longitude": 2}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetDatasetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stats := models.DatasetStats{
		Available:     true,
		TotalRecords:  5,
		CategoryCount: map[models.Category]int{models.CategoryTheft: 3, models.CategoryRobbery: 2},
		Areas:         []string{"Connaught Place"},
		FirstIncident: &first,
	}

	mockService.EXPECT().DatasetStats(gomock.Any()).Return(stats).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DatasetStatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 3, resp.CategoryCount["theft"])
	assert.Nil(t, resp.LastIncident)
}

func TestGetAssessmentStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedCount := 123

	mockService.EXPECT().GetAssessmentStats(gomock.Any()).Return(expectedCount, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/risk/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedCount, resp.UserCount)
	assert.Equal(t, 60, resp.WindowMinutes)
}

func TestGetAssessmentStats_RequiresAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetAssessmentStats(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/risk/stats", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAssessmentStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to get stats")

	mockService.EXPECT().GetAssessmentStats(gomock.Any()).Return(0, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/risk/stats", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DatasetStats(gomock.Any()).Return(models.DatasetStats{Available: true, TotalRecords: 5})

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"data_available":true`)
}

func newAuthRouter(keys []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	router.Use(APIKeyAuthMiddleware(&config.Config{APIKeys: keys}, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	router := newAuthRouter([]string{"valid-key"})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	router := newAuthRouter([]string{"valid-key"})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	router := newAuthRouter([]string{"valid-key"})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAPIKeyAuthMiddleware_NoKeysConfigured(t *testing.T) {
	router := newAuthRouter(nil)

	w := makeRequest(router, "GET", "/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
