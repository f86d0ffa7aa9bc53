package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/geo_safety_risk/internal/config"
	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/shenikar/geo_safety_risk/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	safetyService service.SafetyService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(safetyService service.SafetyService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		safetyService: safetyService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Assess crime risk at a location
// @Description Score the risk of being at a point right now from historical incidents within the search radius and the travel context. Missing context fields are filled from the clock and external lookups.
// @Tags Risk
// @Accept json
// @Produce json
// @Param request body AssessRiskRequest true "Risk assessment request"
// @Success 200 {object} RiskReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk/assess [post]
func (h *Handler) assessRisk(c *gin.Context) {
	var input AssessRiskRequest
	log := h.logger.WithField("method", "assessRisk")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.safetyService.AssessRisk(c.Request.Context(), DTOToAssessmentRequest(input))
	if err != nil {
		h.writeServiceError(c, log, err, "Failed to assess risk in service")
		return
	}

	c.JSON(http.StatusOK, ModelToRiskReportResponse(report))
}

// @Summary Analyze area safety
// @Description Context-only safety analysis of a location from time, day of week, area type, weather and city size.
// @Tags Location
// @Accept json
// @Produce json
// @Param request body AnalyzeLocationRequest true "Location analysis request"
// @Success 200 {object} AreaSafetyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/analyze [post]
func (h *Handler) analyzeLocation(c *gin.Context) {
	var input AnalyzeLocationRequest
	log := h.logger.WithField("method", "analyzeLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.safetyService.AnalyzeLocation(c.Request.Context(), DTOToLocationAnalysisRequest(input))
	if err != nil {
		h.writeServiceError(c, log, err, "Failed to analyze location in service")
		return
	}

	c.JSON(http.StatusOK, ModelToAreaSafetyResponse(report))
}

// @Summary Get incident dataset statistics
// @Description Summary of the loaded incident dataset: record count, categories, areas and date range.
// @Tags Incidents
// @Produce json
// @Success 200 {object} DatasetStatsResponse
// @Router /incidents/stats [get]
func (h *Handler) getDatasetStats(c *gin.Context) {
	stats := h.safetyService.DatasetStats(c.Request.Context())
	c.JSON(http.StatusOK, ModelToDatasetStatsResponse(stats))
}

// @Summary Get assessment statistics
// @Description Number of distinct users assessed within the configured time window. Requires API key when keys are configured.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk/stats [get]
func (h *Handler) getAssessmentStats(c *gin.Context) {
	log := h.logger.WithField("method", "getAssessmentStats")

	userCount, err := h.safetyService.GetAssessmentStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount, WindowMinutes: h.cfg.StatsTimeWindowMinutes})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	stats := h.safetyService.DatasetStats(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"data_available": stats.Available,
		"total_records":  stats.TotalRecords,
	})
}

// writeServiceError: некорректный ввод - 400, остальное - 500
func (h *Handler) writeServiceError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	if errors.Is(err, models.ErrInvalidInput) {
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
