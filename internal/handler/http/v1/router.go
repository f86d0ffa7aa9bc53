package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Оценка риска и статистика оценок
	risk := api.Group("/risk")
	{
		risk.POST("/assess", h.assessRisk)
		risk.GET("/stats", APIKeyAuthMiddleware(h.cfg, h.logger), h.getAssessmentStats)
	}

	// Контекстный анализ района
	api.POST("/location/analyze", h.analyzeLocation)

	// Сводка по набору инцидентов
	api.GET("/incidents/stats", h.getDatasetStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
