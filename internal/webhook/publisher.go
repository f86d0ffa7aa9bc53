package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_safety_risk/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "webhook_events"
)

// RiskAlertEvent - событие об оценке с высоким уровнем риска
type RiskAlertEvent struct {
	EventID          uuid.UUID       `json:"event_id"`
	ReportID         uuid.UUID       `json:"report_id"`
	UserID           string          `json:"user_id"`
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	LocationName     string          `json:"location_name,omitempty"`
	Score            float64         `json:"score"`
	Tier             models.RiskTier `json:"tier"`
	IsHotspot        bool            `json:"is_hotspot"`
	DominantCategory models.Category `json:"dominant_category"`
	Recommendations  []string        `json:"recommendations,omitempty"`
	Timestamp        time.Time       `json:"timestamp"`
}

// NewRiskAlertEvent собирает событие из отчета
func NewRiskAlertEvent(userID string, report *models.RiskReport) RiskAlertEvent {
	return RiskAlertEvent{
		EventID:          uuid.New(),
		ReportID:         report.ID,
		UserID:           userID,
		Latitude:         report.Location.Latitude,
		Longitude:        report.Location.Longitude,
		LocationName:     report.LocationName,
		Score:            report.Score,
		Tier:             report.Tier,
		IsHotspot:        report.Summary.IsHotspot,
		DominantCategory: report.Summary.DominantCategory,
		Recommendations:  report.Recommendations,
		Timestamp:        report.AssessedAt,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event RiskAlertEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event RiskAlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
