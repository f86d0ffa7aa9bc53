package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_safety_risk/internal/config"
	"github.com/shenikar/geo_safety_risk/internal/lookup"
	"github.com/shenikar/geo_safety_risk/internal/metrics"
	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/shenikar/geo_safety_risk/internal/risk"
	"github.com/shenikar/geo_safety_risk/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=safety.go -destination=mocks/mock_safety.go -package=mocks

// AssessmentRepository определяет контракт для журнала оценок
type AssessmentRepository interface {
	SaveAssessment(ctx context.Context, a *models.Assessment) error
	GetAssessmentStats(ctx context.Context, minutes int) (int, error)
}

// AddressLookup - обратное геокодирование
type AddressLookup interface {
	Resolve(ctx context.Context, lat, lon float64) (*models.AddressComponents, error)
}

// WeatherLookup - текущая погода
type WeatherLookup interface {
	Current(ctx context.Context, lat, lon float64) (*models.WeatherReading, error)
}

// AreaClassifier - тип района
type AreaClassifier interface {
	Classify(ctx context.Context, loc models.Location, addr *models.AddressComponents) (models.AreaType, error)
}

// RiskAssessor - движок оценки риска
type RiskAssessor interface {
	AssessRisk(loc models.Location, c models.Context) (*models.RiskReport, error)
	AnalyzeArea(loc models.Location, f models.AreaFeatures) (*models.AreaSafetyReport, error)
}

// DatasetStatsProvider - сводка по загруженным инцидентам
type DatasetStatsProvider interface {
	Stats() models.DatasetStats
}

// SafetyService определяет контракт бизнес-логики оценки безопасности
type SafetyService interface {
	AssessRisk(ctx context.Context, req *models.AssessmentRequest) (*models.RiskReport, error)
	AnalyzeLocation(ctx context.Context, req *models.LocationAnalysisRequest) (*models.AreaSafetyReport, error)
	GetAssessmentStats(ctx context.Context) (int, error)
	DatasetStats(ctx context.Context) models.DatasetStats
}

type Option func(*safetyService)

func WithAddressLookup(l AddressLookup) Option {
	return func(s *safetyService) { s.address = l }
}

func WithWeatherLookup(l WeatherLookup) Option {
	return func(s *safetyService) { s.weather = l }
}

func WithAreaClassifier(c AreaClassifier) Option {
	return func(s *safetyService) { s.area = c }
}

func WithClock(now func() time.Time) Option {
	return func(s *safetyService) { s.now = now }
}

type safetyService struct {
	engine           RiskAssessor
	repo             AssessmentRepository
	dataset          DatasetStatsProvider
	logger           *logrus.Logger
	cfg              *config.Config
	webhookPublisher webhook.WebhookPublisher

	address AddressLookup
	weather WeatherLookup
	area    AreaClassifier
	now     func() time.Time
}

func NewSafetyService(
	engine RiskAssessor,
	repo AssessmentRepository,
	dataset DatasetStatsProvider,
	logger *logrus.Logger,
	cfg *config.Config,
	webhookPublisher webhook.WebhookPublisher,
	opts ...Option,
) SafetyService {
	s := &safetyService{
		engine:           engine,
		repo:             repo,
		dataset:          dataset,
		logger:           logger,
		cfg:              cfg,
		webhookPublisher: webhookPublisher,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// enrichment - результат внешних запросов, каждый может отсутствовать
type enrichment struct {
	address  *models.AddressComponents
	areaType models.AreaType
	weather  *models.WeatherReading
}

// enrich параллельно запрашивает адрес (и по нему тип района) и погоду.
// Ошибки поиска логируются и не прерывают запрос.
func (s *safetyService) enrich(ctx context.Context, loc models.Location, needAddress, needArea, needWeather bool, log *logrus.Entry) enrichment {
	var (
		mu  sync.Mutex
		out = enrichment{areaType: models.AreaUnknown}
	)

	if s.cfg != nil && s.cfg.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.LookupTimeout)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(ctx)

	if (needAddress || needArea) && (s.address != nil || s.area != nil) {
		g.Go(func() error {
			var addr *models.AddressComponents
			if s.address != nil {
				resolved, err := s.address.Resolve(gctx, loc.Latitude, loc.Longitude)
				if err != nil {
					log.WithError(err).Warn("Address lookup failed, continuing without address")
				} else {
					addr = resolved
				}
			}

			areaType := models.AreaUnknown
			if needArea && s.area != nil {
				classified, err := s.area.Classify(gctx, loc, addr)
				if err != nil {
					log.WithError(err).Warn("Area classification failed, using unknown area type")
				} else if classified != "" {
					areaType = classified
				}
			}

			mu.Lock()
			out.address = addr
			out.areaType = areaType
			mu.Unlock()
			return nil
		})
	}

	if needWeather && s.weather != nil {
		g.Go(func() error {
			reading, err := s.weather.Current(gctx, loc.Latitude, loc.Longitude)
			if err != nil {
				log.WithError(err).Warn("Weather lookup failed, using unknown weather")
				return nil
			}
			mu.Lock()
			out.weather = reading
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	return out
}

// AssessRisk оценивает риск для точки, дополняя контекст внешними данными
func (s *safetyService) AssessRisk(ctx context.Context, req *models.AssessmentRequest) (*models.RiskReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "AssessRisk",
		"user_id": req.UserID,
	})
	log.Info("Assessing location risk")
	t0 := time.Now()

	if err := req.Location.Validate(); err != nil {
		log.WithError(err).Warn("Rejected invalid location")
		return nil, fmt.Errorf("service: could not assess risk: %w", err)
	}
	if err := req.Context.Validate(); err != nil {
		log.WithError(err).Warn("Rejected invalid context")
		return nil, fmt.Errorf("service: could not assess risk: %w", err)
	}

	effective := req.Context
	if effective.TimeOfDay == "" {
		effective.TimeOfDay = models.TimeOfDayFromHour(s.now().Hour())
	}

	needArea := effective.AreaType == ""
	needWeather := effective.Weather == ""
	extra := s.enrich(ctx, req.Location, req.LocationName == "", needArea, needWeather, log)

	if needArea {
		effective.AreaType = extra.areaType
	}
	if needWeather {
		effective.Weather = models.WeatherUnknown
		if extra.weather != nil {
			effective.Weather = extra.weather.Condition
		}
	}

	report, err := s.engine.AssessRisk(req.Location, effective)
	if err != nil {
		log.WithError(err).Error("Risk engine rejected request")
		return nil, fmt.Errorf("service: could not assess risk: %w", err)
	}

	report.ID = uuid.New()
	report.LocationName = locationName(req, report, extra.address)

	metrics.AssessmentsTotal.WithLabelValues(string(report.Tier)).Inc()
	metrics.AssessmentScore.Observe(report.Score)
	metrics.AssessmentDurationMs.Observe(float64(time.Since(t0).Milliseconds()))

	if req.UserID != "" {
		s.recordAssessment(ctx, req.UserID, report, log)
	}

	log.WithFields(logrus.Fields{
		"report_id":  report.ID,
		"score":      report.Score,
		"tier":       report.Tier,
		"incidents":  report.Summary.TotalCount,
		"confidence": report.Confidence,
	}).Info("Risk assessment completed")

	return report, nil
}

// recordAssessment сохраняет оценку и при высоком риске публикует вебхук.
// Ошибки не влияют на ответ пользователю.
func (s *safetyService) recordAssessment(ctx context.Context, userID string, report *models.RiskReport, log *logrus.Entry) {
	if s.repo != nil {
		assessment := &models.Assessment{
			ReportID:  report.ID,
			UserID:    userID,
			Latitude:  report.Location.Latitude,
			Longitude: report.Location.Longitude,
			Score:     report.Score,
			Tier:      report.Tier,
		}
		if err := s.repo.SaveAssessment(ctx, assessment); err != nil {
			log.WithError(err).Error("Failed to save risk assessment")
		}
	}

	if report.Tier != models.TierHigh || s.webhookPublisher == nil {
		return
	}

	event := webhook.NewRiskAlertEvent(userID, report)
	if err := s.webhookPublisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish high risk alert")
		return
	}
	metrics.HighRiskAlertsTotal.Inc()
	log.WithField("event_id", event.EventID).Info("High risk alert queued")
}

func locationName(req *models.AssessmentRequest, report *models.RiskReport, addr *models.AddressComponents) string {
	switch {
	case req.LocationName != "":
		return req.LocationName
	case addr != nil && addr.FormattedAddress != "":
		return addr.FormattedAddress
	case report.Summary.AreaLabel != "":
		return report.Summary.AreaLabel
	default:
		return risk.DefaultLocationName(report.Location)
	}
}

// AnalyzeLocation - контекстный анализ района без исторических данных
func (s *safetyService) AnalyzeLocation(ctx context.Context, req *models.LocationAnalysisRequest) (*models.AreaSafetyReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "AnalyzeLocation",
		"user_id": req.UserID,
	})
	log.Info("Analyzing location context")

	if err := req.Location.Validate(); err != nil {
		log.WithError(err).Warn("Rejected invalid location")
		return nil, fmt.Errorf("service: could not analyze location: %w", err)
	}

	now := s.now()
	features := models.AreaFeatures{
		Hour:      now.Hour(),
		DayOfWeek: now.Weekday(),
	}
	if req.Hour != nil {
		features.Hour = *req.Hour
	}
	if req.DayOfWeek != nil {
		features.DayOfWeek = time.Weekday(*req.DayOfWeek)
	}

	extra := s.enrich(ctx, req.Location, true, true, true, log)
	features.AreaType = extra.areaType
	features.Weather = models.WeatherUnknown
	if extra.weather != nil {
		features.Weather = extra.weather.Condition
	}
	features.CitySize = lookup.CitySizeOf(extra.address)

	report, err := s.engine.AnalyzeArea(req.Location, features)
	if err != nil {
		log.WithError(err).Warn("Area analysis rejected request")
		return nil, fmt.Errorf("service: could not analyze location: %w", err)
	}

	report.Weather = extra.weather
	report.Confidence = areaConfidence(extra)
	if extra.address != nil {
		report.Address = *extra.address
		report.CityName = extra.address.City
		report.AreaName = extra.address.AreaName()
	}
	if report.CityName == "" {
		report.CityName = "Unknown City"
	}
	if report.AreaName == "" {
		report.AreaName = "Unknown Area"
	}

	metrics.AreaAnalysesTotal.WithLabelValues(string(report.Level)).Inc()
	log.WithFields(logrus.Fields{
		"safety_score": report.SafetyScore,
		"level":        report.Level,
		"area_type":    report.AreaType,
	}).Info("Location analysis completed")

	return report, nil
}

// areaConfidence снижается с каждым недоступным внешним источником
func areaConfidence(e enrichment) float64 {
	switch {
	case e.address != nil && e.weather != nil:
		return 0.85
	case e.address != nil || e.weather != nil:
		return 0.6
	default:
		return 0.4
	}
}

// GetAssessmentStats возвращает число пользователей, запросивших оценку за окно
func (s *safetyService) GetAssessmentStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "GetAssessmentStats",
		"window":  s.cfg.StatsTimeWindowMinutes,
	})
	log.Info("Fetching assessment stats")

	if s.repo == nil {
		return 0, errors.New("service: assessment repository is not configured")
	}

	count, err := s.repo.GetAssessmentStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get assessment stats from repository")
		return 0, fmt.Errorf("service: could not get assessment stats: %w", err)
	}

	log.WithField("user_count", count).Info("Assessment stats fetched successfully")
	return count, nil
}

// DatasetStats возвращает сводку по набору инцидентов
func (s *safetyService) DatasetStats(_ context.Context) models.DatasetStats {
	if s.dataset == nil {
		return models.DatasetStats{CategoryCount: map[models.Category]int{}, Areas: []string{}}
	}
	return s.dataset.Stats()
}
