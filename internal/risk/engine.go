package risk

import (
	"fmt"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/models"
)

// DefaultRadiusKm - радиус поиска инцидентов по умолчанию
const DefaultRadiusKm = 2.0

// IncidentStore - источник исторических инцидентов
type IncidentStore interface {
	Query(center models.Location, radiusKm float64) []models.IncidentRecord
	Available() bool
}

// Engine - движок оценки риска. Не хранит изменяемого состояния между запросами.
type Engine struct {
	store      IncidentStore
	radiusKm   float64
	now        func() time.Time
	aggregator Aggregator
}

type Option func(*Engine)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithRadius задает радиус поиска инцидентов
func WithRadius(km float64) Option {
	return func(e *Engine) {
		if km > 0 {
			e.radiusKm = km
		}
	}
}

func NewEngine(store IncidentStore, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		radiusKm: DefaultRadiusKm,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RadiusKm - используемый радиус поиска
func (e *Engine) RadiusKm() float64 {
	return e.radiusKm
}

// AssessRisk оценивает риск для точки с учетом контекста.
// Ошибка возвращается только для некорректного входа.
func (e *Engine) AssessRisk(loc models.Location, c models.Context) (*models.RiskReport, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	now := e.now().UTC()
	dataAvailable := e.store != nil && e.store.Available()

	var incidents []models.IncidentRecord
	if dataAvailable {
		incidents = e.store.Query(loc, e.radiusKm)
	}

	summary := e.aggregator.Summarize(incidents, e.radiusKm, now)
	raw := IncidentScore(summary)
	ctxScore := ContextScore(c)
	score := Fuse(raw, ctxScore)
	tier := ClassifyTier(score)

	return &models.RiskReport{
		Location:        loc,
		Context:         c,
		Score:           score,
		Tier:            tier,
		RawScore:        raw,
		ContextScore:    ctxScore,
		Factors:         Factors(score, summary, c, dataAvailable),
		Recommendations: Advise(tier, summary, c),
		Confidence:      Confidence(summary.TotalCount, dataAvailable),
		DataAvailable:   dataAvailable,
		Summary:         summary,
		AssessedAt:      now,
	}, nil
}

// DefaultLocationName - подпись точки, когда адрес неизвестен
func DefaultLocationName(loc models.Location) string {
	return fmt.Sprintf("Location (%.4f, %.4f)", loc.Latitude, loc.Longitude)
}
