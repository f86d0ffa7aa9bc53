package repository

import (
	"sync/atomic"

	"github.com/shenikar/geo_safety_risk/internal/models"
)

// LiveIncidentStore отдает текущий снимок IncidentStore и позволяет атомарно заменить его.
// Сами снимки не изменяются, запрос всегда работает с одним целым набором.
type LiveIncidentStore struct {
	current atomic.Pointer[IncidentStore]
}

func NewLiveIncidentStore(initial *IncidentStore) *LiveIncidentStore {
	if initial == nil {
		initial = NewUnavailableIncidentStore()
	}
	s := &LiveIncidentStore{}
	s.current.Store(initial)
	return s
}

// Replace подменяет снимок целиком
func (s *LiveIncidentStore) Replace(next *IncidentStore) {
	if next == nil {
		return
	}
	s.current.Store(next)
}

func (s *LiveIncidentStore) Snapshot() *IncidentStore {
	return s.current.Load()
}

func (s *LiveIncidentStore) Available() bool {
	return s.Snapshot().Available()
}

func (s *LiveIncidentStore) Len() int {
	return s.Snapshot().Len()
}

func (s *LiveIncidentStore) Query(center models.Location, radiusKm float64) []models.IncidentRecord {
	return s.Snapshot().Query(center, radiusKm)
}

func (s *LiveIncidentStore) Stats() models.DatasetStats {
	return s.Snapshot().Stats()
}
