package repository

import (
	"sort"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/geo"
	"github.com/shenikar/geo_safety_risk/internal/models"
)

// IncidentStore - неизменяемый набор исторических инцидентов.
// После создания доступен для конкурентного чтения без синхронизации.
type IncidentStore struct {
	// records отсортированы по широте, что позволяет отсечь кандидатов бинарным поиском
	records   []models.IncidentRecord
	available bool
	stats     models.DatasetStats
}

// NewIncidentStore создает хранилище из загруженных записей
func NewIncidentStore(records []models.IncidentRecord) *IncidentStore {
	sorted := make([]models.IncidentRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Latitude < sorted[j].Latitude
	})

	return &IncidentStore{
		records:   sorted,
		available: true,
		stats:     buildDatasetStats(sorted, true),
	}
}

// NewUnavailableIncidentStore - пустое хранилище для режима "нет данных"
func NewUnavailableIncidentStore() *IncidentStore {
	return &IncidentStore{
		stats: buildDatasetStats(nil, false),
	}
}

// Available сообщает, был ли набор данных успешно загружен
func (s *IncidentStore) Available() bool {
	return s.available
}

// Len - количество записей
func (s *IncidentStore) Len() int {
	return len(s.records)
}

// Query возвращает все инциденты на расстоянии не более radiusKm от центра.
// Порядок результата не гарантируется.
func (s *IncidentStore) Query(center models.Location, radiusKm float64) []models.IncidentRecord {
	result := make([]models.IncidentRecord, 0)
	if len(s.records) == 0 || radiusKm < 0 {
		return result
	}

	box := geo.NewBoundingBox(center.Latitude, center.Longitude, radiusKm)
	start := sort.Search(len(s.records), func(i int) bool {
		return s.records[i].Latitude >= box.MinLat
	})

	for i := start; i < len(s.records); i++ {
		rec := s.records[i]
		if rec.Latitude > box.MaxLat {
			break
		}
		if !box.Contains(rec.Latitude, rec.Longitude) {
			continue
		}
		if geo.Haversine(center.Latitude, center.Longitude, rec.Latitude, rec.Longitude) <= radiusKm {
			result = append(result, rec)
		}
	}
	return result
}

// Stats возвращает сводку по набору данных
func (s *IncidentStore) Stats() models.DatasetStats {
	out := s.stats
	out.CategoryCount = make(map[models.Category]int, len(s.stats.CategoryCount))
	for k, v := range s.stats.CategoryCount {
		out.CategoryCount[k] = v
	}
	out.Areas = append([]string(nil), s.stats.Areas...)
	return out
}

func buildDatasetStats(records []models.IncidentRecord, available bool) models.DatasetStats {
	stats := models.DatasetStats{
		Available:     available,
		TotalRecords:  len(records),
		CategoryCount: make(map[models.Category]int),
		Areas:         make([]string, 0),
	}

	areas := make(map[string]struct{})
	var first, last time.Time
	for _, rec := range records {
		stats.CategoryCount[rec.Category]++
		if rec.Area != "" {
			areas[rec.Area] = struct{}{}
		}
		if rec.OccurredAt == nil {
			continue
		}
		if first.IsZero() || rec.OccurredAt.Before(first) {
			first = *rec.OccurredAt
		}
		if last.IsZero() || rec.OccurredAt.After(last) {
			last = *rec.OccurredAt
		}
	}

	for area := range areas {
		stats.Areas = append(stats.Areas, area)
	}
	sort.Strings(stats.Areas)

	if !first.IsZero() {
		stats.FirstIncident = &first
		stats.LastIncident = &last
	}
	return stats
}
