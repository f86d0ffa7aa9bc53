package repository

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/shenikar/geo_safety_risk/internal/service"
)

// maxMemoryAssessments ограничивает журнал, когда бд не настроена
const maxMemoryAssessments = 10000

// MemoryAssessmentRepository - журнал оценок в памяти процесса
type MemoryAssessmentRepository struct {
	mu     sync.Mutex
	nextID int64
	items  []models.Assessment
	now    func() time.Time
}

func NewMemoryAssessmentRepository() service.AssessmentRepository {
	return newMemoryAssessmentRepository(time.Now)
}

func newMemoryAssessmentRepository(now func() time.Time) *MemoryAssessmentRepository {
	return &MemoryAssessmentRepository{now: now}
}

func (r *MemoryAssessmentRepository) SaveAssessment(_ context.Context, a *models.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	a.ID = r.nextID
	a.AssessedAt = r.now().UTC()

	r.items = append(r.items, *a)
	if len(r.items) > maxMemoryAssessments {
		r.items = append([]models.Assessment(nil), r.items[len(r.items)-maxMemoryAssessments:]...)
	}
	return nil
}

func (r *MemoryAssessmentRepository) GetAssessmentStats(_ context.Context, minutes int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-time.Duration(minutes) * time.Minute)
	users := make(map[string]struct{})
	for _, a := range r.items {
		if !a.AssessedAt.Before(cutoff) {
			users[a.UserID] = struct{}{}
		}
	}
	return len(users), nil
}
