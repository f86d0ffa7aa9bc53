package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/shenikar/geo_safety_risk/internal/service"
)

type AssessmentRepository struct {
	db *pgxpool.Pool
}

func NewAssessmentRepository(db *pgxpool.Pool) service.AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// SaveAssessment сохраняет запись об оценке риска в бд
func (r *AssessmentRepository) SaveAssessment(ctx context.Context, a *models.Assessment) error {
	query := `
		INSERT INTO risk_assessments (report_id, user_id, location, score, tier)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6) RETURNING id, assessed_at;
	`
	err := r.db.QueryRow(ctx, query,
		a.ReportID,
		a.UserID,
		a.Longitude,
		a.Latitude,
		a.Score,
		string(a.Tier),
	).Scan(&a.ID, &a.AssessedAt)
	if err != nil {
		return fmt.Errorf("failed to save risk assessment: %w", err)
	}
	return nil
}

// GetAssessmentStats возвращает количество уникальных пользователей, запросивших оценку за окно
func (r *AssessmentRepository) GetAssessmentStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM risk_assessments
		WHERE assessed_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get risk assessment stats: %w", err)
	}
	return count, nil
}
