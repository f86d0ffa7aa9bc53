package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_safety_risk/internal/models"
)

// importBatchSize - сколько строк отправляется в одном pgx.Batch
const importBatchSize = 500

// IncidentPostgresRepository хранит исторические инциденты в PostGIS
type IncidentPostgresRepository struct {
	db *pgxpool.Pool
}

func NewIncidentPostgresRepository(db *pgxpool.Pool) *IncidentPostgresRepository {
	return &IncidentPostgresRepository{db: db}
}

// LoadAll читает весь набор инцидентов для построения хранилища в памяти
func (r *IncidentPostgresRepository) LoadAll(ctx context.Context) ([]models.IncidentRecord, error) {
	query := `
		SELECT
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			crime_type,
			occurred_at,
			COALESCE(severity, 0)::int,
			COALESCE(area, '')
		FROM crime_incidents;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query crime incidents: %v", models.ErrDataUnavailable, err)
	}
	defer rows.Close()

	records := make([]models.IncidentRecord, 0)
	for rows.Next() {
		var (
			rec        models.IncidentRecord
			crimeType  string
			occurredAt *time.Time
			severity   int32
		)
		if err := rows.Scan(&rec.Latitude, &rec.Longitude, &crimeType, &occurredAt, &severity, &rec.Area); err != nil {
			return nil, fmt.Errorf("%w: failed to scan crime incident row: %v", models.ErrDataUnavailable, err)
		}
		rec.Category = models.NormalizeCategory(crimeType)
		rec.Severity = int(severity)
		if occurredAt != nil {
			ts := occurredAt.UTC()
			rec.OccurredAt = &ts
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error list iteration: %v", models.ErrDataUnavailable, err)
	}
	return records, nil
}

// InsertBatch вставляет записи пачками и возвращает число вставленных строк
func (r *IncidentPostgresRepository) InsertBatch(ctx context.Context, records []models.IncidentRecord) (int, error) {
	query := `
		INSERT INTO crime_incidents (location, crime_type, occurred_at, severity, area)
		VALUES (ST_SetSRID(ST_MakePoint($1, $2), 4326), $3, $4, NULLIF($5, 0), NULLIF($6, ''));
	`
	inserted := 0
	for start := 0; start < len(records); start += importBatchSize {
		end := start + importBatchSize
		if end > len(records) {
			end = len(records)
		}

		batch := &pgx.Batch{}
		for _, rec := range records[start:end] {
			batch.Queue(query, rec.Longitude, rec.Latitude, string(rec.Category), rec.OccurredAt, rec.Severity, rec.Area)
		}

		br := r.db.SendBatch(ctx, batch)
		for range records[start:end] {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return inserted, fmt.Errorf("failed to insert crime incident: %w", err)
			}
			inserted++
		}
		if err := br.Close(); err != nil {
			return inserted, fmt.Errorf("failed to close insert batch: %w", err)
		}
	}
	return inserted, nil
}

// Truncate удаляет все инциденты перед полной перезагрузкой
func (r *IncidentPostgresRepository) Truncate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `TRUNCATE TABLE crime_incidents;`); err != nil {
		return fmt.Errorf("failed to truncate crime incidents: %w", err)
	}
	return nil
}
