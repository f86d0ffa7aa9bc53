package models

import (
	"time"

	"github.com/google/uuid"
)

// Assessment - запись о выполненной оценке риска пользователя
type Assessment struct {
	ID         int64     `json:"id"`
	ReportID   uuid.UUID `json:"report_id"`
	UserID     string    `json:"user_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Score      float64   `json:"score"`
	Tier       RiskTier  `json:"tier"`
	AssessedAt time.Time `json:"assessed_at"`
}

// AssessmentRequest - входные данные сервисной оценки риска
type AssessmentRequest struct {
	UserID       string
	Location     Location
	Context      Context
	LocationName string
}

// LocationAnalysisRequest - входные данные контекстного анализа района
type LocationAnalysisRequest struct {
	UserID    string
	Location  Location
	Hour      *int
	DayOfWeek *int
}
