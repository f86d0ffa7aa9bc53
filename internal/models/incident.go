package models

import (
	"strings"
	"time"
)

// Category - тег категории преступления (открытое множество значений)
type Category string

const (
	CategoryMurder         Category = "murder"
	CategoryRape           Category = "rape"
	CategoryViolentCrime   Category = "violent-crime"
	CategoryRobbery        Category = "robbery"
	CategoryAssault        Category = "assault"
	CategoryBurglary       Category = "burglary"
	CategoryTheft          Category = "theft"
	CategoryVehicleCrime   Category = "vehicle-crime"
	CategoryFraud          Category = "fraud"
	CategoryVandalism      Category = "vandalism"
	CategoryDrugOffense    Category = "drug-offense"
	CategoryPublicDisorder Category = "public-disorder"
	CategoryOther          Category = "other"

	// CategoryNone - доминирующая категория пустой выборки
	CategoryNone Category = "none"
)

// HighSeverityThreshold - инцидент с тяжестью от этого значения считается тяжким
const HighSeverityThreshold = 7

// unknownCategorySeverity - тяжесть для категорий вне таблицы
const unknownCategorySeverity = 5

var categorySeverity = map[Category]int{
	CategoryMurder:         10,
	CategoryRape:           10,
	CategoryViolentCrime:   10,
	CategoryRobbery:        9,
	CategoryAssault:        8,
	CategoryBurglary:       7,
	CategoryTheft:          6,
	CategoryVehicleCrime:   6,
	CategoryFraud:          5,
	CategoryVandalism:      4,
	CategoryDrugOffense:    4,
	CategoryPublicDisorder: 3,
	CategoryOther:          3,
}

var categoryAliases = map[string]Category{
	"vehicle-theft":   CategoryVehicleCrime,
	"car-theft":       CategoryVehicleCrime,
	"drugs":           CategoryDrugOffense,
	"drug":            CategoryDrugOffense,
	"public-order":    CategoryPublicDisorder,
	"criminal-damage": CategoryVandalism,
}

// NormalizeCategory приводит произвольную строку к тегу категории
func NormalizeCategory(raw string) Category {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return CategoryOther
	}
	s = strings.NewReplacer("_", "-", " ", "-").Replace(s)
	if alias, ok := categoryAliases[s]; ok {
		return alias
	}
	return Category(s)
}

// DefaultSeverity возвращает тяжесть категории по фиксированной таблице
func (c Category) DefaultSeverity() int {
	if sev, ok := categorySeverity[c]; ok {
		return sev
	}
	return unknownCategorySeverity
}

// IncidentRecord - историческая запись о преступлении. Записи неизменяемы после загрузки.
type IncidentRecord struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Category   Category   `json:"category"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
	Severity   int        `json:"severity,omitempty"` // 0 - не задана
	Area       string     `json:"area,omitempty"`
}

// ResolvedSeverity возвращает явную тяжесть или значение по категории
func (r IncidentRecord) ResolvedSeverity() int {
	if r.Severity >= 1 && r.Severity <= 10 {
		return r.Severity
	}
	return r.Category.DefaultSeverity()
}

// DatasetStats - сводка по загруженному набору данных
type DatasetStats struct {
	Available     bool             `json:"available"`
	TotalRecords  int              `json:"total_records"`
	CategoryCount map[Category]int `json:"category_count"`
	Areas         []string         `json:"areas"`
	FirstIncident *time.Time       `json:"first_incident,omitempty"`
	LastIncident  *time.Time       `json:"last_incident,omitempty"`
}
