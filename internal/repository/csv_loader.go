package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/models"
)

const (
	colLatitude  = "latitude"
	colLongitude = "longitude"
	colCrimeType = "crime_type"
	colDate      = "date"
	colArea      = "area"
	colSeverity  = "severity"
)

var requiredColumns = []string{colLatitude, colLongitude, colCrimeType}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// CSVLoadResult - записи и число пропущенных строк
type CSVLoadResult struct {
	Records []models.IncidentRecord
	Skipped int
}

// LoadIncidentsCSVFile читает набор данных из файла.
// Отсутствующий или поврежденный файл дает ErrDataUnavailable.
func LoadIncidentsCSVFile(path string) (*CSVLoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", models.ErrDataUnavailable, path, err)
	}
	defer f.Close()

	return LoadIncidentsCSV(f)
}

// LoadIncidentsCSV разбирает таблицу с колонками latitude, longitude, crime_type
// и необязательными date, area, severity. Имена колонок нормализуются.
// Строки с некорректными координатами пропускаются.
func LoadIncidentsCSV(r io.Reader) (*CSVLoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty dataset", models.ErrDataUnavailable)
		}
		return nil, fmt.Errorf("%w: read header: %v", models.ErrDataUnavailable, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", models.ErrDataUnavailable, col)
		}
	}

	result := &CSVLoadResult{Records: make([]models.IncidentRecord, 0)}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row: %v", models.ErrDataUnavailable, err)
		}

		rec, ok := parseIncidentRow(row, index)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, rec)
	}
	return result, nil
}

func parseIncidentRow(row []string, index map[string]int) (models.IncidentRecord, bool) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	lat, err := strconv.ParseFloat(field(colLatitude), 64)
	if err != nil {
		return models.IncidentRecord{}, false
	}
	lon, err := strconv.ParseFloat(field(colLongitude), 64)
	if err != nil {
		return models.IncidentRecord{}, false
	}
	if (models.Location{Latitude: lat, Longitude: lon}).Validate() != nil {
		return models.IncidentRecord{}, false
	}

	rec := models.IncidentRecord{
		Latitude:  lat,
		Longitude: lon,
		Category:  models.NormalizeCategory(field(colCrimeType)),
		Area:      field(colArea),
	}

	if raw := field(colDate); raw != "" {
		if ts, ok := parseDate(raw); ok {
			rec.OccurredAt = &ts
		}
	}

	if raw := field(colSeverity); raw != "" {
		if sev, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(sev) {
			s := int(math.Round(sev))
			if s >= 1 && s <= 10 {
				rec.Severity = s
			}
		}
	}
	return rec, true
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

type sampleRow struct {
	lat, lon  string
	crimeType string
	date      string
	area      string
	severity  string
}

var sampleRows = []sampleRow{
	{"28.6139", "77.2090", "theft", "2024-12-01", "Delhi Central", "6"},
	{"28.6129", "77.2080", "assault", "2024-12-02", "Delhi Central", "8"},
	{"28.6149", "77.2100", "burglary", "2024-12-03", "Delhi Central", "7"},
	{"19.0760", "72.8777", "robbery", "2024-12-04", "Mumbai Central", "9"},
	{"19.0770", "72.8787", "fraud", "2024-12-05", "Mumbai Central", "5"},
}

// WriteSampleCSV пишет небольшой демонстрационный набор данных
func WriteSampleCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{colLatitude, colLongitude, colCrimeType, colDate, colArea, colSeverity}); err != nil {
		return fmt.Errorf("failed to write sample header: %w", err)
	}
	for _, r := range sampleRows {
		if err := writer.Write([]string{r.lat, r.lon, r.crimeType, r.date, r.area, r.severity}); err != nil {
			return fmt.Errorf("failed to write sample row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SeedSampleCSVFile создает файл с демонстрационными данными, если его еще нет.
// Возвращает true, если файл был создан.
func SeedSampleCSVFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("failed to create data dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("failed to create sample file: %w", err)
	}
	defer f.Close()

	if err := WriteSampleCSV(f); err != nil {
		return false, err
	}
	return true, nil
}
