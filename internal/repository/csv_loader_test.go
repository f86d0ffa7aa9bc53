package repository

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCSV(t *testing.T) io.Reader {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteSampleCSV(&buf))
	return &buf
}

func TestLoadIncidentsCSV(t *testing.T) {
	t.Run("Sample dataset", func(t *testing.T) {
		res, err := LoadIncidentsCSV(sampleCSV(t))
		require.NoError(t, err)
		require.Len(t, res.Records, 5)
		assert.Equal(t, 0, res.Skipped)

		first := res.Records[0]
		assert.Equal(t, 28.6139, first.Latitude)
		assert.Equal(t, models.CategoryTheft, first.Category)
		assert.Equal(t, 6, first.Severity)
		assert.Equal(t, "Delhi Central", first.Area)
		require.NotNil(t, first.OccurredAt)
		assert.Equal(t, "2024-12-01", first.OccurredAt.Format("2006-01-02"))
	})

	t.Run("Header names are normalized", func(t *testing.T) {
		data := " Latitude ,LONGITUDE, Crime_Type \n28.6,77.2,Vehicle Theft\n"
		res, err := LoadIncidentsCSV(strings.NewReader(data))
		require.NoError(t, err)
		require.Len(t, res.Records, 1)
		assert.Equal(t, models.CategoryVehicleCrime, res.Records[0].Category)
		assert.Nil(t, res.Records[0].OccurredAt)
		assert.Equal(t, 0, res.Records[0].Severity)
		assert.Equal(t, 6, res.Records[0].ResolvedSeverity())
	})

	t.Run("Invalid rows are skipped", func(t *testing.T) {
		data := "latitude,longitude,crime_type,date,severity\n" +
			"abc,77.2,theft,2024-12-01,6\n" +
			"95,77.2,theft,2024-12-01,6\n" +
			"28.6,77.2,theft,not-a-date,42\n"
		res, err := LoadIncidentsCSV(strings.NewReader(data))
		require.NoError(t, err)
		require.Len(t, res.Records, 1)
		assert.Equal(t, 2, res.Skipped)
		assert.Nil(t, res.Records[0].OccurredAt)
		assert.Equal(t, 0, res.Records[0].Severity)
	})

	t.Run("Missing required column", func(t *testing.T) {
		_, err := LoadIncidentsCSV(strings.NewReader("latitude,longitude,area\n28.6,77.2,x\n"))
		assert.True(t, errors.Is(err, models.ErrDataUnavailable))
	})

	t.Run("Empty input", func(t *testing.T) {
		_, err := LoadIncidentsCSV(strings.NewReader(""))
		assert.True(t, errors.Is(err, models.ErrDataUnavailable))
	})
}

func TestLoadIncidentsCSVFile(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadIncidentsCSVFile(filepath.Join(t.TempDir(), "missing.csv"))
		assert.True(t, errors.Is(err, models.ErrDataUnavailable))
	})

	t.Run("Seeded file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "crime_data.csv")

		created, err := SeedSampleCSVFile(path)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = SeedSampleCSVFile(path)
		require.NoError(t, err)
		assert.False(t, created)

		res, err := LoadIncidentsCSVFile(path)
		require.NoError(t, err)
		assert.Len(t, res.Records, 5)
	})
}
