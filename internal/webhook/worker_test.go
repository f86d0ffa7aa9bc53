package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/config"
	"github.com/shenikar/geo_safety_risk/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) (*WebhookWorker, *[]time.Duration) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	w := NewWebhookWorker(nil, logger, cfg)
	delays := make([]time.Duration, 0)
	w.sleep = func(_ context.Context, d time.Duration) {
		delays = append(delays, d)
	}
	return w, &delays
}

func TestWebhookWorker_ProcessEvent(t *testing.T) {
	t.Run("Retries with exponential backoff then succeeds", func(t *testing.T) {
		var calls int32
		var gotSignature, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			gotSignature = r.Header.Get(signatureHeader)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		worker, delays := newTestWorker(&config.Config{
			WebhookURL:        server.URL,
			WebhookSecret:     "s3cret",
			WebhookTimeout:    time.Second,
			WebhookMaxRetries: 5,
			WebhookBaseDelay:  100 * time.Millisecond,
		})

		payload := `{"user_id":"u1","tier":"high"}`
		worker.processWebhookEvent(context.Background(), RiskAlertEvent{UserID: "u1", Tier: models.TierHigh}, payload)

		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
		assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *delays)
		assert.Equal(t, payload, gotBody)
		assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		worker, delays := newTestWorker(&config.Config{
			WebhookURL:        server.URL,
			WebhookTimeout:    time.Second,
			WebhookMaxRetries: 3,
			WebhookBaseDelay:  time.Second,
		})
		worker.processWebhookEvent(context.Background(), RiskAlertEvent{UserID: "u1"}, `{}`)

		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
		assert.Len(t, *delays, 2)
	})

	t.Run("No URL configured", func(t *testing.T) {
		worker, delays := newTestWorker(&config.Config{WebhookTimeout: time.Second, WebhookMaxRetries: 3})
		worker.processWebhookEvent(context.Background(), RiskAlertEvent{}, `{}`)
		assert.Empty(t, *delays)
	})

	t.Run("Signature omitted without secret", func(t *testing.T) {
		var signature string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			signature = r.Header.Get(signatureHeader)
		}))
		defer server.Close()

		worker, _ := newTestWorker(&config.Config{WebhookURL: server.URL, WebhookTimeout: time.Second, WebhookMaxRetries: 1})
		require.NoError(t, worker.deliver(context.Background(), `{}`))
		assert.Empty(t, signature)
	})
}

func TestNewRiskAlertEvent(t *testing.T) {
	report := &models.RiskReport{
		Location: models.Location{Latitude: 28.6, Longitude: 77.2},
		Score:    2.5,
		Tier:     models.TierHigh,
		Summary:  models.IncidentSummary{IsHotspot: true, DominantCategory: models.CategoryRobbery},
	}

	event := NewRiskAlertEvent("user-1", report)
	assert.NotEqual(t, event.EventID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, 28.6, event.Latitude)
	assert.Equal(t, models.TierHigh, event.Tier)
	assert.True(t, event.IsHotspot)
	assert.Equal(t, models.CategoryRobbery, event.DominantCategory)
}
