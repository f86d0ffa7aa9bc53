package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/geo_safety_risk/internal/metrics"
	"github.com/shenikar/geo_safety_risk/internal/models"
)

const defaultTimeout = 8 * time.Second

// maxBodyBytes ограничивает размер ответа внешнего сервиса
const maxBodyBytes = 1 << 20

func defaultHTTPClient(client *http.Client) *http.Client {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultTimeout}
}

// getJSON выполняет GET и декодирует JSON-ответ. Любая ошибка оборачивается в ErrLookupFailed.
func getJSON(ctx context.Context, client *http.Client, provider, rawURL string, headers map[string]string, out any) error {
	metrics.LookupRequestsTotal.WithLabelValues(provider).Inc()
	t0 := time.Now()
	defer func() {
		metrics.LookupDurationMs.WithLabelValues(provider).Observe(float64(time.Since(t0).Milliseconds()))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		metrics.LookupFailTotal.WithLabelValues(provider).Inc()
		return fmt.Errorf("%w: %s: build request: %v", models.ErrLookupFailed, provider, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		metrics.LookupFailTotal.WithLabelValues(provider).Inc()
		return fmt.Errorf("%w: %s: %v", models.ErrLookupFailed, provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.LookupFailTotal.WithLabelValues(provider).Inc()
		return fmt.Errorf("%w: %s: unexpected status %d", models.ErrLookupFailed, provider, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		metrics.LookupFailTotal.WithLabelValues(provider).Inc()
		return fmt.Errorf("%w: %s: decode response: %v", models.ErrLookupFailed, provider, err)
	}
	return nil
}
