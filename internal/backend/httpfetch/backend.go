package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/asimihsan/request_gateway/internal/metrics"
	"github.com/asimihsan/request_gateway/pkg/gate"
)

// Backend implements gate.Backend against an HTTP origin exposing
// GET /resources/{identifier}.
type Backend struct {
	baseURL    string
	httpClient *http.Client
	cacheTTL   time.Duration

	mu     sync.RWMutex
	cached map[string]cachedPayload
}

type cachedPayload struct {
	payload string
	expiry  time.Time
}

var _ gate.Backend = (*Backend)(nil)

// New creates an HTTP backend. A cacheTTL of zero disables response caching.
func New(baseURL string, fetchTimeout, cacheTTL time.Duration) *Backend {
	return &Backend{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: fetchTimeout},
		cacheTTL:   cacheTTL,
		cached:     make(map[string]cachedPayload),
	}
}

// Fetch implements gate.Backend.
func (b *Backend) Fetch(ctx context.Context, identifier string) (string, error) {
	timer := prometheus.NewTimer(metrics.BackendFetchLatency.WithLabelValues("httpfetch"))
	defer timer.ObserveDuration()

	// Check cache first
	if b.cacheTTL > 0 {
		b.mu.RLock()
		if entry, ok := b.cached[identifier]; ok && time.Now().Before(entry.expiry) {
			b.mu.RUnlock()
			return entry.payload, nil
		}
		b.mu.RUnlock()
	}

	url := fmt.Sprintf("%s/resources/%s", b.baseURL, identifier)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		metrics.BackendFetchErrors.WithLabelValues("httpfetch", "request_creation").Inc()
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			metrics.BackendFetchErrors.WithLabelValues("httpfetch", "timeout").Inc()
			return "", fmt.Errorf("%w: %v", gate.ErrBackendTimeout, err)
		}
		metrics.BackendFetchErrors.WithLabelValues("httpfetch", "http_error").Inc()
		return "", fmt.Errorf("%w: %v", gate.ErrBackendUnavailable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			metrics.BackendFetchErrors.WithLabelValues("httpfetch", "body_close_error").Inc()
		}
	}()

	if resp.StatusCode != http.StatusOK {
		metrics.BackendFetchErrors.WithLabelValues("httpfetch", "bad_status").Inc()
		return "", fmt.Errorf("%w: origin returned %d for %s", gate.ErrBackendUnavailable, resp.StatusCode, identifier)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendFetchErrors.WithLabelValues("httpfetch", "body_read_error").Inc()
		return "", fmt.Errorf("%w: reading body: %v", gate.ErrBackendUnavailable, err)
	}

	payload := string(body)
	if b.cacheTTL > 0 {
		b.mu.Lock()
		b.cached[identifier] = cachedPayload{
			payload: payload,
			expiry:  time.Now().Add(b.cacheTTL),
		}
		b.mu.Unlock()
	}

	return payload, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
