package adapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const defaultProbeTimeout = 5 * time.Second

// HTTPProbe implements domain.ConnectivityProbe with a bounded HTTP HEAD
// reachability check. Any error or timeout conclusively reports offline; a
// false "online" (captive portal) is the content service's problem, handled
// by its remote-failure fallback.
type HTTPProbe struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPProbe creates a probe against the given URL
func NewHTTPProbe(url string, timeout time.Duration, logger *slog.Logger) *HTTPProbe {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPProbe{
		url:        url,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// IsOnline reports whether the probe target is reachable
func (p *HTTPProbe) IsOnline(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Debug("connectivity probe failed", "error", err)
		return false
	}
	resp.Body.Close()

	return resp.StatusCode < 400
}
