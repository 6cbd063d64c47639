package salesforce

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/xid"
)

// RequestIDHeader carries the id used to correlate client and server logs.
const RequestIDHeader = "X-Request-Id"

// LoggingRoundTripper tags each request with an id and logs the exchange.
type LoggingRoundTripper struct {
	next http.RoundTripper
}

// NewLoggingRoundTripper wraps next; a nil next uses http.DefaultTransport.
func NewLoggingRoundTripper(next http.RoundTripper) LoggingRoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return LoggingRoundTripper{next: next}
}

// RoundTrip implements http.RoundTripper.
func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := xid.New().String()

	out := req.Clone(req.Context())
	out.Header.Set(RequestIDHeader, requestID)

	slog.Debug("Backend request",
		"request_id", requestID,
		"method", out.Method,
		"url", out.URL.Redacted())

	start := time.Now()
	resp, err := rt.next.RoundTrip(out)
	if err != nil {
		slog.Debug("Backend request failed",
			"request_id", requestID,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return nil, fmt.Errorf("round trip %s: %w", requestID, err)
	}

	slog.Debug("Backend response",
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	return resp, nil
}
