package api

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport логирует исходящие запросы: метод, хост, путь, статус, время выполнения.
// НЕ логирует query, заголовки и тела (там токены и пароли).
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)
	attrs := []any{
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
		"duration_ms", duration.Milliseconds(),
	}

	if err != nil {
		t.logger.Log(req.Context(), slog.LevelWarn, "HTTP request failed", append(attrs, "error", err)...)
		return nil, err
	}

	// Определяем уровень логирования на основе статуса
	logLevel := slog.LevelDebug
	if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	t.logger.Log(req.Context(), logLevel, "HTTP request", append(attrs, "status", resp.StatusCode)...)

	return resp, nil
}
