package http

import (
	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) LogRequest(string, string, map[string]string) {}

func (NopLogger) LogResponseSuccess(string, string, map[string]string, int, string, int64) {}

func (NopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {}

// ZapLogger writes outbound calls to a zap logger. Response bodies are truncated to MaxBodyLength bytes.
type ZapLogger struct {
	Logger        *zap.Logger
	MaxBodyLength int
}

var _ HTTPLogger = (*ZapLogger)(nil)

// NewZapLogger creates a ZapLogger tagged with the given client name.
func NewZapLogger(logger *zap.Logger, clientName string) *ZapLogger {
	return &ZapLogger{
		Logger:        logger.With(zap.String("http_client", clientName)),
		MaxBodyLength: 300,
	}
}

func (l *ZapLogger) LogRequest(method, url string, headers map[string]string) {
	l.Logger.Debug("Outbound request",
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", headers))
}

func (l *ZapLogger) LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64) {
	l.Logger.Debug("Outbound request succeeded",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", l.truncate(responseBody)))
}

func (l *ZapLogger) LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	l.Logger.Warn("Outbound request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", l.truncate(responseBody)),
		zap.Error(err))
}

func (l *ZapLogger) truncate(body string) string {
	if l.MaxBodyLength <= 0 || len(body) <= l.MaxBodyLength {
		return body
	}
	return body[:l.MaxBodyLength] + "..."
}
