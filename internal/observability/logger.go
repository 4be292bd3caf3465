// Package observability provides request-scoped structured logging.
package observability

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	// LogFieldRequestID is the field name for request ID.
	LogFieldRequestID = "request_id"
	// LogFieldUserID is the field name for user ID.
	LogFieldUserID = "user_id"
	// LogFieldAirport is the field name for the selected airport.
	LogFieldAirport = "airport"
	// LogFieldCategory is the field name for the active query category.
	LogFieldCategory = "category"
	// LogFieldDuration is the field name for duration in milliseconds.
	LogFieldDuration = "duration_ms"
)

// SetupDefault installs the process-wide slog logger: text handler in dev,
// JSON in prod.
func SetupDefault(mode string) {
	level := slog.LevelInfo
	if mode != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if mode == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

// RequestContext carries the per-message logging context through a dispatch.
type RequestContext struct {
	RequestID string
	UserID    string
	StartTime time.Time
	Logger    *slog.Logger
}

// NewRequestContext creates a request context with a generated request id.
func NewRequestContext(logger *slog.Logger, userID string) *RequestContext {
	if logger == nil {
		logger = slog.Default()
	}
	return &RequestContext{
		RequestID: uuid.New().String(),
		UserID:    userID,
		StartTime: time.Now(),
		Logger:    logger,
	}
}

// With returns a logger carrying the base request fields plus extras.
func (r *RequestContext) With(args ...any) *slog.Logger {
	base := []any{
		slog.String(LogFieldRequestID, r.RequestID),
		slog.String(LogFieldUserID, r.UserID),
	}
	return r.Logger.With(append(base, args...)...)
}

// DurationMs returns the elapsed time in milliseconds.
func (r *RequestContext) DurationMs() int64 {
	return time.Since(r.StartTime).Milliseconds()
}
