package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/dataworks/internal/platform/telemetry"
)

// Chain composes middleware so that the first argument is outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// StackConfig holds the dependencies of the standard middleware stack.
type StackConfig struct {
	Logger  *slog.Logger
	Metrics *telemetry.Metrics

	// Timeout bounds each request. Zero disables the Timeout middleware.
	Timeout time.Duration
}

// Stack returns the standard inbound pipeline as one middleware:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout
func Stack(cfg StackConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	mws := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(cfg.Metrics),
		Logging(logger),
	}
	if cfg.Timeout > 0 {
		mws = append(mws, Timeout(cfg.Timeout))
	}
	return Chain(mws...)
}
