// Package httpclient provides an instrumented HTTP client with optional
// per-host circuit breaking, optional rate limiting, OpenTelemetry tracing,
// and header injection for outbound requests. Every request is attempted
// exactly once.
//
// The client applies middleware-like processing in this order:
//
//	Circuit Breaker → Rate Limiter → Header Injection → OTEL Span → HTTP
//
// The breaker is disabled when client.circuit_breaker.max_failures is 0.
// When enabled, each target host gets its own breaker, so a failing host
// never rejects requests bound for another one.
//
// Construction:
//
//	client := httpclient.New(&cfg.Client, "web", metrics, logger)
//
// Executing requests:
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
//	resp, err := client.Do(ctx, req)
//
// Context propagation for header injection (set by inbound middleware):
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/dataworks/internal/platform/config"
	"github.com/jsamuelsen11/dataworks/internal/platform/telemetry"
)

// Context key types for request metadata propagation.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID returns a new context with the given request ID stored in it.
// Inbound middleware should call this to propagate request IDs to outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID returns a new context with the given correlation ID stored
// in it. Inbound middleware should call this to propagate correlation IDs to
// outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Client is an instrumented HTTP client with per-host circuit breakers, rate
// limiting, header injection, and OpenTelemetry tracing for outbound requests.
type Client struct {
	httpClient  *http.Client
	serviceName string
	userAgent   string
	breakerCfg  config.CircuitBreakerConfig
	limiter     *rate.Limiter // nil when rate limiting is disabled
	metrics     *telemetry.Metrics
	logger      *slog.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[struct{}] // keyed by host; nil when disabled
}

// New creates an instrumented HTTP client configured with circuit breaker,
// optional rate limiting, OpenTelemetry tracing, and header injection.
//
// The serviceName identifies the outbound peer in traces, metrics, and health
// checks (e.g., "web"). If metrics is nil, metric recording is skipped. If
// logger is nil, log output is discarded.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		serviceName: serviceName,
		userAgent:   cfg.UserAgent,
		breakerCfg:  cfg.CircuitBreaker,
		limiter:     limiter,
		metrics:     metrics,
		logger:      logger,
		breakers:    breakerMap(cfg.CircuitBreaker),
	}
}

func breakerMap(cfg config.CircuitBreakerConfig) map[string]*gobreaker.CircuitBreaker[struct{}] {
	if cfg.MaxFailures <= 0 {
		return nil
	}
	return make(map[string]*gobreaker.CircuitBreaker[struct{}])
}

// breakerFor returns the breaker guarding host, creating it on first use.
// It returns nil when circuit breaking is disabled.
func (c *Client) breakerFor(host string) *gobreaker.CircuitBreaker[struct{}] {
	if c.breakers == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers[host]; ok {
		return cb
	}

	maxFailures := c.breakerCfg.MaxFailures
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        c.serviceName + ":" + host,
		MaxRequests: toUint32(c.breakerCfg.HalfOpenLimit),
		Timeout:     c.breakerCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	c.breakers[host] = cb
	return cb
}

// Do executes an HTTP request through the full middleware pipeline:
// Circuit Breaker → Rate Limiter → Header Injection → OTEL Span → HTTP.
// The breaker stage is skipped when circuit breaking is disabled; otherwise
// it uses the breaker for req.URL.Host.
//
// The request's context is used for cancellation, tracing, and to extract
// Request-ID and Correlation-ID for header propagation.
//
// When the request succeeds with a status below 500, resp is non-nil with an
// open body that the caller must close. A 5xx response counts as a breaker
// failure: both resp (with open body) and err are non-nil and the caller
// should close resp.Body. When the circuit breaker rejects or a network error
// occurs, resp is nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	attempt := func() (struct{}, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		c.injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		// Bind span context to the request so http.Client.Do uses it for
		// cancellation, deadlines, and trace propagation.
		r, doErr := c.httpClient.Do(req.WithContext(spanCtx))
		if doErr == nil {
			resp = r
			if r.StatusCode >= http.StatusInternalServerError {
				doErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, req.URL.Host)
			}
		}
		c.finishSpan(span, resp, doErr)

		return struct{}{}, doErr
	}

	var err error
	if cb := c.breakerFor(req.URL.Host); cb != nil {
		_, err = cb.Execute(attempt)
	} else {
		_, err = attempt()
	}

	c.recordMetrics(ctx, method, start, resp, err)

	return resp, err
}

// Name returns the outbound peer identifier (e.g., "web").
// Together with HealthCheck, this method lets Client satisfy the
// ports.HealthChecker interface via structural typing.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports outbound availability based on the per-host circuit
// breaker states. No network call is made.
//
// State mapping:
//   - disabled, or every host "closed": returns nil.
//   - any host "open": returns a failing error naming the open hosts.
//   - any host "half-open" and none open: returns a degraded error.
func (c *Client) HealthCheck(_ context.Context) error {
	if c.breakers == nil {
		return nil
	}

	c.mu.Lock()
	var open, halfOpen []string
	for host, cb := range c.breakers {
		switch cb.State() {
		case gobreaker.StateOpen:
			open = append(open, host)
		case gobreaker.StateHalfOpen:
			halfOpen = append(halfOpen, host)
		case gobreaker.StateClosed:
		}
	}
	c.mu.Unlock()

	switch {
	case len(open) > 0:
		slices.Sort(open)
		return fmt.Errorf("%s: failing (circuit breaker open for %s)", c.serviceName, strings.Join(open, ", "))
	case len(halfOpen) > 0:
		slices.Sort(halfOpen)
		return fmt.Errorf("%s: degraded (circuit breaker half-open for %s)", c.serviceName, strings.Join(halfOpen, ", "))
	default:
		return nil
	}
}

// waitForRateLimit blocks until the rate limiter allows the request or the
// context is canceled. Returns nil immediately when rate limiting is disabled.
func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// injectHeaders adds Request-ID and Correlation-ID headers to the outbound
// request if present in the context, and a User-Agent when the caller has
// not set one.
func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

// startSpan creates an OTEL client span for the outbound request and injects
// trace context (W3C Trace Context) into the request headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	spanName := fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName)
	ctx, span := tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("server.address", req.URL.Host),
			attribute.String("peer.service", c.serviceName),
		),
	)

	// Propagate trace context into outbound request headers.
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

// finishSpan records the response outcome on the span.
func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records client request duration and count metrics.
// Metrics are recorded outside the circuit breaker so that circuit-open
// rejections are captured. Safe to call with nil metrics.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	statusCode := 0
	result := "error"
	if resp != nil {
		statusCode = resp.StatusCode
		if statusCode < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)

	c.metrics.ClientRequestDuration.Record(ctx, duration, attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
