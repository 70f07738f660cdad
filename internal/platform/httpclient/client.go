// Package httpclient is the instrumented HTTP client used for calls to the
// host platform. Every request passes through, in order:
//
//	Rate Limiter → Circuit Breaker → Request-ID Header → OTEL Span → Retry → HTTP
//
// Usage:
//
//	client := httpclient.New(&cfg.Host, "host-api", metrics, logger)
//	req, err := client.NewJSONRequest(ctx, http.MethodPut, "/api/v1/registrations/post-to-post/"+id, body)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware stores the request ID so outbound calls carry it:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/relationship-registry/internal/platform/config"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/telemetry"
)

// RequestIDHeader is the header used to propagate the inbound request ID.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID stores id for propagation on outbound requests.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the ID stored by WithRequestID, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// Client wraps http.Client with rate limiting, a circuit breaker, retries
// and tracing.
type Client struct {
	httpClient  *http.Client
	baseURL     *url.URL
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter // nil disables rate limiting
	retry       config.RetryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client for the host described by cfg. serviceName labels
// traces, metrics and the breaker. metrics may be nil.
func New(cfg *config.HostConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		serviceName: serviceName,
		retry:       cfg.Retry,
		metrics:     metrics,
		logger:      logger,
	}

	// An unparsable base URL leaves requests relative; config validation
	// rejects it before New is reached.
	if u, err := url.Parse(cfg.BaseURL); err == nil {
		c.baseURL = u
	}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), max(cfg.RateLimit.BurstSize, 1))
	}

	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A caller giving up is not evidence that the host is unhealthy.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return c
}

// NewJSONRequest builds a request for path, resolved against the configured
// base URL, with body encoded as JSON. A nil body sends no payload.
func (c *Client) NewJSONRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var payload io.Reader = http.NoBody
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), payload)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Do sends req through the client pipeline.
//
// A non-retryable status returns the response with a nil error. When
// retries are exhausted on a retryable status both the response and an
// error are returned. Network failures, breaker rejections and rate-limit
// cancellations return a nil response. The caller closes any returned body.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.recordMetrics(ctx, req.Method, start, nil, err)
			return nil, fmt.Errorf("%s: rate limit wait: %w", c.serviceName, err)
		}
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if id, ok := RequestIDFromContext(ctx); ok {
			req.Header.Set(RequestIDHeader, id)
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		var r *http.Response
		retryErr := c.doWithRetry(spanCtx, req.WithContext(spanCtx), &r)
		finishSpan(span, r, retryErr)

		// gobreaker drops the result on error; hand the exhausted
		// response back through the closure's error path instead.
		if retryErr != nil && r != nil {
			return nil, &exhaustedError{resp: r, err: retryErr}
		}
		return r, retryErr
	})

	var exhausted *exhaustedError
	if errors.As(err, &exhausted) {
		resp, err = exhausted.resp, exhausted.err
	}

	c.recordMetrics(ctx, req.Method, start, resp, err)
	return resp, err
}

// Name identifies the downstream service. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports the breaker state without making a network call.
// Closed is healthy; half-open and open are reported as errors.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

type exhaustedError struct {
	resp *http.Response
	err  error
}

func (e *exhaustedError) Error() string { return e.err.Error() }
func (e *exhaustedError) Unwrap() error { return e.err }

func (c *Client) resolve(path string) string {
	if c.baseURL == nil {
		return path
	}
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return path
	}
	base := *c.baseURL
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(ref).String()
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	ctx, span := tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

func finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	statusCode := 0
	result := telemetry.ResultError
	if resp != nil {
		statusCode = resp.StatusCode
		if statusCode < http.StatusBadRequest {
			result = telemetry.ResultSuccess
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

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func toUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
