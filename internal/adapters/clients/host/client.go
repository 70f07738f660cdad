// Package host is the anti-corruption layer for the host content platform.
// It translates catalog relationships into the host's post-to-post and
// post-to-user registrations and maps host errors back to domain errors.
package host

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/relationship-registry/internal/domain"
	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/httpclient"
	"github.com/jsamuelsen11/relationship-registry/internal/ports"
)

var (
	_ ports.HostClient    = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client implements ports.HostClient over an instrumented HTTP client.
type Client struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// New creates a Client.
func New(httpClient *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{http: httpClient, logger: logger}
}

// RegisterTypeToType upserts rel as a post-to-post registration.
func (c *Client) RegisterTypeToType(ctx context.Context, rel *relationship.TypeToType) error {
	path, body := postToPostResource(rel)
	return c.put(ctx, path, body)
}

// RegisterTypeToActor upserts rel as a post-to-user registration.
func (c *Client) RegisterTypeToActor(ctx context.Context, rel *relationship.TypeToActor) error {
	path, body := postToUserResource(rel)
	return c.put(ctx, path, body)
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the host's circuit breaker state. Readiness of this
// service does not depend on it; the result is informational.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

// put sends body to path. 200, 201 and 204 are success. 409 means the host
// already holds the registration, which is also success.
func (c *Client) put(ctx context.Context, path string, body any) error {
	req, err := c.http.NewJSONRequest(ctx, http.MethodPut, path, body)
	if err != nil {
		return fmt.Errorf("PUT %s: %w", path, err)
	}

	resp, err := c.http.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", cerr))
			}
		}()
	}

	switch {
	case resp != nil && isRegistered(resp.StatusCode):
		if resp.StatusCode == http.StatusConflict {
			c.logger.DebugContext(ctx, "host already holds registration", slog.String("path", path))
		}
		return nil
	case resp != nil:
		// Covers both a non-retryable error status and retries exhausted on a
		// retryable one; the status is more useful than the retry error.
		translated := TranslateHTTPError(resp)
		c.logger.ErrorContext(ctx, "host rejected registration",
			slog.String("operation", "host.put"),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", translated),
		)
		return translated
	default:
		c.logger.ErrorContext(ctx, "host request failed",
			slog.String("operation", "host.put"),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("PUT %s: %w: %w", path, domain.ErrUnavailable, err)
	}
}

func isRegistered(status int) bool {
	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent, http.StatusConflict:
		return true
	default:
		return false
	}
}
