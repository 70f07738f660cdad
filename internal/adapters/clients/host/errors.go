package host

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/relationship-registry/internal/domain"
)

// maxErrorBodySize caps how much of an error body is read.
const maxErrorBodySize = 1 << 20

// problemDetail is the subset of an RFC 9457 body the host returns.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []fieldDetail `json:"errors"`
}

type fieldDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a host error response to a domain error. The
// problem+json detail, when present, is used as the message; 400 and 422
// responses with field errors become a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return fmt.Errorf("host: %s: %w", detail, domain.ErrNotFound)
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			fields := make(map[string]string, len(pd.Errors))
			for _, e := range pd.Errors {
				fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
			}
			return &domain.ValidationError{Fields: fields}
		}
		return fmt.Errorf("host: %s: %w", detail, domain.ErrValidation)
	case code == http.StatusConflict:
		return fmt.Errorf("host: %s: %w", detail, domain.ErrConflict)
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("host: %s: %w", detail, domain.ErrForbidden)
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return fmt.Errorf("host: %s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("host: unexpected status %d: %s", code, detail)
	}
}

func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&pd); err != nil {
		return problemDetail{}
	}
	return pd
}
