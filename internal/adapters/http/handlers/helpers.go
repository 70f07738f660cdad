package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/relationship-registry/internal/adapters/http/dto"
	"github.com/jsamuelsen11/relationship-registry/internal/domain"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 1 MB.
const maxJSONBodyBytes = 1 << 20

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// pathParams returns the named chi URL parameters, unescaped exactly once.
// chi matches against r.URL.RawPath when the request carries one and
// against the already decoded r.URL.Path otherwise, so parameters are only
// unescaped in the first case. A parameter that fails to unescape is
// reported as a validation error under "path.<name>".
func pathParams(r *http.Request, names ...string) ([]string, error) {
	values := make([]string, len(names))
	fields := make(map[string]string)

	for i, name := range names {
		v := chi.URLParam(r, name)
		if r.URL.RawPath != "" {
			unescaped, err := url.PathUnescape(v)
			if err != nil {
				fields["path."+name] = "is not a valid path segment"
				continue
			}
			v = unescaped
		}
		values[i] = v
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return values, nil
}

// decodeJSONBody decodes the body into dst, rejecting unknown fields. On
// failure it writes a 400 response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body into dst and validates it, writing an
// error response and returning false on failure.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
