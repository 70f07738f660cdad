package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/relationship-registry/internal/adapters/http/dto"
	"github.com/jsamuelsen11/relationship-registry/internal/domain"
	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
		wantType   string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("type-to-actor relationship %q for %q: %w", "owner", "post", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
			wantType:   "about:blank",
		},
		{
			name:       "validation",
			err:        &domain.ValidationError{Fields: map[string]string{"name": "is required"}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
			wantType:   "about:blank",
		},
		{
			name:       "duplicate relationship",
			err:        fmt.Errorf("type-to-type page<->post#basic: %w", relationship.ErrDuplicate),
			wantStatus: http.StatusConflict,
			wantTitle:  "Duplicate Relationship",
			wantType:   dto.DuplicateRelationshipType,
		},
		{
			name:       "plain conflict",
			err:        domain.ErrConflict,
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
			wantType:   "about:blank",
		},
		{
			name:       "forbidden",
			err:        domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantTitle:  "Forbidden",
			wantType:   "about:blank",
		},
		{
			name:       "host unavailable",
			err:        fmt.Errorf("host sync: %w", domain.ErrUnavailable),
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
			wantType:   "about:blank",
		},
		{
			name:       "unknown",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
			wantType:   "about:blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/api/v1/type-relationships", nil)
			resp := dto.NewErrorResponse(r, tt.err)

			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantTitle, resp.Title)
			assert.Equal(t, tt.wantType, resp.Type)
			assert.Equal(t, "/api/v1/type-relationships", resp.Instance)
		})
	}
}

func TestNewErrorResponse_Detail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/actor-relationships/post/owner", nil)

	notFound := fmt.Errorf("type-to-actor relationship %q for %q: %w", "owner", "post", domain.ErrNotFound)
	assert.Equal(t, notFound.Error(), dto.NewErrorResponse(r, notFound).Detail)

	internal := errors.New("map corrupted at 0xdeadbeef")
	assert.Empty(t, dto.NewErrorResponse(r, internal).Detail, "internal errors must not leak")
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/type-relationships", nil)
	err := &domain.ValidationError{Fields: map[string]string{
		"type_b": "is required",
		"name":   "is required",
		"type_a": "is required",
	}}

	resp := dto.NewErrorResponse(r, err)

	assert.Equal(t, []dto.ErrorDetail{
		{Location: "body.name", Message: "is required"},
		{Location: "body.type_a", Message: "is required"},
		{Location: "body.type_b", Message: "is required"},
	}, resp.Errors)
}

func TestNewErrorResponse_ValidationErrorLocations(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/type-relationships/post/page/basic", nil)
	err := &domain.ValidationError{Fields: map[string]string{
		"path.typeA": "is not a valid path segment",
		"body":       "invalid JSON",
	}}

	resp := dto.NewErrorResponse(r, err)

	assert.Equal(t, []dto.ErrorDetail{
		{Location: "body", Message: "invalid JSON"},
		{Location: "path.typeA", Message: "is not a valid path segment"},
	}, resp.Errors)
}

func TestNewErrorResponse_NoFieldErrorsForOtherErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, dto.NewErrorResponse(r, domain.ErrNotFound).Errors)
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/actor-relationships", nil)
	rec := httptest.NewRecorder()

	dto.WriteErrorResponse(rec, r, fmt.Errorf("type-to-actor post@owner: %w", relationship.ErrDuplicate))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dto.DuplicateRelationshipType, body["type"])
	assert.Equal(t, float64(http.StatusConflict), body["status"])
	assert.Contains(t, body["detail"], "post@owner")
	assert.NotContains(t, body, "errors")
}
