package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/relationship-registry/internal/adapters/http/dto"
	"github.com/jsamuelsen11/relationship-registry/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/relationship-registry/internal/domain"
	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
	"github.com/jsamuelsen11/relationship-registry/internal/ports"
	"github.com/jsamuelsen11/relationship-registry/mocks"
)

func postPage() *relationship.TypeToType {
	return &relationship.TypeToType{ID: "tt-1", TypeA: "post", TypeB: "page", Name: "basic", CreatedAt: testTime}
}

func postOwner() *relationship.TypeToActor {
	return &relationship.TypeToActor{ID: "ta-1", Type: "post", Role: "owner", CreatedAt: testTime}
}

func TestDefineTypeToType(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().DefineTypeToType(mock.Anything, "post", "page", "basic").Return(postPage(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/type-relationships",
		jsonBody(t, dto.DefineTypeToTypeRequest{TypeA: "post", TypeB: "page", Name: "basic"}))
	handlers.NewRelationshipHandler(svc).DefineTypeToType(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, dto.ToTypeToTypeResponse(postPage()), decodeJSON[dto.TypeToTypeResponse](t, rec))
}

func TestDefineTypeToType_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
	}{
		{name: "malformed json", body: `{"type_a":`, wantCode: http.StatusBadRequest},
		{name: "unknown field", body: `{"type_a":"post","type_b":"page","name":"basic","extra":1}`, wantCode: http.StatusBadRequest},
		{name: "missing name", body: `{"type_a":"post","type_b":"page"}`, wantCode: http.StatusBadRequest},
		{
			name:     "duplicate",
			body:     `{"type_a":"page","type_b":"post","name":"basic"}`,
			svcErr:   fmt.Errorf("type-to-type page<->post#basic: %w", relationship.ErrDuplicate),
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockRelationshipService(t)
			if tt.svcErr != nil {
				svc.EXPECT().DefineTypeToType(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/type-relationships", strings.NewReader(tt.body))
			handlers.NewRelationshipHandler(svc).DefineTypeToType(rec, req)

			requireStatus(t, rec, tt.wantCode)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestGetTypeToType(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().GetTypeToType(mock.Anything, "page", "post", "basic").Return(postPage(), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/type-relationships/page/post/basic", nil),
		map[string]string{"typeA": "page", "typeB": "post", "name": "basic"})
	handlers.NewRelationshipHandler(svc).GetTypeToType(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TypeToTypeResponse](t, rec)
	assert.Equal(t, "post", resp.TypeA, "declared order is preserved")
	assert.Equal(t, "page", resp.TypeB)
}

func TestGetTypeToType_NotFound(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().GetTypeToType(mock.Anything, "post", "user", "basic").
		Return(nil, fmt.Errorf("type-to-type relationship: %w", domain.ErrNotFound))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/", nil),
		map[string]string{"typeA": "post", "typeB": "user", "name": "basic"})
	handlers.NewRelationshipHandler(svc).GetTypeToType(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetTypeToType_EscapedSegments(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().GetTypeToType(mock.Anything, "blog post", "page", "see/also").Return(postPage(), nil)

	// The %2F forces a RawPath, so chi hands over the escaped segments.
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/type-relationships/blog%20post/page/see%2Falso", nil),
		map[string]string{"typeA": "blog%20post", "typeB": "page", "name": "see%2Falso"})
	handlers.NewRelationshipHandler(svc).GetTypeToType(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestGetTypeToType_DecodedSegmentsPassThrough(t *testing.T) {
	t.Parallel()

	// Without a RawPath chi matches the decoded path, so a literal percent
	// sign in a parameter is data and must not be unescaped again.
	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().GetTypeToType(mock.Anything, "50%", "a%41", "basic").Return(postPage(), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/", nil),
		map[string]string{"typeA": "50%", "typeB": "a%41", "name": "basic"})
	handlers.NewRelationshipHandler(svc).GetTypeToType(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestTypeToTypeExists(t *testing.T) {
	t.Parallel()

	for _, exists := range []bool{true, false} {
		t.Run(fmt.Sprint(exists), func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockRelationshipService(t)
			svc.EXPECT().TypeToTypeExists(mock.Anything, "post", "page", "basic").Return(exists)

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodHead, "/", nil),
				map[string]string{"typeA": "post", "typeB": "page", "name": "basic"})
			handlers.NewRelationshipHandler(svc).TypeToTypeExists(rec, req)

			want := http.StatusNotFound
			if exists {
				want = http.StatusOK
			}
			requireStatus(t, rec, want)
			assert.Zero(t, rec.Body.Len())
		})
	}
}

func TestListTypeToTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		wantType string
		wantPeer string
	}{
		{name: "all", url: "/api/v1/type-relationships", wantType: ""},
		{name: "filtered", url: "/api/v1/type-relationships?type=post", wantType: "post", wantPeer: "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockRelationshipService(t)
			svc.EXPECT().ListTypeToTypes(mock.Anything, tt.wantType).Return([]*relationship.TypeToType{postPage()})

			rec := httptest.NewRecorder()
			handlers.NewRelationshipHandler(svc).ListTypeToTypes(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			requireStatus(t, rec, http.StatusOK)
			resp := decodeJSON[dto.TypeToTypeListResponse](t, rec)
			assert.Equal(t, 1, resp.Count)
			assert.Equal(t, tt.wantPeer, resp.Relationships[0].Peer)
		})
	}
}

func TestDefineTypeToActor(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().DefineTypeToActor(mock.Anything, "post", "owner").Return(postOwner(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/actor-relationships",
		jsonBody(t, dto.DefineTypeToActorRequest{Type: "post", Role: "owner"}))
	handlers.NewRelationshipHandler(svc).DefineTypeToActor(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, dto.ToTypeToActorResponse(postOwner()), decodeJSON[dto.TypeToActorResponse](t, rec))
}

func TestDefineTypeToActor_Duplicate(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().DefineTypeToActor(mock.Anything, "post", "owner").
		Return(nil, fmt.Errorf("type-to-actor post@owner: %w", relationship.ErrDuplicate))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/actor-relationships",
		jsonBody(t, dto.DefineTypeToActorRequest{Type: "post", Role: "owner"}))
	handlers.NewRelationshipHandler(svc).DefineTypeToActor(rec, req)

	requireStatus(t, rec, http.StatusConflict)
	assert.Equal(t, dto.DuplicateRelationshipType, decodeJSON[dto.ErrorResponse](t, rec).Type)
}

func TestGetTypeToActor(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().GetTypeToActor(mock.Anything, "post", "owner").Return(postOwner(), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"type": "post", "role": "owner"})
	handlers.NewRelationshipHandler(svc).GetTypeToActor(rec, req)

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "ta-1", decodeJSON[dto.TypeToActorResponse](t, rec).ID)
}

func TestTypeToActorExists(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().TypeToActorExists(mock.Anything, "owner", "post").Return(false)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodHead, "/", nil), map[string]string{"type": "owner", "role": "post"})
	handlers.NewRelationshipHandler(svc).TypeToActorExists(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestListTypeToActors(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().ListTypeToActors(mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	handlers.NewRelationshipHandler(svc).ListTypeToActors(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TypeToActorListResponse](t, rec)
	assert.Zero(t, resp.Count)
	assert.NotNil(t, resp.Relationships)
}

func TestSyncHost(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().SyncHost(mock.Anything).Return(&ports.SyncResult{
		Registered: 1,
		Errors:     []ports.SyncError{{Kind: relationship.KindTypeToType, ID: "tt-2", Err: domain.ErrUnavailable}},
	}, nil)

	rec := httptest.NewRecorder()
	handlers.NewRelationshipHandler(svc).SyncHost(rec, httptest.NewRequest(http.MethodPost, "/api/v1/host/sync", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SyncResponse](t, rec)
	assert.Equal(t, 1, resp.Registered)
	assert.Equal(t, 1, resp.Failed)
}

func TestSyncHost_NoHost(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRelationshipService(t)
	svc.EXPECT().SyncHost(mock.Anything).Return(nil, fmt.Errorf("host sync: %w", domain.ErrUnavailable))

	rec := httptest.NewRecorder()
	handlers.NewRelationshipHandler(svc).SyncHost(rec, httptest.NewRequest(http.MethodPost, "/api/v1/host/sync", nil))

	requireStatus(t, rec, http.StatusBadGateway)
}
