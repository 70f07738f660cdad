package app_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/relationship-registry/internal/app"
	"github.com/jsamuelsen11/relationship-registry/internal/domain"
	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/logging"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/telemetry"
	"github.com/jsamuelsen11/relationship-registry/internal/ports"
	"github.com/jsamuelsen11/relationship-registry/internal/registry"
	"github.com/jsamuelsen11/relationship-registry/mocks"
)

var fixedTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newService(t *testing.T, opts ...app.Option) (*app.RelationshipService, *registry.Registry) {
	t.Helper()

	reg := registry.New(relationship.NewFactory(relationship.WithClock(func() time.Time { return fixedTime })))
	return app.NewRelationshipService(reg, logging.Discard(), opts...), reg
}

func TestNewRelationshipService_NilLogger(t *testing.T) {
	t.Parallel()

	reg := registry.New(relationship.NewFactory())
	svc := app.NewRelationshipService(reg, nil)

	_, err := svc.DefineTypeToType(context.Background(), "post", "page", "basic")
	require.NoError(t, err, "nil logger must not panic")
}

func TestDefineAndGet_TypeToType(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	rel, err := svc.DefineTypeToType(ctx, "post", "page", "basic")
	require.NoError(t, err)
	assert.Equal(t, fixedTime, rel.CreatedAt)

	got, err := svc.GetTypeToType(ctx, "page", "post", "basic")
	require.NoError(t, err)
	assert.Same(t, rel, got)

	assert.True(t, svc.TypeToTypeExists(ctx, "post", "page", "basic"))
	assert.True(t, svc.TypeToTypeExists(ctx, "page", "post", "basic"))
	assert.False(t, svc.TypeToTypeExists(ctx, "post", "page", "related"))
}

func TestDefineAndGet_TypeToActor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	rel, err := svc.DefineTypeToActor(ctx, "post", "owner")
	require.NoError(t, err)

	got, err := svc.GetTypeToActor(ctx, "post", "owner")
	require.NoError(t, err)
	assert.Same(t, rel, got)

	assert.True(t, svc.TypeToActorExists(ctx, "post", "owner"))
	assert.False(t, svc.TypeToActorExists(ctx, "owner", "post"))
}

func TestDefine_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.DefineTypeToType(ctx, "post", "page", "basic")
	require.NoError(t, err)
	_, err = svc.DefineTypeToActor(ctx, "post", "owner")
	require.NoError(t, err)

	tests := []struct {
		name    string
		define  func() error
		wantErr error
	}{
		{
			name:    "type-to-type duplicate swapped",
			define:  func() error { _, err := svc.DefineTypeToType(ctx, "page", "post", "basic"); return err },
			wantErr: relationship.ErrDuplicate,
		},
		{
			name:    "type-to-actor duplicate",
			define:  func() error { _, err := svc.DefineTypeToActor(ctx, "post", "owner"); return err },
			wantErr: relationship.ErrDuplicate,
		},
		{
			name:    "type-to-type blank name",
			define:  func() error { _, err := svc.DefineTypeToType(ctx, "post", "page", " "); return err },
			wantErr: domain.ErrValidation,
		},
		{
			name:    "type-to-actor blank role",
			define:  func() error { _, err := svc.DefineTypeToActor(ctx, "post", ""); return err },
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.define()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, relationship.ErrDuplicate, domain.ErrConflict)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, reg := newService(t)

	_, err := svc.GetTypeToType(ctx, "post", "page", "basic")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetTypeToActor(ctx, "post", "owner")
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 0, reg.Len(), "lookups must not create entries")
}

func TestListTypeToTypes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	for _, d := range [][3]string{{"post", "post", "related"}, {"post", "page", "basic"}, {"page", "media", "gallery"}} {
		_, err := svc.DefineTypeToType(ctx, d[0], d[1], d[2])
		require.NoError(t, err)
	}

	assert.Len(t, svc.ListTypeToTypes(ctx, ""), 3)

	forPost := svc.ListTypeToTypes(ctx, "post")
	require.Len(t, forPost, 2)
	for _, rel := range forPost {
		assert.True(t, rel.Involves("post"))
	}

	assert.Empty(t, svc.ListTypeToTypes(ctx, "user"))
}

func TestListTypeToActors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.DefineTypeToActor(ctx, "post", "owner")
	require.NoError(t, err)
	_, err = svc.DefineTypeToActor(ctx, "post", "contributor")
	require.NoError(t, err)

	got := svc.ListTypeToActors(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "contributor", got[0].Role)
	assert.Equal(t, "owner", got[1].Role)
}

func TestDeclare(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, reg := newService(t)

	err := svc.Declare(ctx, ports.Declarations{
		TypeToType: []ports.TypeToTypeDeclaration{
			{TypeA: "post", TypeB: "post", Name: "related"},
			{TypeA: "post", TypeB: "page", Name: "basic"},
			{TypeA: "page", TypeB: "post", Name: "basic"},
		},
		TypeToActor: []ports.TypeToActorDeclaration{
			{Type: "post", Role: "owner"},
			{Type: "", Role: "owner"},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, relationship.ErrDuplicate)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "type_to_type[2]")
	assert.Contains(t, err.Error(), "type_to_actor[1]")

	assert.Equal(t, 3, reg.Len(), "valid declarations are kept")
}

func TestDeclare_AllValid(t *testing.T) {
	t.Parallel()

	svc, reg := newService(t)

	err := svc.Declare(context.Background(), ports.Declarations{
		TypeToType:  []ports.TypeToTypeDeclaration{{TypeA: "post", TypeB: "page", Name: "basic"}},
		TypeToActor: []ports.TypeToActorDeclaration{{Type: "post", Role: "owner"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
}

func TestDeclare_LogsCatalogSize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	reg := registry.New(relationship.NewFactory())
	svc := app.NewRelationshipService(reg, slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := svc.DefineTypeToActor(context.Background(), "post", "owner")
	require.NoError(t, err)

	err = svc.Declare(context.Background(), ports.Declarations{
		TypeToType: []ports.TypeToTypeDeclaration{
			{TypeA: "post", TypeB: "page", Name: "basic"},
			{TypeA: "page", TypeB: "post", Name: "basic"},
		},
	})
	require.ErrorIs(t, err, relationship.ErrDuplicate)

	out := buf.String()
	assert.Contains(t, out, "relationship declarations applied")
	assert.Contains(t, out, "failed=1")
	assert.Contains(t, out, "catalog_size=2")
}

func TestSyncHost_NoHostClient(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)

	result, err := svc.SyncHost(context.Background())
	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Nil(t, result)
}

func TestSyncHost_RegistersEveryEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	host := mocks.NewMockHostClient(t)
	svc, _ := newService(t, app.WithHostClient(host), app.WithSyncWorkers(2))

	tt, err := svc.DefineTypeToType(ctx, "post", "page", "basic")
	require.NoError(t, err)
	ta, err := svc.DefineTypeToActor(ctx, "post", "owner")
	require.NoError(t, err)

	host.EXPECT().RegisterTypeToType(mock.Anything, tt).Return(nil).Once()
	host.EXPECT().RegisterTypeToActor(mock.Anything, ta).Return(nil).Once()

	result, err := svc.SyncHost(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Registered)
	assert.Empty(t, result.Errors)
}

func TestSyncHost_PartialFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	host := mocks.NewMockHostClient(t)
	svc, _ := newService(t, app.WithHostClient(host))

	related, err := svc.DefineTypeToType(ctx, "post", "post", "related")
	require.NoError(t, err)
	basic, err := svc.DefineTypeToType(ctx, "post", "page", "basic")
	require.NoError(t, err)
	owner, err := svc.DefineTypeToActor(ctx, "post", "owner")
	require.NoError(t, err)

	hostErr := errors.New("host rejected registration")
	host.EXPECT().RegisterTypeToType(mock.Anything, related).Return(nil)
	host.EXPECT().RegisterTypeToType(mock.Anything, basic).Return(hostErr)
	host.EXPECT().RegisterTypeToActor(mock.Anything, owner).Return(domain.ErrUnavailable)

	result, err := svc.SyncHost(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Registered)
	require.Len(t, result.Errors, 2)

	byID := map[string]ports.SyncError{}
	for _, se := range result.Errors {
		byID[se.ID] = se
	}
	assert.Equal(t, relationship.KindTypeToType, byID[basic.ID].Kind)
	assert.ErrorIs(t, byID[basic.ID].Err, hostErr)
	assert.Equal(t, relationship.KindTypeToActor, byID[owner.ID].Kind)
	assert.ErrorIs(t, byID[owner.ID].Err, domain.ErrUnavailable)
}

func TestSyncHost_BoundedWorkers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	host := mocks.NewMockHostClient(t)
	svc, _ := newService(t, app.WithHostClient(host), app.WithSyncWorkers(1))

	for _, role := range []string{"owner", "contributor", "editor", "viewer"} {
		_, err := svc.DefineTypeToActor(ctx, "post", role)
		require.NoError(t, err)
	}

	var active, peak atomic.Int32
	host.EXPECT().RegisterTypeToActor(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *relationship.TypeToActor) error {
			cur := active.Add(1)
			defer active.Add(-1)
			if cur > peak.Load() {
				peak.Store(cur)
			}
			time.Sleep(5 * time.Millisecond)
			return nil
		}).Times(4)

	result, err := svc.SyncHost(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Registered)
	assert.Equal(t, int32(1), peak.Load())
}

func TestSyncHost_EmptyCatalog(t *testing.T) {
	t.Parallel()

	host := mocks.NewMockHostClient(t)
	svc, _ := newService(t, app.WithHostClient(host))

	result, err := svc.SyncHost(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Registered)
	assert.Empty(t, result.Errors)
}

func TestMetrics_DefineAndLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "test")
	require.NoError(t, err)

	svc, _ := newService(t, app.WithMetrics(metrics))

	_, _ = svc.DefineTypeToType(ctx, "post", "page", "basic")
	_, _ = svc.DefineTypeToType(ctx, "page", "post", "basic")
	_, _ = svc.DefineTypeToActor(ctx, "", "owner")
	_ = svc.TypeToTypeExists(ctx, "post", "page", "basic")
	_, _ = svc.GetTypeToActor(ctx, "post", "owner")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				kind, _ := dp.Attributes.Value(telemetry.AttrKind)
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				counts[m.Name+"/"+kind.AsString()+"/"+result.AsString()] += dp.Value
			}
		}
	}

	assert.Equal(t, map[string]int64{
		"relationship.define.total/type_to_type/success":   1,
		"relationship.define.total/type_to_type/duplicate": 1,
		"relationship.define.total/type_to_actor/invalid":  1,
		"relationship.lookup.total/type_to_type/hit":       1,
		"relationship.lookup.total/type_to_actor/miss":     1,
	}, counts)
}
