// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/relationship-registry/internal/app/fanout"
	"github.com/jsamuelsen11/relationship-registry/internal/domain"
	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/logging"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/telemetry"
	"github.com/jsamuelsen11/relationship-registry/internal/ports"
)

var _ ports.RelationshipService = (*RelationshipService)(nil)

const defaultSyncWorkers = 4

// RelationshipService implements ports.RelationshipService on top of a
// RelationshipRegistry. It adds logging, metrics, not-found translation,
// batch declaration and the push to the host platform. The catalog rules
// themselves live in the registry.
type RelationshipService struct {
	registry    ports.RelationshipRegistry
	host        ports.HostClient
	metrics     *telemetry.Metrics
	logger      *slog.Logger
	syncWorkers int
}

// Option configures a RelationshipService.
type Option func(*RelationshipService)

// WithHostClient enables SyncHost against client.
func WithHostClient(client ports.HostClient) Option {
	return func(s *RelationshipService) { s.host = client }
}

// WithMetrics records define and lookup counters on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *RelationshipService) { s.metrics = m }
}

// WithSyncWorkers bounds the number of concurrent host registrations.
// Values below 1 are ignored.
func WithSyncWorkers(n int) Option {
	return func(s *RelationshipService) {
		if n >= 1 {
			s.syncWorkers = n
		}
	}
}

// NewRelationshipService creates a RelationshipService over registry. A nil
// logger discards output.
func NewRelationshipService(registry ports.RelationshipRegistry, logger *slog.Logger, opts ...Option) *RelationshipService {
	if logger == nil {
		logger = logging.Discard()
	}

	s := &RelationshipService{
		registry:    registry,
		logger:      logger,
		syncWorkers: defaultSyncWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefineTypeToType declares a named relationship between two content types.
func (s *RelationshipService) DefineTypeToType(ctx context.Context, typeA, typeB, name string) (*relationship.TypeToType, error) {
	rel, err := s.registry.DefineTypeToType(typeA, typeB, name)
	s.recordDefine(ctx, relationship.KindTypeToType, err)
	if err != nil {
		s.logDefineFailure(ctx, "DefineTypeToType", err,
			slog.String("type_a", typeA),
			slog.String("type_b", typeB),
			slog.String("name", name),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "type-to-type relationship defined",
		slog.String("id", rel.ID),
		slog.String("type_a", rel.TypeA),
		slog.String("type_b", rel.TypeB),
		slog.String("name", rel.Name),
	)
	return rel, nil
}

// DefineTypeToActor declares a relationship between a content type and an
// actor role.
func (s *RelationshipService) DefineTypeToActor(ctx context.Context, typ, role string) (*relationship.TypeToActor, error) {
	rel, err := s.registry.DefineTypeToActor(typ, role)
	s.recordDefine(ctx, relationship.KindTypeToActor, err)
	if err != nil {
		s.logDefineFailure(ctx, "DefineTypeToActor", err,
			slog.String("type", typ),
			slog.String("role", role),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "type-to-actor relationship defined",
		slog.String("id", rel.ID),
		slog.String("type", rel.Type),
		slog.String("role", rel.Role),
	)
	return rel, nil
}

// GetTypeToType returns the stored relationship for the unordered pair and
// name, or an error wrapping domain.ErrNotFound.
func (s *RelationshipService) GetTypeToType(ctx context.Context, typeA, typeB, name string) (*relationship.TypeToType, error) {
	rel, ok := s.registry.GetTypeToType(typeA, typeB, name)
	s.recordLookup(ctx, relationship.KindTypeToType, ok)
	if !ok {
		return nil, fmt.Errorf("type-to-type relationship %q between %q and %q: %w", name, typeA, typeB, domain.ErrNotFound)
	}
	return rel, nil
}

// GetTypeToActor returns the stored relationship for (typ, role), or an
// error wrapping domain.ErrNotFound.
func (s *RelationshipService) GetTypeToActor(ctx context.Context, typ, role string) (*relationship.TypeToActor, error) {
	rel, ok := s.registry.GetTypeToActor(typ, role)
	s.recordLookup(ctx, relationship.KindTypeToActor, ok)
	if !ok {
		return nil, fmt.Errorf("type-to-actor relationship %q for %q: %w", role, typ, domain.ErrNotFound)
	}
	return rel, nil
}

// TypeToTypeExists reports whether the relationship has been defined.
func (s *RelationshipService) TypeToTypeExists(ctx context.Context, typeA, typeB, name string) bool {
	ok := s.registry.TypeToTypeExists(typeA, typeB, name)
	s.recordLookup(ctx, relationship.KindTypeToType, ok)
	return ok
}

// TypeToActorExists reports whether the relationship has been defined.
func (s *RelationshipService) TypeToActorExists(ctx context.Context, typ, role string) bool {
	ok := s.registry.TypeToActorExists(typ, role)
	s.recordLookup(ctx, relationship.KindTypeToActor, ok)
	return ok
}

// ListTypeToTypes returns every type-to-type relationship, or those
// involving typ when it is non-empty.
func (s *RelationshipService) ListTypeToTypes(_ context.Context, typ string) []*relationship.TypeToType {
	if typ == "" {
		return s.registry.TypeToTypes()
	}
	return s.registry.TypeToTypesFor(typ)
}

// ListTypeToActors returns every type-to-actor relationship.
func (s *RelationshipService) ListTypeToActors(_ context.Context) []*relationship.TypeToActor {
	return s.registry.TypeToActors()
}

// Declare defines every relationship in decls in order. A failed entry does
// not stop the rest; all failures are returned joined.
func (s *RelationshipService) Declare(ctx context.Context, decls ports.Declarations) error {
	var errs []error

	for i, d := range decls.TypeToType {
		if _, err := s.DefineTypeToType(ctx, d.TypeA, d.TypeB, d.Name); err != nil {
			errs = append(errs, fmt.Errorf("type_to_type[%d]: %w", i, err))
		}
	}
	for i, d := range decls.TypeToActor {
		if _, err := s.DefineTypeToActor(ctx, d.Type, d.Role); err != nil {
			errs = append(errs, fmt.Errorf("type_to_actor[%d]: %w", i, err))
		}
	}

	s.logger.InfoContext(ctx, "relationship declarations applied",
		slog.Int("type_to_type", len(decls.TypeToType)),
		slog.Int("type_to_actor", len(decls.TypeToActor)),
		slog.Int("failed", len(errs)),
		slog.Int("catalog_size", s.registry.Len()),
	)

	return errors.Join(errs...)
}

// syncItem is one catalog entry queued for host registration.
type syncItem struct {
	kind     relationship.Kind
	id       string
	register func(context.Context) error
}

// SyncHost registers every catalog entry with the host platform using at
// most syncWorkers concurrent calls. Individual failures are collected in
// the result; the error return is reserved for a missing host client.
func (s *RelationshipService) SyncHost(ctx context.Context) (*ports.SyncResult, error) {
	if s.host == nil {
		return nil, fmt.Errorf("host sync: no host client configured: %w", domain.ErrUnavailable)
	}

	start := time.Now()
	items := s.syncItems()

	results := fanout.Run(ctx, s.syncWorkers, items, func(ctx context.Context, it syncItem) (struct{}, error) {
		return struct{}{}, it.register(ctx)
	})

	out := &ports.SyncResult{}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.SyncError{Kind: items[i].kind, ID: items[i].id, Err: r.Err})
			s.logger.ErrorContext(ctx, "failed to register relationship with host",
				slog.String("operation", "SyncHost"),
				slog.String("kind", items[i].kind.String()),
				slog.String("id", items[i].id),
				slog.Any("error", r.Err),
			)
			continue
		}
		out.Registered++
	}

	if s.metrics != nil {
		s.metrics.HostSyncDuration.Record(ctx, time.Since(start).Seconds())
	}

	s.logger.InfoContext(ctx, "host sync finished",
		slog.Int("total", len(items)),
		slog.Int("registered", out.Registered),
		slog.Int("failed", len(out.Errors)),
		slog.Duration("duration", time.Since(start)),
	)

	return out, nil
}

func (s *RelationshipService) syncItems() []syncItem {
	typeToTypes := s.registry.TypeToTypes()
	typeToActors := s.registry.TypeToActors()

	items := make([]syncItem, 0, len(typeToTypes)+len(typeToActors))
	for _, rel := range typeToTypes {
		items = append(items, syncItem{
			kind: relationship.KindTypeToType,
			id:   rel.ID,
			register: func(ctx context.Context) error {
				return s.host.RegisterTypeToType(ctx, rel)
			},
		})
	}
	for _, rel := range typeToActors {
		items = append(items, syncItem{
			kind: relationship.KindTypeToActor,
			id:   rel.ID,
			register: func(ctx context.Context) error {
				return s.host.RegisterTypeToActor(ctx, rel)
			},
		})
	}
	return items
}

// logDefineFailure logs duplicates and validation failures at WARN, since
// they are caller mistakes, and anything else at ERROR.
func (s *RelationshipService) logDefineFailure(ctx context.Context, op string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	msg := "failed to define relationship"
	if errors.Is(err, relationship.ErrDuplicate) || errors.Is(err, domain.ErrValidation) {
		level = slog.LevelWarn
		msg = "relationship define rejected"
	}

	attrs = append([]slog.Attr{slog.String("operation", op)}, attrs...)
	attrs = append(attrs, slog.Any("error", err))
	s.logger.LogAttrs(ctx, level, msg, attrs...)
}

func (s *RelationshipService) recordDefine(ctx context.Context, kind relationship.Kind, err error) {
	if s.metrics == nil {
		return
	}

	result := telemetry.ResultSuccess
	switch {
	case err == nil:
	case errors.Is(err, relationship.ErrDuplicate):
		result = telemetry.ResultDuplicate
	case errors.Is(err, domain.ErrValidation):
		result = telemetry.ResultInvalid
	default:
		result = telemetry.ResultError
	}

	s.metrics.RelationshipDefineTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrKind.String(kind.String()),
		telemetry.AttrResult.String(result),
	))
}

func (s *RelationshipService) recordLookup(ctx context.Context, kind relationship.Kind, hit bool) {
	if s.metrics == nil {
		return
	}

	result := telemetry.ResultMiss
	if hit {
		result = telemetry.ResultHit
	}

	s.metrics.RelationshipLookupTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrKind.String(kind.String()),
		telemetry.AttrResult.String(result),
	))
}
