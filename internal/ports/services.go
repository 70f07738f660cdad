package ports

import (
	"context"

	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
)

// RelationshipService defines the service port for relationship catalog use cases.
// Implemented by the application layer; called by inbound adapters (handlers)
// and by the startup code that applies configured declarations.
type RelationshipService interface {
	// DefineTypeToType declares a named relationship between two content types.
	// Returns domain.ErrValidation for blank identifiers and an error wrapping
	// relationship.ErrDuplicate (and domain.ErrConflict) for duplicates.
	DefineTypeToType(ctx context.Context, typeA, typeB, name string) (*relationship.TypeToType, error)

	// DefineTypeToActor declares a relationship between a content type and an actor role.
	DefineTypeToActor(ctx context.Context, typ, role string) (*relationship.TypeToActor, error)

	// GetTypeToType returns the relationship regardless of argument order.
	// Returns domain.ErrNotFound if it has not been defined.
	GetTypeToType(ctx context.Context, typeA, typeB, name string) (*relationship.TypeToType, error)

	// GetTypeToActor returns the relationship for (typ, role).
	// Returns domain.ErrNotFound if it has not been defined.
	GetTypeToActor(ctx context.Context, typ, role string) (*relationship.TypeToActor, error)

	// TypeToTypeExists reports whether the relationship has been defined.
	TypeToTypeExists(ctx context.Context, typeA, typeB, name string) bool

	// TypeToActorExists reports whether the relationship has been defined.
	TypeToActorExists(ctx context.Context, typ, role string) bool

	// ListTypeToTypes returns all type-to-type relationships, or only those
	// involving typ when it is non-empty.
	ListTypeToTypes(ctx context.Context, typ string) []*relationship.TypeToType

	// ListTypeToActors returns all type-to-actor relationships.
	ListTypeToActors(ctx context.Context) []*relationship.TypeToActor

	// Declare defines every relationship in decls. All failures are collected
	// and returned joined; successful definitions are kept.
	Declare(ctx context.Context, decls Declarations) error

	// SyncHost registers every catalog entry with the host platform. Uses
	// partial success semantics: per-entry failures are reported in
	// SyncResult.Errors. Returns domain.ErrUnavailable when no host is configured.
	SyncHost(ctx context.Context) (*SyncResult, error)
}

// TypeToTypeDeclaration is a configured type-to-type relationship.
type TypeToTypeDeclaration struct {
	TypeA string
	TypeB string
	Name  string
}

// TypeToActorDeclaration is a configured type-to-actor relationship.
type TypeToActorDeclaration struct {
	Type string
	Role string
}

// Declarations is a batch of relationships to define at startup.
type Declarations struct {
	TypeToType  []TypeToTypeDeclaration
	TypeToActor []TypeToActorDeclaration
}

// SyncError records a single failed host registration.
type SyncError struct {
	Kind relationship.Kind
	ID   string
	Err  error
}

// SyncResult holds the outcome of a host sync.
type SyncResult struct {
	Registered int
	Errors     []SyncError
}
