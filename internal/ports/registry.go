package ports

import "github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"

// RelationshipRegistry is the process-local catalog of declared relationships.
// Type-to-type lookups ignore the order of the two types; type-to-actor
// lookups are keyed on (type, role) as given. Get and Exists never create
// state, and every Get returns the exact value created by the matching Define.
type RelationshipRegistry interface {
	// DefineTypeToType creates and stores a relationship between typeA and typeB.
	// Returns an error wrapping relationship.ErrDuplicate if the unordered pair
	// already has a relationship with this name.
	DefineTypeToType(typeA, typeB, name string) (*relationship.TypeToType, error)

	// DefineTypeToActor creates and stores a type-to-actor relationship.
	// Returns an error wrapping relationship.ErrDuplicate on collision.
	DefineTypeToActor(typ, role string) (*relationship.TypeToActor, error)

	// TypeToTypeExists reports whether the pair has a relationship with this name.
	TypeToTypeExists(typeA, typeB, name string) bool

	// TypeToActorExists reports whether (typ, role) has been defined.
	TypeToActorExists(typ, role string) bool

	// GetTypeToType returns the stored relationship, or false if absent.
	GetTypeToType(typeA, typeB, name string) (*relationship.TypeToType, bool)

	// GetTypeToActor returns the stored relationship, or false if absent.
	GetTypeToActor(typ, role string) (*relationship.TypeToActor, bool)

	// TypeToTypes returns every type-to-type relationship ordered by key.
	TypeToTypes() []*relationship.TypeToType

	// TypeToTypesFor returns the type-to-type relationships involving typ.
	TypeToTypesFor(typ string) []*relationship.TypeToType

	// TypeToActors returns every type-to-actor relationship ordered by key.
	TypeToActors() []*relationship.TypeToActor

	// Len returns the number of relationships of both kinds.
	Len() int
}
