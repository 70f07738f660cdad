// Package registry provides the in-memory relationship catalog. It records
// type-to-type and type-to-actor relationships, rejects duplicates (including
// type-to-type declarations with the two types swapped), and returns the
// exact value created at definition time on every lookup.
//
// Type-to-type pairs are canonicalized with byte-wise string ordering: the
// smaller type comes first in the storage key. The stored value keeps the
// caller's original order.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
	"github.com/jsamuelsen11/relationship-registry/internal/ports"
)

// Compile-time interface check.
var _ ports.RelationshipRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.RelationshipRegistry].
// Each instance is independent; there is no shared state between registries.
type Registry struct {
	factory relationship.Factory

	mu          sync.RWMutex
	typeToType  map[typeToTypeKey]*relationship.TypeToType
	typeToActor map[typeToActorKey]*relationship.TypeToActor
}

// New creates an empty registry that builds relationship values with factory.
func New(factory relationship.Factory) *Registry {
	return &Registry{
		factory:     factory,
		typeToType:  make(map[typeToTypeKey]*relationship.TypeToType),
		typeToActor: make(map[typeToActorKey]*relationship.TypeToActor),
	}
}

// DefineTypeToType creates and stores a relationship between typeA and typeB.
// The check and the insert happen under one write lock.
func (r *Registry) DefineTypeToType(typeA, typeB, name string) (*relationship.TypeToType, error) {
	key := canonicalTypeToType(typeA, typeB, name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.typeToType[key]; ok {
		return nil, fmt.Errorf("type-to-type %s: %w", key, relationship.ErrDuplicate)
	}

	rel, err := r.factory.NewTypeToType(typeA, typeB, name)
	if err != nil {
		return nil, err
	}

	r.typeToType[key] = rel
	return rel, nil
}

// DefineTypeToActor creates and stores a relationship between typ and role.
func (r *Registry) DefineTypeToActor(typ, role string) (*relationship.TypeToActor, error) {
	key := typeToActorKey{typ: typ, role: role}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.typeToActor[key]; ok {
		return nil, fmt.Errorf("type-to-actor %s: %w", key, relationship.ErrDuplicate)
	}

	rel, err := r.factory.NewTypeToActor(typ, role)
	if err != nil {
		return nil, err
	}

	r.typeToActor[key] = rel
	return rel, nil
}

// TypeToTypeExists reports whether the unordered pair has a relationship named name.
func (r *Registry) TypeToTypeExists(typeA, typeB, name string) bool {
	_, ok := r.GetTypeToType(typeA, typeB, name)
	return ok
}

// TypeToActorExists reports whether (typ, role) has been defined.
func (r *Registry) TypeToActorExists(typ, role string) bool {
	_, ok := r.GetTypeToActor(typ, role)
	return ok
}

// GetTypeToType returns the stored relationship for the unordered pair.
func (r *Registry) GetTypeToType(typeA, typeB, name string) (*relationship.TypeToType, bool) {
	key := canonicalTypeToType(typeA, typeB, name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	rel, ok := r.typeToType[key]
	return rel, ok
}

// GetTypeToActor returns the stored relationship for (typ, role).
func (r *Registry) GetTypeToActor(typ, role string) (*relationship.TypeToActor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rel, ok := r.typeToActor[typeToActorKey{typ: typ, role: role}]
	return rel, ok
}

// TypeToTypes returns a snapshot of every type-to-type relationship, ordered
// by canonical key. The slice is new; the values are the stored pointers.
func (r *Registry) TypeToTypes() []*relationship.TypeToType {
	return r.typeToTypesWhere(func(*relationship.TypeToType) bool { return true })
}

// TypeToTypesFor returns the type-to-type relationships that have typ on
// either side, ordered by canonical key.
func (r *Registry) TypeToTypesFor(typ string) []*relationship.TypeToType {
	return r.typeToTypesWhere(func(rel *relationship.TypeToType) bool {
		return rel.Involves(typ)
	})
}

// TypeToActors returns a snapshot of every type-to-actor relationship,
// ordered by type then role.
func (r *Registry) TypeToActors() []*relationship.TypeToActor {
	r.mu.RLock()
	keys := make([]typeToActorKey, 0, len(r.typeToActor))
	for k := range r.typeToActor {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareTypeToActor)

	rels := make([]*relationship.TypeToActor, len(keys))
	for i, k := range keys {
		rels[i] = r.typeToActor[k]
	}
	r.mu.RUnlock()

	return rels
}

// Len returns the total number of relationships of both kinds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.typeToType) + len(r.typeToActor)
}

func (r *Registry) typeToTypesWhere(match func(*relationship.TypeToType) bool) []*relationship.TypeToType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]typeToTypeKey, 0, len(r.typeToType))
	for k, rel := range r.typeToType {
		if match(rel) {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, compareTypeToType)

	rels := make([]*relationship.TypeToType, len(keys))
	for i, k := range keys {
		rels[i] = r.typeToType[k]
	}
	return rels
}
