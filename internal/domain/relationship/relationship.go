// Package relationship defines the relationship values held by the registry:
// symmetric type-to-type relationships and type-to-actor (role) relationships.
package relationship

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/relationship-registry/internal/domain"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// ErrDuplicate is returned when a relationship is defined a second time under
// the same key. It wraps domain.ErrConflict.
var ErrDuplicate = fmt.Errorf("duplicate relationship: %w", domain.ErrConflict)

// Kind distinguishes the two relationship categories in logs, metrics and
// host registrations.
type Kind string

const (
	KindTypeToType  Kind = "type_to_type"
	KindTypeToActor Kind = "type_to_actor"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// TypeToType is a named, symmetric relationship between two content types.
// TypeA and TypeB are kept in the order the caller declared them; the pair is
// unordered for uniqueness and lookup purposes.
type TypeToType struct {
	ID        string
	TypeA     string
	TypeB     string
	Name      string
	CreatedAt time.Time
}

// Validate checks that every identifier is present.
// Returns a *domain.ValidationError with per-field details, or nil.
func (r *TypeToType) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.TypeA) == "" {
		fields["type_a"] = msgRequired
	}
	if strings.TrimSpace(r.TypeB) == "" {
		fields["type_b"] = msgRequired
	}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CanonicalPair orders two types byte-wise so that (a, b) and (b, a) yield
// the same pair. It defines the identity of a type-to-type relationship.
func CanonicalPair(typeA, typeB string) (low, high string) {
	if typeB < typeA {
		return typeB, typeA
	}
	return typeA, typeB
}

// CanonicalPair returns the relationship's types in canonical order.
func (r *TypeToType) CanonicalPair() (low, high string) {
	return CanonicalPair(r.TypeA, r.TypeB)
}

// Involves reports whether typ is one side of the relationship.
func (r *TypeToType) Involves(typ string) bool {
	return r.TypeA == typ || r.TypeB == typ
}

// Other returns the type on the opposite side from typ. For a self-relationship
// the same type is returned. The second result is false if typ is not involved.
func (r *TypeToType) Other(typ string) (string, bool) {
	switch typ {
	case r.TypeA:
		return r.TypeB, true
	case r.TypeB:
		return r.TypeA, true
	default:
		return "", false
	}
}

// TypeToActor relates a content type to the role an actor plays for it
// (for example "post" and "owner"). Type and Role are distinct axes.
type TypeToActor struct {
	ID        string
	Type      string
	Role      string
	CreatedAt time.Time
}

// Validate checks that the type and role are present.
func (r *TypeToActor) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Type) == "" {
		fields["type"] = msgRequired
	}
	if strings.TrimSpace(r.Role) == "" {
		fields["role"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
