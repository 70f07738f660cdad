package registry

import (
	"cmp"

	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
)

// typeToTypeKey identifies a type-to-type relationship independent of the
// order in which its two types were supplied. low <= high under byte-wise
// string comparison.
type typeToTypeKey struct {
	low  string
	high string
	name string
}

// canonicalTypeToType orders the pair so that (a, b) and (b, a) produce the
// same key.
func canonicalTypeToType(typeA, typeB, name string) typeToTypeKey {
	low, high := relationship.CanonicalPair(typeA, typeB)
	return typeToTypeKey{low: low, high: high, name: name}
}

func (k typeToTypeKey) String() string {
	return k.low + "<->" + k.high + "#" + k.name
}

func compareTypeToType(a, b typeToTypeKey) int {
	return cmp.Or(
		cmp.Compare(a.low, b.low),
		cmp.Compare(a.high, b.high),
		cmp.Compare(a.name, b.name),
	)
}

// typeToActorKey is used verbatim; type and role are not interchangeable.
type typeToActorKey struct {
	typ  string
	role string
}

func (k typeToActorKey) String() string {
	return k.typ + "@" + k.role
}

func compareTypeToActor(a, b typeToActorKey) int {
	return cmp.Or(
		cmp.Compare(a.typ, b.typ),
		cmp.Compare(a.role, b.role),
	)
}
