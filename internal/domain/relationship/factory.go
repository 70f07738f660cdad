package relationship

import (
	"time"

	"github.com/google/uuid"
)

// Factory constructs relationship values for the registry. Implementations
// must return a new value on every call.
type Factory interface {
	NewTypeToType(typeA, typeB, name string) (*TypeToType, error)
	NewTypeToActor(typ, role string) (*TypeToActor, error)
}

// FactoryOption configures a DefaultFactory.
type FactoryOption func(*DefaultFactory)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) FactoryOption {
	return func(f *DefaultFactory) {
		f.now = now
	}
}

// DefaultFactory validates its arguments and stamps each value with a random
// UUID and a UTC creation time.
type DefaultFactory struct {
	now func() time.Time
}

// Compile-time interface check.
var _ Factory = (*DefaultFactory)(nil)

// NewFactory creates a DefaultFactory.
func NewFactory(opts ...FactoryOption) *DefaultFactory {
	f := &DefaultFactory{now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewTypeToType returns a new TypeToType holding the arguments in the order given.
func (f *DefaultFactory) NewTypeToType(typeA, typeB, name string) (*TypeToType, error) {
	r := &TypeToType{
		ID:        uuid.NewString(),
		TypeA:     typeA,
		TypeB:     typeB,
		Name:      name,
		CreatedAt: f.now().UTC(),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// NewTypeToActor returns a new TypeToActor.
func (f *DefaultFactory) NewTypeToActor(typ, role string) (*TypeToActor, error) {
	r := &TypeToActor{
		ID:        uuid.NewString(),
		Type:      typ,
		Role:      role,
		CreatedAt: f.now().UTC(),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
