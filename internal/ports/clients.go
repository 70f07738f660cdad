package ports

import (
	"context"

	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
)

// HostClient defines the client port for the host content platform that
// renders and stores relationship data. Implemented by the host ACL adapter;
// called by the application layer. Registration is idempotent: registering a
// relationship the host already knows succeeds.
type HostClient interface {
	// RegisterTypeToType announces a type-to-type relationship to the host.
	RegisterTypeToType(ctx context.Context, rel *relationship.TypeToType) error

	// RegisterTypeToActor announces a type-to-actor relationship to the host.
	RegisterTypeToActor(ctx context.Context, rel *relationship.TypeToActor) error
}
