// Package http provides the inbound HTTP adapter: routing for the
// relationship registry API and the server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/relationship-registry/internal/adapters/http/dto"
	"github.com/jsamuelsen11/relationship-registry/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/relationship-registry/internal/domain"
)

// NewRouter registers the health and relationship routes and installs
// middlewares globally, outermost first.
func NewRouter(
	relationshipHandler *handlers.RelationshipHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s %s: %w", req.Method, req.URL.Path, domain.ErrNotFound))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/type-relationships", func(r chi.Router) {
			r.Get("/", relationshipHandler.ListTypeToTypes)
			r.Post("/", relationshipHandler.DefineTypeToType)
			r.Get("/{typeA}/{typeB}/{name}", relationshipHandler.GetTypeToType)
			r.Head("/{typeA}/{typeB}/{name}", relationshipHandler.TypeToTypeExists)
		})

		r.Route("/actor-relationships", func(r chi.Router) {
			r.Get("/", relationshipHandler.ListTypeToActors)
			r.Post("/", relationshipHandler.DefineTypeToActor)
			r.Get("/{type}/{role}", relationshipHandler.GetTypeToActor)
			r.Head("/{type}/{role}", relationshipHandler.TypeToActorExists)
		})

		r.Post("/host/sync", relationshipHandler.SyncHost)
	})

	return r
}
