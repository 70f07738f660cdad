// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/relationship-registry/internal/adapters/http/dto"
	"github.com/jsamuelsen11/relationship-registry/internal/ports"
)

// RelationshipHandler serves the relationship catalog and the host sync
// trigger.
type RelationshipHandler struct {
	svc ports.RelationshipService
}

// NewRelationshipHandler creates a RelationshipHandler.
func NewRelationshipHandler(svc ports.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{svc: svc}
}

// ListTypeToTypes handles GET /api/v1/type-relationships. The optional
// ?type= query narrows the list to relationships involving that type and
// reports each one's peer.
func (h *RelationshipHandler) ListTypeToTypes(w http.ResponseWriter, r *http.Request) {
	typ := r.URL.Query().Get("type")
	rels := h.svc.ListTypeToTypes(r.Context(), typ)
	if typ == "" {
		writeJSON(w, r, http.StatusOK, dto.ToTypeToTypeListResponse(rels))
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTypeToTypeListResponseFor(rels, typ))
}

// DefineTypeToType handles POST /api/v1/type-relationships.
func (h *RelationshipHandler) DefineTypeToType(w http.ResponseWriter, r *http.Request) {
	var req dto.DefineTypeToTypeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rel, err := h.svc.DefineTypeToType(r.Context(), req.TypeA, req.TypeB, req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTypeToTypeResponse(rel))
}

// GetTypeToType handles GET /api/v1/type-relationships/{typeA}/{typeB}/{name}.
// The two types may be given in either order.
func (h *RelationshipHandler) GetTypeToType(w http.ResponseWriter, r *http.Request) {
	p, err := pathParams(r, "typeA", "typeB", "name")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rel, err := h.svc.GetTypeToType(r.Context(), p[0], p[1], p[2])
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTypeToTypeResponse(rel))
}

// TypeToTypeExists handles HEAD /api/v1/type-relationships/{typeA}/{typeB}/{name}.
func (h *RelationshipHandler) TypeToTypeExists(w http.ResponseWriter, r *http.Request) {
	p, err := pathParams(r, "typeA", "typeB", "name")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	writeExists(w, h.svc.TypeToTypeExists(r.Context(), p[0], p[1], p[2]))
}

// ListTypeToActors handles GET /api/v1/actor-relationships.
func (h *RelationshipHandler) ListTypeToActors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToTypeToActorListResponse(h.svc.ListTypeToActors(r.Context())))
}

// DefineTypeToActor handles POST /api/v1/actor-relationships.
func (h *RelationshipHandler) DefineTypeToActor(w http.ResponseWriter, r *http.Request) {
	var req dto.DefineTypeToActorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rel, err := h.svc.DefineTypeToActor(r.Context(), req.Type, req.Role)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTypeToActorResponse(rel))
}

// GetTypeToActor handles GET /api/v1/actor-relationships/{type}/{role}.
func (h *RelationshipHandler) GetTypeToActor(w http.ResponseWriter, r *http.Request) {
	p, err := pathParams(r, "type", "role")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rel, err := h.svc.GetTypeToActor(r.Context(), p[0], p[1])
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTypeToActorResponse(rel))
}

// TypeToActorExists handles HEAD /api/v1/actor-relationships/{type}/{role}.
func (h *RelationshipHandler) TypeToActorExists(w http.ResponseWriter, r *http.Request) {
	p, err := pathParams(r, "type", "role")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	writeExists(w, h.svc.TypeToActorExists(r.Context(), p[0], p[1]))
}

// SyncHost handles POST /api/v1/host/sync. Per-entry failures are reported
// in the body with a 200; 502 means no host is configured.
func (h *RelationshipHandler) SyncHost(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SyncHost(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSyncResponse(res))
}

func writeExists(w http.ResponseWriter, ok bool) {
	if ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}
