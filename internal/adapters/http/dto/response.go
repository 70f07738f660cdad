// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
	"github.com/jsamuelsen11/relationship-registry/internal/ports"
)

// TypeToTypeResponse is a type-to-type relationship in HTTP responses.
type TypeToTypeResponse struct {
	ID        string `json:"id"`
	TypeA     string `json:"type_a"`
	TypeB     string `json:"type_b"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	// Peer is set only in listings filtered by type: the type on the other
	// side from the filter.
	Peer string `json:"peer,omitempty"`
}

// TypeToTypeListResponse wraps a list of type-to-type relationships.
type TypeToTypeListResponse struct {
	Relationships []TypeToTypeResponse `json:"relationships"`
	Count         int                  `json:"count"`
}

// TypeToActorResponse is a type-to-actor relationship in HTTP responses.
type TypeToActorResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// TypeToActorListResponse wraps a list of type-to-actor relationships.
type TypeToActorListResponse struct {
	Relationships []TypeToActorResponse `json:"relationships"`
	Count         int                   `json:"count"`
}

// SyncErrorResponse describes one failed host registration.
type SyncErrorResponse struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Error string `json:"error"`
}

// SyncResponse is the body returned by POST /api/v1/host/sync.
type SyncResponse struct {
	Registered int                 `json:"registered"`
	Failed     int                 `json:"failed"`
	Errors     []SyncErrorResponse `json:"errors,omitempty"`
}

// ToTypeToTypeResponse converts a domain relationship to its response DTO.
func ToTypeToTypeResponse(rel *relationship.TypeToType) TypeToTypeResponse {
	return TypeToTypeResponse{
		ID:        rel.ID,
		TypeA:     rel.TypeA,
		TypeB:     rel.TypeB,
		Name:      rel.Name,
		CreatedAt: rel.CreatedAt.Format(time.RFC3339),
	}
}

// ToTypeToTypeListResponse converts a slice of relationships.
func ToTypeToTypeListResponse(rels []*relationship.TypeToType) TypeToTypeListResponse {
	items := make([]TypeToTypeResponse, len(rels))
	for i, rel := range rels {
		items[i] = ToTypeToTypeResponse(rel)
	}
	return TypeToTypeListResponse{Relationships: items, Count: len(items)}
}

// ToTypeToTypeListResponseFor converts the relationships involving typ and
// fills in each one's peer type.
func ToTypeToTypeListResponseFor(rels []*relationship.TypeToType, typ string) TypeToTypeListResponse {
	out := ToTypeToTypeListResponse(rels)
	for i, rel := range rels {
		out.Relationships[i].Peer, _ = rel.Other(typ)
	}
	return out
}

// ToTypeToActorResponse converts a domain relationship to its response DTO.
func ToTypeToActorResponse(rel *relationship.TypeToActor) TypeToActorResponse {
	return TypeToActorResponse{
		ID:        rel.ID,
		Type:      rel.Type,
		Role:      rel.Role,
		CreatedAt: rel.CreatedAt.Format(time.RFC3339),
	}
}

// ToTypeToActorListResponse converts a slice of relationships.
func ToTypeToActorListResponse(rels []*relationship.TypeToActor) TypeToActorListResponse {
	items := make([]TypeToActorResponse, len(rels))
	for i, rel := range rels {
		items[i] = ToTypeToActorResponse(rel)
	}
	return TypeToActorListResponse{Relationships: items, Count: len(items)}
}

// ToSyncResponse converts a host sync result.
func ToSyncResponse(res *ports.SyncResult) SyncResponse {
	out := SyncResponse{Registered: res.Registered, Failed: len(res.Errors)}
	for _, se := range res.Errors {
		out.Errors = append(out.Errors, SyncErrorResponse{
			Kind:  se.Kind.String(),
			ID:    se.ID,
			Error: se.Err.Error(),
		})
	}
	return out
}
