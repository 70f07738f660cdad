package host

import (
	"net/url"

	"github.com/jsamuelsen11/relationship-registry/internal/domain/relationship"
)

// The host stores type-to-type relationships as "post-to-post" connections
// and type-to-actor relationships as "post-to-user" connections.
const (
	postToPostPath = "/api/v1/registrations/post-to-post/"
	postToUserPath = "/api/v1/registrations/post-to-user/"
)

// postToPostDTO is the host's registration body for a connection between
// two content types.
type postToPostDTO struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Name       string `json:"name"`
	Reciprocal bool   `json:"reciprocal"`
}

// postToUserDTO is the host's registration body for a connection between a
// content type and a user role.
type postToUserDTO struct {
	PostType string `json:"post_type"`
	Role     string `json:"role"`
}

// postToPostResource returns the host path and body for rel, addressed by
// its identity rather than its catalog ID, which changes on every define.
// Both sides are sent in canonical order so that (a, b) and (b, a) land on
// one resource with one body. Catalog relationships are symmetric, so the
// host is always told to show the connection from both sides.
func postToPostResource(rel *relationship.TypeToType) (string, postToPostDTO) {
	low, high := rel.CanonicalPair()
	path := postToPostPath + url.PathEscape(low) + "/" + url.PathEscape(high) + "/" + url.PathEscape(rel.Name)

	return path, postToPostDTO{
		From:       low,
		To:         high,
		Name:       rel.Name,
		Reciprocal: true,
	}
}

func postToUserResource(rel *relationship.TypeToActor) (string, postToUserDTO) {
	path := postToUserPath + url.PathEscape(rel.Type) + "/" + url.PathEscape(rel.Role)
	return path, postToUserDTO{PostType: rel.Type, Role: rel.Role}
}
