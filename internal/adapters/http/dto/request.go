package dto

import (
	"strings"

	"github.com/jsamuelsen11/relationship-registry/internal/domain"
)

const msgRequired = "is required"

// DefineTypeToTypeRequest is the JSON body for POST /api/v1/type-relationships.
type DefineTypeToTypeRequest struct {
	TypeA string `json:"type_a"`
	TypeB string `json:"type_b"`
	Name  string `json:"name"`
}

// Validate reports missing fields as a *domain.ValidationError.
func (r *DefineTypeToTypeRequest) Validate() error {
	return required(map[string]string{
		"type_a": r.TypeA,
		"type_b": r.TypeB,
		"name":   r.Name,
	})
}

// DefineTypeToActorRequest is the JSON body for POST /api/v1/actor-relationships.
type DefineTypeToActorRequest struct {
	Type string `json:"type"`
	Role string `json:"role"`
}

// Validate reports missing fields as a *domain.ValidationError.
func (r *DefineTypeToActorRequest) Validate() error {
	return required(map[string]string{
		"type": r.Type,
		"role": r.Role,
	})
}

func required(values map[string]string) error {
	fields := make(map[string]string)
	for name, v := range values {
		if strings.TrimSpace(v) == "" {
			fields[name] = msgRequired
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
