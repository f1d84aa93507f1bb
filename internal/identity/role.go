package identity

import "github.com/google/uuid"

// Role is a row of "AspNetRoles". Names are stored case-sensitively and
// expected to be unique, though the schema does not enforce it; lookups
// by name return the first match.
type Role struct {
	ID   string
	Name string
}

// NewRole returns a Role with a freshly generated id.
func NewRole(name string) *Role {
	return &Role{
		ID:   uuid.NewString(),
		Name: name,
	}
}
