// Package identity holds the entity values persisted by the stores. The
// types are plain data holders; all behavior lives in the table accessors
// and store façades.
package identity

import "github.com/google/uuid"

// User is a row of "AspNetUsers". The Id is an opaque, globally unique
// string. Email, PasswordHash and SecurityStamp use the empty string for
// "not set"; the storage layer maps that to SQL NULL and back.
type User struct {
	ID             string
	UserName       string
	Email          string
	EmailConfirmed bool
	PasswordHash   string
	SecurityStamp  string
}

// NewUser returns a User with a freshly generated id.
func NewUser(userName string) *User {
	return &User{
		ID:       uuid.NewString(),
		UserName: userName,
	}
}
