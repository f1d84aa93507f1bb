package store

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/dmitrijs2005/identitypg/internal/db"
	"github.com/dmitrijs2005/identitypg/internal/identity"
	"github.com/dmitrijs2005/identitypg/internal/tables"
	"github.com/google/uuid"
)

// RoleStore implements role persistence for the hosting framework.
type RoleStore struct {
	database *db.Database
	roles    *tables.Roles
}

// NewRoleStore builds a RoleStore over an existing Database. The store
// takes ownership: Close releases the Database.
func NewRoleStore(database *db.Database) *RoleStore {
	return &RoleStore{
		database: database,
		roles:    tables.NewRoles(database),
	}
}

// OpenRoleStore is a convenience factory that constructs a Database for
// the given DSN and wraps it in a RoleStore.
func OpenRoleStore(dsn string) (*RoleStore, error) {
	database, err := db.Open(dsn)
	if err != nil {
		return nil, err
	}
	return NewRoleStore(database), nil
}

// Database exposes the underlying connection wrapper.
func (s *RoleStore) Database() *db.Database {
	return s.database
}

// Close releases the underlying Database. Safe to call multiple times.
func (s *RoleStore) Close() error {
	return s.database.Close()
}

// Create inserts a new role. An id is generated when the entity has none.
func (s *RoleStore) Create(ctx context.Context, role *identity.Role) error {
	if role == nil {
		return fmt.Errorf("%w: role", common.ErrInvalidArgument)
	}
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	return s.roles.Insert(ctx, role)
}

// Update renames the role.
func (s *RoleStore) Update(ctx context.Context, role *identity.Role) error {
	if role == nil {
		return fmt.Errorf("%w: role", common.ErrInvalidArgument)
	}
	return s.roles.Update(ctx, role)
}

// Delete removes the role row.
func (s *RoleStore) Delete(ctx context.Context, role *identity.Role) error {
	if role == nil {
		return fmt.Errorf("%w: role", common.ErrInvalidArgument)
	}
	return s.roles.Delete(ctx, role.ID)
}

// FindByID returns the role with the given id, or common.ErrNotFound.
func (s *RoleStore) FindByID(ctx context.Context, roleID string) (*identity.Role, error) {
	return s.roles.GetRoleByID(ctx, roleID)
}

// FindByName returns the first role with the given name, or
// common.ErrNotFound.
func (s *RoleStore) FindByName(ctx context.Context, roleName string) (*identity.Role, error) {
	return s.roles.GetRoleByName(ctx, roleName)
}

// All is part of the framework's queryable-role contract but is not
// implemented by this store.
func (s *RoleStore) All(ctx context.Context) ([]*identity.Role, error) {
	return nil, fmt.Errorf("%w: enumerating roles", common.ErrNotSupported)
}
