package tables

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/dmitrijs2005/identitypg/internal/db"
	"github.com/dmitrijs2005/identitypg/internal/identity"
)

// Roles provides access to the "AspNetRoles" table. Role names are
// compared case-sensitively.
type Roles struct {
	db *db.Database
}

func NewRoles(database *db.Database) *Roles {
	return &Roles{db: database}
}

// Insert adds a new role row.
func (t *Roles) Insert(ctx context.Context, role *identity.Role) error {
	if role == nil {
		return fmt.Errorf("%w: role", common.ErrInvalidArgument)
	}

	query := `INSERT INTO "AspNetRoles" ("Id", "Name") VALUES ($1, $2)`

	_, err := t.db.Execute(ctx, query, role.ID, role.Name)
	return err
}

// Update renames the role. Name is the only mutable column.
func (t *Roles) Update(ctx context.Context, role *identity.Role) error {
	if role == nil {
		return fmt.Errorf("%w: role", common.ErrInvalidArgument)
	}

	query := `UPDATE "AspNetRoles" SET "Name" = $1 WHERE "Id" = $2`

	_, err := t.db.Execute(ctx, query, role.Name, role.ID)
	return err
}

// Delete removes the role row. Membership rows in "AspNetUserRoles" are
// not touched.
func (t *Roles) Delete(ctx context.Context, roleID string) error {
	if roleID == "" {
		return fmt.Errorf("%w: roleID", common.ErrInvalidArgument)
	}

	query := `DELETE FROM "AspNetRoles" WHERE "Id" = $1`

	_, err := t.db.Execute(ctx, query, roleID)
	return err
}

// GetRoleName resolves a role id to its name, or common.ErrNotFound.
func (t *Roles) GetRoleName(ctx context.Context, roleID string) (string, error) {
	if roleID == "" {
		return "", fmt.Errorf("%w: roleID", common.ErrInvalidArgument)
	}

	query := `SELECT "Name" FROM "AspNetRoles" WHERE "Id" = $1`

	name, ok, err := t.db.QueryValue(ctx, query, roleID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrNotFound
	}
	return name, nil
}

// GetRoleID resolves a role name to an id, or common.ErrNotFound. The
// schema does not enforce name uniqueness; the first match wins.
func (t *Roles) GetRoleID(ctx context.Context, roleName string) (string, error) {
	if roleName == "" {
		return "", fmt.Errorf("%w: roleName", common.ErrInvalidArgument)
	}

	query := `SELECT "Id" FROM "AspNetRoles" WHERE "Name" = $1`

	id, ok, err := t.db.QueryValue(ctx, query, roleName)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrNotFound
	}
	return id, nil
}

// GetRoleByID returns the role with the given id, or common.ErrNotFound.
func (t *Roles) GetRoleByID(ctx context.Context, roleID string) (*identity.Role, error) {
	name, err := t.GetRoleName(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return &identity.Role{ID: roleID, Name: name}, nil
}

// GetRoleByName returns the first role with the given name, or
// common.ErrNotFound.
func (t *Roles) GetRoleByName(ctx context.Context, roleName string) (*identity.Role, error) {
	id, err := t.GetRoleID(ctx, roleName)
	if err != nil {
		return nil, err
	}
	return &identity.Role{ID: id, Name: roleName}, nil
}

// All returns every role.
func (t *Roles) All(ctx context.Context) ([]*identity.Role, error) {
	query := `SELECT "Id", "Name" FROM "AspNetRoles"`

	rows, err := t.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	roles := make([]*identity.Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, &identity.Role{ID: row.String("Id"), Name: row.String("Name")})
	}
	return roles, nil
}
