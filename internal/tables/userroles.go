package tables

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/dmitrijs2005/identitypg/internal/db"
)

// UserRoles provides access to the "AspNetUserRoles" membership table and
// its fixed join to role names.
type UserRoles struct {
	db *db.Database
}

func NewUserRoles(database *db.Database) *UserRoles {
	return &UserRoles{db: database}
}

// Insert adds a membership row linking the user to a role.
func (t *UserRoles) Insert(ctx context.Context, userID, roleID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}
	if roleID == "" {
		return fmt.Errorf("%w: roleID", common.ErrInvalidArgument)
	}

	query := `INSERT INTO "AspNetUserRoles" ("UserId", "RoleId") VALUES ($1, $2)`

	_, err := t.db.Execute(ctx, query, userID, roleID)
	return err
}

// Delete removes one membership row.
func (t *UserRoles) Delete(ctx context.Context, userID, roleID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}
	if roleID == "" {
		return fmt.Errorf("%w: roleID", common.ErrInvalidArgument)
	}

	query := `DELETE FROM "AspNetUserRoles" WHERE "UserId" = $1 AND "RoleId" = $2`

	_, err := t.db.Execute(ctx, query, userID, roleID)
	return err
}

// DeleteAll removes every role membership of the user.
func (t *UserRoles) DeleteAll(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `DELETE FROM "AspNetUserRoles" WHERE "UserId" = $1`

	_, err := t.db.Execute(ctx, query, userID)
	return err
}

// FindByUserID returns the names of every role the user belongs to.
func (t *UserRoles) FindByUserID(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query :=
		`SELECT "AspNetRoles"."Name"
		   FROM "AspNetRoles"
		   JOIN "AspNetUserRoles" ON "AspNetUserRoles"."RoleId" = "AspNetRoles"."Id"
		  WHERE "AspNetUserRoles"."UserId" = $1`

	rows, err := t.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	roles := make([]string, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, row.String("Name"))
	}
	return roles, nil
}
