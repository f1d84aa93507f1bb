package tables

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/dmitrijs2005/identitypg/internal/db"
	"github.com/dmitrijs2005/identitypg/internal/identity"
)

// UserLogins provides access to the "AspNetUserLogins" table, the mapping
// between external provider logins and local users.
type UserLogins struct {
	db *db.Database
}

func NewUserLogins(database *db.Database) *UserLogins {
	return &UserLogins{db: database}
}

func validLogin(login identity.LoginInfo) error {
	if login.LoginProvider == "" || login.ProviderKey == "" {
		return fmt.Errorf("%w: login", common.ErrInvalidArgument)
	}
	return nil
}

// Insert links an external login to the user.
func (t *UserLogins) Insert(ctx context.Context, userID string, login identity.LoginInfo) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}
	if err := validLogin(login); err != nil {
		return err
	}

	query := `INSERT INTO "AspNetUserLogins" ("LoginProvider", "ProviderKey", "UserId") VALUES ($1, $2, $3)`

	_, err := t.db.Execute(ctx, query, login.LoginProvider, login.ProviderKey, userID)
	return err
}

// Delete removes one login record from the user.
func (t *UserLogins) Delete(ctx context.Context, userID string, login identity.LoginInfo) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}
	if err := validLogin(login); err != nil {
		return err
	}

	query :=
		`DELETE FROM "AspNetUserLogins"
		  WHERE "UserId" = $1 AND "LoginProvider" = $2 AND "ProviderKey" = $3`

	_, err := t.db.Execute(ctx, query, userID, login.LoginProvider, login.ProviderKey)
	return err
}

// DeleteAll removes every login linked to the user.
func (t *UserLogins) DeleteAll(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `DELETE FROM "AspNetUserLogins" WHERE "UserId" = $1`

	_, err := t.db.Execute(ctx, query, userID)
	return err
}

// FindUserIDByLogin resolves a (provider, key) pair to the owning user's
// id, or common.ErrNotFound.
func (t *UserLogins) FindUserIDByLogin(ctx context.Context, login identity.LoginInfo) (string, error) {
	if err := validLogin(login); err != nil {
		return "", err
	}

	query := `SELECT "UserId" FROM "AspNetUserLogins" WHERE "LoginProvider" = $1 AND "ProviderKey" = $2`

	id, ok, err := t.db.QueryValue(ctx, query, login.LoginProvider, login.ProviderKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrNotFound
	}
	return id, nil
}

// FindByUserID returns every login linked to the user.
func (t *UserLogins) FindByUserID(ctx context.Context, userID string) ([]identity.LoginInfo, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `SELECT "LoginProvider", "ProviderKey" FROM "AspNetUserLogins" WHERE "UserId" = $1`

	rows, err := t.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	logins := make([]identity.LoginInfo, 0, len(rows))
	for _, row := range rows {
		logins = append(logins, identity.LoginInfo{
			LoginProvider: row.String("LoginProvider"),
			ProviderKey:   row.String("ProviderKey"),
		})
	}
	return logins, nil
}
