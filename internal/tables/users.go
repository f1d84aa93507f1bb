package tables

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/dmitrijs2005/identitypg/internal/db"
	"github.com/dmitrijs2005/identitypg/internal/identity"
)

// Users provides access to the "AspNetUsers" table.
type Users struct {
	db *db.Database
}

func NewUsers(database *db.Database) *Users {
	return &Users{db: database}
}

const userColumns = `"Id", "UserName", "PasswordHash", "SecurityStamp", "Email", "EmailConfirmed"`

func rowToUser(r db.Row) *identity.User {
	return &identity.User{
		ID:             r.String("Id"),
		UserName:       r.String("UserName"),
		PasswordHash:   r.String("PasswordHash"),
		SecurityStamp:  r.String("SecurityStamp"),
		Email:          r.String("Email"),
		EmailConfirmed: r.Bool("EmailConfirmed"),
	}
}

// Insert adds a new user row.
func (t *Users) Insert(ctx context.Context, user *identity.User) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}

	query :=
		`INSERT INTO "AspNetUsers" (` + userColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := t.db.Execute(ctx, query,
		user.ID, user.UserName,
		nullIfEmpty(user.PasswordHash), nullIfEmpty(user.SecurityStamp),
		nullIfEmpty(user.Email), user.EmailConfirmed)
	return err
}

// Update rewrites every mutable column of the user's row. The id is the
// immutable key.
func (t *Users) Update(ctx context.Context, user *identity.User) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}

	query :=
		`UPDATE "AspNetUsers"
		    SET "UserName" = $1, "PasswordHash" = $2, "SecurityStamp" = $3,
		        "Email" = $4, "EmailConfirmed" = $5
		  WHERE "Id" = $6`

	_, err := t.db.Execute(ctx, query,
		user.UserName,
		nullIfEmpty(user.PasswordHash), nullIfEmpty(user.SecurityStamp),
		nullIfEmpty(user.Email), user.EmailConfirmed, user.ID)
	return err
}

// Delete removes the user row only; claims, logins and role memberships
// are separate tables with their own delete operations.
func (t *Users) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `DELETE FROM "AspNetUsers" WHERE "Id" = $1`

	_, err := t.db.Execute(ctx, query, userID)
	return err
}

// GetByID returns the user with the given id, or common.ErrNotFound.
func (t *Users) GetByID(ctx context.Context, userID string) (*identity.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `SELECT ` + userColumns + ` FROM "AspNetUsers" WHERE "Id" = $1`

	rows, err := t.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) != 1 {
		return nil, common.ErrNotFound
	}

	return rowToUser(rows[0]), nil
}

// GetByName returns every user whose name matches case-insensitively.
// The result may hold zero, one or more users; callers decide what an
// ambiguous match means.
func (t *Users) GetByName(ctx context.Context, userName string) ([]*identity.User, error) {
	if userName == "" {
		return nil, fmt.Errorf("%w: userName", common.ErrInvalidArgument)
	}

	query := `SELECT ` + userColumns + ` FROM "AspNetUsers" WHERE LOWER("UserName") = $1`

	rows, err := t.db.Query(ctx, query, strings.ToLower(userName))
	if err != nil {
		return nil, err
	}

	users := make([]*identity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, rowToUser(row))
	}
	return users, nil
}

// GetByEmail returns every user whose email matches case-insensitively.
func (t *Users) GetByEmail(ctx context.Context, email string) ([]*identity.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email", common.ErrInvalidArgument)
	}

	query := `SELECT ` + userColumns + ` FROM "AspNetUsers" WHERE LOWER("Email") = $1`

	rows, err := t.db.Query(ctx, query, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	users := make([]*identity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, rowToUser(row))
	}
	return users, nil
}

// All loads the entire user table.
func (t *Users) All(ctx context.Context) ([]*identity.User, error) {
	query := `SELECT ` + userColumns + ` FROM "AspNetUsers"`

	rows, err := t.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	users := make([]*identity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, rowToUser(row))
	}
	return users, nil
}

// GetUserName returns the name stored for the given id, or
// common.ErrNotFound.
func (t *Users) GetUserName(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `SELECT "UserName" FROM "AspNetUsers" WHERE "Id" = $1`

	name, ok, err := t.db.QueryValue(ctx, query, userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrNotFound
	}
	return name, nil
}

// GetUserID resolves a user name, case-insensitively, to an id, or
// common.ErrNotFound.
func (t *Users) GetUserID(ctx context.Context, userName string) (string, error) {
	if userName == "" {
		return "", fmt.Errorf("%w: userName", common.ErrInvalidArgument)
	}

	query := `SELECT "Id" FROM "AspNetUsers" WHERE LOWER("UserName") = $1`

	id, ok, err := t.db.QueryValue(ctx, query, strings.ToLower(userName))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrNotFound
	}
	return id, nil
}

// GetPasswordHash returns the stored hash, or the empty string when the
// user has no password (or does not exist; the two are not
// distinguished at this layer).
func (t *Users) GetPasswordHash(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `SELECT "PasswordHash" FROM "AspNetUsers" WHERE "Id" = $1`

	hash, _, err := t.db.QueryValue(ctx, query, userID)
	if err != nil {
		return "", err
	}
	return hash, nil
}

// SetPasswordHash persists a new password hash for the user.
func (t *Users) SetPasswordHash(ctx context.Context, userID, passwordHash string) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `UPDATE "AspNetUsers" SET "PasswordHash" = $1 WHERE "Id" = $2`

	_, err := t.db.Execute(ctx, query, nullIfEmpty(passwordHash), userID)
	return err
}

// GetSecurityStamp returns the stored security stamp, or the empty
// string when none is set.
func (t *Users) GetSecurityStamp(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `SELECT "SecurityStamp" FROM "AspNetUsers" WHERE "Id" = $1`

	stamp, _, err := t.db.QueryValue(ctx, query, userID)
	if err != nil {
		return "", err
	}
	return stamp, nil
}

// SetSecurityStamp persists a new security stamp for the user.
func (t *Users) SetSecurityStamp(ctx context.Context, userID, stamp string) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `UPDATE "AspNetUsers" SET "SecurityStamp" = $1 WHERE "Id" = $2`

	_, err := t.db.Execute(ctx, query, nullIfEmpty(stamp), userID)
	return err
}
