package tables

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/dmitrijs2005/identitypg/internal/db"
	"github.com/dmitrijs2005/identitypg/internal/identity"
)

// UserClaims provides access to the "AspNetUserClaims" table.
type UserClaims struct {
	db *db.Database
}

func NewUserClaims(database *db.Database) *UserClaims {
	return &UserClaims{db: database}
}

// Insert attaches a claim to the user.
func (t *UserClaims) Insert(ctx context.Context, claim identity.Claim, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `INSERT INTO "AspNetUserClaims" ("ClaimValue", "ClaimType", "UserId") VALUES ($1, $2, $3)`

	_, err := t.db.Execute(ctx, query, claim.Value, claim.Type, userID)
	return err
}

// FindByUserID returns every claim attached to the user.
func (t *UserClaims) FindByUserID(ctx context.Context, userID string) ([]identity.Claim, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `SELECT "ClaimType", "ClaimValue" FROM "AspNetUserClaims" WHERE "UserId" = $1`

	rows, err := t.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	claims := make([]identity.Claim, 0, len(rows))
	for _, row := range rows {
		claims = append(claims, identity.Claim{
			Type:  row.String("ClaimType"),
			Value: row.String("ClaimValue"),
		})
	}
	return claims, nil
}

// Delete removes one claim, matched exactly on user id, value and type.
func (t *UserClaims) Delete(ctx context.Context, userID string, claim identity.Claim) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query :=
		`DELETE FROM "AspNetUserClaims"
		  WHERE "UserId" = $1 AND "ClaimValue" = $2 AND "ClaimType" = $3`

	_, err := t.db.Execute(ctx, query, userID, claim.Value, claim.Type)
	return err
}

// DeleteAll removes every claim attached to the user.
func (t *UserClaims) DeleteAll(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrInvalidArgument)
	}

	query := `DELETE FROM "AspNetUserClaims" WHERE "UserId" = $1`

	_, err := t.db.Execute(ctx, query, userID)
	return err
}
