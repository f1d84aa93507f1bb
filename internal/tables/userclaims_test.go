package tables

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/dmitrijs2005/identitypg/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserClaimsInsert(t *testing.T) {
	d, mock := newMockDatabase(t)
	claims := NewUserClaims(d)

	q := `(?s)^INSERT\s+INTO\s+"AspNetUserClaims"\s*\("ClaimValue",\s*"ClaimType",\s*"UserId"\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)$`
	mock.ExpectExec(q).WithArgs("eng", "dept", "u1").WillReturnResult(sqlmock.NewResult(0, 1))

	err := claims.Insert(context.Background(), identity.Claim{Type: "dept", Value: "eng"}, "u1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserClaimsInsert_EmptyUserID(t *testing.T) {
	d, _ := newMockDatabase(t)
	claims := NewUserClaims(d)

	err := claims.Insert(context.Background(), identity.Claim{Type: "dept", Value: "eng"}, "")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestUserClaimsFindByUserID(t *testing.T) {
	d, mock := newMockDatabase(t)
	claims := NewUserClaims(d)

	rows := sqlmock.NewRows([]string{"ClaimType", "ClaimValue"}).
		AddRow("dept", "eng").
		AddRow("office", "berlin")
	mock.ExpectQuery(`(?s)^SELECT\s+"ClaimType",\s*"ClaimValue"\s+FROM\s+"AspNetUserClaims"\s+WHERE\s+"UserId"\s*=\s*\$1$`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := claims.FindByUserID(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, identity.Claim{Type: "dept", Value: "eng"}, got[0])
}

func TestUserClaimsDelete_MatchesAllThreeColumns(t *testing.T) {
	d, mock := newMockDatabase(t)
	claims := NewUserClaims(d)

	q := `(?s)^DELETE\s+FROM\s+"AspNetUserClaims"\s+WHERE\s+"UserId"\s*=\s*\$1\s+AND\s+"ClaimValue"\s*=\s*\$2\s+AND\s+"ClaimType"\s*=\s*\$3$`
	mock.ExpectExec(q).WithArgs("u1", "eng", "dept").WillReturnResult(sqlmock.NewResult(0, 1))

	err := claims.Delete(context.Background(), "u1", identity.Claim{Type: "dept", Value: "eng"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserClaimsDeleteAll(t *testing.T) {
	d, mock := newMockDatabase(t)
	claims := NewUserClaims(d)

	mock.ExpectExec(`^DELETE\s+FROM\s+"AspNetUserClaims"\s+WHERE\s+"UserId"\s*=\s*\$1$`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, claims.DeleteAll(context.Background(), "u1"))
}
