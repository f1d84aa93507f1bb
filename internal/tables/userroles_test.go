package tables

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRolesInsert(t *testing.T) {
	d, mock := newMockDatabase(t)
	memberships := NewUserRoles(d)

	q := `(?s)^INSERT\s+INTO\s+"AspNetUserRoles"\s*\("UserId",\s*"RoleId"\)\s*VALUES\s*\(\$1,\s*\$2\)$`
	mock.ExpectExec(q).WithArgs("u1", "r1").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, memberships.Insert(context.Background(), "u1", "r1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRolesInsert_Validation(t *testing.T) {
	d, _ := newMockDatabase(t)
	memberships := NewUserRoles(d)

	assert.ErrorIs(t, memberships.Insert(context.Background(), "", "r1"), common.ErrInvalidArgument)
	assert.ErrorIs(t, memberships.Insert(context.Background(), "u1", ""), common.ErrInvalidArgument)
}

func TestUserRolesDelete(t *testing.T) {
	d, mock := newMockDatabase(t)
	memberships := NewUserRoles(d)

	q := `(?s)^DELETE\s+FROM\s+"AspNetUserRoles"\s+WHERE\s+"UserId"\s*=\s*\$1\s+AND\s+"RoleId"\s*=\s*\$2$`
	mock.ExpectExec(q).WithArgs("u1", "r1").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, memberships.Delete(context.Background(), "u1", "r1"))
}

func TestUserRolesDeleteAll(t *testing.T) {
	d, mock := newMockDatabase(t)
	memberships := NewUserRoles(d)

	mock.ExpectExec(`^DELETE\s+FROM\s+"AspNetUserRoles"\s+WHERE\s+"UserId"\s*=\s*\$1$`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, memberships.DeleteAll(context.Background(), "u1"))
}

func TestUserRolesFindByUserID_JoinsRoleNames(t *testing.T) {
	d, mock := newMockDatabase(t)
	memberships := NewUserRoles(d)

	q := `(?s)^SELECT\s+"AspNetRoles"\."Name"\s+FROM\s+"AspNetRoles"\s+JOIN\s+"AspNetUserRoles"\s+ON\s+"AspNetUserRoles"\."RoleId"\s*=\s*"AspNetRoles"\."Id"\s+WHERE\s+"AspNetUserRoles"\."UserId"\s*=\s*\$1$`

	rows := sqlmock.NewRows([]string{"Name"}).
		AddRow("admin").
		AddRow("manager")
	mock.ExpectQuery(q).WithArgs("u1").WillReturnRows(rows)

	got, err := memberships.FindByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "manager"}, got)
}

func TestUserRolesFindByUserID_Empty(t *testing.T) {
	d, mock := newMockDatabase(t)
	memberships := NewUserRoles(d)

	mock.ExpectQuery(`^SELECT`).WithArgs("u1").WillReturnRows(sqlmock.NewRows([]string{"Name"}))

	got, err := memberships.FindByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
