package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/identitypg/internal/db"
)

func newMockStore(t *testing.T) (*UserStore, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	s := NewUserStore(db.New(sqldb))
	t.Cleanup(func() { _ = s.Close() })
	return s, mock
}

func newMockRoleStore(t *testing.T) (*RoleStore, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	s := NewRoleStore(db.New(sqldb))
	t.Cleanup(func() { _ = s.Close() })
	return s, mock
}
