// Package store exposes the user and role store façades consumed by a
// hosting identity framework. Each façade composes the table accessors it
// needs behind one object and owns exactly one db.Database: callers that
// need concurrent access construct separate store instances rather than
// sharing one.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/dmitrijs2005/identitypg/internal/db"
	"github.com/dmitrijs2005/identitypg/internal/identity"
	"github.com/dmitrijs2005/identitypg/internal/tables"
	"github.com/google/uuid"
)

// UserStore implements the full set of user persistence capabilities:
// CRUD, claims, external logins, role membership, password hash,
// security stamp, email, and the lockout/two-factor placeholders.
type UserStore struct {
	database   *db.Database
	users      *tables.Users
	roles      *tables.Roles
	userRoles  *tables.UserRoles
	userClaims *tables.UserClaims
	userLogins *tables.UserLogins
}

// NewUserStore builds a UserStore over an existing Database. The store
// takes ownership: Close releases the Database.
func NewUserStore(database *db.Database) *UserStore {
	return &UserStore{
		database:   database,
		users:      tables.NewUsers(database),
		roles:      tables.NewRoles(database),
		userRoles:  tables.NewUserRoles(database),
		userClaims: tables.NewUserClaims(database),
		userLogins: tables.NewUserLogins(database),
	}
}

// OpenUserStore is a convenience factory that constructs a Database for
// the given DSN and wraps it in a UserStore.
func OpenUserStore(dsn string) (*UserStore, error) {
	database, err := db.Open(dsn)
	if err != nil {
		return nil, err
	}
	return NewUserStore(database), nil
}

// Database exposes the underlying connection wrapper, e.g. for running
// migrations.
func (s *UserStore) Database() *db.Database {
	return s.database
}

// Close releases the underlying Database. Safe to call multiple times.
func (s *UserStore) Close() error {
	return s.database.Close()
}

// Create inserts a new user. An id is generated when the entity has none.
func (s *UserStore) Create(ctx context.Context, user *identity.User) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return s.users.Insert(ctx, user)
}

// Update persists every mutable field of the user.
func (s *UserStore) Update(ctx context.Context, user *identity.User) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return s.users.Update(ctx, user)
}

// Delete removes the user together with its claims, logins and role
// memberships. The deletes run as separate statements; a failure part-way
// leaves earlier deletes in place.
func (s *UserStore) Delete(ctx context.Context, user *identity.User) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	if err := s.userClaims.DeleteAll(ctx, user.ID); err != nil {
		return err
	}
	if err := s.userLogins.DeleteAll(ctx, user.ID); err != nil {
		return err
	}
	if err := s.userRoles.DeleteAll(ctx, user.ID); err != nil {
		return err
	}
	return s.users.Delete(ctx, user.ID)
}

// FindByID returns the user with the given id, or common.ErrNotFound.
func (s *UserStore) FindByID(ctx context.Context, userID string) (*identity.User, error) {
	return s.users.GetByID(ctx, userID)
}

// FindByName returns the user whose name matches case-insensitively.
// When more than one row matches, common.ErrAmbiguousResult is returned
// in every build configuration.
func (s *UserStore) FindByName(ctx context.Context, userName string) (*identity.User, error) {
	matches, err := s.users.GetByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, common.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: user name %q", common.ErrAmbiguousResult, userName)
	}
}

// FindByEmail returns the first user whose email matches
// case-insensitively, or common.ErrNotFound.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	matches, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, common.ErrNotFound
	}
	return matches[0], nil
}

// All loads the entire user table into memory. Acceptable for small
// datasets only.
func (s *UserStore) All(ctx context.Context) ([]*identity.User, error) {
	return s.users.All(ctx)
}

// --- claims capability ---

func (s *UserStore) AddClaim(ctx context.Context, user *identity.User, claim identity.Claim) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return s.userClaims.Insert(ctx, claim, user.ID)
}

func (s *UserStore) RemoveClaim(ctx context.Context, user *identity.User, claim identity.Claim) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return s.userClaims.Delete(ctx, user.ID, claim)
}

func (s *UserStore) GetClaims(ctx context.Context, user *identity.User) ([]identity.Claim, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return s.userClaims.FindByUserID(ctx, user.ID)
}

// --- logins capability ---

func (s *UserStore) AddLogin(ctx context.Context, user *identity.User, login identity.LoginInfo) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return s.userLogins.Insert(ctx, user.ID, login)
}

func (s *UserStore) RemoveLogin(ctx context.Context, user *identity.User, login identity.LoginInfo) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return s.userLogins.Delete(ctx, user.ID, login)
}

func (s *UserStore) GetLogins(ctx context.Context, user *identity.User) ([]identity.LoginInfo, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return s.userLogins.FindByUserID(ctx, user.ID)
}

// FindByLogin resolves an external login to the full user row, or
// common.ErrNotFound.
func (s *UserStore) FindByLogin(ctx context.Context, login identity.LoginInfo) (*identity.User, error) {
	userID, err := s.userLogins.FindUserIDByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}

// --- roles capability ---

// AddToRole adds the user to the named role. When no such role exists
// the call is a silent no-op: the role is not created and no error is
// returned.
func (s *UserStore) AddToRole(ctx context.Context, user *identity.User, roleName string) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	if roleName == "" {
		return fmt.Errorf("%w: roleName", common.ErrInvalidArgument)
	}

	roleID, err := s.roles.GetRoleID(ctx, roleName)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.userRoles.Insert(ctx, user.ID, roleID)
}

// RemoveFromRole removes the user from the named role; unknown roles are
// a silent no-op, mirroring AddToRole.
func (s *UserStore) RemoveFromRole(ctx context.Context, user *identity.User, roleName string) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	if roleName == "" {
		return fmt.Errorf("%w: roleName", common.ErrInvalidArgument)
	}

	roleID, err := s.roles.GetRoleID(ctx, roleName)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.userRoles.Delete(ctx, user.ID, roleID)
}

func (s *UserStore) GetRoles(ctx context.Context, user *identity.User) ([]string, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return s.userRoles.FindByUserID(ctx, user.ID)
}

func (s *UserStore) IsInRole(ctx context.Context, user *identity.User, roleName string) (bool, error) {
	if user == nil {
		return false, fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	if roleName == "" {
		return false, fmt.Errorf("%w: roleName", common.ErrInvalidArgument)
	}

	roles, err := s.userRoles.FindByUserID(ctx, user.ID)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		if r == roleName {
			return true, nil
		}
	}
	return false, nil
}

// --- password capability ---

// GetPasswordHash reads the stored hash; the empty string means the user
// has no password.
func (s *UserStore) GetPasswordHash(ctx context.Context, user *identity.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return s.users.GetPasswordHash(ctx, user.ID)
}

func (s *UserStore) HasPassword(ctx context.Context, user *identity.User) (bool, error) {
	hash, err := s.GetPasswordHash(ctx, user)
	if err != nil {
		return false, err
	}
	return hash != "", nil
}

// SetPasswordHash writes the hash through to storage and updates the
// in-memory entity. Every field setter on the store persists
// immediately.
func (s *UserStore) SetPasswordHash(ctx context.Context, user *identity.User, passwordHash string) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	if err := s.users.SetPasswordHash(ctx, user.ID, passwordHash); err != nil {
		return err
	}
	user.PasswordHash = passwordHash
	return nil
}

// --- security stamp capability ---

// GetSecurityStamp reads the stamp from storage rather than the entity,
// so that stale in-memory copies cannot satisfy a freshness check.
func (s *UserStore) GetSecurityStamp(ctx context.Context, user *identity.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return s.users.GetSecurityStamp(ctx, user.ID)
}

// SecurityStampByID reports the stored stamp for a user id. Used by
// token validation.
func (s *UserStore) SecurityStampByID(ctx context.Context, userID string) (string, error) {
	return s.users.GetSecurityStamp(ctx, userID)
}

func (s *UserStore) SetSecurityStamp(ctx context.Context, user *identity.User, stamp string) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	if err := s.users.SetSecurityStamp(ctx, user.ID, stamp); err != nil {
		return err
	}
	user.SecurityStamp = stamp
	return nil
}

// --- email capability ---

func (s *UserStore) GetEmail(ctx context.Context, user *identity.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return user.Email, nil
}

func (s *UserStore) SetEmail(ctx context.Context, user *identity.User, email string) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	user.Email = email
	return s.users.Update(ctx, user)
}

func (s *UserStore) GetEmailConfirmed(ctx context.Context, user *identity.User) (bool, error) {
	if user == nil {
		return false, fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return user.EmailConfirmed, nil
}

func (s *UserStore) SetEmailConfirmed(ctx context.Context, user *identity.User, confirmed bool) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	user.EmailConfirmed = confirmed
	return s.users.Update(ctx, user)
}
