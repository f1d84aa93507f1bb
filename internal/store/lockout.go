package store

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/dmitrijs2005/identitypg/internal/identity"
)

// Lockout and two-factor are part of the hosting framework's storage
// contract but have no backing columns in this schema. The operations
// below are deliberate placeholders: nobody is ever locked out, failed
// access counts stay at zero and two-factor is always disabled.

func (s *UserStore) GetLockoutEnabled(ctx context.Context, user *identity.User) (bool, error) {
	if user == nil {
		return false, fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return false, nil
}

func (s *UserStore) SetLockoutEnabled(ctx context.Context, user *identity.User, enabled bool) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return nil
}

func (s *UserStore) IsLockedOut(ctx context.Context, user *identity.User) (bool, error) {
	if user == nil {
		return false, fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return false, nil
}

func (s *UserStore) GetAccessFailedCount(ctx context.Context, user *identity.User) (int, error) {
	if user == nil {
		return 0, fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return 0, nil
}

func (s *UserStore) IncrementAccessFailedCount(ctx context.Context, user *identity.User) (int, error) {
	if user == nil {
		return 0, fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return 0, nil
}

func (s *UserStore) ResetAccessFailedCount(ctx context.Context, user *identity.User) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return nil
}

func (s *UserStore) GetTwoFactorEnabled(ctx context.Context, user *identity.User) (bool, error) {
	if user == nil {
		return false, fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return false, nil
}

func (s *UserStore) SetTwoFactorEnabled(ctx context.Context, user *identity.User, enabled bool) error {
	if user == nil {
		return fmt.Errorf("%w: user", common.ErrInvalidArgument)
	}
	return nil
}
