package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/dmitrijs2005/identitypg/internal/identity"
	"github.com/dmitrijs2005/identitypg/internal/migrations"
	"github.com/dmitrijs2005/identitypg/internal/password"
	"github.com/google/uuid"
)

func (a *App) migrate(ctx context.Context) error {
	a.logger.Info(ctx, "applying migrations")
	if err := migrations.Run(ctx, a.users.Database().Conn()); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "migrations applied")
	return nil
}

func (a *App) createUser(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: create-user <username> [email]", common.ErrInvalidArgument)
	}

	plaintext, err := promptPassword(a.out)
	if err != nil {
		return err
	}
	hash, err := password.Hash(plaintext)
	if err != nil {
		return err
	}

	user := identity.NewUser(args[0])
	if len(args) == 2 {
		user.Email = args[1]
	}
	user.PasswordHash = hash
	user.SecurityStamp = uuid.NewString()

	if err := a.users.Create(ctx, user); err != nil {
		return err
	}

	a.logger.Info(ctx, "user created", "id", user.ID, "username", user.UserName)
	fmt.Fprintf(a.out, "created user %s (%s)\n", user.UserName, user.ID)
	return nil
}

func (a *App) createRole(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: create-role <name>", common.ErrInvalidArgument)
	}

	role := identity.NewRole(args[0])
	if err := a.roles.Create(ctx, role); err != nil {
		return err
	}

	a.logger.Info(ctx, "role created", "id", role.ID, "name", role.Name)
	fmt.Fprintf(a.out, "created role %s (%s)\n", role.Name, role.ID)
	return nil
}

func (a *App) addToRole(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: add-to-role <username> <role>", common.ErrInvalidArgument)
	}

	user, err := a.users.FindByName(ctx, args[0])
	if err != nil {
		return err
	}

	// the membership write itself is a no-op for unknown roles, so check
	// the role exists to give the operator a real error
	if _, err := a.roles.FindByName(ctx, args[1]); err != nil {
		return fmt.Errorf("role %q: %w", args[1], err)
	}
	if err := a.users.AddToRole(ctx, user, args[1]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "added %s to %s\n", user.UserName, args[1])
	return nil
}

func (a *App) listUsers(ctx context.Context) error {
	users, err := a.users.All(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		confirmed := " "
		if u.EmailConfirmed {
			confirmed = "*"
		}
		fmt.Fprintf(a.out, "%s\t%s\t%s%s\n", u.ID, u.UserName, u.Email, confirmed)
	}
	fmt.Fprintf(a.out, "%d user(s)\n", len(users))
	return nil
}
