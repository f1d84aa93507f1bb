// Package cli implements the identity-admin provisioning tool: schema
// migration and basic user/role management against the identity
// database.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/identitypg/internal/common"
	"github.com/dmitrijs2005/identitypg/internal/config"
	"github.com/dmitrijs2005/identitypg/internal/logging"
	"github.com/dmitrijs2005/identitypg/internal/store"
)

type App struct {
	config *config.Config
	logger logging.Logger
	out    io.Writer
	users  *store.UserStore
	roles  *store.RoleStore
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	users, err := store.OpenUserStore(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	roles := store.NewRoleStore(users.Database())

	return &App{config: cfg, logger: logger, out: os.Stdout, users: users, roles: roles}, nil
}

func (a *App) Close() error {
	return a.users.Close()
}

const usage = `usage: identity-admin [flags] <command> [args]

commands:
  migrate                          apply pending schema migrations
  create-user <username> [email]   create a user, prompting for a password
  create-role <name>               create a role
  add-to-role <username> <role>    add a user to an existing role
  list-users                       print all users
`

// Run dispatches the subcommand named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: command required", common.ErrInvalidArgument)
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug(ctx, "running command", "command", cmd)

	switch cmd {
	case "migrate":
		return a.migrate(ctx)
	case "create-user":
		return a.createUser(ctx, rest)
	case "create-role":
		return a.createRole(ctx, rest)
	case "add-to-role":
		return a.addToRole(ctx, rest)
	case "list-users":
		return a.listUsers(ctx)
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", common.ErrInvalidArgument, cmd)
	}
}
