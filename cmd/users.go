package main

import (
	"context"
	"fmt"

	"github.com/feldhop/the-album-club-app/internal/models"
	"github.com/feldhop/the-album-club-app/internal/repositories"
	"github.com/feldhop/the-album-club-app/internal/shared"
	"github.com/urfave/cli/v3"
)

// UsersAdd provisions a user row. The HTTP surface never writes users; this
// command is the external provisioning path.
func (r *Runner) UsersAdd(ctx context.Context, cmd *cli.Command) error {
	first := cmd.String("first")
	last := cmd.String("last")
	email := cmd.String("email")

	if first == "" || email == "" {
		return fmt.Errorf("%w: --first and --email are required", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	user := models.User{FirstName: first, LastName: last, Email: email}
	if err := repositories.NewUserRepository(db).Create(ctx, &user); err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}

	r.logger.Info("user added", "id", user.ID, "email", user.Email)
	return r.writeJSON(user, true)
}

// UsersList prints all user rows.
func (r *Runner) UsersList(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	users, err := repositories.NewUserRepository(db).List(ctx)
	if err != nil {
		return err
	}

	return r.writeJSON(users, cmd.Bool("pretty"))
}

func usersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Manage the user roster",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "first", Usage: "First name", Required: true},
					&cli.StringFlag{Name: "last", Usage: "Last name"},
					&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
				},
				Action: r.UsersAdd,
			},
			{
				Name:  "list",
				Usage: "List all users",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output", Value: true},
				},
				Action: r.UsersList,
			},
		},
	}
}
