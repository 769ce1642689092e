package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newLoginCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the server",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, c *command, _ []string) error {
			return c.runLogin(ctx, username)
		}),
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (prompted if empty)")

	return cmd
}

func (c *command) runLogin(ctx context.Context, username string) error {
	var err error
	if username == "" {
		username, err = c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := c.Auth.Login(ctx, username, password); err != nil {
		return err
	}

	c.io.Printf("✓ Logged in as %s\n", username)
	return nil
}

func (a *app) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, c *command, _ []string) error {
			if err := c.Auth.Logout(ctx); err != nil {
				return err
			}
			c.io.Println("Logged out.")
			return nil
		}),
	}
}
