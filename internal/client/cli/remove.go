package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/iudanet/casesync/internal/client/store"
	"github.com/iudanet/casesync/internal/validation"
)

func (a *app) newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a case (soft delete)",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, c *command, args []string) error {
			return c.runRemove(ctx, args[0])
		}),
	}
}

func (c *command) runRemove(ctx context.Context, id string) error {
	if err := validation.ValidateCaseID(id); err != nil {
		return err
	}
	if err := c.Engine.RemoveCase(id); err != nil {
		return err
	}

	c.io.Printf("✓ Case %s removed\n", id)
	return c.flush(ctx)
}

func (a *app) newRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a deleted case on the server",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, c *command, args []string) error {
			return c.runRestore(ctx, args[0])
		}),
	}
}

func (c *command) runRestore(ctx context.Context, id string) error {
	if err := validation.ValidateCaseID(id); err != nil {
		return err
	}
	if err := c.requireAuth(); err != nil {
		return err
	}

	if err := c.Engine.Restore(ctx, id); err != nil {
		if msg := store.Error(c.Engine.State()); msg != "" {
			return errors.New(msg)
		}
		return err
	}

	version := int64(0)
	if cs := c.Engine.State().Cases[id]; cs != nil {
		version = cs.Version
	}
	c.io.Printf("✓ Case %s restored (version %d)\n", id, version)
	return nil
}
