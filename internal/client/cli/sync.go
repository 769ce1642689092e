package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/casesync/internal/client/store"
)

func (a *app) newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push local changes and fetch cases from the server",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, c *command, _ []string) error {
			return c.runSync(ctx)
		}),
	}
}

func (c *command) runSync(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	c.io.Println("=== Synchronization ===")
	c.io.Println()

	before := store.PendingCount(c.Engine.State())
	c.Engine.Sync(ctx)
	if err := c.reportSync(); err != nil {
		return err
	}

	if err := c.Engine.Fetch(ctx); err != nil {
		if msg := store.Error(c.Engine.State()); msg != "" {
			return errors.New(msg)
		}
		return fmt.Errorf("failed to fetch cases: %w", err)
	}

	st := c.Engine.State()
	c.io.Printf("Pushed changes: %d\n", before-store.PendingCount(st))
	c.io.Printf("Cases on device: %d\n", len(st.Cases))
	c.io.Println()
	c.io.Println("✓ Synchronization completed")
	return nil
}

func (a *app) newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow case changes made by other sessions",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, c *command, _ []string) error {
			return c.runWatch(ctx)
		}),
	}
}

func (c *command) runWatch(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if c.Watch == nil {
		return errors.New("push notifications are not configured")
	}

	if err := c.Engine.Fetch(ctx); err != nil {
		return fmt.Errorf("failed to fetch cases: %w", err)
	}

	unsubscribe := c.Engine.Subscribe(func(_ store.Action, prev, next store.State) {
		changed, removed := store.Diff(prev.Cases, next.Cases)
		for _, cs := range changed {
			c.io.Printf("~ %s %s version %d (%s)\n", cs.ID, cs.Status, cs.Version, cs.SyncStatus)
		}
		for _, id := range removed {
			c.io.Printf("- %s removed\n", id)
		}
	})
	defer unsubscribe()

	c.io.Printf("Watching %d case(s). Press Ctrl+C to stop.\n", len(c.Engine.State().Cases))

	err := c.Watch(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
