package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/casesync/internal/client/store"
)

func (a *app) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication and synchronization status",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, c *command, _ []string) error {
			return c.runStatus(ctx)
		}),
	}
}

func (c *command) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	if c.Auth.IsAuthenticated() {
		c.io.Printf("Logged in as: %s\n", c.Auth.Username())
	} else {
		c.io.Println("Not authenticated.")
	}

	st := c.Engine.State()
	c.io.Printf("Cases:        %d\n", len(st.Cases))
	c.io.Printf("Deleted:      %d\n", len(st.Deleted))

	lastSync, err := c.Engine.LastSync(ctx)
	if err != nil {
		return err
	}
	if lastSync.IsZero() {
		c.io.Println("Last sync:    never")
	} else {
		c.io.Printf("Last sync:    %s\n", lastSync.Format(time.RFC3339))
	}

	c.io.Println()
	if pending := store.PendingCount(st); pending > 0 {
		c.io.Printf("⚠️  Pending sync: %d change(s) waiting to be pushed\n", pending)
	} else {
		c.io.Println("✓ All changes synchronized with server")
	}
	return nil
}
