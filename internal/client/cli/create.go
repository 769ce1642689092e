package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func (a *app) newCreateCommand() *cobra.Command {
	var number int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new case",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, c *command, _ []string) error {
			var n *int
			if c.cmd.Flags().Changed("number") {
				n = &number
			}
			return c.runCreate(ctx, n)
		}),
	}
	cmd.Flags().IntVarP(&number, "number", "n", 0, "Case number")

	return cmd
}

func (c *command) runCreate(ctx context.Context, number *int) error {
	id := c.Engine.CreateCase(number)
	c.io.Printf("✓ Case created: %s\n", id)
	return c.flush(ctx)
}
