package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/casesync/internal/client/store"
	"github.com/iudanet/casesync/internal/models"
)

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List local cases",
		Args:  cobra.NoArgs,
		RunE: a.run(func(_ context.Context, c *command, _ []string) error {
			return c.runList()
		}),
	}
}

func (c *command) runList() error {
	cases := store.Cases(c.Engine.State())

	c.io.Println("=== Cases ===")
	c.io.Println()
	if len(cases) == 0 {
		c.io.Println("No cases found.")
		return nil
	}

	c.printTable(cases, c.Now())
	c.io.Printf("\nTotal: %d case(s)\n", len(cases))
	return nil
}

func (a *app) newDeletedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deleted",
		Short: "Load and list deleted cases from the server",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, c *command, _ []string) error {
			return c.runDeleted(ctx)
		}),
	}
}

func (c *command) runDeleted(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	if err := c.Engine.FetchDeleted(ctx); err != nil {
		if msg := store.DeletedError(c.Engine.State()); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}

	cases := store.DeletedCases(c.Engine.State())
	c.io.Println("=== Deleted cases ===")
	c.io.Println()
	if len(cases) == 0 {
		c.io.Println("No deleted cases.")
		return nil
	}

	c.printTable(cases, c.Now())
	c.io.Println()
	c.io.Println("Run 'casesync restore <id>' to restore a case.")
	return nil
}

func (c *command) printTable(cases []*models.Case, now time.Time) {
	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNUMBER\tSTATUS\tPATIENT\tVERSION\tSYNC")
	for _, cs := range cases {
		status := string(cs.Status)
		if store.DischargeOverdue(cs, now) {
			status += " (discharge overdue)"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			cs.ID, formatNumber(cs.Number), status, patientName(cs), cs.Version, cs.SyncStatus)
	}
	_ = w.Flush()
}

func formatNumber(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}

func patientName(c *models.Case) string {
	if c.Patient == nil {
		return "-"
	}
	name := c.Patient.FirstName
	if c.Patient.LastName != "" {
		if name != "" {
			name += " "
		}
		name += c.Patient.LastName
	}
	if name == "" {
		return "-"
	}
	return name
}
