package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/casesync/internal/client/storage"
	"github.com/iudanet/casesync/internal/client/store"
	"github.com/iudanet/casesync/internal/validation"
)

func (a *app) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show case details",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(_ context.Context, c *command, args []string) error {
			return c.runShow(args[0])
		}),
	}
}

func (c *command) runShow(id string) error {
	if err := validation.ValidateCaseID(id); err != nil {
		return err
	}

	st := c.Engine.State()
	cs := store.CaseByID(st, id)
	if cs == nil {
		return fmt.Errorf("case %s: %w", id, storage.ErrCaseNotFound)
	}
	_, deleted := st.Deleted[id]

	view := caseView{
		Case:    cs,
		Timings: timingViews(cs),
		Deleted: deleted,
		Overdue: store.DischargeOverdue(cs, c.Now()),
	}
	if err := caseTmpl.Execute(c.io, view); err != nil {
		return fmt.Errorf("failed to render case: %w", err)
	}
	return nil
}
