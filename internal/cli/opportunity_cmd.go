package cli

import (
	"fmt"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/cli/formatter"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/spf13/cobra"
)

var outcomeChoices = []domain.Outcome{domain.OutcomeAccepted, domain.OutcomeRejected, domain.OutcomeWithdrawn, domain.OutcomeExpired}

func newAdvanceCmd(a *App) *cobra.Command {
	var outcome string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "advance <id> <status>",
		Short: "Move a record one step along the pipeline",
		Long: `Move a record one step forward or back along the pipeline, or withdraw it.
Entering outcome requires --outcome (accepted, rejected, withdrawn, expired).
The record is moved to the bucket its new status belongs in.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Services.Opportunities.Advance(cmd.Context(), app.AdvanceRequest{
				ID:      args[0],
				To:      domain.Status(args[1]),
				Outcome: domain.Outcome(outcome),
				DryRun:  dryRun,
				Now:     a.now(),
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Advance(resp))
			return nil
		},
	}

	cmd.Flags().Var(newEnumFlag(&outcome, outcomeChoices), "outcome", "Outcome tag when entering outcome")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and report without writing")
	return cmd
}

func newShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record with urgency, feasibility and open issues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Services.Opportunities.Show(cmd.Context(), app.ShowRequest{ID: args[0], Now: a.now()})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Show(resp))
			return nil
		},
	}
}

func newReconcileCmd(a *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Move records whose bucket disagrees with their status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Services.Opportunities.Reconcile(cmd.Context(), app.ReconcileRequest{DryRun: dryRun})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Reconcile(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List moves without writing")
	return cmd
}

func newComposeCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compose <id>",
		Short: "Assemble a record's application document from blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Services.Compose.Compose(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), resp.Markdown)
			fmt.Fprint(cmd.ErrOrStderr(), formatter.ComposeFooter(resp))
			return nil
		},
	}
}

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Bulk-add research leads from a YAML lead list",
		Long: `Bulk-add research leads from a YAML lead list into research_pool/.
The whole list is validated first; nothing is written if any lead is invalid.
Leads whose id already exists are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Services.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Import(res))
			return nil
		},
	}
}
