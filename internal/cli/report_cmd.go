package cli

import (
	"fmt"

	"github.com/alexanderramin/pursuit/internal/analytics"
	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func printReport(cmd *cobra.Command, r formatter.Report, markdown bool) {
	if markdown {
		fmt.Fprint(cmd.OutOrStdout(), r.Markdown())
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), r.Terminal())
}

func newCampaignCmd(a *App) *cobra.Command {
	var days int
	var markdown bool

	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Show actionable opportunities grouped by urgency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Services.Campaign.Campaign(cmd.Context(), app.CampaignRequest{
				Now:         a.now(),
				HorizonDays: days,
			})
			if err != nil {
				return err
			}
			printReport(cmd, formatter.Campaign(resp), markdown)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Horizon in days (default from PURSUIT_CAMPAIGN_DAYS)")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render as markdown")
	return cmd
}

func newHygieneCmd(a *App) *cobra.Command {
	var markdown, all bool

	cmd := &cobra.Command{
		Use:   "hygiene",
		Short: "Check records for gate gaps, staleness and drift",
		Long:  "Check records for gate gaps, staleness and drift. Exits nonzero when any issue is found or a record fails to load.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Services.Hygiene.Check(cmd.Context(), app.HygieneRequest{
				Now:           a.now(),
				IncludeClosed: all,
			})
			if err != nil {
				return err
			}
			printReport(cmd, formatter.Hygiene(resp), markdown)
			if resp.IssueCount() > 0 || len(resp.Warnings) > 0 {
				return ErrIssuesFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render as markdown")
	cmd.Flags().BoolVar(&all, "all", false, "Also check closed records")
	return cmd
}

func newFunnelCmd(a *App) *cobra.Command {
	var markdown bool
	var dims []string

	cmd := &cobra.Command{
		Use:   "funnel",
		Short: "Show stage conversion and breakdowns by dimension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.FunnelRequest{Now: a.now()}
			for _, d := range dims {
				req.Dimensions = append(req.Dimensions, analytics.Dimension(d))
			}
			resp, err := a.Services.Reports.Funnel(cmd.Context(), req)
			if err != nil {
				return err
			}
			printReport(cmd, formatter.Funnel(resp), markdown)
			return nil
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render as markdown")
	cmd.Flags().StringSliceVarP(&dims, "dimension", "d", nil, "Restrict breakdowns (track, identity_position, score_bracket, funnel_stage, outreach_channel, cover_letter, follow_up_count)")
	return cmd
}

func newVelocityCmd(a *App) *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "velocity",
		Short: "Show submission throughput and deadline pressure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Services.Reports.Velocity(cmd.Context(), app.VelocityRequest{Now: a.now()})
			if err != nil {
				return err
			}
			printReport(cmd, formatter.Velocity(resp), markdown)
			return nil
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render as markdown")
	return cmd
}

func newFollowUpCmd(a *App) *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "followup",
		Short: "Show due and upcoming follow-up steps",
		Long:  "Show due and upcoming follow-up steps. Exits nonzero when a step is due.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Services.FollowUps.Schedule(cmd.Context(), app.FollowUpRequest{Now: a.now()})
			if err != nil {
				return err
			}
			printReport(cmd, formatter.FollowUps(resp), markdown)
			if len(resp.Due) > 0 {
				return ErrIssuesFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render as markdown")
	cmd.AddCommand(newFollowUpLogCmd(a))
	return cmd
}

func newFollowUpLogCmd(a *App) *cobra.Command {
	var action, channel, note string

	cmd := &cobra.Command{
		Use:   "log <id>",
		Short: "Record a follow-up action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := a.Services.FollowUps.Log(cmd.Context(), app.FollowUpLogRequest{
				ID:      args[0],
				Action:  action,
				Channel: channel,
				Note:    note,
				Now:     a.now(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s for %s (%d follow-ups)\n",
				formatter.Bold(action), op.ID, len(op.FollowUps))
			return nil
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "Action taken (connect, first_followup, final_followup, ...)")
	cmd.Flags().StringVar(&channel, "channel", "", "Channel used")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	_ = cmd.MarkFlagRequired("action")
	return cmd
}
