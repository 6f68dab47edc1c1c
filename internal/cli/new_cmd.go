package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/cli/formatter"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	trackChoices = []domain.Track{
		domain.TrackGrant, domain.TrackResidency, domain.TrackJob, domain.TrackFellowship,
		domain.TrackWriting, domain.TrackEmergency, domain.TrackPrize, domain.TrackProgram,
		domain.TrackConsulting,
	}
	deadlineTypeChoices = []domain.DeadlineType{domain.DeadlineHard, domain.DeadlineSoft, domain.DeadlineRolling, domain.DeadlineTBA}
	effortChoices       = []domain.EffortLevel{domain.EffortQuick, domain.EffortStandard, domain.EffortDeep, domain.EffortComplex}
)

// createFields collects the string form of a new record, shared by flags
// and the wizard.
type createFields struct {
	id, name, track, org, url      string
	deadline, deadlineType         string
	fit, identity, effort, channel string
	tags                           []string
}

func (f createFields) request(a *App) (app.CreateRequest, error) {
	req := app.CreateRequest{
		ID:               f.id,
		Name:             f.name,
		Track:            f.track,
		Organization:     f.org,
		ApplicationURL:   f.url,
		DeadlineDate:     f.deadline,
		DeadlineType:     f.deadlineType,
		IdentityPosition: f.identity,
		EffortLevel:      f.effort,
		Channel:          f.channel,
		Tags:             f.tags,
		Now:              a.now(),
	}
	if f.fit != "" {
		score, err := strconv.ParseFloat(f.fit, 64)
		if err != nil {
			return req, fmt.Errorf("--fit: %q is not a number", f.fit)
		}
		req.FitScore = &score
	}
	return req, nil
}

func newNewCmd(a *App) *cobra.Command {
	var f createFields

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a research record",
		Long: `Create a research record in active/.
Without --name on an interactive terminal, a form asks for the fields.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.name == "" {
				if !a.interactive() {
					return errors.New("--name is required")
				}
				if err := newOpportunityForm(&f).Run(); err != nil {
					return err
				}
			}
			req, err := f.request(a)
			if err != nil {
				return err
			}
			op, err := a.Services.Opportunities.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Created(op))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.id, "id", "", "Record id (default: slug of the name)")
	cmd.Flags().StringVar(&f.name, "name", "", "Opportunity name")
	cmd.Flags().Var(newEnumFlag(&f.track, trackChoices), "track", "Track (grant, residency, job, ...)")
	cmd.Flags().StringVar(&f.org, "org", "", "Organization")
	cmd.Flags().StringVar(&f.url, "url", "", "Application URL")
	cmd.Flags().StringVar(&f.deadline, "deadline", "", "Deadline date (YYYY-MM-DD)")
	cmd.Flags().Var(newEnumFlag(&f.deadlineType, deadlineTypeChoices), "deadline-type", "hard, soft, rolling or tba")
	cmd.Flags().StringVar(&f.fit, "fit", "", "Fit score 0-10")
	cmd.Flags().StringVar(&f.identity, "identity", "", "Identity position")
	cmd.Flags().Var(newEnumFlag(&f.effort, effortChoices), "effort", "quick, standard, deep or complex")
	cmd.Flags().StringVar(&f.channel, "channel", "", "Outreach channel")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "Tag (repeatable)")
	return cmd
}

// newOpportunityForm asks for the fields of a new record.
func newOpportunityForm(f *createFields) *huh.Form {
	if f.track == "" {
		f.track = string(domain.TrackGrant)
	}
	if f.deadlineType == "" {
		f.deadlineType = string(domain.DeadlineHard)
	}
	if f.effort == "" {
		f.effort = string(domain.EffortStandard)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.name).Validate(validateRequired("name")),
			huh.NewInput().Title("Organization").Value(&f.org),
			enumSelect("Track", trackChoices, &f.track),
		),
		huh.NewGroup(
			enumSelect("Deadline Type", deadlineTypeChoices, &f.deadlineType),
			dateInput("Deadline (YYYY-MM-DD, blank for none)", &f.deadline),
			huh.NewInput().Title("Application URL").Value(&f.url),
		),
		huh.NewGroup(
			enumSelect("Effort", effortChoices, &f.effort),
			huh.NewInput().Title("Fit Score (0-10, blank to skip)").Value(&f.fit).Validate(validateOptionalScore),
			huh.NewInput().Title("Identity Position").Value(&f.identity),
		),
	).WithTheme(pursuitHuhTheme()).WithShowHelp(false)
}
