package cli

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/pursuit/internal/cli/formatter"
	"github.com/alexanderramin/pursuit/internal/compose"
	"github.com/alexanderramin/pursuit/internal/config"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/materials"
	"github.com/alexanderramin/pursuit/internal/repository"
	"github.com/alexanderramin/pursuit/internal/service"
	"github.com/spf13/cobra"
)

// ErrIssuesFound is returned by report commands that completed but found
// something needing attention. main maps it to a distinct exit code
// without printing it.
var ErrIssuesFound = errors.New("issues found")

// Services holds every use case the commands call.
type Services struct {
	Campaign      service.CampaignService
	Hygiene       service.HygieneService
	Reports       service.ReportService
	FollowUps     service.FollowUpService
	Opportunities service.OpportunityService
	Import        service.ImportService
	Compose       service.ComposeService
}

// NewServices wires the store and collaborators under cfg.
func NewServices(cfg config.Config, observer service.UseCaseObserver) *Services {
	repo := repository.NewYAMLOpportunityRepo(cfg.Root)
	policy := cfg.Policy()
	mats := materials.NewStore(cfg.Materials())
	blocks := compose.NewService(cfg.Blocks())

	return &Services{
		Campaign:      service.NewCampaignService(repo, policy, observer),
		Hygiene:       service.NewHygieneService(repo, policy, mats, blocks, observer),
		Reports:       service.NewReportService(repo, policy, observer),
		FollowUps:     service.NewFollowUpService(repo, policy, observer),
		Opportunities: service.NewOpportunityService(repo, policy, mats, blocks, observer),
		Import:        service.NewImportService(repo, observer),
		Compose:       service.NewComposeService(repo, blocks, observer),
	}
}

// App is the state shared by every command.
type App struct {
	Config config.Config

	// Services is built from Config after flags are parsed unless a caller
	// has already set it.
	Services *Services

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Now pins "today" for every request. Nil means the wall clock.
	Now func() time.Time

	// Stderr receives use-case telemetry and document footers.
	Stderr io.Writer
}

func (a *App) now() *time.Time {
	if a.Now == nil {
		return nil
	}
	t := a.Now()
	return &t
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) stderr() io.Writer {
	if a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}

func (a *App) policy() domain.Policy {
	return a.Config.Policy()
}

// NewRootCmd creates the top-level "pursuit" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		rootDir          string
		verbose, noColor bool
	)

	root := &cobra.Command{
		Use:           "pursuit",
		Short:         "Track a job, grant and residency application pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("root") {
				app.Config.Root = rootDir
			}
			if noColor || app.Config.NoColor {
				formatter.DisableColor()
			}
			if app.Services != nil {
				return nil
			}
			var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
			if verbose || app.Config.LogUseCases {
				observer = service.NewLogUseCaseObserver(app.stderr())
			}
			app.Services = NewServices(app.Config, observer)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&rootDir, "root", app.Config.Root, "Pipeline directory holding the bucket folders")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log use-case telemetry to stderr")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newAdvanceCmd(app),
		newShowCmd(app),
		newNewCmd(app),
		newImportCmd(app),
		newCampaignCmd(app),
		newHygieneCmd(app),
		newFunnelCmd(app),
		newVelocityCmd(app),
		newFollowUpCmd(app),
		newComposeCmd(app),
		newReconcileCmd(app),
		newBoardCmd(app),
	)

	return root
}
