package app

import (
	"strings"
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/hygiene"
	"github.com/alexanderramin/pursuit/internal/scheduler"
)

type AdvanceRequest struct {
	ID      string
	To      domain.Status
	Outcome domain.Outcome
	DryRun  bool
	Now     *time.Time
}

type AdvanceResponse struct {
	ID         string
	From       domain.Status
	To         domain.Status
	Outcome    domain.Outcome
	Forward    bool
	Relocated  bool
	FromBucket domain.Bucket
	ToBucket   domain.Bucket
	DryRun     bool
	// GateIssues warns about readiness gaps after the move; it never
	// blocks the transition.
	GateIssues []string
}

type ShowRequest struct {
	ID  string
	Now *time.Time
}

type ShowResponse struct {
	Opportunity *domain.Opportunity
	Summary     OpportunitySummary
	Urgency     domain.Urgency
	Feasibility scheduler.FeasibilityResult
	InCampaign  bool
	StageIndex  int
	NextStatus  []domain.Status
	Issues      []hygiene.Issue
	FollowUps   []FollowUpItem
}

type CreateRequest struct {
	ID               string
	Name             string
	Track            string
	Organization     string
	ApplicationURL   string
	DeadlineDate     string
	DeadlineType     string
	FitScore         *float64
	IdentityPosition string
	EffortLevel      string
	Channel          string
	Tags             []string
	Now              *time.Time
}

func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name is required")
	}
	return nil
}

type ImportResult struct {
	Created []string
	// Skipped lists ids already present in the store.
	Skipped []string
}

type ReconcileRequest struct {
	DryRun bool
}

type ReconcileMove struct {
	ID     string
	From   domain.Bucket
	To     domain.Bucket
	Reason string
}

type ReconcileResponse struct {
	DryRun   bool
	Moves    []ReconcileMove
	Warnings []string
}

type ComposeResponse struct {
	ID       string
	Name     string
	Markdown string
	Words    int
	Sections int
}
