package service

import (
	"context"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/importer"
)

type CampaignService interface {
	Campaign(ctx context.Context, req app.CampaignRequest) (*app.CampaignResponse, error)
}

type HygieneService interface {
	Check(ctx context.Context, req app.HygieneRequest) (*app.HygieneResponse, error)
}

type ReportService interface {
	Funnel(ctx context.Context, req app.FunnelRequest) (*app.FunnelResponse, error)
	Velocity(ctx context.Context, req app.VelocityRequest) (*app.VelocityResponse, error)
}

type FollowUpService interface {
	Schedule(ctx context.Context, req app.FollowUpRequest) (*app.FollowUpResponse, error)
	Log(ctx context.Context, req app.FollowUpLogRequest) (*domain.Opportunity, error)
}

type OpportunityService interface {
	Show(ctx context.Context, req app.ShowRequest) (*app.ShowResponse, error)
	Create(ctx context.Context, req app.CreateRequest) (*domain.Opportunity, error)
	Advance(ctx context.Context, req app.AdvanceRequest) (*app.AdvanceResponse, error)
	Reconcile(ctx context.Context, req app.ReconcileRequest) (*app.ReconcileResponse, error)
	// List returns every loadable record plus load warnings.
	List(ctx context.Context) ([]*domain.Opportunity, []string, error)
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*app.ImportResult, error)
	ImportList(ctx context.Context, list *importer.LeadList) (*app.ImportResult, error)
}

type ComposeService interface {
	Compose(ctx context.Context, id string) (*app.ComposeResponse, error)
}
