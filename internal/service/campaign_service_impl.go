package service

import (
	"context"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/repository"
	"github.com/alexanderramin/pursuit/internal/scheduler"
)

var urgencyOrder = []domain.Urgency{
	domain.UrgencyCritical, domain.UrgencyUrgent, domain.UrgencyUpcoming, domain.UrgencyReady,
}

type campaignService struct {
	repo     repository.OpportunityRepo
	policy   domain.Policy
	observer UseCaseObserver
}

func NewCampaignService(repo repository.OpportunityRepo, policy domain.Policy, observers ...UseCaseObserver) CampaignService {
	return &campaignService{repo: repo, policy: policy, observer: useCaseObserverOrNoop(observers)}
}

func (s *campaignService) Campaign(ctx context.Context, req app.CampaignRequest) (resp *app.CampaignResponse, err error) {
	sp := startSpan(s.observer, "campaign")
	defer sp.finish(ctx, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	now := resolveNow(req.Now)
	horizon := s.policy.CampaignHorizonDays
	if req.HorizonDays > 0 {
		horizon = req.HorizonDays
	}

	ops, warnings, err := loadAll(ctx, s.repo)
	if err != nil {
		return nil, err
	}

	entries := scheduler.BuildCampaign(s.policy, ops, horizon, now)
	summary := app.CampaignSummary{GeneratedAt: now, HorizonDays: horizon, CountsTotal: len(entries)}

	byUrgency := make(map[domain.Urgency][]app.CampaignItem)
	for _, e := range entries {
		item := app.CampaignItem{
			OpportunitySummary: app.Summarize(e.Opportunity, now),
			Urgency:            e.Urgency,
			Effort:             e.Opportunity.Effort(),
			Feasible:           e.Feasibility.Feasible,
			Expired:            e.Feasibility.Expired,
			RequiredMin:        e.Feasibility.RequiredMin,
			AvailableMin:       e.Feasibility.AvailableMin,
		}
		if !item.Feasible {
			summary.CountsInfeasible++
		}
		if item.Expired {
			summary.CountsExpired++
		}
		summary.TotalRequiredMin += item.RequiredMin
		byUrgency[e.Urgency] = append(byUrgency[e.Urgency], item)
	}

	resp = &app.CampaignResponse{Summary: summary, Warnings: warnings}
	for _, u := range urgencyOrder {
		if items := byUrgency[u]; len(items) > 0 {
			resp.Groups = append(resp.Groups, app.CampaignGroup{Urgency: u, Items: items})
		}
	}
	sp.set("entries", len(entries))
	sp.set("horizon_days", horizon)
	return resp, nil
}
