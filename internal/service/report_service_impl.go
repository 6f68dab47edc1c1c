package service

import (
	"context"

	"github.com/alexanderramin/pursuit/internal/analytics"
	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/repository"
)

type reportService struct {
	repo     repository.OpportunityRepo
	policy   domain.Policy
	observer UseCaseObserver
}

func NewReportService(repo repository.OpportunityRepo, policy domain.Policy, observers ...UseCaseObserver) ReportService {
	return &reportService{repo: repo, policy: policy, observer: useCaseObserverOrNoop(observers)}
}

func (s *reportService) Funnel(ctx context.Context, req app.FunnelRequest) (resp *app.FunnelResponse, err error) {
	sp := startSpan(s.observer, "funnel")
	defer sp.finish(ctx, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	ops, warnings, err := loadAll(ctx, s.repo)
	if err != nil {
		return nil, err
	}

	dims := req.Dimensions
	if len(dims) == 0 {
		dims = analytics.AllDimensions
	}

	resp = &app.FunnelResponse{
		GeneratedAt: resolveNow(req.Now),
		Total:       len(ops),
		Stages:      analytics.Funnel(s.policy, ops),
		Warnings:    warnings,
	}
	for _, d := range dims {
		groups := analytics.GroupBy(s.policy, ops, analytics.ByDimension(d))
		resp.Breakdowns = append(resp.Breakdowns, app.DimensionBreakdown{
			Dimension: d,
			Groups:    groups,
			Totals:    analytics.Totals(groups),
		})
	}
	sp.set("records", len(ops))
	sp.set("dimensions", len(dims))
	return resp, nil
}

func (s *reportService) Velocity(ctx context.Context, req app.VelocityRequest) (resp *app.VelocityResponse, err error) {
	sp := startSpan(s.observer, "velocity")
	defer sp.finish(ctx, &err)

	now := resolveNow(req.Now)
	ops, warnings, err := loadAll(ctx, s.repo)
	if err != nil {
		return nil, err
	}
	sp.set("records", len(ops))
	return &app.VelocityResponse{
		GeneratedAt: now,
		Metrics:     analytics.Velocity(s.policy, ops, now),
		Warnings:    warnings,
	}, nil
}
