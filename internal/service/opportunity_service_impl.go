package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/hygiene"
	"github.com/alexanderramin/pursuit/internal/importer"
	"github.com/alexanderramin/pursuit/internal/lifecycle"
	"github.com/alexanderramin/pursuit/internal/repository"
	"github.com/alexanderramin/pursuit/internal/scheduler"
	"github.com/google/uuid"
)

type opportunityService struct {
	repo     repository.OpportunityRepo
	policy   domain.Policy
	machine  *lifecycle.Machine
	checker  hygiene.Checker
	observer UseCaseObserver
}

func NewOpportunityService(
	repo repository.OpportunityRepo,
	policy domain.Policy,
	materials hygiene.MaterialChecker,
	blocks hygiene.BlockResolver,
	observers ...UseCaseObserver,
) OpportunityService {
	return &opportunityService{
		repo:     repo,
		policy:   policy,
		machine:  lifecycle.NewMachine(policy),
		checker:  hygiene.Checker{Policy: policy, Materials: materials, Blocks: blocks},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *opportunityService) List(ctx context.Context) ([]*domain.Opportunity, []string, error) {
	return loadAll(ctx, s.repo)
}

func (s *opportunityService) Show(ctx context.Context, req app.ShowRequest) (resp *app.ShowResponse, err error) {
	sp := startSpan(s.observer, "show")
	defer sp.finish(ctx, &err)
	sp.set("id", req.ID)

	now := resolveNow(req.Now)
	op, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	resp = &app.ShowResponse{
		Opportunity: op,
		Summary:     app.Summarize(op, now),
		Urgency:     scheduler.ClassifyUrgency(op.Deadline, now),
		Feasibility: scheduler.CheckFeasibility(s.policy, op.Effort(), op.Deadline, now),
		InCampaign:  scheduler.InCampaign(s.policy, op, s.policy.CampaignHorizonDays, now),
		StageIndex:  s.policy.StageIndex(op.Status),
		Issues:      s.checker.Check(op, now),
	}
	for _, to := range append(append([]domain.Status{}, s.policy.StatusOrder...), domain.StatusWithdrawn) {
		if s.machine.CanTransition(op.Status, to) {
			resp.NextStatus = append(resp.NextStatus, to)
		}
	}
	if items, ok := followUpItems(s.policy, op, now); ok {
		resp.FollowUps = items
	}
	return resp, nil
}

// Create writes a new research record to the active bucket.
func (s *opportunityService) Create(ctx context.Context, req app.CreateRequest) (op *domain.Opportunity, err error) {
	sp := startSpan(s.observer, "create")
	defer sp.finish(ctx, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	now := resolveNow(req.Now)
	op, err = buildOpportunity(req, now)
	if err != nil {
		return nil, err
	}
	sp.set("id", op.ID)
	if err = s.repo.Create(ctx, op); err != nil {
		return nil, err
	}
	return op, nil
}

// Advance applies one status transition. With DryRun set the store is
// left untouched and the response describes what would happen.
func (s *opportunityService) Advance(ctx context.Context, req app.AdvanceRequest) (resp *app.AdvanceResponse, err error) {
	sp := startSpan(s.observer, "advance")
	defer sp.finish(ctx, &err)
	sp.set("id", req.ID)
	sp.set("to", string(req.To))

	if _, err = domain.ParseStatus(string(req.To)); err != nil {
		return nil, err
	}
	now := resolveNow(req.Now)
	op, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	res, err := s.machine.Apply(op, lifecycle.Transition{To: req.To, Outcome: req.Outcome, Now: now})
	if err != nil {
		return nil, err
	}

	resp = &app.AdvanceResponse{
		ID:         op.ID,
		From:       res.From,
		To:         res.Opportunity.Status,
		Outcome:    res.Opportunity.Outcome,
		Forward:    res.Forward,
		Relocated:  res.Relocate,
		FromBucket: op.Bucket,
		ToBucket:   res.Bucket,
		DryRun:     req.DryRun,
	}
	if hygiene.GateApplies(res.Opportunity.Status) {
		resp.GateIssues = hygiene.Gate(s.policy, res.Opportunity)
	}
	if req.DryRun {
		return resp, nil
	}

	// Save writes relative to the bucket the record was loaded from.
	next := res.Opportunity
	next.Bucket = op.Bucket
	if err = s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("saving %s: %w", op.ID, err)
	}
	sp.set("relocated", resp.Relocated)
	return resp, nil
}

func (s *opportunityService) Reconcile(ctx context.Context, req app.ReconcileRequest) (resp *app.ReconcileResponse, err error) {
	sp := startSpan(s.observer, "reconcile")
	defer sp.finish(ctx, &err)

	moves, err := s.repo.Reconcile(ctx, req.DryRun)
	resp = &app.ReconcileResponse{DryRun: req.DryRun}
	for _, m := range moves {
		resp.Moves = append(resp.Moves, app.ReconcileMove{ID: m.ID, From: m.From, To: m.To, Reason: m.Reason})
	}
	sp.set("moves", len(moves))
	if err != nil {
		return resp, err
	}

	res, err := s.repo.List(ctx)
	if err != nil {
		return resp, err
	}
	for _, f := range res.Failures {
		resp.Warnings = append(resp.Warnings, "skipped "+f.Error())
	}
	return resp, nil
}

func buildOpportunity(req app.CreateRequest, now time.Time) (*domain.Opportunity, error) {
	track, err := domain.ParseTrack(req.Track)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = importer.Slug(req.Name)
	}
	if id == "" {
		id = "opportunity-" + uuid.NewString()[:8]
	}

	var deadline domain.Deadline
	if req.DeadlineDate != "" {
		d, err := domain.ParseDate(req.DeadlineDate)
		if err != nil {
			return nil, domain.Invalid("deadline.date", req.DeadlineDate, "invalid date (expected YYYY-MM-DD)")
		}
		deadline.Date = &d
		deadline.Type = domain.DeadlineHard
	}
	if req.DeadlineType != "" {
		dt := domain.DeadlineType(req.DeadlineType)
		if !domain.ValidDeadlineTypes[dt] {
			return nil, domain.Invalid("deadline.type", req.DeadlineType, "unknown deadline type")
		}
		deadline.Type = dt
	}
	if deadline.Type == "" {
		deadline.Type = domain.DeadlineTBA
	}

	effort := domain.EffortLevel(req.EffortLevel)
	if effort != "" && !domain.ValidEffortLevels[effort] {
		return nil, domain.Invalid("submission.effort_level", req.EffortLevel, "unknown effort level")
	}
	if req.FitScore != nil && (*req.FitScore < 0 || *req.FitScore > 10) {
		return nil, domain.Invalid("fit.score", fmt.Sprintf("%.1f", *req.FitScore), "must be between 0 and 10")
	}

	today := domain.NewDate(now)
	return &domain.Opportunity{
		ID:       id,
		Name:     strings.TrimSpace(req.Name),
		Track:    track,
		Status:   domain.StatusResearch,
		Bucket:   domain.BucketActive,
		Deadline: deadline,
		Fit: domain.Fit{
			Score:            req.FitScore,
			IdentityPosition: req.IdentityPosition,
		},
		Submission: domain.Submission{EffortLevel: effort},
		Target: domain.Target{
			Organization:   req.Organization,
			ApplicationURL: req.ApplicationURL,
		},
		Outreach:    domain.Outreach{Channel: req.Channel},
		Timeline:    map[domain.Status]domain.Date{domain.StatusResearch: today},
		LastTouched: &today,
		Tags:        req.Tags,
	}, nil
}
