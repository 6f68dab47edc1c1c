package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/repository"
	"github.com/alexanderramin/pursuit/internal/scheduler"
)

type followUpService struct {
	repo     repository.OpportunityRepo
	policy   domain.Policy
	observer UseCaseObserver
}

func NewFollowUpService(repo repository.OpportunityRepo, policy domain.Policy, observers ...UseCaseObserver) FollowUpService {
	return &followUpService{repo: repo, policy: policy, observer: useCaseObserverOrNoop(observers)}
}

func (s *followUpService) Schedule(ctx context.Context, req app.FollowUpRequest) (resp *app.FollowUpResponse, err error) {
	sp := startSpan(s.observer, "followup")
	defer sp.finish(ctx, &err)

	now := resolveNow(req.Now)
	ops, warnings, err := loadAll(ctx, s.repo)
	if err != nil {
		return nil, err
	}

	resp = &app.FollowUpResponse{GeneratedAt: now, Warnings: warnings}
	for _, op := range ops {
		items, ok := followUpItems(s.policy, op, now)
		if !ok {
			resp.Untracked = append(resp.Untracked, op.ID)
			continue
		}
		for _, it := range items {
			switch it.State {
			case scheduler.FollowUpDue:
				resp.Due = append(resp.Due, it)
			case scheduler.FollowUpUpcoming:
				resp.Upcoming = append(resp.Upcoming, it)
			}
		}
	}
	sortFollowUps(resp.Due)
	sortFollowUps(resp.Upcoming)
	sp.set("due", len(resp.Due))
	sp.set("upcoming", len(resp.Upcoming))
	return resp, nil
}

// Log appends a follow-up entry and touches the record.
func (s *followUpService) Log(ctx context.Context, req app.FollowUpLogRequest) (op *domain.Opportunity, err error) {
	sp := startSpan(s.observer, "followup-log")
	defer sp.finish(ctx, &err)
	sp.set("id", req.ID)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	now := resolveNow(req.Now)
	op, err = s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	action := strings.TrimSpace(req.Action)
	if !knownAction(s.policy, action) {
		sp.set("custom_action", true)
	}
	op.FollowUps = append(op.FollowUps, domain.FollowUpEntry{
		Date:    domain.NewDate(now),
		Action:  action,
		Channel: req.Channel,
		Note:    req.Note,
	})
	op.Touch(now)
	if err = s.repo.Save(ctx, op); err != nil {
		return nil, fmt.Errorf("saving %s: %w", op.ID, err)
	}
	return op, nil
}

func knownAction(policy domain.Policy, action string) bool {
	for _, step := range policy.FollowUpProtocol {
		if step.Action == action {
			return true
		}
	}
	return false
}

func sortFollowUps(items []app.FollowUpItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DaysUntil != items[j].DaysUntil {
			return items[i].DaysUntil < items[j].DaysUntil
		}
		return items[i].ID < items[j].ID
	})
}
