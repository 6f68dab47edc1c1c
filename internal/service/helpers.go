package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/repository"
	"github.com/alexanderramin/pursuit/internal/scheduler"
)

func resolveNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}

// loadAll lists the store, turning per-record load failures into warnings
// so reports still cover every record that loaded.
func loadAll(ctx context.Context, repo repository.OpportunityRepo) ([]*domain.Opportunity, []string, error) {
	res, err := repo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading opportunities: %w", err)
	}
	var warnings []string
	for _, f := range res.Failures {
		warnings = append(warnings, "skipped "+f.Error())
	}
	return res.Opportunities, warnings, nil
}

// followUpItems returns the follow-up tasks for op. ok is false when op is
// in a follow-up status but carries no submission date.
func followUpItems(policy domain.Policy, op *domain.Opportunity, now time.Time) (items []app.FollowUpItem, ok bool) {
	if !scheduler.NeedsFollowUp(op) {
		return nil, true
	}
	submitted, ok := op.SubmittedOn()
	if !ok {
		return nil, false
	}
	for _, task := range scheduler.FollowUpSchedule(policy, op, submitted, now) {
		items = append(items, app.FollowUpItem{
			ID:           op.ID,
			Name:         op.Name,
			Organization: op.Target.Organization,
			Contact:      op.Outreach.Contact,
			SubmittedOn:  submitted.String(),
			Action:       task.Step.Action,
			Label:        task.Step.Label,
			DueDate:      task.DueDate.String(),
			DaysUntil:    task.DaysUntil,
			State:        task.State,
		})
	}
	return items, true
}
