package scheduler

import (
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
)

type FollowUpState string

const (
	FollowUpDue      FollowUpState = "due"
	FollowUpUpcoming FollowUpState = "upcoming"
	FollowUpDone     FollowUpState = "done"
)

type FollowUpTask struct {
	Step    domain.FollowUpStep
	DueDate domain.Date
	State   FollowUpState
	// DaysUntil is negative when the step is overdue.
	DaysUntil int
}

// FollowUpSchedule lays the protocol over a submission date. A step is due
// once its date arrives and upcoming before that; logged steps are done.
// Due and upcoming never overlap.
func FollowUpSchedule(policy domain.Policy, op *domain.Opportunity, submitted domain.Date, now time.Time) []FollowUpTask {
	tasks := make([]FollowUpTask, 0, len(policy.FollowUpProtocol))
	for _, step := range policy.FollowUpProtocol {
		due := domain.Date{Time: submitted.AddDate(0, 0, step.DayOffset)}
		days := due.DaysUntil(now)

		state := FollowUpUpcoming
		switch {
		case op.HasFollowUp(step.Action):
			state = FollowUpDone
		case days <= 0:
			state = FollowUpDue
		}

		tasks = append(tasks, FollowUpTask{
			Step:      step,
			DueDate:   due,
			State:     state,
			DaysUntil: days,
		})
	}
	return tasks
}

// NeedsFollowUp reports whether op is in a status where the protocol runs.
func NeedsFollowUp(op *domain.Opportunity) bool {
	switch op.Status {
	case domain.StatusSubmitted, domain.StatusAcknowledged:
		return true
	}
	return false
}
