package scheduler

import (
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// Urgency tier thresholds in days until deadline (inclusive upper bounds).
const (
	criticalMaxDays = 3
	urgentMaxDays   = 7
	upcomingMaxDays = 14
)

// ClassifyUrgency maps a deadline to an urgency tier. Past deadlines stay
// critical rather than dropping out; undated deadlines are always ready.
func ClassifyUrgency(deadline domain.Deadline, now time.Time) domain.Urgency {
	if !deadline.Dated() {
		return domain.UrgencyReady
	}
	return UrgencyForDays(deadline.Date.DaysUntil(now))
}

// UrgencyForDays classifies a days-until-deadline count.
func UrgencyForDays(days int) domain.Urgency {
	switch {
	case days <= criticalMaxDays:
		return domain.UrgencyCritical
	case days <= urgentMaxDays:
		return domain.UrgencyUrgent
	case days <= upcomingMaxDays:
		return domain.UrgencyUpcoming
	default:
		return domain.UrgencyReady
	}
}

// UrgencyPriority returns a sort priority (lower = more urgent).
func UrgencyPriority(u domain.Urgency) int {
	switch u {
	case domain.UrgencyCritical:
		return 0
	case domain.UrgencyUrgent:
		return 1
	case domain.UrgencyUpcoming:
		return 2
	default:
		return 3
	}
}

type FeasibilityResult struct {
	Feasible     bool
	DaysLeft     *int
	RequiredMin  int
	AvailableMin int
	Expired      bool
}

// CheckFeasibility compares the effort level's expected minutes with the
// minutes available before the deadline.
func CheckFeasibility(policy domain.Policy, effort domain.EffortLevel, deadline domain.Deadline, now time.Time) FeasibilityResult {
	required := policy.EffortMinutesFor(effort)

	if !deadline.Dated() {
		return FeasibilityResult{Feasible: true, RequiredMin: required}
	}

	days := deadline.Date.DaysUntil(now)
	result := FeasibilityResult{
		DaysLeft:    &days,
		RequiredMin: required,
	}

	if days < 0 {
		result.Expired = true
		return result
	}

	result.AvailableMin = days * policy.DailyAvailableMin
	result.Feasible = required <= result.AvailableMin
	return result
}
