package scheduler

import (
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// CampaignEligible reports whether a status is worked on in a campaign.
// Research leads are not yet qualified and submitted records are done.
func CampaignEligible(s domain.Status) bool {
	switch s {
	case domain.StatusQualified, domain.StatusDrafting, domain.StatusStaged:
		return true
	}
	return false
}

// InCampaign reports whether op needs near-term attention: an eligible
// status and either an undated deadline or one inside
// [-ExpiredFloorDays, horizonDays].
func InCampaign(policy domain.Policy, op *domain.Opportunity, horizonDays int, now time.Time) bool {
	if !CampaignEligible(op.Status) {
		return false
	}
	if !op.Deadline.Dated() {
		return true
	}
	days := op.Deadline.Date.DaysUntil(now)
	return days <= horizonDays && days >= -policy.ExpiredFloorDays
}

type CampaignEntry struct {
	Opportunity *domain.Opportunity
	Urgency     domain.Urgency
	Feasibility FeasibilityResult
	DaysLeft    *int
}

// BuildCampaign filters ops to the campaign set, classifies each entry,
// and returns them in canonical order.
func BuildCampaign(policy domain.Policy, ops []*domain.Opportunity, horizonDays int, now time.Time) []CampaignEntry {
	var entries []CampaignEntry
	for _, op := range ops {
		if !InCampaign(policy, op, horizonDays, now) {
			continue
		}
		feas := CheckFeasibility(policy, op.Effort(), op.Deadline, now)
		entries = append(entries, CampaignEntry{
			Opportunity: op,
			Urgency:     ClassifyUrgency(op.Deadline, now),
			Feasibility: feas,
			DaysLeft:    feas.DaysLeft,
		})
	}
	CanonicalSort(entries)
	return entries
}
