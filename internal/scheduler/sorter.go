package scheduler

import (
	"sort"
)

// CanonicalSort sorts campaign entries by the deterministic canonical rules:
// 1. Urgency: critical > urgent > upcoming > ready
// 2. Deadline: earliest first (undated last)
// 3. Fit score: higher first (unscored last)
// 4. Tier: lower tier number first (untiered last)
// 5. ID: lexical ascending
func CanonicalSort(entries []CampaignEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		ua, ub := UrgencyPriority(a.Urgency), UrgencyPriority(b.Urgency)
		if ua != ub {
			return ua < ub
		}

		if (a.DaysLeft == nil) != (b.DaysLeft == nil) {
			return a.DaysLeft != nil
		}
		if a.DaysLeft != nil && b.DaysLeft != nil && *a.DaysLeft != *b.DaysLeft {
			return *a.DaysLeft < *b.DaysLeft
		}

		sa, sb := a.Opportunity.Fit.Score, b.Opportunity.Fit.Score
		if (sa == nil) != (sb == nil) {
			return sa != nil
		}
		if sa != nil && sb != nil && *sa != *sb {
			return *sa > *sb
		}

		ta, tb := tierRank(a.Opportunity.Tier()), tierRank(b.Opportunity.Tier())
		if ta != tb {
			return ta < tb
		}

		return a.Opportunity.ID < b.Opportunity.ID
	})
}

func tierRank(tier int) int {
	if tier == 0 {
		return 1 << 30
	}
	return tier
}
