// Package analytics aggregates opportunity records for conversion and
// velocity reporting. Functions here are pure over their inputs.
package analytics

import (
	"sort"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// GroupCounts holds the conversion counters for one group.
type GroupCounts struct {
	Key       string
	Total     int
	Submitted int
	Outcomes  int
	Accepted  int
	Rejected  int
	Pending   int
}

// SubmissionRate is submitted-or-further over total.
func (g GroupCounts) SubmissionRate() float64 {
	return ratio(g.Submitted, g.Total)
}

// AcceptanceRate is accepted over resolved outcomes.
func (g GroupCounts) AcceptanceRate() float64 {
	return ratio(g.Accepted, g.Outcomes)
}

// KeyFunc extracts a grouping key; ok=false excludes the record.
type KeyFunc func(op *domain.Opportunity) (key string, ok bool)

// ByDimension adapts a named dimension to a KeyFunc.
func ByDimension(dim Dimension) KeyFunc {
	return func(op *domain.Opportunity) (string, bool) {
		return Extract(dim, op)
	}
}

// GroupBy counts records per key. Groups are returned sorted by total
// descending, then key. Records without a key contribute to no group.
func GroupBy(policy domain.Policy, ops []*domain.Opportunity, keyFn KeyFunc) []GroupCounts {
	groups := make(map[string]*GroupCounts)
	for _, op := range ops {
		key, ok := keyFn(op)
		if !ok {
			continue
		}
		g, exists := groups[key]
		if !exists {
			g = &GroupCounts{Key: key}
			groups[key] = g
		}
		tally(policy, g, op)
	}

	out := make([]GroupCounts, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Totals sums a set of groups into a single row.
func Totals(groups []GroupCounts) GroupCounts {
	t := GroupCounts{Key: "total"}
	for _, g := range groups {
		t.Total += g.Total
		t.Submitted += g.Submitted
		t.Outcomes += g.Outcomes
		t.Accepted += g.Accepted
		t.Rejected += g.Rejected
		t.Pending += g.Pending
	}
	return t
}

func tally(policy domain.Policy, g *GroupCounts, op *domain.Opportunity) {
	g.Total++
	submitted := ReachedSubmission(policy, op)
	if submitted {
		g.Submitted++
	}
	if op.Status == domain.StatusOutcome {
		g.Outcomes++
		switch op.Outcome {
		case domain.OutcomeAccepted:
			g.Accepted++
		case domain.OutcomeRejected:
			g.Rejected++
		}
	}
	if submitted && !op.Status.Terminal() {
		g.Pending++
	}
}

// ReachedSubmission reports whether op was ever submitted, by timeline or
// by a status at or past submitted.
func ReachedSubmission(policy domain.Policy, op *domain.Opportunity) bool {
	if _, ok := op.SubmittedOn(); ok {
		return true
	}
	return StageIndex(policy, op.Status) >= StageIndex(policy, domain.StatusSubmitted)
}

// StageIndex maps a status to its 0-based funnel position, or -1.
func StageIndex(policy domain.Policy, s domain.Status) int {
	return policy.StageIndex(s)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
