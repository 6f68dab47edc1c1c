package analytics

import "github.com/alexanderramin/pursuit/internal/domain"

type StageCount struct {
	Stage   domain.Status
	Reached int
	// Conversion is Reached over the previous stage's Reached; the first
	// stage has no predecessor and reports 1 when non-empty.
	Conversion float64
}

// FurthestStage returns the deepest funnel index op has reached, from its
// timeline and its current status. Withdrawn records keep the depth they
// reached before withdrawing.
func FurthestStage(policy domain.Policy, op *domain.Opportunity) int {
	furthest := StageIndex(policy, op.Status)
	for s := range op.Timeline {
		if idx := StageIndex(policy, s); idx > furthest {
			furthest = idx
		}
	}
	return furthest
}

// Funnel counts how many records ever reached each stage. Counts are
// cumulative: a record at interview also counts toward every earlier stage.
func Funnel(policy domain.Policy, ops []*domain.Opportunity) []StageCount {
	counts := make([]StageCount, len(policy.StatusOrder))
	for i, s := range policy.StatusOrder {
		counts[i].Stage = s
	}
	for _, op := range ops {
		furthest := FurthestStage(policy, op)
		for i := 0; i <= furthest && i < len(counts); i++ {
			counts[i].Reached++
		}
	}
	for i := range counts {
		if i == 0 {
			counts[i].Conversion = ratio(counts[i].Reached, counts[i].Reached)
			continue
		}
		counts[i].Conversion = ratio(counts[i].Reached, counts[i-1].Reached)
	}
	return counts
}
