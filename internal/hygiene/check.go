package hygiene

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// MaterialChecker reports which attached materials are missing.
type MaterialChecker interface {
	Missing(relPaths []string) []string
}

// BlockResolver reports whether composition references resolve.
type BlockResolver interface {
	HasBlock(ref string) bool
	HasVariant(id string) bool
}

// Checker runs every hygiene check over a record. Collaborators are
// optional; nil skips the corresponding check.
type Checker struct {
	Policy    domain.Policy
	Materials MaterialChecker
	Blocks    BlockResolver
}

// Check returns all issues for op, gate issues first.
func (c Checker) Check(op *domain.Opportunity, now time.Time) []Issue {
	var issues []Issue

	if GateApplies(op.Status) {
		for _, msg := range Gate(c.Policy, op) {
			issues = append(issues, Issue{Kind: IssueGate, Message: msg})
		}
	}

	if !op.Status.Terminal() && IsStale(c.Policy, op, now) {
		msg := "undated deadline and never touched"
		if op.LastTouched != nil {
			msg = fmt.Sprintf("undated deadline and untouched for %d days", op.LastTouched.DaysSince(now))
		}
		issues = append(issues, Issue{Kind: IssueStale, Message: msg})
	}

	if days, stale := PendingTooLong(c.Policy, op, now); stale {
		issues = append(issues, Issue{
			Kind:    IssuePendingOutcome,
			Message: fmt.Sprintf("submitted %d days ago with no outcome", days),
		})
	}

	if BucketDrift(op) {
		issues = append(issues, Issue{
			Kind:    IssueBucketDrift,
			Message: fmt.Sprintf("status %s stored in %s/", op.Status, op.Bucket),
		})
	}

	if c.Materials != nil {
		for _, m := range c.Materials.Missing(op.Submission.MaterialsAttached) {
			issues = append(issues, Issue{Kind: IssueMaterial, Message: fmt.Sprintf("material not found: %s", m)})
		}
	}

	if c.Blocks != nil {
		for _, section := range sortedKeys(op.Submission.BlocksUsed) {
			ref := op.Submission.BlocksUsed[section]
			if !c.Blocks.HasBlock(ref) {
				issues = append(issues, Issue{Kind: IssueBlock, Message: fmt.Sprintf("block %q for %s not found", ref, section)})
			}
		}
		for _, section := range sortedKeys(op.Submission.VariantIDs) {
			id := op.Submission.VariantIDs[section]
			if !c.Blocks.HasVariant(id) {
				issues = append(issues, Issue{Kind: IssueBlock, Message: fmt.Sprintf("variant %q for %s not found", id, section)})
			}
		}
	}

	return issues
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
