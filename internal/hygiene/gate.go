// Package hygiene holds the data-quality checks run over opportunity
// records. Every check is pure and returns warnings; none are fatal.
package hygiene

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/lifecycle"
)

type IssueKind string

const (
	IssueGate           IssueKind = "gate"
	IssueStale          IssueKind = "stale"
	IssuePendingOutcome IssueKind = "pending_outcome"
	IssueBucketDrift    IssueKind = "bucket_drift"
	IssueMaterial       IssueKind = "material"
	IssueBlock          IssueKind = "block"
)

type Issue struct {
	Kind    IssueKind
	Message string
}

// GateApplies reports whether the submission-readiness gate is enforced
// for a status. Research leads are allowed to be incomplete.
func GateApplies(s domain.Status) bool {
	switch s {
	case domain.StatusQualified, domain.StatusDrafting, domain.StatusStaged:
		return true
	}
	return false
}

// Gate runs the per-track required-field checks. An empty result means
// the record passes.
func Gate(policy domain.Policy, op *domain.Opportunity) []string {
	var issues []string

	if op.Track == domain.TrackJob && strings.TrimSpace(op.Target.ApplicationURL) == "" {
		issues = append(issues, "missing target.application_url (required for job track)")
	}

	if !policy.RollingTracks[op.Track] {
		undated := op.Deadline.Type == domain.DeadlineRolling || op.Deadline.Type == domain.DeadlineTBA
		if !undated && op.Deadline.Date == nil {
			issues = append(issues, fmt.Sprintf("missing deadline.date (required for %s track)", op.Track))
		}
	}

	if op.Fit.Score == nil {
		issues = append(issues, "missing fit.score")
	} else if *op.Fit.Score < 0 || *op.Fit.Score > 10 {
		issues = append(issues, fmt.Sprintf("fit.score %.1f outside 0-10", *op.Fit.Score))
	}
	if strings.TrimSpace(op.Fit.IdentityPosition) == "" {
		issues = append(issues, "missing fit.identity_position")
	}

	return issues
}

// IsStale flags undated records that have not been touched recently.
// A record that was never touched counts as stale.
func IsStale(policy domain.Policy, op *domain.Opportunity, now time.Time) bool {
	if op.Deadline.Dated() {
		return false
	}
	if op.LastTouched == nil {
		return true
	}
	return op.LastTouched.DaysSince(now) > policy.StaleDays
}

// PendingTooLong flags submissions that have waited past the pending
// threshold without an outcome.
func PendingTooLong(policy domain.Policy, op *domain.Opportunity, now time.Time) (int, bool) {
	if lifecycle.BucketFor(op.Status) != domain.BucketSubmitted || op.Outcome != "" {
		return 0, false
	}
	submitted, ok := op.SubmittedOn()
	if !ok {
		return 0, false
	}
	days := submitted.DaysSince(now)
	return days, days > policy.PendingStaleDays
}

// BucketDrift reports whether the record's directory disagrees with its
// status. Status wins; the store relocates on the next write.
func BucketDrift(op *domain.Opportunity) bool {
	return op.Bucket != "" && !lifecycle.BucketAllowed(op.Status, op.Bucket)
}
