package lifecycle

import "github.com/alexanderramin/pursuit/internal/domain"

// BucketFor returns the directory a record with status s is written to.
func BucketFor(s domain.Status) domain.Bucket {
	switch s {
	case domain.StatusSubmitted, domain.StatusAcknowledged, domain.StatusInterview:
		return domain.BucketSubmitted
	case domain.StatusOutcome, domain.StatusWithdrawn:
		return domain.BucketClosed
	default:
		return domain.BucketActive
	}
}

// BucketAllowed reports whether a record with status s may stay in b.
// Research leads may remain in the research pool until qualified.
func BucketAllowed(s domain.Status, b domain.Bucket) bool {
	if s == domain.StatusResearch && b == domain.BucketResearchPool {
		return true
	}
	return b == BucketFor(s)
}
