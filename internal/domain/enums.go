package domain

type Track string

const (
	TrackGrant      Track = "grant"
	TrackResidency  Track = "residency"
	TrackJob        Track = "job"
	TrackFellowship Track = "fellowship"
	TrackWriting    Track = "writing"
	TrackEmergency  Track = "emergency"
	TrackPrize      Track = "prize"
	TrackProgram    Track = "program"
	TrackConsulting Track = "consulting"
)

// ValidTracks is the canonical set of accepted track strings.
var ValidTracks = map[Track]bool{
	TrackGrant: true, TrackResidency: true, TrackJob: true,
	TrackFellowship: true, TrackWriting: true, TrackEmergency: true,
	TrackPrize: true, TrackProgram: true, TrackConsulting: true,
}

type Status string

const (
	StatusResearch     Status = "research"
	StatusQualified    Status = "qualified"
	StatusDrafting     Status = "drafting"
	StatusStaged       Status = "staged"
	StatusSubmitted    Status = "submitted"
	StatusAcknowledged Status = "acknowledged"
	StatusInterview    Status = "interview"
	StatusOutcome      Status = "outcome"
	StatusWithdrawn    Status = "withdrawn"
)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[Status]bool{
	StatusResearch: true, StatusQualified: true, StatusDrafting: true,
	StatusStaged: true, StatusSubmitted: true, StatusAcknowledged: true,
	StatusInterview: true, StatusOutcome: true, StatusWithdrawn: true,
}

// Terminal reports whether no transition may leave s.
func (s Status) Terminal() bool {
	return s == StatusOutcome || s == StatusWithdrawn
}

// Actionable reports whether s still needs work before submission.
func (s Status) Actionable() bool {
	switch s {
	case StatusResearch, StatusQualified, StatusDrafting, StatusStaged:
		return true
	}
	return false
}

type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeRejected  Outcome = "rejected"
	OutcomeWithdrawn Outcome = "withdrawn"
	OutcomeExpired   Outcome = "expired"
)

var ValidOutcomes = map[Outcome]bool{
	OutcomeAccepted: true, OutcomeRejected: true,
	OutcomeWithdrawn: true, OutcomeExpired: true,
}

type DeadlineType string

const (
	DeadlineHard    DeadlineType = "hard"
	DeadlineSoft    DeadlineType = "soft"
	DeadlineRolling DeadlineType = "rolling"
	DeadlineTBA     DeadlineType = "tba"
)

var ValidDeadlineTypes = map[DeadlineType]bool{
	DeadlineHard: true, DeadlineSoft: true, DeadlineRolling: true, DeadlineTBA: true,
}

type EffortLevel string

const (
	EffortQuick    EffortLevel = "quick"
	EffortStandard EffortLevel = "standard"
	EffortDeep     EffortLevel = "deep"
	EffortComplex  EffortLevel = "complex"
)

var ValidEffortLevels = map[EffortLevel]bool{
	EffortQuick: true, EffortStandard: true, EffortDeep: true, EffortComplex: true,
}

// Bucket is the coarse storage directory a record lives in.
type Bucket string

const (
	BucketActive       Bucket = "active"
	BucketSubmitted    Bucket = "submitted"
	BucketClosed       Bucket = "closed"
	BucketResearchPool Bucket = "research_pool"
)

// AllBuckets lists every bucket in load order.
var AllBuckets = []Bucket{BucketActive, BucketResearchPool, BucketSubmitted, BucketClosed}

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyUpcoming Urgency = "upcoming"
	UrgencyReady    Urgency = "ready"
)
