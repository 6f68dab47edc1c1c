package domain

// FollowUpStep is one step of the post-submission follow-up protocol.
type FollowUpStep struct {
	DayOffset int
	Action    string
	Label     string
}

// Policy bundles the tunable constants used by classifiers and
// aggregators. Values are passed in rather than read from globals so each
// calculation stays a pure function of its inputs.
type Policy struct {
	// StatusOrder is the linear funnel progression.
	StatusOrder []Status

	EffortMinutes map[EffortLevel]int
	// DailyAvailableMin is how many minutes per day can go to applications.
	DailyAvailableMin int

	CampaignHorizonDays int
	// ExpiredFloorDays is how far past a deadline a record still shows up
	// in the campaign view.
	ExpiredFloorDays int

	StaleDays        int
	PendingStaleDays int

	FollowUpProtocol []FollowUpStep

	// RollingTracks never require a dated deadline.
	RollingTracks map[Track]bool
}

// DefaultPolicy returns the policy used when no overrides are configured.
func DefaultPolicy() Policy {
	return Policy{
		StatusOrder: []Status{
			StatusResearch, StatusQualified, StatusDrafting, StatusStaged,
			StatusSubmitted, StatusAcknowledged, StatusInterview, StatusOutcome,
		},
		EffortMinutes: map[EffortLevel]int{
			EffortQuick:    30,
			EffortStandard: 90,
			EffortDeep:     270,
			EffortComplex:  720,
		},
		DailyAvailableMin:   360,
		CampaignHorizonDays: 14,
		ExpiredFloorDays:    3,
		StaleDays:           14,
		PendingStaleDays:    30,
		FollowUpProtocol: []FollowUpStep{
			{DayOffset: 1, Action: "connect", Label: "Connect with a contact at the organization"},
			{DayOffset: 7, Action: "first_followup", Label: "Send first follow-up note"},
			{DayOffset: 14, Action: "final_followup", Label: "Send final follow-up note"},
		},
		RollingTracks: map[Track]bool{
			TrackJob:        true,
			TrackConsulting: true,
			TrackEmergency:  true,
		},
	}
}

// EffortMinutesFor returns the expected minutes for level, falling back to
// the standard level for unknown values.
func (p Policy) EffortMinutesFor(level EffortLevel) int {
	if m, ok := p.EffortMinutes[level]; ok {
		return m
	}
	return p.EffortMinutes[EffortStandard]
}

// StageIndex returns the 0-based position of s in the status order, or -1.
func (p Policy) StageIndex(s Status) int {
	for i, st := range p.StatusOrder {
		if st == s {
			return i
		}
	}
	return -1
}
