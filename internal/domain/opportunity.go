package domain

import (
	"strconv"
	"strings"
	"time"
)

// Deadline is either a dated hard/soft deadline or an undated rolling/tba one.
type Deadline struct {
	Date *Date
	Type DeadlineType
}

// Dated reports whether the deadline carries a calendar date that
// classifiers should count against.
func (d Deadline) Dated() bool {
	if d.Type == DeadlineRolling || d.Type == DeadlineTBA {
		return false
	}
	return d.Date != nil
}

type Fit struct {
	Score            *float64
	IdentityPosition string
}

type Submission struct {
	EffortLevel       EffortLevel
	MaterialsAttached []string
	// BlocksUsed maps a document section to a composition block reference.
	BlocksUsed   map[string]string
	VariantIDs   map[string]string
	PortfolioURL string
	CoverLetter  string
}

type Target struct {
	Organization   string
	ApplicationURL string
	Portal         string
	LocationClass  string
}

type Outreach struct {
	Channel string
	Contact string
}

// FollowUpEntry is one logged follow-up action.
type FollowUpEntry struct {
	Date    Date
	Action  string
	Channel string
	Note    string
}

type Opportunity struct {
	ID      string
	Name    string
	Track   Track
	Status  Status
	Outcome Outcome

	Deadline   Deadline
	Fit        Fit
	Submission Submission
	Target     Target
	Outreach   Outreach

	// Timeline records the date each status was first reached.
	Timeline    map[Status]Date
	FollowUps   []FollowUpEntry
	LastTouched *Date
	Tags        []string
	Notes       string

	// Bucket is the directory the record was loaded from. It is storage
	// metadata, not state: status decides where the record belongs.
	Bucket Bucket
}

// Effort returns the submission effort level, defaulting to standard.
func (o *Opportunity) Effort() EffortLevel {
	if o.Submission.EffortLevel == "" {
		return EffortStandard
	}
	return o.Submission.EffortLevel
}

// SubmittedOn returns the date the record entered submitted, if known.
func (o *Opportunity) SubmittedOn() (Date, bool) {
	d, ok := o.Timeline[StatusSubmitted]
	return d, ok
}

// HasCoverLetter reports whether any cover letter content is attached,
// either inline or as a composition block.
func (o *Opportunity) HasCoverLetter() bool {
	if strings.TrimSpace(o.Submission.CoverLetter) != "" {
		return true
	}
	for section := range o.Submission.BlocksUsed {
		if strings.Contains(strings.ToLower(section), "cover") {
			return true
		}
	}
	return false
}

// Tier parses a "<track>-tier-N" tag. Zero means untiered.
func (o *Opportunity) Tier() int {
	for _, tag := range o.Tags {
		idx := strings.LastIndex(tag, "tier-")
		if idx < 0 {
			continue
		}
		if n, err := strconv.Atoi(tag[idx+len("tier-"):]); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// HasFollowUp reports whether an action of the given type is already logged.
func (o *Opportunity) HasFollowUp(action string) bool {
	for _, f := range o.FollowUps {
		if f.Action == action {
			return true
		}
	}
	return false
}

// Touch refreshes LastTouched to now's calendar day.
func (o *Opportunity) Touch(now time.Time) {
	d := NewDate(now)
	o.LastTouched = &d
}

// Clone returns a deep copy safe to mutate.
func (o *Opportunity) Clone() *Opportunity {
	c := *o
	if o.Deadline.Date != nil {
		d := *o.Deadline.Date
		c.Deadline.Date = &d
	}
	if o.Fit.Score != nil {
		s := *o.Fit.Score
		c.Fit.Score = &s
	}
	if o.LastTouched != nil {
		d := *o.LastTouched
		c.LastTouched = &d
	}
	c.Submission.MaterialsAttached = append([]string(nil), o.Submission.MaterialsAttached...)
	c.Submission.BlocksUsed = cloneStringMap(o.Submission.BlocksUsed)
	c.Submission.VariantIDs = cloneStringMap(o.Submission.VariantIDs)
	c.FollowUps = append([]FollowUpEntry(nil), o.FollowUps...)
	c.Tags = append([]string(nil), o.Tags...)
	if o.Timeline != nil {
		c.Timeline = make(map[Status]Date, len(o.Timeline))
		for k, v := range o.Timeline {
			c.Timeline[k] = v
		}
	}
	return &c
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
