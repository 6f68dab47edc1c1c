package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/lifecycle"
	"github.com/google/uuid"
)

var testIDCounter atomic.Int64

// RefNow is the reference "today" fixtures are built around.
var RefNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// Opportunity options
type OpportunityOption func(*domain.Opportunity)

func WithID(id string) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.ID = id
	}
}

func WithTrack(t domain.Track) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Track = t
	}
}

// WithStatus sets the status and moves the record to that status's bucket.
func WithStatus(s domain.Status) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Status = s
		o.Bucket = lifecycle.BucketFor(s)
	}
}

func WithBucket(b domain.Bucket) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Bucket = b
	}
}

func WithOutcome(out domain.Outcome) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Outcome = out
	}
}

// WithDeadlineIn sets a hard deadline days after now.
func WithDeadlineIn(now time.Time, days int) OpportunityOption {
	return func(o *domain.Opportunity) {
		d := domain.NewDate(now.AddDate(0, 0, days))
		o.Deadline = domain.Deadline{Date: &d, Type: domain.DeadlineHard}
	}
}

func WithDeadlineType(t domain.DeadlineType) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Deadline.Type = t
		if t == domain.DeadlineRolling || t == domain.DeadlineTBA {
			o.Deadline.Date = nil
		}
	}
}

func WithFit(score float64, identity string) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Fit = domain.Fit{Score: &score, IdentityPosition: identity}
	}
}

func WithEffort(e domain.EffortLevel) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Submission.EffortLevel = e
	}
}

func WithApplicationURL(url string) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Target.ApplicationURL = url
	}
}

func WithChannel(channel string) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Outreach.Channel = channel
	}
}

func WithCoverLetter(text string) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Submission.CoverLetter = text
	}
}

func WithMaterials(paths ...string) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Submission.MaterialsAttached = paths
	}
}

func WithBlocks(blocks map[string]string) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Submission.BlocksUsed = blocks
	}
}

func WithTags(tags ...string) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.Tags = tags
	}
}

// WithReached records timeline dates: each stage reached daysAgo before now.
func WithReached(now time.Time, daysAgo int, stages ...domain.Status) OpportunityOption {
	return func(o *domain.Opportunity) {
		if o.Timeline == nil {
			o.Timeline = make(map[domain.Status]domain.Date)
		}
		for _, s := range stages {
			o.Timeline[s] = domain.NewDate(now.AddDate(0, 0, -daysAgo))
		}
	}
}

func WithLastTouched(now time.Time, daysAgo int) OpportunityOption {
	return func(o *domain.Opportunity) {
		d := domain.NewDate(now.AddDate(0, 0, -daysAgo))
		o.LastTouched = &d
	}
}

func WithoutLastTouched() OpportunityOption {
	return func(o *domain.Opportunity) {
		o.LastTouched = nil
	}
}

func WithFollowUp(now time.Time, daysAgo int, action string) OpportunityOption {
	return func(o *domain.Opportunity) {
		o.FollowUps = append(o.FollowUps, domain.FollowUpEntry{
			Date:   domain.NewDate(now.AddDate(0, 0, -daysAgo)),
			Action: action,
		})
	}
}

func defaultID(name string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	if slug == "" {
		slug = "opportunity"
	}
	n := testIDCounter.Add(1)
	return fmt.Sprintf("%s-%02d-%s", slug, n, uuid.New().String()[:4])
}

// NewTestOpportunity builds a research-stage grant touched on RefNow, with
// a populated fit block and a rolling deadline. Options override any field.
func NewTestOpportunity(name string, opts ...OpportunityOption) *domain.Opportunity {
	now := RefNow
	score := 7.0
	touched := domain.NewDate(now)
	o := &domain.Opportunity{
		ID:     defaultID(name),
		Name:   name,
		Track:  domain.TrackGrant,
		Status: domain.StatusResearch,
		Bucket: domain.BucketActive,
		Deadline: domain.Deadline{
			Type: domain.DeadlineRolling,
		},
		Fit: domain.Fit{Score: &score, IdentityPosition: "independent-artist"},
		Target: domain.Target{
			Organization: name + " Foundation",
		},
		Timeline:    map[domain.Status]domain.Date{domain.StatusResearch: domain.NewDate(now)},
		LastTouched: &touched,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
