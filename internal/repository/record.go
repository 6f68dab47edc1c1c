package repository

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// opportunityRecord is the on-disk YAML shape of one opportunity.
type opportunityRecord struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Track      string            `yaml:"track"`
	Status     string            `yaml:"status"`
	Outcome    string            `yaml:"outcome,omitempty"`
	Deadline   deadlineRecord    `yaml:"deadline,omitempty"`
	Fit        fitRecord         `yaml:"fit,omitempty"`
	Submission submissionRecord  `yaml:"submission,omitempty"`
	Target     targetRecord      `yaml:"target,omitempty"`
	Outreach   outreachRecord    `yaml:"outreach,omitempty"`
	Timeline   map[string]string `yaml:"timeline,omitempty"`
	FollowUp   []followUpRecord  `yaml:"follow_up,omitempty"`
	LastTouch  string            `yaml:"last_touched,omitempty"`
	Tags       []string          `yaml:"tags,omitempty"`
	Notes      string            `yaml:"notes,omitempty"`
}

type deadlineRecord struct {
	Date string `yaml:"date,omitempty"`
	Type string `yaml:"type,omitempty"`
}

type fitRecord struct {
	Score            *float64 `yaml:"score,omitempty"`
	IdentityPosition string   `yaml:"identity_position,omitempty"`
}

type submissionRecord struct {
	EffortLevel       string            `yaml:"effort_level,omitempty"`
	MaterialsAttached []string          `yaml:"materials_attached,omitempty"`
	BlocksUsed        map[string]string `yaml:"blocks_used,omitempty"`
	VariantIDs        map[string]string `yaml:"variant_ids,omitempty"`
	PortfolioURL      string            `yaml:"portfolio_url,omitempty"`
	CoverLetter       string            `yaml:"cover_letter,omitempty"`
}

type targetRecord struct {
	Organization   string `yaml:"organization,omitempty"`
	ApplicationURL string `yaml:"application_url,omitempty"`
	Portal         string `yaml:"portal,omitempty"`
	LocationClass  string `yaml:"location_class,omitempty"`
}

type outreachRecord struct {
	Channel string `yaml:"channel,omitempty"`
	Contact string `yaml:"contact,omitempty"`
}

type followUpRecord struct {
	Date    string `yaml:"date"`
	Action  string `yaml:"action"`
	Channel string `yaml:"channel,omitempty"`
	Note    string `yaml:"note,omitempty"`
}

// toDomain validates the record and converts it. The first invalid field
// aborts conversion with a ValidationError naming it.
func (r *opportunityRecord) toDomain() (*domain.Opportunity, error) {
	if strings.TrimSpace(r.ID) == "" {
		return nil, domain.Invalid("id", "", "is required")
	}
	track, err := domain.ParseTrack(r.Track)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	outcome, err := domain.ParseOutcome(r.Outcome)
	if err != nil {
		return nil, err
	}

	deadline, err := r.Deadline.toDomain()
	if err != nil {
		return nil, err
	}

	effort := domain.EffortLevel(r.Submission.EffortLevel)
	if effort != "" && !domain.ValidEffortLevels[effort] {
		return nil, domain.Invalid("submission.effort_level", r.Submission.EffortLevel, "unknown effort level")
	}

	timeline := make(map[domain.Status]domain.Date, len(r.Timeline))
	for stage, raw := range r.Timeline {
		st, err := domain.ParseStatus(stage)
		if err != nil {
			return nil, domain.Invalid("timeline", stage, "unknown stage")
		}
		d, err := parseDateField("timeline."+stage, raw)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, domain.Invalid("timeline."+stage, "", "date is required")
		}
		timeline[st] = *d
	}

	var followUps []domain.FollowUpEntry
	for i, f := range r.FollowUp {
		d, err := parseDateField(fmt.Sprintf("follow_up[%d].date", i), f.Date)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, domain.Invalid(fmt.Sprintf("follow_up[%d].date", i), "", "is required")
		}
		followUps = append(followUps, domain.FollowUpEntry{
			Date:    *d,
			Action:  f.Action,
			Channel: f.Channel,
			Note:    f.Note,
		})
	}

	lastTouched, err := parseDateField("last_touched", r.LastTouch)
	if err != nil {
		return nil, err
	}

	return &domain.Opportunity{
		ID:       r.ID,
		Name:     r.Name,
		Track:    track,
		Status:   status,
		Outcome:  outcome,
		Deadline: deadline,
		Fit: domain.Fit{
			Score:            r.Fit.Score,
			IdentityPosition: r.Fit.IdentityPosition,
		},
		Submission: domain.Submission{
			EffortLevel:       effort,
			MaterialsAttached: r.Submission.MaterialsAttached,
			BlocksUsed:        r.Submission.BlocksUsed,
			VariantIDs:        r.Submission.VariantIDs,
			PortfolioURL:      r.Submission.PortfolioURL,
			CoverLetter:       r.Submission.CoverLetter,
		},
		Target: domain.Target{
			Organization:   r.Target.Organization,
			ApplicationURL: r.Target.ApplicationURL,
			Portal:         r.Target.Portal,
			LocationClass:  r.Target.LocationClass,
		},
		Outreach: domain.Outreach{
			Channel: r.Outreach.Channel,
			Contact: r.Outreach.Contact,
		},
		Timeline:    timeline,
		FollowUps:   followUps,
		LastTouched: lastTouched,
		Tags:        r.Tags,
		Notes:       r.Notes,
	}, nil
}

func (d deadlineRecord) toDomain() (domain.Deadline, error) {
	date, err := parseDateField("deadline.date", d.Date)
	if err != nil {
		return domain.Deadline{}, err
	}
	typ := domain.DeadlineType(d.Type)
	switch {
	case typ == "" && date != nil:
		typ = domain.DeadlineHard
	case typ == "":
		typ = domain.DeadlineTBA
	case !domain.ValidDeadlineTypes[typ]:
		return domain.Deadline{}, domain.Invalid("deadline.type", d.Type, "unknown deadline type")
	}
	return domain.Deadline{Date: date, Type: typ}, nil
}

func recordFromDomain(o *domain.Opportunity) *opportunityRecord {
	r := &opportunityRecord{
		ID:      o.ID,
		Name:    o.Name,
		Track:   string(o.Track),
		Status:  string(o.Status),
		Outcome: string(o.Outcome),
		Deadline: deadlineRecord{
			Date: dateToString(o.Deadline.Date),
			Type: string(o.Deadline.Type),
		},
		Fit: fitRecord{
			Score:            o.Fit.Score,
			IdentityPosition: o.Fit.IdentityPosition,
		},
		Submission: submissionRecord{
			EffortLevel:       string(o.Submission.EffortLevel),
			MaterialsAttached: o.Submission.MaterialsAttached,
			BlocksUsed:        o.Submission.BlocksUsed,
			VariantIDs:        o.Submission.VariantIDs,
			PortfolioURL:      o.Submission.PortfolioURL,
			CoverLetter:       o.Submission.CoverLetter,
		},
		Target: targetRecord{
			Organization:   o.Target.Organization,
			ApplicationURL: o.Target.ApplicationURL,
			Portal:         o.Target.Portal,
			LocationClass:  o.Target.LocationClass,
		},
		Outreach: outreachRecord{
			Channel: o.Outreach.Channel,
			Contact: o.Outreach.Contact,
		},
		LastTouch: dateToString(o.LastTouched),
		Tags:      o.Tags,
		Notes:     o.Notes,
	}
	if len(o.Timeline) > 0 {
		r.Timeline = make(map[string]string, len(o.Timeline))
		for st, d := range o.Timeline {
			r.Timeline[string(st)] = d.String()
		}
	}
	for _, f := range o.FollowUps {
		r.FollowUp = append(r.FollowUp, followUpRecord{
			Date:    f.Date.String(),
			Action:  f.Action,
			Channel: f.Channel,
			Note:    f.Note,
		})
	}
	return r
}
