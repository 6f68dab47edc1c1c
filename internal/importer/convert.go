package importer

import (
	"strings"
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// Convert transforms a validated LeadList into research records placed in
// the research pool. Call ValidateLeadList first; Convert assumes the list
// is valid.
func Convert(list *LeadList, now time.Time) []*domain.Opportunity {
	today := domain.NewDate(now)
	d := list.Defaults

	out := make([]*domain.Opportunity, 0, len(list.Leads))
	for _, l := range list.Leads {
		op := &domain.Opportunity{
			ID:       leadID(l),
			Name:     l.Name,
			Track:    domain.Coalesce(domain.Track(l.Track), domain.Track(defaultTrack(d))),
			Status:   domain.StatusResearch,
			Bucket:   domain.BucketResearchPool,
			Deadline: convertDeadline(l, d),
			Fit: domain.Fit{
				Score:            l.FitScore,
				IdentityPosition: domain.Coalesce(l.IdentityPosition, defaultIdentity(d)),
			},
			Submission: domain.Submission{
				EffortLevel: domain.Coalesce(domain.EffortLevel(l.EffortLevel), domain.EffortLevel(defaultEffort(d))),
			},
			Target: domain.Target{
				Organization:   l.Organization,
				ApplicationURL: l.ApplicationURL,
				Portal:         l.Portal,
			},
			Timeline:    map[domain.Status]domain.Date{domain.StatusResearch: today},
			LastTouched: &today,
			Tags:        mergeTags(defaultTags(d), l.Tags),
			Notes:       strings.TrimSpace(l.Notes),
		}
		out = append(out, op)
	}
	return out
}

func convertDeadline(l LeadImport, d *DefaultsImport) domain.Deadline {
	var date *domain.Date
	if l.DeadlineDate != "" {
		if parsed, err := domain.ParseDate(l.DeadlineDate); err == nil {
			date = &parsed
		}
	}
	typ := domain.DeadlineType(l.DeadlineType)
	if typ == "" && date != nil {
		typ = domain.DeadlineHard
	}
	if typ == "" {
		typ = domain.Coalesce(domain.DeadlineType(defaultDeadlineType(d)), domain.DeadlineTBA)
	}
	return domain.Deadline{Date: date, Type: typ}
}

// mergeTags appends lead tags to default tags, dropping repeats.
func mergeTags(defaults, own []string) []string {
	if len(defaults) == 0 && len(own) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	var tags []string
	for _, t := range append(append([]string{}, defaults...), own...) {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

func defaultTrack(d *DefaultsImport) string {
	if d == nil {
		return ""
	}
	return d.Track
}

func defaultDeadlineType(d *DefaultsImport) string {
	if d == nil {
		return ""
	}
	return d.DeadlineType
}

func defaultEffort(d *DefaultsImport) string {
	if d == nil {
		return ""
	}
	return d.EffortLevel
}

func defaultIdentity(d *DefaultsImport) string {
	if d == nil {
		return ""
	}
	return d.IdentityPosition
}

func defaultTags(d *DefaultsImport) []string {
	if d == nil {
		return nil
	}
	return d.Tags
}
