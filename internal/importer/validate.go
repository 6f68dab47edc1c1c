package importer

import (
	"fmt"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// ValidateLeadList checks the lead list for errors before conversion.
// Returns every validation error found, not just the first.
func ValidateLeadList(list *LeadList) []error {
	var errs []error

	if len(list.Leads) == 0 {
		errs = append(errs, fmt.Errorf("leads: at least one lead is required"))
	}
	errs = append(errs, validateDefaults(list.Defaults)...)

	seen := make(map[string]int)
	for i, l := range list.Leads {
		prefix := fmt.Sprintf("leads[%d]", i)
		errs = append(errs, validateLead(prefix, l, list.Defaults)...)

		if l.Name == "" && l.ID == "" {
			continue
		}
		id := leadID(l)
		if id == "" {
			errs = append(errs, fmt.Errorf("%s: cannot derive an id from name %q", prefix, l.Name))
			continue
		}
		if first, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q (also leads[%d])", prefix, id, first))
			continue
		}
		seen[id] = i
	}

	return errs
}

func validateDefaults(d *DefaultsImport) []error {
	if d == nil {
		return nil
	}
	var errs []error
	if d.Track != "" && !domain.ValidTracks[domain.Track(d.Track)] {
		errs = append(errs, fmt.Errorf("defaults.track: invalid value %q", d.Track))
	}
	if d.DeadlineType != "" && !domain.ValidDeadlineTypes[domain.DeadlineType(d.DeadlineType)] {
		errs = append(errs, fmt.Errorf("defaults.deadline_type: invalid value %q", d.DeadlineType))
	}
	if d.EffortLevel != "" && !domain.ValidEffortLevels[domain.EffortLevel(d.EffortLevel)] {
		errs = append(errs, fmt.Errorf("defaults.effort_level: invalid value %q", d.EffortLevel))
	}
	return errs
}

func validateLead(prefix string, l LeadImport, d *DefaultsImport) []error {
	var errs []error

	if l.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if l.ID != "" && l.ID != Slug(l.ID) {
		errs = append(errs, fmt.Errorf("%s.id: %q is not a slug (try %q)", prefix, l.ID, Slug(l.ID)))
	}

	track := domain.Coalesce(l.Track, defaultTrack(d))
	switch {
	case track == "":
		errs = append(errs, fmt.Errorf("%s.track is required (or set defaults.track)", prefix))
	case !domain.ValidTracks[domain.Track(track)]:
		errs = append(errs, fmt.Errorf("%s.track: invalid value %q", prefix, track))
	}

	if l.DeadlineDate != "" {
		if _, err := domain.ParseDate(l.DeadlineDate); err != nil {
			errs = append(errs, fmt.Errorf("%s.deadline: invalid date format %q (expected YYYY-MM-DD)", prefix, l.DeadlineDate))
		}
	}
	if l.DeadlineType != "" && !domain.ValidDeadlineTypes[domain.DeadlineType(l.DeadlineType)] {
		errs = append(errs, fmt.Errorf("%s.deadline_type: invalid value %q", prefix, l.DeadlineType))
	}
	if l.DeadlineType == string(domain.DeadlineHard) && l.DeadlineDate == "" {
		errs = append(errs, fmt.Errorf("%s.deadline is required when deadline_type is hard", prefix))
	}

	if l.FitScore != nil && (*l.FitScore < 0 || *l.FitScore > 10) {
		errs = append(errs, fmt.Errorf("%s.fit_score: %.1f outside 0-10", prefix, *l.FitScore))
	}
	if l.EffortLevel != "" && !domain.ValidEffortLevels[domain.EffortLevel(l.EffortLevel)] {
		errs = append(errs, fmt.Errorf("%s.effort_level: invalid value %q", prefix, l.EffortLevel))
	}

	return errs
}
