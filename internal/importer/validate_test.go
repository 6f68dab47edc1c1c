package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(f float64) *float64 { return &f }

func validMinimalList() *LeadList {
	return &LeadList{
		Leads: []LeadImport{
			{Name: "Arts Council Project Grant", Track: "grant"},
		},
	}
}

func TestValidateLeadList_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateLeadList(validMinimalList()))
}

func TestValidateLeadList_ValidFull(t *testing.T) {
	list := &LeadList{
		Defaults: &DefaultsImport{
			Track:            "residency",
			DeadlineType:     "soft",
			EffortLevel:      "deep",
			IdentityPosition: "independent-artist",
			Tags:             []string{"spring-batch"},
		},
		Leads: []LeadImport{
			{Name: "Headlands", DeadlineDate: "2026-12-01", FitScore: ptrFloat(8.5)},
			{ID: "macdowell-2027", Name: "MacDowell", DeadlineType: "rolling"},
			{Name: "Studio Engineer", Track: "job", ApplicationURL: "https://jobs.example.com/1", EffortLevel: "quick"},
		},
	}
	assert.Empty(t, ValidateLeadList(list))
}

func TestValidateLeadList_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *LeadList)
		wantMsg string
	}{
		{"missing name", func(l *LeadList) { l.Leads[0].Name = "" }, "leads[0].name is required"},
		{"missing track", func(l *LeadList) { l.Leads[0].Track = "" }, "leads[0].track is required"},
		{"bad track", func(l *LeadList) { l.Leads[0].Track = "hobby" }, `leads[0].track: invalid value "hobby"`},
		{"bad date", func(l *LeadList) { l.Leads[0].DeadlineDate = "12/01/2026" }, "leads[0].deadline: invalid date format"},
		{"bad deadline type", func(l *LeadList) { l.Leads[0].DeadlineType = "someday" }, `leads[0].deadline_type: invalid value "someday"`},
		{"hard without date", func(l *LeadList) { l.Leads[0].DeadlineType = "hard" }, "leads[0].deadline is required when deadline_type is hard"},
		{"score range", func(l *LeadList) { l.Leads[0].FitScore = ptrFloat(11) }, "leads[0].fit_score: 11.0 outside 0-10"},
		{"bad effort", func(l *LeadList) { l.Leads[0].EffortLevel = "epic" }, `leads[0].effort_level: invalid value "epic"`},
		{"non slug id", func(l *LeadList) { l.Leads[0].ID = "Arts Council" }, `leads[0].id: "Arts Council" is not a slug (try "arts-council")`},
		{"bad default track", func(l *LeadList) { l.Defaults = &DefaultsImport{Track: "hobby"} }, `defaults.track: invalid value "hobby"`},
		{"empty", func(l *LeadList) { l.Leads = nil }, "leads: at least one lead is required"},
		{"underivable id", func(l *LeadList) { l.Leads[0].Name = "!!!" }, `cannot derive an id from name "!!!"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := validMinimalList()
			tt.mutate(list)
			errs := ValidateLeadList(list)
			require.NotEmpty(t, errs)

			var msgs []string
			found := false
			for _, e := range errs {
				msgs = append(msgs, e.Error())
				found = found || strings.Contains(e.Error(), tt.wantMsg)
			}
			assert.True(t, found, "want %q in %v", tt.wantMsg, msgs)
		})
	}
}

func TestValidateLeadList_DefaultTrackSatisfiesLeads(t *testing.T) {
	list := &LeadList{
		Defaults: &DefaultsImport{Track: "grant"},
		Leads:    []LeadImport{{Name: "A"}, {Name: "B"}},
	}
	assert.Empty(t, ValidateLeadList(list))
}

func TestValidateLeadList_DuplicateIDs(t *testing.T) {
	list := &LeadList{
		Leads: []LeadImport{
			{Name: "Arts Council", Track: "grant"},
			{Name: "Arts  Council!", Track: "grant"},
			{ID: "arts-council", Name: "Third", Track: "grant"},
		},
	}
	errs := ValidateLeadList(list)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), `leads[1]: duplicate id "arts-council" (also leads[0])`)
	assert.Contains(t, errs[1].Error(), `leads[2]: duplicate id "arts-council" (also leads[0])`)
}

func TestValidateLeadList_CollectsAllErrors(t *testing.T) {
	list := &LeadList{
		Leads: []LeadImport{
			{Name: "", Track: "hobby"},
			{Name: "Ok", Track: "grant", EffortLevel: "epic"},
		},
	}
	assert.Len(t, ValidateLeadList(list), 3)
}

func TestParseLeadList_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseLeadList([]byte("leads:\n  - name: A\n    trak: grant\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trak")
}
