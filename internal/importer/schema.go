package importer

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LeadList is the top-level YAML structure for bulk lead import.
type LeadList struct {
	Defaults *DefaultsImport `yaml:"defaults,omitempty"`
	Leads    []LeadImport    `yaml:"leads"`
}

// DefaultsImport holds values that cascade to every lead that omits them.
type DefaultsImport struct {
	Track            string   `yaml:"track,omitempty"`
	DeadlineType     string   `yaml:"deadline_type,omitempty"`
	EffortLevel      string   `yaml:"effort_level,omitempty"`
	IdentityPosition string   `yaml:"identity_position,omitempty"`
	Tags             []string `yaml:"tags,omitempty"`
}

// LeadImport is one research lead. ID is derived from Name when omitted.
type LeadImport struct {
	ID               string   `yaml:"id,omitempty"`
	Name             string   `yaml:"name"`
	Track            string   `yaml:"track,omitempty"`
	Organization     string   `yaml:"organization,omitempty"`
	ApplicationURL   string   `yaml:"application_url,omitempty"`
	Portal           string   `yaml:"portal,omitempty"`
	DeadlineDate     string   `yaml:"deadline,omitempty"`
	DeadlineType     string   `yaml:"deadline_type,omitempty"`
	FitScore         *float64 `yaml:"fit_score,omitempty"`
	IdentityPosition string   `yaml:"identity_position,omitempty"`
	EffortLevel      string   `yaml:"effort_level,omitempty"`
	Tags             []string `yaml:"tags,omitempty"`
	Notes            string   `yaml:"notes,omitempty"`
}

// LoadLeadList reads and parses a lead list file. Unknown keys are
// rejected so typos surface instead of being dropped.
func LoadLeadList(path string) (*LeadList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLeadList(data)
}

// ParseLeadList decodes a lead list document.
func ParseLeadList(data []byte) (*LeadList, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var list LeadList
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("parsing lead list: %w", err)
	}
	return &list, nil
}
