package repository

import (
	"strings"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// parseDateField parses an optional YYYY-MM-DD value. Empty yields nil.
func parseDateField(field, raw string) (*domain.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, domain.Invalid(field, raw, "invalid date (expected YYYY-MM-DD)")
	}
	return &d, nil
}

// dateToString formats an optional date, returning "" for nil.
func dateToString(d *domain.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
