// Package app defines the request and response contracts shared by the
// use-case services and the command surface.
package app

import (
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// OpportunitySummary is the row-level view of a record used by reports.
type OpportunitySummary struct {
	ID           string
	Name         string
	Organization string
	Track        domain.Track
	Status       domain.Status
	Bucket       domain.Bucket
	DeadlineDate *string
	DeadlineType domain.DeadlineType
	DaysLeft     *int
	FitScore     *float64
	Tier         int
}

// Summarize builds the summary view of op as of now.
func Summarize(op *domain.Opportunity, now time.Time) OpportunitySummary {
	s := OpportunitySummary{
		ID:           op.ID,
		Name:         op.Name,
		Organization: op.Target.Organization,
		Track:        op.Track,
		Status:       op.Status,
		Bucket:       op.Bucket,
		DeadlineType: op.Deadline.Type,
		FitScore:     op.Fit.Score,
		Tier:         op.Tier(),
	}
	if op.Deadline.Dated() {
		ds := op.Deadline.Date.String()
		days := op.Deadline.Date.DaysUntil(now)
		s.DeadlineDate = &ds
		s.DaysLeft = &days
	}
	return s
}

type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"
)

// Error is a request-level failure the command surface reports verbatim.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func invalid(msg string) *Error {
	return &Error{Code: ErrInvalidRequest, Message: msg}
}
