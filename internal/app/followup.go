package app

import (
	"strings"
	"time"

	"github.com/alexanderramin/pursuit/internal/scheduler"
)

type FollowUpRequest struct {
	Now *time.Time
}

type FollowUpItem struct {
	ID           string
	Name         string
	Organization string
	Contact      string
	SubmittedOn  string
	Action       string
	Label        string
	DueDate      string
	DaysUntil    int
	State        scheduler.FollowUpState
}

type FollowUpResponse struct {
	GeneratedAt time.Time
	Due         []FollowUpItem
	Upcoming    []FollowUpItem
	// Untracked lists submitted records with no submission date.
	Untracked []string
	Warnings  []string
}

type FollowUpLogRequest struct {
	ID      string
	Action  string
	Channel string
	Note    string
	Now     *time.Time
}

func (r FollowUpLogRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return invalid("id is required")
	}
	if strings.TrimSpace(r.Action) == "" {
		return invalid("action is required")
	}
	return nil
}
