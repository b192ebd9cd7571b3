package models

import (
	"time"
)

// TicketRecord is an issue/request with a priority and an assignee.
// Priority is free text upstream; only p1/p2/p3 (case-insensitive) are
// recognized for per-priority tallies.
type TicketRecord struct {
	ID           string      `json:"id"`
	CreatedAt    time.Time   `json:"createdAt"`
	Priority     string      `json:"priority"`
	ProjectTitle string      `json:"projectTitle"`
	Assignee     *ReportUser `json:"assignee,omitempty"`
}

// ResolvedProjectTitle falls back to "Unknown" for tickets without a project.
func (t TicketRecord) ResolvedProjectTitle() string {
	if t.ProjectTitle == "" {
		return "Unknown"
	}
	return t.ProjectTitle
}
