package models

import (
	"time"
)

// ProjectSummary - per-project totals across the filtered window
type ProjectSummary struct {
	Name               string `json:"name"`
	TotalWorkedMinutes int    `json:"totalWorkedMinutes"`
	P1Count            int    `json:"p1Tickets"`
	P2Count            int    `json:"p2Tickets"`
	P3Count            int    `json:"p3Tickets"`
	TotalTicketCount   int    `json:"totalTickets"`
}

// UserSummary - per-user totals across the filtered window
type UserSummary struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	TotalWorkedMinutes int    `json:"totalWorkedMinutes"`
	P1Count            int    `json:"p1Tickets"`
	P2Count            int    `json:"p2Tickets"`
	P3Count            int    `json:"p3Tickets"`
	TotalTicketCount   int    `json:"totalTickets"`
}

// FlattenedTask - one row per task report, carrying its parent work log's
// creation time and user
type FlattenedTask struct {
	CreatedAt        time.Time  `json:"createdAt"`
	User             ReportUser `json:"user"`
	TaskName         string     `json:"taskName"`
	ProjectTitle     string     `json:"projectTitle"`
	TimeTakenMinutes int        `json:"timeTaken"`
	Status           string     `json:"status"`
	Description      string     `json:"description,omitempty"`
}

// ReportTotals - grand totals over the project summaries currently in view
type ReportTotals struct {
	TotalWorkedMinutes   int    `json:"totalWorkedMinutes"`
	TotalWorkedFormatted string `json:"totalWorkedFormatted"`
	TotalTickets         int    `json:"totalTickets"`
	P1                   int    `json:"p1"`
	P2                   int    `json:"p2"`
	P3                   int    `json:"p3"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
