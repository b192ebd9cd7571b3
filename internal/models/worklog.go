package models

import (
	"time"
)

// ReportUser identifies the person a work log or ticket belongs to.
type ReportUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
}

// DisplayName joins first and last name, trimming when either is missing.
func (u ReportUser) DisplayName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Project carries the subset of project metadata present on task reports.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Phase       string `json:"phase,omitempty"`
}

// TaskReport is a single logged unit of work against a project.
type TaskReport struct {
	TaskName         string   `json:"taskName"`
	Project          *Project `json:"project,omitempty"`
	TimeTakenMinutes int      `json:"timeTaken"`
	Status           string   `json:"status"`
	Description      string   `json:"description,omitempty"` // may contain HTML
}

// ProjectTitle resolves the project title, falling back to "Unknown".
func (t TaskReport) ProjectTitle() string {
	if t.Project == nil || t.Project.Title == "" {
		return "Unknown"
	}
	return t.Project.Title
}

// WorkLogRecord is one user's submission bundling one or more task reports.
type WorkLogRecord struct {
	CreatedAt   time.Time    `json:"createdAt"`
	User        *ReportUser  `json:"user,omitempty"`
	TaskReports []TaskReport `json:"taskReports"`
}
