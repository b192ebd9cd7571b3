package report

import (
	"strings"
	"time"

	"teampulse-be/internal/models"
)

// Sentinel filter values coming from the dashboard: "all" disables the
// assignee predicate, "All" disables the project predicate.
const (
	AllEmployees = "all"
	AllProjects  = "All"
)

// dayOf tags a timestamp with its calendar day at UTC midnight. Comparing
// these tags compares calendar days, so a record keeps its own day even
// when its zone offset differs from the query bounds'.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// withinDay reports whether t falls inside [from, to], inclusive on both
// ends, compared at day resolution.
func withinDay(t, from, to time.Time) bool {
	day := dayOf(t)
	return !day.Before(dayOf(from)) && !day.After(dayOf(to))
}

// FilterWorkLogs returns the work logs whose creation day falls inside
// [from, to]. A missing bound yields an empty result, never "unbounded":
// the filter fails closed.
func FilterWorkLogs(logs []models.WorkLogRecord, from, to time.Time) []models.WorkLogRecord {
	if from.IsZero() || to.IsZero() {
		return nil
	}
	out := make([]models.WorkLogRecord, 0, len(logs))
	for _, l := range logs {
		if withinDay(l.CreatedAt, from, to) {
			out = append(out, l)
		}
	}
	return out
}

// FilterTickets returns the tickets whose creation day falls inside
// [from, to], additionally restricted to a single assignee and/or project
// unless the corresponding sentinel is passed. Fails closed on a missing
// bound like FilterWorkLogs.
func FilterTickets(tickets []models.TicketRecord, from, to time.Time, employeeID, project string) []models.TicketRecord {
	if from.IsZero() || to.IsZero() {
		return nil
	}
	out := make([]models.TicketRecord, 0, len(tickets))
	for _, t := range tickets {
		if !withinDay(t.CreatedAt, from, to) {
			continue
		}
		if employeeID != AllEmployees {
			if t.Assignee == nil || t.Assignee.ID != employeeID {
				continue
			}
		}
		if project != AllProjects && t.ProjectTitle != project {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchesPriority does the case-insensitive p1/p2/p3 comparison used by the
// ticket tallies.
func matchesPriority(priority, want string) bool {
	return strings.EqualFold(strings.TrimSpace(priority), want)
}
