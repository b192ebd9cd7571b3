package report

import (
	"teampulse-be/internal/models"
)

// AggregateProjects folds filtered work logs and tickets into one summary
// row per project title. Rows are emitted in the order their title was
// first encountered: all work logs first, then tickets, so a ticket-only
// project appears after every worked project.
//
// Unrecognized priorities still count toward TotalTicketCount but no
// per-priority bucket, mirroring the dashboard's behavior.
func AggregateProjects(logs []models.WorkLogRecord, tickets []models.TicketRecord) []models.ProjectSummary {
	index := make(map[string]int)
	rows := make([]models.ProjectSummary, 0)

	rowFor := func(title string) *models.ProjectSummary {
		if i, ok := index[title]; ok {
			return &rows[i]
		}
		rows = append(rows, models.ProjectSummary{Name: title})
		index[title] = len(rows) - 1
		return &rows[len(rows)-1]
	}

	// Pass 1: worked time from task reports.
	for _, l := range logs {
		for _, t := range l.TaskReports {
			row := rowFor(t.ProjectTitle())
			row.TotalWorkedMinutes += t.TimeTakenMinutes
		}
	}

	// Pass 2: ticket counts.
	for _, t := range tickets {
		row := rowFor(t.ResolvedProjectTitle())
		row.TotalTicketCount++
		switch {
		case matchesPriority(t.Priority, "p1"):
			row.P1Count++
		case matchesPriority(t.Priority, "p2"):
			row.P2Count++
		case matchesPriority(t.Priority, "p3"):
			row.P3Count++
		}
	}

	return rows
}

// RestrictProjects narrows a summary sequence to a single project when one
// is selected. The AllProjects sentinel returns the input unchanged.
func RestrictProjects(rows []models.ProjectSummary, project string) []models.ProjectSummary {
	if project == AllProjects {
		return rows
	}
	out := make([]models.ProjectSummary, 0, 1)
	for _, r := range rows {
		if r.Name == project {
			out = append(out, r)
		}
	}
	return out
}
