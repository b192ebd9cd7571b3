package report

import (
	"teampulse-be/internal/models"
)

// AggregateUsers folds filtered work logs and tickets into one summary row
// per user id. When a project is selected, task reports and tickets that do
// not match it are excluded before accumulation, so a user active only on
// other projects never appears.
//
// Work logs without a resolvable user id, and tickets without a resolvable
// assignee id, are skipped entirely. The display name is frozen at the
// first record seen for each id.
func AggregateUsers(logs []models.WorkLogRecord, tickets []models.TicketRecord, project string) []models.UserSummary {
	index := make(map[string]int)
	rows := make([]models.UserSummary, 0)

	rowFor := func(id, name string) *models.UserSummary {
		if i, ok := index[id]; ok {
			return &rows[i]
		}
		rows = append(rows, models.UserSummary{ID: id, Name: name})
		index[id] = len(rows) - 1
		return &rows[len(rows)-1]
	}

	for _, l := range logs {
		if l.User == nil || l.User.ID == "" {
			continue
		}
		for _, t := range l.TaskReports {
			if project != AllProjects && t.ProjectTitle() != project {
				continue
			}
			row := rowFor(l.User.ID, l.User.DisplayName())
			row.TotalWorkedMinutes += t.TimeTakenMinutes
		}
	}

	for _, t := range tickets {
		if t.Assignee == nil || t.Assignee.ID == "" {
			continue
		}
		if project != AllProjects && t.ResolvedProjectTitle() != project {
			continue
		}
		row := rowFor(t.Assignee.ID, t.Assignee.DisplayName())
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
