package report

import (
	"teampulse-be/internal/models"
)

// Totals reduces the (possibly project-restricted) summary rows to the
// grand totals shown above the dashboard tables.
func Totals(rows []models.ProjectSummary) models.ReportTotals {
	var t models.ReportTotals
	for _, r := range rows {
		t.TotalWorkedMinutes += r.TotalWorkedMinutes
		t.TotalTickets += r.TotalTicketCount
		t.P1 += r.P1Count
		t.P2 += r.P2Count
		t.P3 += r.P3Count
	}
	t.TotalWorkedFormatted = FormatMinutes(t.TotalWorkedMinutes)
	return t
}
