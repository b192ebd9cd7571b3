package report

import (
	"testing"

	"teampulse-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userA() *models.ReportUser {
	return &models.ReportUser{ID: "a", FirstName: "Alice", LastName: "Ng"}
}

func userB() *models.ReportUser {
	return &models.ReportUser{ID: "b", FirstName: "Bob", LastName: "Tran"}
}

func taskFor(project string, minutes int) models.TaskReport {
	return models.TaskReport{
		TaskName:         "work",
		Project:          &models.Project{ID: project, Title: project},
		TimeTakenMinutes: minutes,
		Status:           "done",
	}
}

// Fixture from the acceptance scenario: two work logs on Alpha plus one P1
// ticket in the window.
func alphaFixture() ([]models.WorkLogRecord, []models.TicketRecord) {
	logs := []models.WorkLogRecord{
		{CreatedAt: day(2024, 1, 5), User: userA(), TaskReports: []models.TaskReport{taskFor("Alpha", 90)}},
		{CreatedAt: day(2024, 1, 10), User: userB(), TaskReports: []models.TaskReport{taskFor("Alpha", 30)}},
	}
	tickets := []models.TicketRecord{
		{ID: "t1", CreatedAt: day(2024, 1, 7), Priority: "P1", ProjectTitle: "Alpha", Assignee: userA()},
	}
	return logs, tickets
}

func TestAggregateProjects_RoundTrip(t *testing.T) {
	logs, tickets := alphaFixture()
	fLogs := FilterWorkLogs(logs, day(2024, 1, 1), day(2024, 1, 31))
	fTickets := FilterTickets(tickets, day(2024, 1, 1), day(2024, 1, 31), AllEmployees, AllProjects)

	rows := AggregateProjects(fLogs, fTickets)

	require.Len(t, rows, 1)
	assert.Equal(t, models.ProjectSummary{
		Name:               "Alpha",
		TotalWorkedMinutes: 120,
		P1Count:            1,
		TotalTicketCount:   1,
	}, rows[0])
}

func TestAggregateProjects_NarrowedWindowDropsEarlyLog(t *testing.T) {
	logs, tickets := alphaFixture()
	fLogs := FilterWorkLogs(logs, day(2024, 1, 6), day(2024, 1, 31))
	fTickets := FilterTickets(tickets, day(2024, 1, 6), day(2024, 1, 31), AllEmployees, AllProjects)

	rows := AggregateProjects(fLogs, fTickets)

	require.Len(t, rows, 1)
	assert.Equal(t, 30, rows[0].TotalWorkedMinutes)
	assert.Equal(t, 1, rows[0].TotalTicketCount)
	assert.Equal(t, 1, rows[0].P1Count)
}

func TestAggregateProjects_SumsMatchInputs(t *testing.T) {
	logs := []models.WorkLogRecord{
		{CreatedAt: day(2024, 2, 1), User: userA(), TaskReports: []models.TaskReport{
			taskFor("Alpha", 45), taskFor("Beta", 15),
		}},
		{CreatedAt: day(2024, 2, 2), User: userB(), TaskReports: []models.TaskReport{
			taskFor("Gamma", 60),
		}},
	}
	tickets := []models.TicketRecord{
		{ID: "1", CreatedAt: day(2024, 2, 1), Priority: "p2", ProjectTitle: "Beta"},
		{ID: "2", CreatedAt: day(2024, 2, 2), Priority: "P4", ProjectTitle: "Delta"},
		{ID: "3", CreatedAt: day(2024, 2, 3), Priority: "", ProjectTitle: "Alpha"},
	}

	rows := AggregateProjects(logs, tickets)

	workedSum, ticketSum, prioritySum := 0, 0, 0
	for _, r := range rows {
		workedSum += r.TotalWorkedMinutes
		ticketSum += r.TotalTicketCount
		prioritySum += r.P1Count + r.P2Count + r.P3Count
	}
	assert.Equal(t, 120, workedSum, "sum of worked minutes equals sum over all task reports")
	assert.Equal(t, 3, ticketSum, "every filtered ticket is counted")
	assert.Equal(t, 1, prioritySum, "unrecognized priorities count toward the total only")
}

func TestAggregateProjects_FirstSeenOrder(t *testing.T) {
	logs := []models.WorkLogRecord{
		{CreatedAt: day(2024, 2, 1), TaskReports: []models.TaskReport{
			taskFor("Zulu", 10), taskFor("Alpha", 10),
		}},
	}
	tickets := []models.TicketRecord{
		{ID: "1", CreatedAt: day(2024, 2, 1), Priority: "p1", ProjectTitle: "Mike"},
		{ID: "2", CreatedAt: day(2024, 2, 1), Priority: "p1", ProjectTitle: "Zulu"},
	}

	rows := AggregateProjects(logs, tickets)

	require.Len(t, rows, 3)
	// Work-log order first, then ticket-only projects in ticket order.
	assert.Equal(t, "Zulu", rows[0].Name)
	assert.Equal(t, "Alpha", rows[1].Name)
	assert.Equal(t, "Mike", rows[2].Name)
}

func TestAggregateProjects_MissingTitleBucketsUnknown(t *testing.T) {
	logs := []models.WorkLogRecord{
		{CreatedAt: day(2024, 2, 1), TaskReports: []models.TaskReport{
			{TaskName: "orphan", TimeTakenMinutes: 25},
		}},
	}
	tickets := []models.TicketRecord{
		{ID: "1", CreatedAt: day(2024, 2, 1), Priority: "p3"},
	}

	rows := AggregateProjects(logs, tickets)

	require.Len(t, rows, 1)
	assert.Equal(t, "Unknown", rows[0].Name)
	assert.Equal(t, 25, rows[0].TotalWorkedMinutes)
	assert.Equal(t, 1, rows[0].P3Count)
}

func TestRestrictProjects(t *testing.T) {
	rows := []models.ProjectSummary{{Name: "Alpha"}, {Name: "Beta"}}

	assert.Equal(t, rows, RestrictProjects(rows, AllProjects))

	got := RestrictProjects(rows, "Beta")
	require.Len(t, got, 1)
	assert.Equal(t, "Beta", got[0].Name)

	assert.Empty(t, RestrictProjects(rows, "Gamma"))
}

func TestAggregateUsers_SkipsUnresolvableIDs(t *testing.T) {
	logs := []models.WorkLogRecord{
		{CreatedAt: day(2024, 2, 1), TaskReports: []models.TaskReport{taskFor("Alpha", 30)}},                                   // no user at all
		{CreatedAt: day(2024, 2, 1), User: &models.ReportUser{FirstName: "Ghost"}, TaskReports: []models.TaskReport{taskFor("Alpha", 30)}}, // empty id
		{CreatedAt: day(2024, 2, 1), User: userA(), TaskReports: []models.TaskReport{taskFor("Alpha", 30)}},
	}
	tickets := []models.TicketRecord{
		{ID: "1", CreatedAt: day(2024, 2, 1), Priority: "p1", ProjectTitle: "Alpha"}, // no assignee
		{ID: "2", CreatedAt: day(2024, 2, 1), Priority: "p2", ProjectTitle: "Alpha", Assignee: userB()},
	}

	rows := AggregateUsers(logs, tickets, AllProjects)

	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.NotEmpty(t, r.ID)
	}
	assert.Equal(t, "Alice Ng", rows[0].Name)
	assert.Equal(t, 30, rows[0].TotalWorkedMinutes)
	assert.Equal(t, "Bob Tran", rows[1].Name)
	assert.Equal(t, 1, rows[1].P2Count)
}

func TestAggregateUsers_ProjectRestrictionExcludesBeforeAccumulation(t *testing.T) {
	logs := []models.WorkLogRecord{
		{CreatedAt: day(2024, 2, 1), User: userA(), TaskReports: []models.TaskReport{
			taskFor("Alpha", 30), taskFor("Beta", 45),
		}},
		{CreatedAt: day(2024, 2, 2), User: userB(), TaskReports: []models.TaskReport{
			taskFor("Beta", 60),
		}},
	}
	var tickets []models.TicketRecord

	rows := AggregateUsers(logs, tickets, "Alpha")

	// Bob worked only on Beta: not merely zeroed, absent entirely.
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].ID)
	assert.Equal(t, 30, rows[0].TotalWorkedMinutes)
}

func TestAggregateUsers_DisplayNameFrozenAtFirstRecord(t *testing.T) {
	logs := []models.WorkLogRecord{
		{CreatedAt: day(2024, 2, 1), User: &models.ReportUser{ID: "a", FirstName: "Alice", LastName: "Ng"},
			TaskReports: []models.TaskReport{taskFor("Alpha", 10)}},
		{CreatedAt: day(2024, 2, 2), User: &models.ReportUser{ID: "a", FirstName: "Alicia", LastName: "Nguyen"},
			TaskReports: []models.TaskReport{taskFor("Alpha", 10)}},
	}

	rows := AggregateUsers(logs, nil, AllProjects)

	require.Len(t, rows, 1)
	assert.Equal(t, "Alice Ng", rows[0].Name)
	assert.Equal(t, 20, rows[0].TotalWorkedMinutes)
}

func TestSelectingAbsentProjectYieldsEmptyEverything(t *testing.T) {
	logs, tickets := alphaFixture()
	fLogs := FilterWorkLogs(logs, day(2024, 1, 1), day(2024, 1, 31))
	fTickets := FilterTickets(tickets, day(2024, 1, 1), day(2024, 1, 31), AllEmployees, "Beta")

	projects := RestrictProjects(AggregateProjects(fLogs, fTickets), "Beta")
	users := AggregateUsers(fLogs, fTickets, "Beta")
	tasks := FlattenTasks(fLogs, "Beta")
	totals := Totals(projects)

	assert.Empty(t, projects)
	assert.Empty(t, users)
	assert.Empty(t, tasks)
	assert.Equal(t, 0, totals.TotalWorkedMinutes)
	assert.Equal(t, 0, totals.TotalTickets)
	assert.Equal(t, 0, totals.P1+totals.P2+totals.P3)
}

func TestTotals(t *testing.T) {
	rows := []models.ProjectSummary{
		{Name: "Alpha", TotalWorkedMinutes: 90, P1Count: 1, TotalTicketCount: 2},
		{Name: "Beta", TotalWorkedMinutes: 35, P2Count: 1, P3Count: 2, TotalTicketCount: 3},
	}

	got := Totals(rows)

	assert.Equal(t, 125, got.TotalWorkedMinutes)
	assert.Equal(t, "2 hr 5 min", got.TotalWorkedFormatted)
	assert.Equal(t, 5, got.TotalTickets)
	assert.Equal(t, 1, got.P1)
	assert.Equal(t, 1, got.P2)
	assert.Equal(t, 2, got.P3)
}

func TestPriorityMatchingIsCaseInsensitive(t *testing.T) {
	tickets := []models.TicketRecord{
		{ID: "1", CreatedAt: day(2024, 2, 1), Priority: "P1", ProjectTitle: "Alpha"},
		{ID: "2", CreatedAt: day(2024, 2, 1), Priority: "p1", ProjectTitle: "Alpha"},
		{ID: "3", CreatedAt: day(2024, 2, 1), Priority: " p2 ", ProjectTitle: "Alpha"},
	}

	rows := AggregateProjects(nil, tickets)

	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].P1Count)
	assert.Equal(t, 1, rows[0].P2Count)
	assert.Equal(t, 3, rows[0].TotalTicketCount)
}
