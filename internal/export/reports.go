package export

import (
	"bytes"
	"sort"
	"time"

	"teampulse-be/internal/models"
	"teampulse-be/internal/report"
)

// Kind selects which spreadsheet layout to build. The task-summary kind
// switches between the flat (single project) and grouped-by-project (all
// projects) variants based on the active project selection.
type Kind string

const (
	KindProjectSummary Kind = "project-summary"
	KindTaskSummary    Kind = "task-summary"
	KindUserSummary    Kind = "user-summary"
)

// Input carries everything a workbook needs: the aggregated/flattened rows
// plus the filter selections echoed into the metadata block.
type Input struct {
	Kind         Kind
	EmployeeName string // empty means "All Employees"
	Project      string // report.AllProjects or a specific title
	From, To     time.Time
	Projects     []models.ProjectSummary
	Users        []models.UserSummary
	Tasks        []models.FlattenedTask
	Totals       models.ReportTotals
}

const metaDateLayout = "Jan 02, 2006"

// BuildWorkbook renders the selected report into an xlsx buffer and returns
// it with the computed download filename. On any serialization failure the
// partially built workbook is discarded and only the error is returned.
func BuildWorkbook(in Input) (*bytes.Buffer, string, error) {
	var (
		buf *bytes.Buffer
		err error
	)
	switch in.Kind {
	case KindUserSummary:
		buf, err = buildUserSummary(in)
	case KindTaskSummary:
		if in.Project == report.AllProjects {
			buf, err = buildGroupedTaskSummary(in)
		} else {
			buf, err = buildFlatTaskSummary(in)
		}
	default:
		buf, err = buildProjectSummary(in)
	}
	if err != nil {
		return nil, "", err
	}
	return buf, Filename(in.Kind, in.Project, time.Now()), nil
}

func (in Input) employeeLabel() string {
	if in.EmployeeName == "" {
		return "All Employees"
	}
	return in.EmployeeName
}

func (in Input) dateRangeLabel() string {
	return in.From.Format(metaDateLayout) + " - " + in.To.Format(metaDateLayout)
}

func addMetadata(b *sheetBuilder, in Input, totalMinutes int) {
	b.addMeta("Employee:", in.employeeLabel())
	b.addMeta("Total Time:", report.FormatMinutes(totalMinutes))
	b.addMeta("Date Range:", in.dateRangeLabel())
	b.addMeta("Project:", in.Project)
	b.blankRow()
}

func buildProjectSummary(in Input) (*bytes.Buffer, error) {
	b, err := newSheetBuilder(6)
	if err != nil {
		return nil, err
	}
	defer b.close()

	b.addTitle("Project Summary Report")
	addMetadata(b, in, in.Totals.TotalWorkedMinutes)
	b.addHeader([]string{"Project", "Time Worked", "P1 Tickets", "P2 Tickets", "P3 Tickets", "Total Tickets"})
	for _, r := range in.Projects {
		b.addRow([]interface{}{
			r.Name,
			report.FormatMinutes(r.TotalWorkedMinutes),
			r.P1Count,
			r.P2Count,
			r.P3Count,
			r.TotalTicketCount,
		})
	}
	return b.finish([]float64{30, 15, 11, 11, 11, 14})
}

func buildUserSummary(in Input) (*bytes.Buffer, error) {
	b, err := newSheetBuilder(6)
	if err != nil {
		return nil, err
	}
	defer b.close()

	b.addTitle("Employee Summary Report")
	addMetadata(b, in, in.Totals.TotalWorkedMinutes)
	b.addHeader([]string{"Employee", "Time Worked", "P1 Tickets", "P2 Tickets", "P3 Tickets", "Total Tickets"})
	for _, r := range in.Users {
		b.addRow([]interface{}{
			r.Name,
			report.FormatMinutes(r.TotalWorkedMinutes),
			r.P1Count,
			r.P2Count,
			r.P3Count,
			r.TotalTicketCount,
		})
	}
	return b.finish([]float64{25, 15, 11, 11, 11, 14})
}

var taskHeaders = []string{"Date", "Employee", "Task", "Status", "Time Taken", "Description"}
var taskFloors = []float64{12, 20, 30, 14, 13, 40}

func taskRow(t models.FlattenedTask) []interface{} {
	return []interface{}{
		t.CreatedAt.Format("2006-01-02"),
		t.User.DisplayName(),
		t.TaskName,
		t.Status,
		report.FormatMinutes(t.TimeTakenMinutes),
		t.Description,
	}
}

func taskMinutes(tasks []models.FlattenedTask) int {
	total := 0
	for _, t := range tasks {
		total += t.TimeTakenMinutes
	}
	return total
}

func buildFlatTaskSummary(in Input) (*bytes.Buffer, error) {
	b, err := newSheetBuilder(len(taskHeaders))
	if err != nil {
		return nil, err
	}
	defer b.close()

	b.addTitle("Task Summary Report")
	addMetadata(b, in, taskMinutes(in.Tasks))
	b.addHeader(taskHeaders)
	for _, t := range in.Tasks {
		b.addRow(taskRow(t))
	}
	return b.finish(taskFloors)
}

// buildGroupedTaskSummary renders the all-projects task export: tasks
// grouped under a project banner, groups in alphabetical title order, each
// followed by its own total-time row, with header styling and row banding
// restarting per group.
func buildGroupedTaskSummary(in Input) (*bytes.Buffer, error) {
	groups := make(map[string][]models.FlattenedTask)
	for _, t := range in.Tasks {
		groups[t.ProjectTitle] = append(groups[t.ProjectTitle], t)
	}
	titles := make([]string, 0, len(groups))
	for title := range groups {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	b, err := newSheetBuilder(len(taskHeaders))
	if err != nil {
		return nil, err
	}
	defer b.close()

	b.addTitle("Task Summary Report")
	addMetadata(b, in, taskMinutes(in.Tasks))
	for _, title := range titles {
		tasks := groups[title]
		b.addGroupRow(title)
		b.addHeader(taskHeaders)
		for _, t := range tasks {
			b.addRow(taskRow(t))
		}
		b.addGroupTotal("Total Time:", report.FormatMinutes(taskMinutes(tasks)))
		b.blankRow()
	}
	return b.finish(taskFloors)
}
