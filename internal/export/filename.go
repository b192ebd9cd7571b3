package export

import (
	"fmt"
	"regexp"
	"time"

	"teampulse-be/internal/report"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// sanitizeProject makes a project title safe to embed in a filename.
func sanitizeProject(name string) string {
	return nonAlnum.ReplaceAllString(name, "_")
}

// Filename computes the download name for a report: the kind plus the
// current date in YYYYMMDD form, with the project title embedded (and
// sanitized) for project-scoped variants.
func Filename(kind Kind, project string, now time.Time) string {
	date := now.Format("20060102")
	switch kind {
	case KindUserSummary:
		return fmt.Sprintf("employee_summary_%s_%s.xlsx", sanitizeProject(project), date)
	case KindTaskSummary:
		if project != report.AllProjects {
			return fmt.Sprintf("task_summary_%s_%s.xlsx", sanitizeProject(project), date)
		}
		return fmt.Sprintf("task_summary_%s.xlsx", date)
	default:
		return fmt.Sprintf("project_summary_%s.xlsx", date)
	}
}
