package report

import (
	"sort"

	"teampulse-be/internal/models"
)

// unknownUser stands in for work logs that carry no user at all.
var unknownUser = models.ReportUser{ID: "", FirstName: "Unknown", LastName: ""}

// FlattenTasks produces one row per task report across the filtered work
// logs, each carrying the parent log's creation time and user, restricted
// to the selected project when one is selected, most recent first.
func FlattenTasks(logs []models.WorkLogRecord, project string) []models.FlattenedTask {
	tasks := make([]models.FlattenedTask, 0)
	for _, l := range logs {
		user := unknownUser
		if l.User != nil {
			user = *l.User
		}
		for _, t := range l.TaskReports {
			if project != AllProjects && t.ProjectTitle() != project {
				continue
			}
			tasks = append(tasks, models.FlattenedTask{
				CreatedAt:        l.CreatedAt,
				User:             user,
				TaskName:         t.TaskName,
				ProjectTitle:     t.ProjectTitle(),
				TimeTakenMinutes: t.TimeTakenMinutes,
				Status:           t.Status,
				Description:      t.Description,
			})
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks
}
