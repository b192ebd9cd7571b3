package handlers

import (
	"net/http"
	"time"

	"teampulse-be/internal/models"
	"teampulse-be/internal/report"
	"teampulse-be/internal/services"
	"teampulse-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	svc *services.ReportService
}

func NewReportsHandler(svc *services.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// ========== Request/Response Types ==========

// FetchStatus echoes the per-source fetch result so the dashboard can tell
// "no data in range" apart from "fetch failed".
type FetchStatus struct {
	WorkLogs services.SourceStatus `json:"workLogs"`
	Tickets  services.SourceStatus `json:"tickets"`
}

// ProjectReportResponse is the project-summary report payload.
type ProjectReportResponse struct {
	Rows   []models.ProjectSummary `json:"rows"`
	Totals models.ReportTotals     `json:"totals"`
	Status FetchStatus             `json:"status"`
}

// UserReportResponse is the employee-summary report payload.
type UserReportResponse struct {
	Rows   []models.UserSummary `json:"rows"`
	Totals models.ReportTotals  `json:"totals"`
	Status FetchStatus          `json:"status"`
}

// TaskReportResponse is the flattened per-task payload.
type TaskReportResponse struct {
	Rows   []models.FlattenedTask `json:"rows"`
	Status FetchStatus            `json:"status"`
}

// reportFilters holds the parsed query selections shared by every report
// endpoint.
type reportFilters struct {
	From       time.Time
	To         time.Time
	EmployeeID string
	Project    string
	Refresh    bool
}

const queryDateLayout = "2006-01-02"

// parseFilters reads from/to/employee_id/project/refresh. Both date bounds
// are required: the pipeline is fail-closed, so a missing bound is a 400,
// never "unbounded".
func parseFilters(c *gin.Context) (reportFilters, bool) {
	var f reportFilters

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return f, false
	}

	from, err := time.Parse(queryDateLayout, fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date. Use YYYY-MM-DD"})
		return f, false
	}
	to, err := time.Parse(queryDateLayout, toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date. Use YYYY-MM-DD"})
		return f, false
	}

	f.From = from
	f.To = to
	f.EmployeeID = c.DefaultQuery("employee_id", report.AllEmployees)
	f.Project = c.DefaultQuery("project", report.AllProjects)
	f.Refresh = c.Query("refresh") == "true"
	return f, true
}

func fetchStatus(snap *services.Snapshot) FetchStatus {
	return FetchStatus{WorkLogs: snap.WorkLogStatus, Tickets: snap.TicketStatus}
}

// GetProjectReport godoc
// @Summary Per-project report
// @Description Aggregates filtered work logs and tickets into one summary row per project
// @Tags reports
// @Security ApiKeyAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param employee_id query string false "Employee id, or 'all'" default(all)
// @Param project query string false "Project title, or 'All'" default(All)
// @Param refresh query bool false "Bypass the snapshot cache"
// @Success 200 {object} ProjectReportResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /reports/projects [get]
func (h *ReportsHandler) GetProjectReport(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}

	snap := h.svc.Snapshot(c.Request.Context(), f.EmployeeID, f.From, f.To, f.Refresh)
	logs := report.FilterWorkLogs(snap.WorkLogs, f.From, f.To)
	tickets := report.FilterTickets(snap.Tickets, f.From, f.To, f.EmployeeID, f.Project)

	rows := report.RestrictProjects(report.AggregateProjects(logs, tickets), f.Project)

	c.JSON(http.StatusOK, ProjectReportResponse{
		Rows:   rows,
		Totals: report.Totals(rows),
		Status: fetchStatus(snap),
	})
}

// GetUserReport godoc
// @Summary Per-employee report
// @Description Aggregates filtered work logs and tickets into one summary row per employee
// @Tags reports
// @Security ApiKeyAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param employee_id query string false "Employee id, or 'all'" default(all)
// @Param project query string false "Project title, or 'All'" default(All)
// @Param refresh query bool false "Bypass the snapshot cache"
// @Success 200 {object} UserReportResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /reports/users [get]
func (h *ReportsHandler) GetUserReport(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}

	snap := h.svc.Snapshot(c.Request.Context(), f.EmployeeID, f.From, f.To, f.Refresh)
	logs := report.FilterWorkLogs(snap.WorkLogs, f.From, f.To)
	tickets := report.FilterTickets(snap.Tickets, f.From, f.To, f.EmployeeID, f.Project)

	rows := report.AggregateUsers(logs, tickets, f.Project)
	projectRows := report.RestrictProjects(report.AggregateProjects(logs, tickets), f.Project)

	c.JSON(http.StatusOK, UserReportResponse{
		Rows:   rows,
		Totals: report.Totals(projectRows),
		Status: fetchStatus(snap),
	})
}

// GetTaskReport godoc
// @Summary Flattened per-task report
// @Description One row per task report, newest first, descriptions stripped to plain text
// @Tags reports
// @Security ApiKeyAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param employee_id query string false "Employee id, or 'all'" default(all)
// @Param project query string false "Project title, or 'All'" default(All)
// @Param refresh query bool false "Bypass the snapshot cache"
// @Success 200 {object} TaskReportResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /reports/tasks [get]
func (h *ReportsHandler) GetTaskReport(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}

	snap := h.svc.Snapshot(c.Request.Context(), f.EmployeeID, f.From, f.To, f.Refresh)
	logs := report.FilterWorkLogs(snap.WorkLogs, f.From, f.To)

	rows := report.FlattenTasks(logs, f.Project)
	for i := range rows {
		rows[i].Description = utils.StripHTML(rows[i].Description)
	}

	c.JSON(http.StatusOK, TaskReportResponse{
		Rows:   rows,
		Status: fetchStatus(snap),
	})
}
