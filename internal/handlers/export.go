package handlers

import (
	"log"
	"net/http"

	"teampulse-be/internal/export"
	"teampulse-be/internal/models"
	"teampulse-be/internal/report"
	"teampulse-be/internal/repository"
	"teampulse-be/internal/services"
	"teampulse-be/internal/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	svc     *services.ReportService
	exports *repository.ExportRepository
}

func NewExportHandler(svc *services.ReportService, exports *repository.ExportRepository) *ExportHandler {
	return &ExportHandler{svc: svc, exports: exports}
}

// Export godoc
// @Summary Download a styled XLSX report
// @Description Builds the selected report kind for the current filters and streams it as an attachment
// @Tags exports
// @Security ApiKeyAuth
// @Param kind query string true "Report kind" Enums(project-summary, task-summary, user-summary)
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param employee_id query string false "Employee id, or 'all'" default(all)
// @Param project query string false "Project title, or 'All'" default(All)
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /reports/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}

	kind := export.Kind(c.Query("kind"))
	switch kind {
	case export.KindProjectSummary, export.KindTaskSummary, export.KindUserSummary:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be project-summary, task-summary, or user-summary"})
		return
	}
	if kind == export.KindUserSummary && f.Project == report.AllProjects {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user-summary export requires a project"})
		return
	}

	snap := h.svc.Snapshot(c.Request.Context(), f.EmployeeID, f.From, f.To, f.Refresh)
	logs := report.FilterWorkLogs(snap.WorkLogs, f.From, f.To)
	tickets := report.FilterTickets(snap.Tickets, f.From, f.To, f.EmployeeID, f.Project)

	projectRows := report.RestrictProjects(report.AggregateProjects(logs, tickets), f.Project)
	tasks := report.FlattenTasks(logs, f.Project)
	for i := range tasks {
		tasks[i].Description = utils.StripHTML(tasks[i].Description)
	}

	in := export.Input{
		Kind:         kind,
		EmployeeName: h.employeeName(c, f.EmployeeID),
		Project:      f.Project,
		From:         f.From,
		To:           f.To,
		Projects:     projectRows,
		Users:        report.AggregateUsers(logs, tickets, f.Project),
		Tasks:        tasks,
		Totals:       report.Totals(projectRows),
	}

	buf, filename, err := export.BuildWorkbook(in)
	if err != nil {
		// No partial file: the workbook is discarded on any build failure.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export: " + err.Error()})
		return
	}

	h.recordExport(c, in, f.EmployeeID, filename)

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// employeeName resolves the display name for the metadata block; empty for
// the all-employees sentinel.
func (h *ExportHandler) employeeName(c *gin.Context, employeeID string) string {
	if employeeID == report.AllEmployees {
		return ""
	}
	roster, err := h.svc.EmployeeOptions(c.Request.Context())
	if err != nil {
		return employeeID
	}
	for _, e := range roster {
		if e.ID == employeeID {
			return e.DisplayName()
		}
	}
	return employeeID
}

// recordExport writes the audit entry. Best effort: a failed insert never
// blocks the download.
func (h *ExportHandler) recordExport(c *gin.Context, in export.Input, employeeID, filename string) {
	if h.exports == nil {
		return
	}
	userID, _ := c.Get("userID")
	uid, _ := userID.(string)

	rowCount := len(in.Projects)
	switch in.Kind {
	case export.KindTaskSummary:
		rowCount = len(in.Tasks)
	case export.KindUserSummary:
		rowCount = len(in.Users)
	}

	rec := &models.ExportRecord{
		UserID:     uid,
		Kind:       string(in.Kind),
		Filename:   filename,
		EmployeeID: employeeID,
		Project:    in.Project,
		From:       in.From.Format(queryDateLayout),
		To:         in.To.Format(queryDateLayout),
		RowCount:   rowCount,
	}
	if err := h.exports.Create(c.Request.Context(), rec); err != nil {
		log.Println("export audit: failed to record:", err)
	}
}

// ListExports godoc
// @Summary Recent export history
// @Tags exports
// @Security ApiKeyAuth
// @Success 200 {array} models.ExportRecord
// @Failure 500 {object} models.ErrorResponse
// @Router /reports/exports [get]
func (h *ExportHandler) ListExports(c *gin.Context) {
	if h.exports == nil {
		c.JSON(http.StatusOK, []models.ExportRecord{})
		return
	}
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := h.exports.ListRecent(c.Request.Context(), userID.(string), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exports: " + err.Error()})
		return
	}
	if records == nil {
		records = []models.ExportRecord{}
	}
	c.JSON(http.StatusOK, records)
}
