package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teampulse-be/internal/models"
	"teampulse-be/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUpstream struct {
	logs      []models.WorkLogRecord
	tickets   []models.TicketRecord
	employees []models.EmployeeOption
	err       error
}

func (s *stubUpstream) FetchWorkLogs(ctx context.Context, employeeID string, from, to time.Time) ([]models.WorkLogRecord, error) {
	return s.logs, s.err
}

func (s *stubUpstream) FetchTickets(ctx context.Context, employeeID string, from, to time.Time) ([]models.TicketRecord, error) {
	return s.tickets, s.err
}

func (s *stubUpstream) FetchEmployees(ctx context.Context) ([]models.EmployeeOption, error) {
	return s.employees, s.err
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureUpstream() *stubUpstream {
	alice := &models.ReportUser{ID: "a", FirstName: "Alice", LastName: "Ng"}
	bob := &models.ReportUser{ID: "b", FirstName: "Bob", LastName: "Tran"}
	return &stubUpstream{
		logs: []models.WorkLogRecord{
			{CreatedAt: day(2024, 1, 5), User: alice, TaskReports: []models.TaskReport{
				{TaskName: "build", Project: &models.Project{Title: "Alpha"}, TimeTakenMinutes: 90, Status: "done", Description: "<p>markup</p>"},
			}},
			{CreatedAt: day(2024, 1, 10), User: bob, TaskReports: []models.TaskReport{
				{TaskName: "review", Project: &models.Project{Title: "Alpha"}, TimeTakenMinutes: 30, Status: "done"},
			}},
		},
		tickets: []models.TicketRecord{
			{ID: "t1", CreatedAt: day(2024, 1, 7), Priority: "P1", ProjectTitle: "Alpha", Assignee: alice},
		},
		employees: []models.EmployeeOption{
			{ID: "a", FirstName: "Alice", LastName: "Ng"},
			{ID: "b", FirstName: "Bob", LastName: "Tran"},
		},
	}
}

func newTestRouter(upstream services.Upstream) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewReportService(upstream, time.Minute, time.Minute)

	r := gin.New()
	reports := NewReportsHandler(svc)
	exports := NewExportHandler(svc, nil)
	employees := NewEmployeesHandler(svc)

	r.GET("/api/reports/projects", reports.GetProjectReport)
	r.GET("/api/reports/users", reports.GetUserReport)
	r.GET("/api/reports/tasks", reports.GetTaskReport)
	r.GET("/api/reports/export", exports.Export)
	r.GET("/api/employees", employees.ListEmployees)
	return r
}

func doGet(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProjectReport_RequiresBothBounds(t *testing.T) {
	r := newTestRouter(fixtureUpstream())

	assert.Equal(t, http.StatusBadRequest, doGet(t, r, "/api/reports/projects").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, r, "/api/reports/projects?from=2024-01-01").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, r, "/api/reports/projects?to=2024-01-31").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, r, "/api/reports/projects?from=bogus&to=2024-01-31").Code)
}

func TestGetProjectReport_AggregatesWindow(t *testing.T) {
	r := newTestRouter(fixtureUpstream())

	w := doGet(t, r, "/api/reports/projects?from=2024-01-01&to=2024-01-31")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ProjectReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Alpha", resp.Rows[0].Name)
	assert.Equal(t, 120, resp.Rows[0].TotalWorkedMinutes)
	assert.Equal(t, 1, resp.Rows[0].P1Count)
	assert.Equal(t, "2 hr 0 min", resp.Totals.TotalWorkedFormatted)
	assert.Equal(t, services.StateOK, resp.Status.WorkLogs.State)
	assert.Equal(t, services.StateOK, resp.Status.Tickets.State)
}

func TestGetProjectReport_SurfacesFetchErrors(t *testing.T) {
	upstream := fixtureUpstream()
	upstream.err = errors.New("hr api error 500: boom")
	r := newTestRouter(upstream)

	w := doGet(t, r, "/api/reports/projects?from=2024-01-01&to=2024-01-31")
	require.Equal(t, http.StatusOK, w.Code, "a failed fetch is not fatal to the page")

	var resp ProjectReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Empty(t, resp.Rows)
	assert.Equal(t, services.StateError, resp.Status.WorkLogs.State)
	assert.Equal(t, services.StateError, resp.Status.Tickets.State)
}

func TestGetUserReport_ProjectScoped(t *testing.T) {
	r := newTestRouter(fixtureUpstream())

	w := doGet(t, r, "/api/reports/users?from=2024-01-01&to=2024-01-31&project=Alpha")
	require.Equal(t, http.StatusOK, w.Code)

	var resp UserReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "Alice Ng", resp.Rows[0].Name)
	assert.Equal(t, 90, resp.Rows[0].TotalWorkedMinutes)
	assert.Equal(t, 1, resp.Rows[0].P1Count)
}

func TestGetTaskReport_StripsDescriptions(t *testing.T) {
	r := newTestRouter(fixtureUpstream())

	w := doGet(t, r, "/api/reports/tasks?from=2024-01-01&to=2024-01-31")
	require.Equal(t, http.StatusOK, w.Code)

	var resp TaskReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Rows, 2)
	// Newest first, markup stripped.
	assert.Equal(t, "review", resp.Rows[0].TaskName)
	assert.Equal(t, "markup", resp.Rows[1].Description)
}

func TestExport_ValidatesKind(t *testing.T) {
	r := newTestRouter(fixtureUpstream())

	w := doGet(t, r, "/api/reports/export?from=2024-01-01&to=2024-01-31&kind=nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGet(t, r, "/api/reports/export?from=2024-01-01&to=2024-01-31&kind=user-summary")
	assert.Equal(t, http.StatusBadRequest, w.Code, "user-summary export requires a project")
}

func TestExport_StreamsWorkbook(t *testing.T) {
	r := newTestRouter(fixtureUpstream())

	w := doGet(t, r, "/api/reports/export?from=2024-01-01&to=2024-01-31&kind=project-summary")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "project_summary_")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestListEmployees_FuzzyFilter(t *testing.T) {
	r := newTestRouter(fixtureUpstream())

	w := doGet(t, r, "/api/employees?q=alce")
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.EmployeeOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	w = doGet(t, r, "/api/employees")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
