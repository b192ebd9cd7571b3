package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"teampulse-be/config"
	"teampulse-be/internal/models"
	"teampulse-be/internal/report"
)

const upstreamDateLayout = "2006-01-02"

// HRAPIService fetches work logs, tickets, and the employee roster from the
// upstream HR backend.
type HRAPIService struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewHRAPIService(cfg *config.Config) *HRAPIService {
	return &HRAPIService{
		BaseURL: strings.TrimRight(cfg.HRAPIBaseURL, "/"),
		Token:   cfg.HRAPIToken,
		Client:  &http.Client{Timeout: cfg.HRAPITimeout},
	}
}

// doRequest does an authenticated GET against the HR backend and returns body bytes.
func (s *HRAPIService) doRequest(ctx context.Context, method, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("hr api error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func (s *HRAPIService) rangeQuery(employeeID string, from, to time.Time) url.Values {
	q := url.Values{}
	q.Set("start_date", from.Format(upstreamDateLayout))
	q.Set("end_date", to.Format(upstreamDateLayout))
	if employeeID != report.AllEmployees {
		q.Set("user_id", employeeID)
	}
	return q
}

type userWire struct {
	ID        string `json:"_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (u *userWire) toModel() *models.ReportUser {
	if u == nil {
		return nil
	}
	return &models.ReportUser{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// FetchWorkLogs pulls the all-user-reports collection for a date range,
// optionally scoped to one employee.
func (s *HRAPIService) FetchWorkLogs(ctx context.Context, employeeID string, from, to time.Time) ([]models.WorkLogRecord, error) {
	q := s.rangeQuery(employeeID, from, to)
	b, err := s.doRequest(ctx, "GET", s.BaseURL+"/work-logs/all-user-reports?"+q.Encode())
	if err != nil {
		return nil, err
	}
	var out []struct {
		CreatedAt   interface{} `json:"created_at"`
		User        *userWire   `json:"user"`
		TaskReports []struct {
			TaskName    string `json:"task_name"`
			Project     *struct {
				ID          string `json:"_id"`
				Title       string `json:"title"`
				Description string `json:"description"`
				Status      string `json:"status"`
				Phase       string `json:"phase"`
			} `json:"project"`
			TimeTaken   int    `json:"time_taken"`
			Status      string `json:"status"`
			Description string `json:"description"`
		} `json:"task_reports"`
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	logs := make([]models.WorkLogRecord, 0, len(out))
	for _, w := range out {
		createdAt, err := tryParseTime(w.CreatedAt)
		if err != nil {
			continue
		}
		rec := models.WorkLogRecord{CreatedAt: createdAt, User: w.User.toModel()}
		for _, t := range w.TaskReports {
			tr := models.TaskReport{
				TaskName:         t.TaskName,
				TimeTakenMinutes: t.TimeTaken,
				Status:           t.Status,
				Description:      t.Description,
			}
			if t.Project != nil {
				tr.Project = &models.Project{
					ID:          t.Project.ID,
					Title:       t.Project.Title,
					Description: t.Project.Description,
					Status:      t.Project.Status,
					Phase:       t.Project.Phase,
				}
			}
			rec.TaskReports = append(rec.TaskReports, tr)
		}
		logs = append(logs, rec)
	}
	return logs, nil
}

// FetchTickets pulls the ticket list for a date range. The upstream route
// spelling ("task-maangement") is the deployed backend's, not ours to fix.
func (s *HRAPIService) FetchTickets(ctx context.Context, employeeID string, from, to time.Time) ([]models.TicketRecord, error) {
	q := s.rangeQuery(employeeID, from, to)
	b, err := s.doRequest(ctx, "GET", s.BaseURL+"/task-maangement/list?"+q.Encode())
	if err != nil {
		return nil, err
	}
	var out struct {
		Tickets []struct {
			ID        string      `json:"_id"`
			CreatedAt interface{} `json:"created_at"`
			Priority  string      `json:"priority"`
			Project   *struct {
				Title string `json:"title"`
			} `json:"project"`
			CurrentUser *userWire `json:"current_user"`
		} `json:"tickets"`
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	tickets := make([]models.TicketRecord, 0, len(out.Tickets))
	for _, t := range out.Tickets {
		createdAt, err := tryParseTime(t.CreatedAt)
		if err != nil {
			continue
		}
		rec := models.TicketRecord{
			ID:        t.ID,
			CreatedAt: createdAt,
			Priority:  t.Priority,
			Assignee:  t.CurrentUser.toModel(),
		}
		if t.Project != nil {
			rec.ProjectTitle = t.Project.Title
		}
		tickets = append(tickets, rec)
	}
	return tickets, nil
}

// FetchEmployees pulls the employee roster for the picker.
func (s *HRAPIService) FetchEmployees(ctx context.Context) ([]models.EmployeeOption, error) {
	b, err := s.doRequest(ctx, "GET", s.BaseURL+"/user/list")
	if err != nil {
		return nil, err
	}
	var out []userWire
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	employees := make([]models.EmployeeOption, 0, len(out))
	for _, u := range out {
		if u.ID == "" {
			continue
		}
		employees = append(employees, models.EmployeeOption{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
		})
	}
	return employees, nil
}

// tryParseTime accepts an RFC3339 string or numeric milliseconds
// (float64/int64/string/json.Number), which is how upstream timestamps
// arrive depending on the collection. Epoch values come back in UTC so
// calendar-day filtering never depends on the server's local zone.
func tryParseTime(v interface{}) (time.Time, error) {
	if v == nil {
		return time.Time{}, errors.New("nil")
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return time.Time{}, errors.New("empty")
		}
		if tt, err := time.Parse(time.RFC3339, t); err == nil {
			return tt, nil
		}
		if parsed, err := strconv.ParseInt(t, 10, 64); err == nil && parsed > 0 {
			return time.UnixMilli(parsed).UTC(), nil
		}
		return time.Time{}, fmt.Errorf("unsupported time string: %s", t)
	case float64:
		if t <= 0 {
			return time.Time{}, errors.New("invalid")
		}
		return time.UnixMilli(int64(t)).UTC(), nil
	case int64:
		if t <= 0 {
			return time.Time{}, errors.New("invalid")
		}
		return time.UnixMilli(t).UTC(), nil
	case json.Number:
		if parsed, err := t.Int64(); err == nil && parsed > 0 {
			return time.UnixMilli(parsed).UTC(), nil
		}
	}
	return time.Time{}, errors.New("unsupported")
}
