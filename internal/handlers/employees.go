package handlers

import (
	"net/http"

	"teampulse-be/internal/models"
	"teampulse-be/internal/services"
	"teampulse-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sahilm/fuzzy"
)

type EmployeesHandler struct {
	svc *services.ReportService
}

func NewEmployeesHandler(svc *services.ReportService) *EmployeesHandler {
	return &EmployeesHandler{svc: svc}
}

// ListEmployees godoc
// @Summary Employee picker options
// @Description Returns the roster, optionally filtered by a fuzzy, accent-insensitive name query
// @Tags employees
// @Security ApiKeyAuth
// @Param q query string false "Name filter"
// @Success 200 {array} models.EmployeeOption
// @Failure 500 {object} models.ErrorResponse
// @Router /employees [get]
func (h *EmployeesHandler) ListEmployees(c *gin.Context) {
	roster, err := h.svc.EmployeeOptions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees: " + err.Error()})
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, roster)
		return
	}

	names := make([]string, len(roster))
	for i, e := range roster {
		names[i] = utils.NormalizeForSearch(e.DisplayName())
	}

	matches := fuzzy.Find(utils.NormalizeForSearch(query), names)
	filtered := make([]models.EmployeeOption, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, roster[m.Index])
	}
	c.JSON(http.StatusOK, filtered)
}
