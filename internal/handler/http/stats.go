package http

import (
	"net/http"

	"github.com/chulcheck/attendance-backend-go/internal/domain/stats"
	"github.com/chulcheck/attendance-backend-go/internal/handler/http/response"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/clock"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/validator"
)

type StatsHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
	clock        clock.Clock
}

func NewStatsHandler(statsService stats.StatsService, clock clock.Clock) StatsHandler {
	return &statsHandlerImpl{
		statsService: statsService,
		clock:        clock,
	}
}

// GetMonthly implements StatsHandler.
func (h *statsHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if validator.IsEmpty(employeeID) {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	yearMonth := r.URL.Query().Get("year_month")
	if yearMonth == "" {
		yearMonth = h.clock.Month()
	} else if !validator.IsValidYearMonth(yearMonth) {
		response.BadRequest(w, "year_month must be YYYY-MM", nil)
		return
	}

	result, err := h.statsService.GetMonthly(r.Context(), employeeID, yearMonth)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"stats": result})
}
