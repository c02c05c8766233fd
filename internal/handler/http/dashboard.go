package http

import (
	"net/http"
	"strconv"

	"github.com/hadirhq/hadir-backend-go/internal/domain/dashboard"
	"github.com/hadirhq/hadir-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	UpcomingBirthdays(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// UpcomingBirthdays implements DashboardHandler.
func (h *dashboardHandlerImpl) UpcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	days := 7
	if d := r.URL.Query().Get("days"); d != "" {
		if dayNum, err := strconv.Atoi(d); err == nil && dayNum > 0 {
			days = dayNum
		}
	}

	result, err := h.dashboardService.UpcomingBirthdays(r.Context(), days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
