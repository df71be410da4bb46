package http

import (
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	dashboardservice "github.com/emsuite/ems-backend-go/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboardService *dashboardservice.Service
}

func NewDashboardHandler(dashboardService *dashboardservice.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.dashboardService.Analytics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, analytics)
}
