package http

import (
	"encoding/json"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	attendanceservice "github.com/emsuite/ems-backend-go/internal/service/attendance"
)

type AttendanceHandler struct {
	attendanceService *attendanceservice.Service
}

func NewAttendanceHandler(attendanceService *attendanceservice.Service) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

func (h *AttendanceHandler) Punch(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Punched in successfully"
	if req.Action == attendance.ActionPunchOut {
		message = "Punched out successfully"
	}
	response.SuccessWithMessage(w, message, attendance.ToResponse(rec))
}

// List accepts an optional employee_id query filter.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")

	records, err := h.attendanceService.List(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	response.Success(w, responses)
}
