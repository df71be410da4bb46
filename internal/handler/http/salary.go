package http

import (
	"encoding/json"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	salaryservice "github.com/emsuite/ems-backend-go/internal/service/salary"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler struct {
	salaryService *salaryservice.Service
}

func NewSalaryHandler(salaryService *salaryservice.Service) *SalaryHandler {
	return &SalaryHandler{salaryService: salaryService}
}

func (h *SalaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req salary.CreateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.salaryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary record created successfully", salary.ToResponse(created))
}

// List accepts an optional employee_id query filter.
func (h *SalaryHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")

	records, err := h.salaryService.List(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]salary.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, salary.ToResponse(rec))
	}
	response.Success(w, responses)
}

func (h *SalaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary record ID is required", nil)
		return
	}

	rec, err := h.salaryService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, salary.ToResponse(rec))
}

func (h *SalaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary record ID is required", nil)
		return
	}

	var req salary.UpdateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.salaryService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record updated successfully", salary.ToResponse(updated))
}

func (h *SalaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary record ID is required", nil)
		return
	}

	if err := h.salaryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record deleted successfully", nil)
}
