package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/project"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	projectservice "github.com/emsuite/ems-backend-go/internal/service/project"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler struct {
	projectService *projectservice.Service
}

func NewProjectHandler(projectService *projectservice.Service) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type projectResponse struct {
	ID             string  `json:"id"`
	ProjectCode    string  `json:"project_code"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	AssignedTo     string  `json:"assigned_to"`
	AssignedToName string  `json:"assigned_to_name"`
	Deadline       *string `json:"deadline,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func toProjectResponse(p project.Project) projectResponse {
	resp := projectResponse{
		ID:             p.ID,
		ProjectCode:    p.ProjectCode,
		Title:          p.Title,
		Description:    p.Description,
		AssignedTo:     p.AssignedTo,
		AssignedToName: p.AssignedToName,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Deadline != nil {
		deadline := p.Deadline.Format("2006-01-02")
		resp.Deadline = &deadline
	}
	return resp
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", toProjectResponse(created))
}

// List accepts an optional assigned_to query filter.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	assignedTo := r.URL.Query().Get("assigned_to")

	projects, err := h.projectService.List(r.Context(), assignedTo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, toProjectResponse(p))
	}
	response.Success(w, responses)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	p, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toProjectResponse(p))
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.projectService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", toProjectResponse(updated))
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}
