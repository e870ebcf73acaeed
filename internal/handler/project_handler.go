package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/service"
)

type ProjectHandler struct {
	service ProjectServiceInterface
}

func NewProjectHandler(service ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param input body service.ProjectInput true "Project data"
// @Success 201 {object} model.ProjectView
// @Failure 400 {object} ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.ProjectInput
	if !decodeJSON(w, r, &input) {
		return
	}

	project, err := h.service.Create(r.Context(), input)
	h.respond(w, r, http.StatusCreated, project, err)
}

// Get godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} model.ProjectView
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, project, err)
}

// List godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} model.ProjectView
// @Router /projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, projects)
}

// Update godoc
// @Summary Update a project
// @Description Replace the project's own fields; costs and revenues are kept
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param input body service.ProjectInput true "Project data"
// @Success 200 {object} model.ProjectView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.ProjectInput
	if !decodeJSON(w, r, &input) {
		return
	}

	project, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	h.respond(w, r, http.StatusOK, project, err)
}

// Delete godoc
// @Summary Delete a project with its costs and revenues
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary godoc
// @Summary Project summary
// @Tags projects
// @Produce json
// @Success 200 {object} model.ProjectSummary
// @Router /projects/summary [get]
func (h *ProjectHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// AddCost godoc
// @Summary Add a cost to a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param input body service.ProjectCostInput true "Cost data"
// @Success 201 {object} model.ProjectView
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id}/costs [post]
func (h *ProjectHandler) AddCost(w http.ResponseWriter, r *http.Request) {
	var input service.ProjectCostInput
	if !decodeJSON(w, r, &input) {
		return
	}

	project, err := h.service.AddCost(r.Context(), chi.URLParam(r, "id"), input)
	h.respond(w, r, http.StatusCreated, project, err)
}

// UpdateCost godoc
// @Summary Update a project cost
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param costId path string true "Cost ID"
// @Param input body service.ProjectCostInput true "Cost data"
// @Success 200 {object} model.ProjectView
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id}/costs/{costId} [put]
func (h *ProjectHandler) UpdateCost(w http.ResponseWriter, r *http.Request) {
	var input service.ProjectCostInput
	if !decodeJSON(w, r, &input) {
		return
	}

	project, err := h.service.UpdateCost(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "costId"), input)
	h.respond(w, r, http.StatusOK, project, err)
}

// ToggleCostPaid godoc
// @Summary Toggle a project cost's paid flag
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Param costId path string true "Cost ID"
// @Success 200 {object} model.ProjectView
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id}/costs/{costId}/toggle-paid [post]
func (h *ProjectHandler) ToggleCostPaid(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.ToggleCostPaid(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "costId"))
	h.respond(w, r, http.StatusOK, project, err)
}

// DeleteCost godoc
// @Summary Delete a project cost
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Param costId path string true "Cost ID"
// @Success 200 {object} model.ProjectView
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id}/costs/{costId} [delete]
func (h *ProjectHandler) DeleteCost(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.DeleteCost(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "costId"))
	h.respond(w, r, http.StatusOK, project, err)
}

// AddRevenue godoc
// @Summary Add a revenue to a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param input body service.ProjectRevenueInput true "Revenue data"
// @Success 201 {object} model.ProjectView
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id}/revenues [post]
func (h *ProjectHandler) AddRevenue(w http.ResponseWriter, r *http.Request) {
	var input service.ProjectRevenueInput
	if !decodeJSON(w, r, &input) {
		return
	}

	project, err := h.service.AddRevenue(r.Context(), chi.URLParam(r, "id"), input)
	h.respond(w, r, http.StatusCreated, project, err)
}

// UpdateRevenue godoc
// @Summary Update a project revenue
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param revenueId path string true "Revenue ID"
// @Param input body service.ProjectRevenueInput true "Revenue data"
// @Success 200 {object} model.ProjectView
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id}/revenues/{revenueId} [put]
func (h *ProjectHandler) UpdateRevenue(w http.ResponseWriter, r *http.Request) {
	var input service.ProjectRevenueInput
	if !decodeJSON(w, r, &input) {
		return
	}

	project, err := h.service.UpdateRevenue(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "revenueId"), input)
	h.respond(w, r, http.StatusOK, project, err)
}

// ToggleRevenueReceived godoc
// @Summary Toggle a project revenue's received flag
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Param revenueId path string true "Revenue ID"
// @Success 200 {object} model.ProjectView
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id}/revenues/{revenueId}/toggle-received [post]
func (h *ProjectHandler) ToggleRevenueReceived(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.ToggleRevenueReceived(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "revenueId"))
	h.respond(w, r, http.StatusOK, project, err)
}

// DeleteRevenue godoc
// @Summary Delete a project revenue
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Param revenueId path string true "Revenue ID"
// @Success 200 {object} model.ProjectView
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id}/revenues/{revenueId} [delete]
func (h *ProjectHandler) DeleteRevenue(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.DeleteRevenue(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "revenueId"))
	h.respond(w, r, http.StatusOK, project, err)
}

func (h *ProjectHandler) respond(w http.ResponseWriter, r *http.Request, status int, project *model.ProjectView, err error) {
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, status, project)
}
