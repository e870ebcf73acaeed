package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wealthpath/finance-tracker/internal/service"
)

type IncomeHandler struct {
	service IncomeServiceInterface
}

func NewIncomeHandler(service IncomeServiceInterface) *IncomeHandler {
	return &IncomeHandler{service: service}
}

// Create godoc
// @Summary Create an income
// @Tags incomes
// @Accept json
// @Produce json
// @Param input body service.IncomeInput true "Income data"
// @Success 201 {object} model.IncomeView
// @Failure 400 {object} ErrorResponse
// @Router /incomes [post]
func (h *IncomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.IncomeInput
	if !decodeJSON(w, r, &input) {
		return
	}

	income, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, income)
}

// Get godoc
// @Summary Get an income
// @Tags incomes
// @Produce json
// @Param id path string true "Income ID"
// @Success 200 {object} model.IncomeView
// @Failure 404 {object} ErrorResponse
// @Router /incomes/{id} [get]
func (h *IncomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	income, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, income)
}

// List godoc
// @Summary List incomes
// @Tags incomes
// @Produce json
// @Success 200 {array} model.IncomeView
// @Router /incomes [get]
func (h *IncomeHandler) List(w http.ResponseWriter, r *http.Request) {
	incomes, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, incomes)
}

// Update godoc
// @Summary Update an income
// @Tags incomes
// @Accept json
// @Produce json
// @Param id path string true "Income ID"
// @Param input body service.IncomeInput true "Income data"
// @Success 200 {object} model.IncomeView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /incomes/{id} [put]
func (h *IncomeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.IncomeInput
	if !decodeJSON(w, r, &input) {
		return
	}

	income, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, income)
}

// Delete godoc
// @Summary Delete an income
// @Tags incomes
// @Param id path string true "Income ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /incomes/{id} [delete]
func (h *IncomeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleReceived godoc
// @Summary Toggle an income's received flag
// @Tags incomes
// @Produce json
// @Param id path string true "Income ID"
// @Success 200 {object} model.IncomeView
// @Failure 404 {object} ErrorResponse
// @Router /incomes/{id}/toggle-received [post]
func (h *IncomeHandler) ToggleReceived(w http.ResponseWriter, r *http.Request) {
	income, err := h.service.ToggleReceived(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, income)
}

// Summary godoc
// @Summary Income summary
// @Description Monthly-equivalent income totals
// @Tags incomes
// @Produce json
// @Success 200 {object} model.IncomeSummary
// @Router /incomes/summary [get]
func (h *IncomeHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
