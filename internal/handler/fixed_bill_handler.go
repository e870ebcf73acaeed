package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wealthpath/finance-tracker/internal/service"
)

type FixedBillHandler struct {
	service FixedBillServiceInterface
}

func NewFixedBillHandler(service FixedBillServiceInterface) *FixedBillHandler {
	return &FixedBillHandler{service: service}
}

// RolloverResponse reports how many bills were reset to unpaid.
type RolloverResponse struct {
	Reset int `json:"reset"`
}

// Create godoc
// @Summary Create a fixed bill
// @Tags fixed-bills
// @Accept json
// @Produce json
// @Param input body service.FixedBillInput true "Bill data"
// @Success 201 {object} model.FixedBillView
// @Failure 400 {object} ErrorResponse
// @Router /fixed-bills [post]
func (h *FixedBillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.FixedBillInput
	if !decodeJSON(w, r, &input) {
		return
	}

	bill, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, bill)
}

// Get godoc
// @Summary Get a fixed bill
// @Tags fixed-bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} model.FixedBillView
// @Failure 404 {object} ErrorResponse
// @Router /fixed-bills/{id} [get]
func (h *FixedBillHandler) Get(w http.ResponseWriter, r *http.Request) {
	bill, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, bill)
}

// List godoc
// @Summary List fixed bills
// @Description Bills with status, next due date and days until due
// @Tags fixed-bills
// @Produce json
// @Success 200 {array} model.FixedBillView
// @Router /fixed-bills [get]
func (h *FixedBillHandler) List(w http.ResponseWriter, r *http.Request) {
	bills, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, bills)
}

// Update godoc
// @Summary Update a fixed bill
// @Tags fixed-bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param input body service.FixedBillInput true "Bill data"
// @Success 200 {object} model.FixedBillView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /fixed-bills/{id} [put]
func (h *FixedBillHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.FixedBillInput
	if !decodeJSON(w, r, &input) {
		return
	}

	bill, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, bill)
}

// Delete godoc
// @Summary Delete a fixed bill
// @Tags fixed-bills
// @Param id path string true "Bill ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /fixed-bills/{id} [delete]
func (h *FixedBillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TogglePaid godoc
// @Summary Toggle a bill's paid flag
// @Tags fixed-bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} model.FixedBillView
// @Failure 404 {object} ErrorResponse
// @Router /fixed-bills/{id}/toggle-paid [post]
func (h *FixedBillHandler) TogglePaid(w http.ResponseWriter, r *http.Request) {
	bill, err := h.service.TogglePaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, bill)
}

// Summary godoc
// @Summary Fixed bill summary
// @Tags fixed-bills
// @Produce json
// @Success 200 {object} model.FixedBillSummary
// @Router /fixed-bills/summary [get]
func (h *FixedBillHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// Rollover godoc
// @Summary Reset paid recurring bills
// @Description Mark recurring bills paid in an earlier month as unpaid
// @Tags fixed-bills
// @Produce json
// @Success 200 {object} RolloverResponse
// @Router /fixed-bills/rollover [post]
func (h *FixedBillHandler) Rollover(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.Rollover(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, RolloverResponse{Reset: n})
}
