package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/wealthpath/finance-tracker/internal/apperror"
	_ "github.com/wealthpath/finance-tracker/internal/model" // swagger types
	"github.com/wealthpath/finance-tracker/internal/service"
)

type DebtHandler struct {
	service DebtServiceInterface
}

func NewDebtHandler(service DebtServiceInterface) *DebtHandler {
	return &DebtHandler{service: service}
}

// Create godoc
// @Summary Create a debt
// @Description Create a new debt entry
// @Tags debts
// @Accept json
// @Produce json
// @Param input body service.DebtInput true "Debt data"
// @Success 201 {object} model.DebtView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /debts [post]
func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.DebtInput
	if !decodeJSON(w, r, &input) {
		return
	}

	debt, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, debt)
}

// QuickAdd godoc
// @Summary Quick-add a debt
// @Description Record a debt from name, category and amount; the rest is filled in later by negotiation
// @Tags debts
// @Accept json
// @Produce json
// @Param input body service.QuickAddDebtInput true "Debt data"
// @Success 201 {object} model.DebtView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /debts/quick-add [post]
func (h *DebtHandler) QuickAdd(w http.ResponseWriter, r *http.Request) {
	var input service.QuickAddDebtInput
	if !decodeJSON(w, r, &input) {
		return
	}

	debt, err := h.service.QuickAdd(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, debt)
}

// Get godoc
// @Summary Get a debt
// @Description Get a debt by ID with its derived status
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} model.DebtView
// @Failure 404 {object} ErrorResponse
// @Router /debts/{id} [get]
func (h *DebtHandler) Get(w http.ResponseWriter, r *http.Request) {
	debt, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, debt)
}

// List godoc
// @Summary List debts
// @Description Get all debts with their derived status
// @Tags debts
// @Produce json
// @Success 200 {array} model.DebtView
// @Failure 500 {object} ErrorResponse
// @Router /debts [get]
func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	debts, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, debts)
}

// Update godoc
// @Summary Update a debt
// @Description Replace the editable fields of a debt
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Param input body service.DebtInput true "Debt data"
// @Success 200 {object} model.DebtView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /debts/{id} [put]
func (h *DebtHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.DebtInput
	if !decodeJSON(w, r, &input) {
		return
	}

	debt, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, debt)
}

// Negotiate godoc
// @Summary Negotiate a debt
// @Description Apply renegotiated terms; a down payment reduces the remaining amount
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Param input body service.NegotiateDebtInput true "Negotiated terms"
// @Success 200 {object} model.DebtView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /debts/{id}/negotiate [post]
func (h *DebtHandler) Negotiate(w http.ResponseWriter, r *http.Request) {
	var input service.NegotiateDebtInput
	if !decodeJSON(w, r, &input) {
		return
	}

	debt, err := h.service.Negotiate(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, debt)
}

// Delete godoc
// @Summary Delete a debt
// @Tags debts
// @Param id path string true "Debt ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /debts/{id} [delete]
func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary godoc
// @Summary Debt summary
// @Description Totals, status counts and averages across all debts
// @Tags debts
// @Produce json
// @Success 200 {object} model.DebtSummary
// @Failure 500 {object} ErrorResponse
// @Router /debts/summary [get]
func (h *DebtHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// Payoff godoc
// @Summary Get payoff plan
// @Description Estimate months to payoff and build an amortization schedule
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Param payment query string false "Monthly payment; defaults to the minimum payment"
// @Success 200 {object} model.PayoffPlan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /debts/{id}/payoff [get]
func (h *DebtHandler) Payoff(w http.ResponseWriter, r *http.Request) {
	payment := decimal.Zero
	if raw := r.URL.Query().Get("payment"); raw != "" {
		p, err := parseDecimal(raw)
		if err != nil || p.IsNegative() {
			respondAppError(w, apperror.ValidationError("payment", "payment must be a non-negative number"))
			return
		}
		payment = p
	}

	plan, err := h.service.Payoff(r.Context(), chi.URLParam(r, "id"), payment)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}
