package handler

import (
	"net/http"
)

type DashboardHandler struct {
	service DashboardServiceInterface
}

func NewDashboardHandler(service DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Overview godoc
// @Summary Financial overview
// @Description Debt, bill, income and project summaries with the monthly balance and commitment percentage
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.Overview
// @Failure 500 {object} ErrorResponse
// @Router /overview [get]
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}
