package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wealthpath/finance-tracker/internal/service"
)

type ReportHandler struct {
	charts  ChartServiceInterface
	reports ReportServiceInterface
	now     service.Clock
}

func NewReportHandler(charts ChartServiceInterface, reports ReportServiceInterface, clock service.Clock) *ReportHandler {
	if clock == nil {
		clock = time.Now
	}
	return &ReportHandler{charts: charts, reports: reports, now: clock}
}

// Chart godoc
// @Summary Render a chart
// @Description PNG pie chart of bills or incomes by category, or debt paid versus remaining
// @Tags reports
// @Produce png
// @Param kind path string true "Chart kind" Enums(bills, incomes, debts)
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /charts/{kind}.png [get]
func (h *ReportHandler) Chart(w http.ResponseWriter, r *http.Request) {
	img, err := h.charts.Render(r.Context(), service.ChartKind(chi.URLParam(r, "kind")))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	respondFile(w, "image/png", "", img)
}

// OverviewPDF godoc
// @Summary Download overview report
// @Description PDF with the monthly balance and per-collection summaries
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Router /reports/overview.pdf [get]
func (h *ReportHandler) OverviewPDF(w http.ResponseWriter, r *http.Request) {
	pdf, err := h.reports.OverviewPDF(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	filename := fmt.Sprintf("finance-overview-%s.pdf", h.now().Format("2006-01-02"))
	respondFile(w, "application/pdf", filename, pdf)
}
