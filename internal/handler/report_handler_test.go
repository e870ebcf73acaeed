package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wealthpath/finance-tracker/internal/service"
)

func TestReportHandler_Chart(t *testing.T) {
	t.Parallel()

	png := []byte("\x89PNG\r\n\x1a\n")

	tests := []struct {
		name       string
		kind       string
		setupMock  func(*MockChartService)
		wantStatus int
		wantType   string
	}{
		{
			name: "bills",
			kind: "bills",
			setupMock: func(m *MockChartService) {
				m.On("Render", mock.Anything, service.ChartBills).Return(png, nil)
			},
			wantStatus: http.StatusOK,
			wantType:   "image/png",
		},
		{
			name: "nothing to chart",
			kind: "debts",
			setupMock: func(m *MockChartService) {
				m.On("Render", mock.Anything, service.ChartDebts).Return(nil, service.ErrNoChartData)
			},
			wantStatus: http.StatusNotFound,
			wantType:   "application/json",
		},
		{
			name: "unknown kind",
			kind: "radar",
			setupMock: func(m *MockChartService) {
				m.On("Render", mock.Anything, service.ChartKind("radar")).Return(nil, service.ErrUnknownChart)
			},
			wantStatus: http.StatusBadRequest,
			wantType:   "application/json",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			charts := new(MockChartService)
			tt.setupMock(charts)
			h := NewReportHandler(charts, new(MockReportService), fixedNow)

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/charts/"+tt.kind+".png", nil), map[string]string{"kind": tt.kind})
			w := httptest.NewRecorder()
			h.Chart(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantType, w.Header().Get("Content-Type"))
			charts.AssertExpectations(t)
		})
	}
}

func TestReportHandler_OverviewPDF(t *testing.T) {
	t.Parallel()

	pdf := []byte("%PDF-1.3 test")
	reports := new(MockReportService)
	reports.On("OverviewPDF", mock.Anything).Return(pdf, nil)
	h := NewReportHandler(new(MockChartService), reports, fixedNow)

	w := httptest.NewRecorder()
	h.OverviewPDF(w, httptest.NewRequest(http.MethodGet, "/api/reports/overview.pdf", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, strconv.Itoa(len(pdf)), w.Header().Get("Content-Length"))
	assert.Equal(t, "attachment; filename=finance-overview-2024-05-15.pdf", w.Header().Get("Content-Disposition"))
	assert.Equal(t, pdf, w.Body.Bytes())
}

func TestReportHandler_OverviewPDFError(t *testing.T) {
	t.Parallel()

	reports := new(MockReportService)
	reports.On("OverviewPDF", mock.Anything).Return(nil, errors.New("font missing"))
	h := NewReportHandler(new(MockChartService), reports, fixedNow)

	w := httptest.NewRecorder()
	h.OverviewPDF(w, httptest.NewRequest(http.MethodGet, "/api/reports/overview.pdf", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
