package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/repository"
	"github.com/wealthpath/finance-tracker/internal/service"
)

func TestFixedBillHandler_Create(t *testing.T) {
	t.Parallel()

	svc := new(MockFixedBillService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in service.FixedBillInput) bool {
		return in.Name == "Power" && in.DueDay == 10 && in.IsRecurring
	})).Return(&model.FixedBillView{
		FixedBill: model.FixedBill{ID: "b1", Name: "Power", DueDay: 10},
		Status:    model.FixedBillStatusPending,
	}, nil)
	h := NewFixedBillHandler(svc)

	body := `{"name":"Power","category":"power","amount":150.5,"dueDay":10,"isRecurring":true}`
	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/api/fixed-bills", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
	var got model.FixedBillView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "b1", got.ID)
	assert.Equal(t, model.FixedBillStatusPending, got.Status)
}

func TestFixedBillHandler_TogglePaid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*MockFixedBillService)
		wantStatus int
	}{
		{
			name: "toggled",
			setupMock: func(m *MockFixedBillService) {
				m.On("TogglePaid", mock.Anything, "b1").Return(&model.FixedBillView{
					FixedBill: model.FixedBill{ID: "b1", IsPaid: true},
					Status:    model.FixedBillStatusPaid,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			setupMock: func(m *MockFixedBillService) {
				m.On("TogglePaid", mock.Anything, "b1").Return(nil, repository.ErrFixedBillNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := new(MockFixedBillService)
			tt.setupMock(svc)
			h := NewFixedBillHandler(svc)

			req := withURLParams(httptest.NewRequest(http.MethodPost, "/api/fixed-bills/b1/toggle-paid", nil), map[string]string{"id": "b1"})
			w := httptest.NewRecorder()
			h.TogglePaid(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestFixedBillHandler_Rollover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		reset      int
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "resets bills", reset: 3, wantStatus: http.StatusOK, wantBody: `{"reset":3}`},
		{name: "nothing to reset", reset: 0, wantStatus: http.StatusOK, wantBody: `{"reset":0}`},
		{name: "store failure", err: errors.New("locked"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := new(MockFixedBillService)
			svc.On("Rollover", mock.Anything).Return(tt.reset, tt.err)
			h := NewFixedBillHandler(svc)

			w := httptest.NewRecorder()
			h.Rollover(w, httptest.NewRequest(http.MethodPost, "/api/fixed-bills/rollover", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestFixedBillHandler_Summary(t *testing.T) {
	t.Parallel()

	svc := new(MockFixedBillService)
	svc.On("Summary", mock.Anything).Return(&model.FixedBillSummary{TotalBills: 2, PaidBills: 1}, nil)
	h := NewFixedBillHandler(svc)

	w := httptest.NewRecorder()
	h.Summary(w, httptest.NewRequest(http.MethodGet, "/api/fixed-bills/summary", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var got model.FixedBillSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 2, got.TotalBills)
	assert.Equal(t, 1, got.PaidBills)
}
