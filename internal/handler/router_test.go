package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/repository"
	"github.com/wealthpath/finance-tracker/internal/service"
	"github.com/wealthpath/finance-tracker/internal/store"
)

var routerNow = time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	clock := func() time.Time { return routerNow }
	s := store.NewMemoryStore()
	debtRepo := repository.NewDebtRepository(s)
	billRepo := repository.NewFixedBillRepository(s)
	incomeRepo := repository.NewIncomeRepository(s)
	projectRepo := repository.NewProjectRepository(s)

	dashboard := service.NewDashboardService(debtRepo, billRepo, incomeRepo, projectRepo, clock)

	return NewRouter(Handlers{
		Debts:      NewDebtHandler(service.NewDebtService(debtRepo, clock)),
		FixedBills: NewFixedBillHandler(service.NewFixedBillService(billRepo, clock)),
		Incomes:    NewIncomeHandler(service.NewIncomeService(incomeRepo, clock)),
		Projects:   NewProjectHandler(service.NewProjectService(projectRepo)),
		Dashboard:  NewDashboardHandler(dashboard),
		Backup:     NewBackupHandler(service.NewBackupService(debtRepo, billRepo, incomeRepo, clock), clock),
		Reports: NewReportHandler(
			service.NewChartService(dashboard),
			service.NewReportService(dashboard, "BRL", clock),
			clock,
		),
	}, []string{"http://localhost:3000"})
}

// call performs a request against the router and decodes a JSON response into out.
func call(t *testing.T, router http.Handler, method, path, body string, wantStatus int, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, wantStatus, w.Code, "%s %s: %s", method, path, w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	w := call(t, router, http.MethodGet, "/api/health", "", http.StatusOK, nil)

	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("Content-Type"))
}

type fakeRollover struct {
	lastRun time.Time
	reset   int
	err     error
	next    time.Time
}

func (f fakeRollover) LastResult() (time.Time, int, error) { return f.lastRun, f.reset, f.err }

func (f fakeRollover) GetNextRunTime() time.Time { return f.next }

func TestHealth_Rollover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rollover fakeRollover
		want     string
	}{
		{
			name:     "never ran",
			rollover: fakeRollover{next: time.Date(2024, time.June, 1, 3, 0, 0, 0, time.UTC)},
			want:     `{"status":"ok","rollover":{"billsReset":0,"nextRun":"2024-06-01T03:00:00Z"}}`,
		},
		{
			name: "last run failed",
			rollover: fakeRollover{
				lastRun: time.Date(2024, time.May, 1, 3, 0, 0, 0, time.UTC),
				err:     errors.New("slot is encrypted"),
				next:    time.Date(2024, time.June, 1, 3, 0, 0, 0, time.UTC),
			},
			want: `{"status":"ok","rollover":{"lastRun":"2024-05-01T03:00:00Z","billsReset":0,"lastError":"slot is encrypted","nextRun":"2024-06-01T03:00:00Z"}}`,
		},
		{
			name:     "reset bills",
			rollover: fakeRollover{lastRun: time.Date(2024, time.May, 1, 3, 0, 0, 0, time.UTC), reset: 4},
			want:     `{"status":"ok","rollover":{"lastRun":"2024-05-01T03:00:00Z","billsReset":4}}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			Health(tt.rollover)(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestRouter_DebtLifecycle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	var created model.DebtView
	call(t, router, http.MethodPost, "/api/debts/quick-add",
		`{"name":"Store card","category":"card","totalAmount":1000}`, http.StatusCreated, &created)
	assert.Equal(t, model.UnsetCreditor, created.Creditor)
	assert.Equal(t, 1, created.Installments.Total)

	var negotiated model.DebtView
	call(t, router, http.MethodPost, "/api/debts/"+created.ID+"/negotiate",
		`{"dueDate":"2024-06-15T00:00:00Z","installments":{"total":10,"paid":0},"minimumPayment":100,"creditor":"Store"}`,
		http.StatusOK, &negotiated)
	assert.True(t, decimal.NewFromInt(1000).Equal(negotiated.RemainingAmount))
	assert.Equal(t, "Store", negotiated.Creditor)
	assert.Equal(t, model.DebtStatusCurrent, negotiated.Status)

	var plan model.PayoffPlan
	call(t, router, http.MethodGet, "/api/debts/"+created.ID+"/payoff", "", http.StatusOK, &plan)
	assert.Equal(t, 10, plan.Estimate.Months)
	assert.Len(t, plan.AmortizationPlan, 10)

	var summary model.DebtSummary
	call(t, router, http.MethodGet, "/api/debts/summary", "", http.StatusOK, &summary)
	assert.True(t, decimal.NewFromInt(100).Equal(summary.MonthlyPayments))

	call(t, router, http.MethodDelete, "/api/debts/"+created.ID, "", http.StatusNoContent, nil)
	call(t, router, http.MethodGet, "/api/debts/"+created.ID, "", http.StatusNotFound, nil)
}

func TestRouter_ProjectLineItems(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	var project model.ProjectView
	call(t, router, http.MethodPost, "/api/projects",
		`{"name":"Landing page","category":"design","status":"in-progress","startDate":"2024-05-01T00:00:00Z"}`,
		http.StatusCreated, &project)

	var withCost model.ProjectView
	call(t, router, http.MethodPost, "/api/projects/"+project.ID+"/costs",
		`{"name":"Stock photos","category":"material","amount":50,"date":"2024-05-02T00:00:00Z"}`,
		http.StatusCreated, &withCost)
	require.Len(t, withCost.Costs, 1)
	costID := withCost.Costs[0].ID

	var withRevenue model.ProjectView
	call(t, router, http.MethodPost, "/api/projects/"+project.ID+"/revenues",
		`{"name":"Deposit","amount":500,"date":"2024-05-03T00:00:00Z"}`,
		http.StatusCreated, &withRevenue)
	require.Len(t, withRevenue.Revenues, 1)
	revenueID := withRevenue.Revenues[0].ID
	assert.Zero(t, withRevenue.Progress)

	var received model.ProjectView
	call(t, router, http.MethodPost, "/api/projects/"+project.ID+"/revenues/"+revenueID+"/toggle-received", "", http.StatusOK, &received)
	assert.Equal(t, 100, received.Progress)

	var paid model.ProjectView
	call(t, router, http.MethodPost, "/api/projects/"+project.ID+"/costs/"+costID+"/toggle-paid", "", http.StatusOK, &paid)
	assert.True(t, paid.Costs[0].IsPaid)
	assert.True(t, decimal.NewFromInt(450).Equal(paid.Profit))

	call(t, router, http.MethodPost, "/api/projects/"+project.ID+"/costs/nope/toggle-paid", "", http.StatusNotFound, nil)

	var summary model.ProjectSummary
	call(t, router, http.MethodGet, "/api/projects/summary", "", http.StatusOK, &summary)
	assert.Equal(t, 1, summary.ActiveProjects)

	call(t, router, http.MethodDelete, "/api/projects/"+project.ID, "", http.StatusNoContent, nil)
}

func TestRouter_OverviewAndBackup(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	call(t, router, http.MethodPost, "/api/incomes",
		`{"name":"Salary","category":"salary","amount":3000,"frequency":"monthly","receivedDate":"2024-05-10T00:00:00Z","isReceived":true,"isRecurring":true}`,
		http.StatusCreated, nil)
	var bill model.FixedBillView
	call(t, router, http.MethodPost, "/api/fixed-bills",
		`{"name":"Rent","category":"condo","amount":200,"dueDay":20,"isRecurring":true}`,
		http.StatusCreated, &bill)
	assert.Equal(t, model.FixedBillStatusPending, bill.Status)
	assert.Equal(t, 5, bill.DaysUntilDue)

	var overview model.Overview
	call(t, router, http.MethodGet, "/api/overview", "", http.StatusOK, &overview)
	assert.True(t, decimal.NewFromInt(2800).Equal(overview.NetMonthlyBalance), overview.NetMonthlyBalance.String())

	w := call(t, router, http.MethodGet, "/api/backup/export", "", http.StatusOK, nil)
	exported := w.Body.String()
	assert.Equal(t, "attachment; filename=finance-backup-2024-05-15.json", w.Header().Get("Content-Disposition"))

	var counts ImportResponse
	call(t, router, http.MethodPost, "/api/backup/import", `{"fixedBills":[{"name":"Gym","amount":"90"}]}`, http.StatusOK, &counts)
	assert.Equal(t, ImportResponse{Debts: 0, FixedBills: 1, Incomes: 0}, counts)

	var incomes []model.IncomeView
	call(t, router, http.MethodGet, "/api/incomes", "", http.StatusOK, &incomes)
	assert.Empty(t, incomes)

	call(t, router, http.MethodPost, "/api/backup/import", exported, http.StatusOK, &counts)
	assert.Equal(t, ImportResponse{Debts: 0, FixedBills: 1, Incomes: 1}, counts)

	call(t, router, http.MethodGet, "/api/incomes", "", http.StatusOK, &incomes)
	require.Len(t, incomes, 1)
	assert.Equal(t, "Salary", incomes[0].Name)

	call(t, router, http.MethodPost, "/api/backup/import", `"just a string"`, http.StatusBadRequest, nil)
}

func TestRouter_ChartsAndReports(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	call(t, router, http.MethodGet, "/api/charts/bills.png", "", http.StatusNotFound, nil)
	call(t, router, http.MethodGet, "/api/charts/radar.png", "", http.StatusBadRequest, nil)

	call(t, router, http.MethodPost, "/api/fixed-bills",
		`{"name":"Internet","category":"internet","amount":99.9,"dueDay":5}`, http.StatusCreated, nil)

	w := call(t, router, http.MethodGet, "/api/charts/bills.png", "", http.StatusOK, nil)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	w = call(t, router, http.MethodGet, "/api/reports/overview.pdf", "", http.StatusOK, nil)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/debts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
