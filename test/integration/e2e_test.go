//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wealthpath/finance-tracker/internal/config"
	"github.com/wealthpath/finance-tracker/internal/handler"
	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/repository"
	"github.com/wealthpath/finance-tracker/internal/service"
	"github.com/wealthpath/finance-tracker/internal/store"
)

// TestEnv holds the test environment
type TestEnv struct {
	Container testcontainers.Container
	StoreCfg  config.StoreConfig
	Server    *httptest.Server
	closers   []func() error
}

// SetupTestEnv creates a test environment with a real PostgreSQL database
func SetupTestEnv(t *testing.T) *TestEnv {
	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	env := &TestEnv{
		Container: pgContainer,
		StoreCfg:  config.StoreConfig{Backend: config.BackendPostgres, DatabaseURL: connStr},
	}
	env.Server = httptest.NewServer(env.newRouter(t))
	return env
}

// newRouter opens a fresh connection to the store and wires the full API on it.
func (e *TestEnv) newRouter(t *testing.T) http.Handler {
	st, closeFn, err := store.Open(context.Background(), e.StoreCfg)
	require.NoError(t, err)
	e.closers = append(e.closers, closeFn)

	debtRepo := repository.NewDebtRepository(st)
	billRepo := repository.NewFixedBillRepository(st)
	incomeRepo := repository.NewIncomeRepository(st)
	projectRepo := repository.NewProjectRepository(st)
	dashboard := service.NewDashboardService(debtRepo, billRepo, incomeRepo, projectRepo, time.Now)

	return handler.NewRouter(handler.Handlers{
		Debts:      handler.NewDebtHandler(service.NewDebtService(debtRepo, time.Now)),
		FixedBills: handler.NewFixedBillHandler(service.NewFixedBillService(billRepo, time.Now)),
		Incomes:    handler.NewIncomeHandler(service.NewIncomeService(incomeRepo, time.Now)),
		Projects:   handler.NewProjectHandler(service.NewProjectService(projectRepo)),
		Dashboard:  handler.NewDashboardHandler(dashboard),
		Backup:     handler.NewBackupHandler(service.NewBackupService(debtRepo, billRepo, incomeRepo, time.Now), time.Now),
		Reports: handler.NewReportHandler(
			service.NewChartService(dashboard),
			service.NewReportService(dashboard, "USD", time.Now),
			time.Now,
		),
	}, []string{"*"})
}

// Cleanup tears down the test environment
func (e *TestEnv) Cleanup(t *testing.T) {
	e.Server.Close()
	for _, c := range e.closers {
		_ = c()
	}
	if err := e.Container.Terminate(context.Background()); err != nil {
		t.Logf("Failed to terminate container: %v", err)
	}
}

// Request sends a JSON request to the test server.
func (e *TestEnv) Request(method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reqBody = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.Server.URL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return http.DefaultClient.Do(req)
}

// DecodeResponse decodes a JSON response body into out and closes it.
func DecodeResponse(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestE2E_FullFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	env := SetupTestEnv(t)
	defer env.Cleanup(t)

	dueDate := time.Now().AddDate(0, 0, 3).UTC().Format(time.RFC3339)

	var debt model.DebtView
	t.Run("Create debt", func(t *testing.T) {
		resp, err := env.Request(http.MethodPost, "/api/debts", map[string]interface{}{
			"name":            "Credit card",
			"category":        "card",
			"totalAmount":     1200,
			"remainingAmount": 1200,
			"interestRate":    12,
			"dueDate":         dueDate,
			"installments":    map[string]int{"total": 12, "paid": 0},
			"minimumPayment":  120,
			"creditor":        "Bank",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		DecodeResponse(t, resp, &debt)
		assert.Equal(t, model.DebtStatusDueSoon, debt.Status)
	})

	t.Run("Payoff plan", func(t *testing.T) {
		resp, err := env.Request(http.MethodGet, "/api/debts/"+debt.ID+"/payoff", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var plan model.PayoffPlan
		DecodeResponse(t, resp, &plan)
		assert.Equal(t, 10, plan.Estimate.Months)
		assert.False(t, plan.Estimate.Never)
		assert.NotNil(t, plan.PayoffDate)
	})

	t.Run("Fixed bill and income", func(t *testing.T) {
		resp, err := env.Request(http.MethodPost, "/api/fixed-bills", map[string]interface{}{
			"name": "Internet", "category": "internet", "amount": 100, "dueDay": 10, "isRecurring": true,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp, err = env.Request(http.MethodPost, "/api/incomes", map[string]interface{}{
			"name": "Salary", "category": "salary", "amount": 2000, "frequency": "monthly",
			"receivedDate": time.Now().UTC().Format(time.RFC3339), "isReceived": true, "isRecurring": true,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Overview", func(t *testing.T) {
		resp, err := env.Request(http.MethodGet, "/api/overview", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var overview model.Overview
		DecodeResponse(t, resp, &overview)
		// 2000 - 100 - 120
		assert.True(t, decimal.NewFromInt(1780).Equal(overview.NetMonthlyBalance), overview.NetMonthlyBalance.String())
		assert.True(t, decimal.NewFromInt(11).Equal(overview.CommitmentPercent), overview.CommitmentPercent.String())
	})

	t.Run("Data survives a new connection", func(t *testing.T) {
		other := httptest.NewServer(env.newRouter(t))
		defer other.Close()

		resp, err := http.Get(other.URL + "/api/debts/" + debt.ID)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.DebtView
		DecodeResponse(t, resp, &got)
		assert.Equal(t, "Credit card", got.Name)
	})
}

func TestE2E_BackupRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	env := SetupTestEnv(t)
	defer env.Cleanup(t)

	for i := 0; i < 3; i++ {
		resp, err := env.Request(http.MethodPost, "/api/debts/quick-add", map[string]interface{}{
			"name": fmt.Sprintf("Debt %d", i), "category": "loan", "totalAmount": 100 * (i + 1),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := env.Request(http.MethodGet, "/api/backup/export", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	exported, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	resp, err = env.Request(http.MethodPost, "/api/backup/import", []byte(`{"debts":[]}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = env.Request(http.MethodGet, "/api/debts", nil)
	require.NoError(t, err)
	var debts []model.DebtView
	DecodeResponse(t, resp, &debts)
	assert.Empty(t, debts)

	resp, err = env.Request(http.MethodPost, "/api/backup/import", exported)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var counts handler.ImportResponse
	DecodeResponse(t, resp, &counts)
	assert.Equal(t, 3, counts.Debts)

	resp, err = env.Request(http.MethodGet, "/api/debts/summary", nil)
	require.NoError(t, err)
	var summary model.DebtSummary
	DecodeResponse(t, resp, &summary)
	assert.True(t, decimal.NewFromInt(600).Equal(summary.TotalDebts))
}
