package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/wealthpath/finance-tracker/internal/backup"
	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/service"
)

func fixedNow() time.Time { return routerNow }

// withURLParams attaches chi route parameters to a request.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// MockDebtService implements DebtServiceInterface for testing
type MockDebtService struct {
	mock.Mock
}

func (m *MockDebtService) debt(args mock.Arguments) (*model.DebtView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DebtView), args.Error(1)
}

func (m *MockDebtService) Create(ctx context.Context, input service.DebtInput) (*model.DebtView, error) {
	return m.debt(m.Called(ctx, input))
}

func (m *MockDebtService) QuickAdd(ctx context.Context, input service.QuickAddDebtInput) (*model.DebtView, error) {
	return m.debt(m.Called(ctx, input))
}

func (m *MockDebtService) Get(ctx context.Context, id string) (*model.DebtView, error) {
	return m.debt(m.Called(ctx, id))
}

func (m *MockDebtService) List(ctx context.Context) ([]model.DebtView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DebtView), args.Error(1)
}

func (m *MockDebtService) Update(ctx context.Context, id string, input service.DebtInput) (*model.DebtView, error) {
	return m.debt(m.Called(ctx, id, input))
}

func (m *MockDebtService) Negotiate(ctx context.Context, id string, input service.NegotiateDebtInput) (*model.DebtView, error) {
	return m.debt(m.Called(ctx, id, input))
}

func (m *MockDebtService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDebtService) Summary(ctx context.Context) (*model.DebtSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DebtSummary), args.Error(1)
}

func (m *MockDebtService) Payoff(ctx context.Context, id string, payment decimal.Decimal) (*model.PayoffPlan, error) {
	args := m.Called(ctx, id, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PayoffPlan), args.Error(1)
}

// MockFixedBillService implements FixedBillServiceInterface for testing
type MockFixedBillService struct {
	mock.Mock
}

func (m *MockFixedBillService) bill(args mock.Arguments) (*model.FixedBillView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FixedBillView), args.Error(1)
}

func (m *MockFixedBillService) Create(ctx context.Context, input service.FixedBillInput) (*model.FixedBillView, error) {
	return m.bill(m.Called(ctx, input))
}

func (m *MockFixedBillService) Get(ctx context.Context, id string) (*model.FixedBillView, error) {
	return m.bill(m.Called(ctx, id))
}

func (m *MockFixedBillService) List(ctx context.Context) ([]model.FixedBillView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FixedBillView), args.Error(1)
}

func (m *MockFixedBillService) Update(ctx context.Context, id string, input service.FixedBillInput) (*model.FixedBillView, error) {
	return m.bill(m.Called(ctx, id, input))
}

func (m *MockFixedBillService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFixedBillService) TogglePaid(ctx context.Context, id string) (*model.FixedBillView, error) {
	return m.bill(m.Called(ctx, id))
}

func (m *MockFixedBillService) Summary(ctx context.Context) (*model.FixedBillSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FixedBillSummary), args.Error(1)
}

func (m *MockFixedBillService) Rollover(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockBackupService implements BackupServiceInterface for testing
type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) ExportJSON(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBackupService) Import(ctx context.Context, raw []byte) (*backup.ExportData, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backup.ExportData), args.Error(1)
}

// MockChartService implements ChartServiceInterface for testing
type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) Render(ctx context.Context, kind service.ChartKind) ([]byte, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockReportService implements ReportServiceInterface for testing
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) OverviewPDF(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
