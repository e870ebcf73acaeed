package handler

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wealthpath/finance-tracker/internal/backup"
	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/service"
)

// DebtServiceInterface defines the contract for debt operations
type DebtServiceInterface interface {
	Create(ctx context.Context, input service.DebtInput) (*model.DebtView, error)
	QuickAdd(ctx context.Context, input service.QuickAddDebtInput) (*model.DebtView, error)
	Get(ctx context.Context, id string) (*model.DebtView, error)
	List(ctx context.Context) ([]model.DebtView, error)
	Update(ctx context.Context, id string, input service.DebtInput) (*model.DebtView, error)
	Negotiate(ctx context.Context, id string, input service.NegotiateDebtInput) (*model.DebtView, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (*model.DebtSummary, error)
	Payoff(ctx context.Context, id string, payment decimal.Decimal) (*model.PayoffPlan, error)
}

// FixedBillServiceInterface defines the contract for fixed bill operations
type FixedBillServiceInterface interface {
	Create(ctx context.Context, input service.FixedBillInput) (*model.FixedBillView, error)
	Get(ctx context.Context, id string) (*model.FixedBillView, error)
	List(ctx context.Context) ([]model.FixedBillView, error)
	Update(ctx context.Context, id string, input service.FixedBillInput) (*model.FixedBillView, error)
	Delete(ctx context.Context, id string) error
	TogglePaid(ctx context.Context, id string) (*model.FixedBillView, error)
	Summary(ctx context.Context) (*model.FixedBillSummary, error)
	Rollover(ctx context.Context) (int, error)
}

// IncomeServiceInterface defines the contract for income operations
type IncomeServiceInterface interface {
	Create(ctx context.Context, input service.IncomeInput) (*model.IncomeView, error)
	Get(ctx context.Context, id string) (*model.IncomeView, error)
	List(ctx context.Context) ([]model.IncomeView, error)
	Update(ctx context.Context, id string, input service.IncomeInput) (*model.IncomeView, error)
	Delete(ctx context.Context, id string) error
	ToggleReceived(ctx context.Context, id string) (*model.IncomeView, error)
	Summary(ctx context.Context) (*model.IncomeSummary, error)
}

// ProjectServiceInterface defines the contract for projects and their line items
type ProjectServiceInterface interface {
	Create(ctx context.Context, input service.ProjectInput) (*model.ProjectView, error)
	Get(ctx context.Context, id string) (*model.ProjectView, error)
	List(ctx context.Context) ([]model.ProjectView, error)
	Update(ctx context.Context, id string, input service.ProjectInput) (*model.ProjectView, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (*model.ProjectSummary, error)

	AddCost(ctx context.Context, projectID string, input service.ProjectCostInput) (*model.ProjectView, error)
	UpdateCost(ctx context.Context, projectID, costID string, input service.ProjectCostInput) (*model.ProjectView, error)
	ToggleCostPaid(ctx context.Context, projectID, costID string) (*model.ProjectView, error)
	DeleteCost(ctx context.Context, projectID, costID string) (*model.ProjectView, error)

	AddRevenue(ctx context.Context, projectID string, input service.ProjectRevenueInput) (*model.ProjectView, error)
	UpdateRevenue(ctx context.Context, projectID, revenueID string, input service.ProjectRevenueInput) (*model.ProjectView, error)
	ToggleRevenueReceived(ctx context.Context, projectID, revenueID string) (*model.ProjectView, error)
	DeleteRevenue(ctx context.Context, projectID, revenueID string) (*model.ProjectView, error)
}

// DashboardServiceInterface defines the contract for the combined overview
type DashboardServiceInterface interface {
	Overview(ctx context.Context) (*model.Overview, error)
}

// BackupServiceInterface defines the contract for JSON import and export
type BackupServiceInterface interface {
	ExportJSON(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, raw []byte) (*backup.ExportData, error)
}

// ChartServiceInterface renders PNG charts
type ChartServiceInterface interface {
	Render(ctx context.Context, kind service.ChartKind) ([]byte, error)
}

// ReportServiceInterface renders PDF reports
type ReportServiceInterface interface {
	OverviewPDF(ctx context.Context) ([]byte, error)
}
