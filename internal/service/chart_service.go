package service

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/go-analyze/charts"
	"github.com/shopspring/decimal"

	"github.com/wealthpath/finance-tracker/internal/apperror"
	"github.com/wealthpath/finance-tracker/internal/finance"
	"github.com/wealthpath/finance-tracker/internal/model"
)

// ChartKind names one of the rendered charts.
type ChartKind string

const (
	ChartBills   ChartKind = "bills"   // fixed bills by category
	ChartIncomes ChartKind = "incomes" // incomes by category
	ChartDebts   ChartKind = "debts"   // amount paid vs remaining
)

var ChartKinds = []ChartKind{ChartBills, ChartIncomes, ChartDebts}

var (
	ErrNoChartData = &apperror.AppError{
		Err:        apperror.ErrNotFound,
		Message:    "nothing to chart",
		StatusCode: http.StatusNotFound,
	}
	ErrUnknownChart = apperror.ValidationError("kind", "unknown chart kind")
)

// ChartService renders PNG pie charts of the current collections.
type ChartService struct {
	dashboard *DashboardService
}

func NewChartService(dashboard *DashboardService) *ChartService {
	return &ChartService{dashboard: dashboard}
}

// Render draws the chart of the given kind.
func (s *ChartService) Render(ctx context.Context, kind ChartKind) ([]byte, error) {
	if !slices.Contains(ChartKinds, kind) {
		return nil, ErrUnknownChart
	}

	snap, err := s.dashboard.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading chart data: %w", err)
	}

	switch kind {
	case ChartBills:
		return renderPie("Fixed Bills by Category", finance.BillsByCategory(snap.FixedBills))
	case ChartIncomes:
		return renderPie("Incomes by Category", finance.IncomesByCategory(snap.Incomes))
	case ChartDebts:
		return renderPie("Debts Paid vs Remaining", debtProgress(snap.Debts))
	default:
		return nil, ErrUnknownChart
	}
}

func debtProgress(debts []model.Debt) []model.CategoryTotal {
	paid, remaining := decimal.Zero, decimal.Zero
	for _, d := range debts {
		remaining = remaining.Add(d.RemainingAmount)
		if p := d.TotalAmount.Sub(d.RemainingAmount); p.IsPositive() {
			paid = paid.Add(p)
		}
	}
	return []model.CategoryTotal{
		{Category: "paid", Amount: paid, Count: len(debts)},
		{Category: "remaining", Amount: remaining, Count: len(debts)},
	}
}

// renderPie drops non-positive slices and fails with ErrNoChartData when
// nothing is left.
func renderPie(title string, totals []model.CategoryTotal) ([]byte, error) {
	var values []float64
	var names []string
	for _, t := range totals {
		if !t.Amount.IsPositive() {
			continue
		}
		names = append(names, t.Category)
		values = append(values, t.Amount.InexactFloat64())
	}
	if len(values) == 0 {
		return nil, ErrNoChartData
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{Text: title}),
		charts.LegendLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("creating chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	return buf, nil
}
