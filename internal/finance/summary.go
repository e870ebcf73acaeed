package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthpath/finance-tracker/internal/model"
)

var hundred = decimal.NewFromInt(100)

func SummarizeDebts(debts []model.Debt, now time.Time) model.DebtSummary {
	summary := model.DebtSummary{
		TotalDebts:          decimal.Zero,
		TotalRemaining:      decimal.Zero,
		MonthlyPayments:     decimal.Zero,
		AverageInterestRate: decimal.Zero,
	}

	rateSum := decimal.Zero
	for _, d := range debts {
		summary.TotalDebts = summary.TotalDebts.Add(d.TotalAmount)
		summary.TotalRemaining = summary.TotalRemaining.Add(d.RemainingAmount)
		summary.MonthlyPayments = summary.MonthlyPayments.Add(d.MinimumPayment)
		rateSum = rateSum.Add(d.InterestRate)

		switch DebtStatus(d, now) {
		case model.DebtStatusOverdue, model.DebtStatusDueSoon:
			summary.DebtsInDefault++
		}
	}

	// Unweighted mean across debts.
	if len(debts) > 0 {
		summary.AverageInterestRate = rateSum.Div(decimal.NewFromInt(int64(len(debts))))
	}

	return summary
}

func SummarizeFixedBills(bills []model.FixedBill, now time.Time) model.FixedBillSummary {
	summary := model.FixedBillSummary{
		TotalMonthlyAmount: decimal.Zero,
		PaidAmount:         decimal.Zero,
		PendingAmount:      decimal.Zero,
		TotalBills:         len(bills),
	}

	for _, b := range bills {
		summary.TotalMonthlyAmount = summary.TotalMonthlyAmount.Add(b.Amount)
		if b.IsPaid {
			summary.PaidAmount = summary.PaidAmount.Add(b.Amount)
			summary.PaidBills++
		}
		if FixedBillStatus(b, now) == model.FixedBillStatusOverdue {
			summary.OverdueBills++
		}
	}

	summary.PendingAmount = summary.TotalMonthlyAmount.Sub(summary.PaidAmount)
	return summary
}

// SummarizeIncomes counts monthly and one-off incomes toward the monthly
// total; quarterly, semiannual and annual incomes are left out of it.
func SummarizeIncomes(incomes []model.Income, now time.Time) model.IncomeSummary {
	summary := model.IncomeSummary{
		TotalMonthlyIncome: decimal.Zero,
		ReceivedAmount:     decimal.Zero,
		PendingAmount:      decimal.Zero,
		TotalIncomes:       len(incomes),
	}

	for _, i := range incomes {
		if i.Frequency == model.FrequencyMonthly || i.Frequency == model.FrequencyOnce {
			summary.TotalMonthlyIncome = summary.TotalMonthlyIncome.Add(i.Amount)
		}
		if i.IsReceived {
			summary.ReceivedAmount = summary.ReceivedAmount.Add(i.Amount)
			summary.ReceivedIncomes++
		} else {
			summary.PendingAmount = summary.PendingAmount.Add(i.Amount)
		}
		if IncomeStatus(i, now) == model.IncomeStatusOverdue {
			summary.OverdueIncomes++
		}
	}

	return summary
}

func SummarizeProjects(projects []model.Project) model.ProjectSummary {
	summary := model.ProjectSummary{
		TotalProjects:  len(projects),
		TotalRevenue:   decimal.Zero,
		TotalCosts:     decimal.Zero,
		TotalProfit:    decimal.Zero,
		PendingRevenue: decimal.Zero,
		PendingCosts:   decimal.Zero,
	}

	for _, p := range projects {
		switch p.Status {
		case model.ProjectStatusInProgress:
			summary.ActiveProjects++
		case model.ProjectStatusCompleted:
			summary.CompletedProjects++
		}

		summary.TotalRevenue = summary.TotalRevenue.Add(ProjectRevenueTotal(p))
		summary.TotalCosts = summary.TotalCosts.Add(ProjectCostTotal(p))
		summary.PendingRevenue = summary.PendingRevenue.Add(ProjectPendingRevenue(p))
		summary.PendingCosts = summary.PendingCosts.Add(ProjectPendingCosts(p))
	}

	summary.TotalProfit = summary.TotalRevenue.Sub(summary.TotalCosts)
	return summary
}

// NetMonthlyBalance is income left after fixed bills and minimum debt payments.
func NetMonthlyBalance(incomes model.IncomeSummary, bills model.FixedBillSummary, debts model.DebtSummary) decimal.Decimal {
	return incomes.TotalMonthlyIncome.Sub(bills.TotalMonthlyAmount).Sub(debts.MonthlyPayments)
}

// CommitmentPercent is the share of monthly income taken by bills and debt
// payments, as a percentage. It is 0 when there is no income.
func CommitmentPercent(incomes model.IncomeSummary, bills model.FixedBillSummary, debts model.DebtSummary) decimal.Decimal {
	if incomes.TotalMonthlyIncome.IsZero() {
		return decimal.Zero
	}
	committed := bills.TotalMonthlyAmount.Add(debts.MonthlyPayments)
	return committed.Div(incomes.TotalMonthlyIncome).Mul(hundred)
}

// BuildOverview folds all four collections into the dashboard overview.
func BuildOverview(debts []model.Debt, bills []model.FixedBill, incomes []model.Income, projects []model.Project, now time.Time) model.Overview {
	debtSummary := SummarizeDebts(debts, now)
	billSummary := SummarizeFixedBills(bills, now)
	incomeSummary := SummarizeIncomes(incomes, now)

	net := NetMonthlyBalance(incomeSummary, billSummary, debtSummary)

	return model.Overview{
		Debts:             debtSummary,
		FixedBills:        billSummary,
		Incomes:           incomeSummary,
		Projects:          SummarizeProjects(projects),
		NetMonthlyBalance: net,
		CommitmentPercent: CommitmentPercent(incomeSummary, billSummary, debtSummary).Round(2),
		Projection:        CashFlowProjection(net, debtSummary, ProjectionMonths),
		GeneratedAt:       now,
	}
}

// ProjectionMonths is how far ahead the overview projects cash flow.
const ProjectionMonths = 6

// CashFlowProjection extends the current month linearly: month n holds n
// times the net balance, and the remaining debt less n minimum payments,
// floored at zero.
func CashFlowProjection(net decimal.Decimal, debts model.DebtSummary, months int) []model.ProjectionPoint {
	points := make([]model.ProjectionPoint, 0, max(months, 0))
	for m := 1; m <= months; m++ {
		n := decimal.NewFromInt(int64(m))
		remaining := debts.TotalRemaining.Sub(debts.MonthlyPayments.Mul(n))
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		points = append(points, model.ProjectionPoint{
			Month:              m,
			AccumulatedBalance: net.Mul(n),
			RemainingDebt:      remaining,
		})
	}
	return points
}

// BillsByCategory totals bill amounts per category, sorted by category.
func BillsByCategory(bills []model.FixedBill) []model.CategoryTotal {
	acc := make(map[string]*model.CategoryTotal)
	for _, b := range bills {
		add(acc, string(b.Category), b.Amount)
	}
	return sortedTotals(acc)
}

// IncomesByCategory totals income amounts per category, sorted by category.
func IncomesByCategory(incomes []model.Income) []model.CategoryTotal {
	acc := make(map[string]*model.CategoryTotal)
	for _, i := range incomes {
		add(acc, string(i.Category), i.Amount)
	}
	return sortedTotals(acc)
}

func add(acc map[string]*model.CategoryTotal, category string, amount decimal.Decimal) {
	t, ok := acc[category]
	if !ok {
		t = &model.CategoryTotal{Category: category, Amount: decimal.Zero}
		acc[category] = t
	}
	t.Amount = t.Amount.Add(amount)
	t.Count++
}

func sortedTotals(acc map[string]*model.CategoryTotal) []model.CategoryTotal {
	totals := make([]model.CategoryTotal, 0, len(acc))
	for _, t := range acc {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Category < totals[j].Category
	})
	return totals
}
