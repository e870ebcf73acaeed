package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summaries are folds over a whole collection, recomputed on every read.

type DebtSummary struct {
	TotalDebts          decimal.Decimal `json:"totalDebts"`
	TotalRemaining      decimal.Decimal `json:"totalRemaining"`
	MonthlyPayments     decimal.Decimal `json:"monthlyPayments"`
	AverageInterestRate decimal.Decimal `json:"averageInterestRate"`
	DebtsInDefault      int             `json:"debtsInDefault"` // overdue or due soon
}

type FixedBillSummary struct {
	TotalMonthlyAmount decimal.Decimal `json:"totalMonthlyAmount"`
	PaidAmount         decimal.Decimal `json:"paidAmount"`
	PendingAmount      decimal.Decimal `json:"pendingAmount"`
	TotalBills         int             `json:"totalBills"`
	PaidBills          int             `json:"paidBills"`
	OverdueBills       int             `json:"overdueBills"`
}

type IncomeSummary struct {
	TotalMonthlyIncome decimal.Decimal `json:"totalMonthlyIncome"`
	ReceivedAmount     decimal.Decimal `json:"receivedAmount"`
	PendingAmount      decimal.Decimal `json:"pendingAmount"`
	TotalIncomes       int             `json:"totalIncomes"`
	ReceivedIncomes    int             `json:"receivedIncomes"`
	OverdueIncomes     int             `json:"overdueIncomes"`
}

type ProjectSummary struct {
	TotalProjects     int             `json:"totalProjects"`
	ActiveProjects    int             `json:"activeProjects"`
	CompletedProjects int             `json:"completedProjects"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalCosts        decimal.Decimal `json:"totalCosts"`
	TotalProfit       decimal.Decimal `json:"totalProfit"`
	PendingRevenue    decimal.Decimal `json:"pendingRevenue"`
	PendingCosts      decimal.Decimal `json:"pendingCosts"`
}

// Overview aggregates every summary for the dashboard.
type Overview struct {
	Debts             DebtSummary       `json:"debts"`
	FixedBills        FixedBillSummary  `json:"fixedBills"`
	Incomes           IncomeSummary     `json:"incomes"`
	Projects          ProjectSummary    `json:"projects"`
	NetMonthlyBalance decimal.Decimal   `json:"netMonthlyBalance"`
	CommitmentPercent decimal.Decimal   `json:"commitmentPercent"`
	Projection        []ProjectionPoint `json:"projection"`
	GeneratedAt       time.Time         `json:"generatedAt"`
}

// ProjectionPoint is one month of the cash-flow projection: the balance
// accumulated by then at the current net rate, and the debt still owed if
// only minimum payments are made.
type ProjectionPoint struct {
	Month              int             `json:"month"`
	AccumulatedBalance decimal.Decimal `json:"accumulatedBalance"`
	RemainingDebt      decimal.Decimal `json:"remainingDebt"`
}

// CategoryTotal is one slice of a by-category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

// Payoff is the estimated number of months to clear a debt.
// Never is set when the payment does not cover the accruing interest.
type Payoff struct {
	Months int  `json:"months"`
	Never  bool `json:"never"`
}

type PayoffPlan struct {
	DebtID           string            `json:"debtId"`
	RemainingAmount  decimal.Decimal   `json:"remainingAmount"`
	MonthlyPayment   decimal.Decimal   `json:"monthlyPayment"`
	MonthlyInterest  decimal.Decimal   `json:"monthlyInterest"`
	Estimate         Payoff            `json:"estimate"`
	PayoffDate       *time.Time        `json:"payoffDate,omitempty"`
	TotalInterest    decimal.Decimal   `json:"totalInterest"`
	TotalPayment     decimal.Decimal   `json:"totalPayment"`
	AmortizationPlan []AmortizationRow `json:"amortizationPlan"`
}

type AmortizationRow struct {
	Month            int             `json:"month"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}
