package finance

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthpath/finance-tracker/internal/model"
)

// MaxScheduleMonths caps an amortization schedule at 30 years.
const MaxScheduleMonths = 360

// maxEstimateMonths bounds a payoff estimate; anything longer is reported as never.
const maxEstimateMonths = math.MaxInt32

var (
	twelve           = decimal.NewFromInt(12)
	maxEstimateAsDec = decimal.NewFromInt(maxEstimateMonths)
)

// MonthlyInterest is principal × annualRate / 12 / 100, with annualRate a percentage.
func MonthlyInterest(principal, annualRate decimal.Decimal) decimal.Decimal {
	return principal.Mul(annualRate).Div(twelve).Div(hundred)
}

func monthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(hundred).Div(twelve)
}

// PayoffMonths estimates how many monthly payments clear the remaining
// balance, using ceil(ln(1 + P·r/A) / ln(1 + r)). A payment that does not
// exceed the monthly interest never pays the debt off, and neither does one
// that would take more than math.MaxInt32 months. A settled balance needs
// zero months and an interest-free debt needs ceil(P/A).
func PayoffMonths(debt model.Debt, payment decimal.Decimal) model.Payoff {
	remaining := debt.RemainingAmount
	if !remaining.IsPositive() {
		return model.Payoff{}
	}
	if payment.LessThanOrEqual(MonthlyInterest(remaining, debt.InterestRate)) {
		return model.Payoff{Never: true}
	}

	rate := monthlyRate(debt.InterestRate)
	if rate.IsZero() {
		months := remaining.Div(payment).Ceil()
		if months.GreaterThan(maxEstimateAsDec) {
			return model.Payoff{Never: true}
		}
		return model.Payoff{Months: int(months.IntPart())}
	}

	p := remaining.InexactFloat64()
	r := rate.InexactFloat64()
	a := payment.InexactFloat64()

	months := math.Ceil(math.Log(1+p*r/a) / math.Log(1+r))
	if math.IsNaN(months) || math.IsInf(months, 0) || months < 0 || months > maxEstimateMonths {
		return model.Payoff{Never: true}
	}
	return model.Payoff{Months: int(months)}
}

// AmortizationSchedule builds a month-by-month plan for paying the debt with a
// fixed payment, starting from now. Interest is rounded to cents each month
// and the final payment covers only what is left. Debts that are never paid
// off get the estimate without a schedule.
func AmortizationSchedule(debt model.Debt, payment decimal.Decimal, now time.Time) model.PayoffPlan {
	estimate := PayoffMonths(debt, payment)

	plan := model.PayoffPlan{
		DebtID:           debt.ID,
		RemainingAmount:  debt.RemainingAmount,
		MonthlyPayment:   payment,
		MonthlyInterest:  MonthlyInterest(debt.RemainingAmount, debt.InterestRate).Round(2),
		Estimate:         estimate,
		TotalInterest:    decimal.Zero,
		TotalPayment:     decimal.Zero,
		AmortizationPlan: make([]model.AmortizationRow, 0),
	}
	if estimate.Never {
		return plan
	}

	rate := monthlyRate(debt.InterestRate)
	balance := debt.RemainingAmount
	months := 0

	for balance.IsPositive() && months < MaxScheduleMonths {
		months++

		interest := balance.Mul(rate).Round(2)
		monthPayment := payment
		if monthPayment.GreaterThan(balance.Add(interest)) {
			monthPayment = balance.Add(interest)
		}

		principal := monthPayment.Sub(interest)
		balance = balance.Sub(principal)

		plan.TotalInterest = plan.TotalInterest.Add(interest)
		plan.TotalPayment = plan.TotalPayment.Add(monthPayment)
		plan.AmortizationPlan = append(plan.AmortizationPlan, model.AmortizationRow{
			Month:            months,
			Payment:          monthPayment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}

	payoffDate := now.AddDate(0, months, 0)
	plan.PayoffDate = &payoffDate
	return plan
}
