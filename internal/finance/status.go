// Package finance derives statuses, summaries and payoff estimates from raw
// records. Every function is pure: callers pass the reference time explicitly
// and inputs are never mutated.
package finance

import (
	"time"

	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/pkg/datetime"
)

// DueSoonDays is the window, in whole days, in which a debt counts as due soon.
const DueSoonDays = 7

// DebtStatus classifies a debt by the ceiling of the days left until its due
// date. The difference keeps the time of day, so a debt due at 09:00 tomorrow
// is one day away at 10:00 today and still one day away at 08:00.
// A debt without a usable due date (the zero time) is current.
func DebtStatus(debt model.Debt, now time.Time) model.DebtStatus {
	if debt.DueDate.IsZero() {
		return model.DebtStatusCurrent
	}

	daysDiff := datetime.DaysUntil(debt.DueDate, now)

	switch {
	case daysDiff < 0:
		return model.DebtStatusOverdue
	case daysDiff <= DueSoonDays:
		return model.DebtStatusDueSoon
	default:
		return model.DebtStatusCurrent
	}
}

// FixedBillStatus compares now against the bill's occurrence in the current
// month. The occurrence is midnight of the due day, so an unpaid bill is
// already overdue during its due day. Paid bills stay paid across months
// until reset.
func FixedBillStatus(bill model.FixedBill, now time.Time) model.FixedBillStatus {
	if bill.IsPaid {
		return model.FixedBillStatusPaid
	}

	occurrence := datetime.OccurrenceInMonth(now, bill.DueDay)
	if now.After(occurrence) {
		return model.FixedBillStatusOverdue
	}
	return model.FixedBillStatusPending
}

func IncomeStatus(income model.Income, now time.Time) model.IncomeStatus {
	if income.IsReceived {
		return model.IncomeStatusReceived
	}
	if income.ExpectedDate == nil {
		return model.IncomeStatusPending
	}
	if now.After(*income.ExpectedDate) {
		return model.IncomeStatusOverdue
	}
	return model.IncomeStatusPending
}

// NextDueDate returns this month's occurrence of dueDay while it has not
// passed by calendar day, otherwise next month's. Days past the end of a
// month roll into the following one.
func NextDueDate(dueDay int, now time.Time) time.Time {
	if now.Day() <= dueDay {
		return datetime.OccurrenceInMonth(now, dueDay)
	}
	return time.Date(now.Year(), now.Month()+1, dueDay, 0, 0, 0, 0, now.Location())
}

func DaysUntilDue(dueDay int, now time.Time) int {
	return datetime.DaysUntil(NextDueDate(dueDay, now), now)
}

// NextExpectedDate projects the next occurrence of a recurring income from
// its expected date, or its received date when none is set. Non-recurring
// and one-off incomes have no next occurrence.
func NextExpectedDate(income model.Income) *time.Time {
	if !income.IsRecurring || income.Frequency == model.FrequencyOnce {
		return nil
	}

	last := income.ReceivedDate
	if income.ExpectedDate != nil {
		last = *income.ExpectedDate
	}

	var next time.Time
	switch income.Frequency {
	case model.FrequencyMonthly:
		next = datetime.AddMonths(last, 1)
	case model.FrequencyQuarterly:
		next = datetime.AddMonths(last, 3)
	case model.FrequencySemiannual:
		next = datetime.AddMonths(last, 6)
	case model.FrequencyAnnual:
		next = last.AddDate(1, 0, 0)
	default:
		return nil
	}
	return &next
}

// ShouldResetBill reports whether a recurring bill paid in an earlier
// calendar month should be marked unpaid again. Reads never apply it; only
// the rollover job does.
func ShouldResetBill(bill model.FixedBill, now time.Time) bool {
	if !bill.IsRecurring || !bill.IsPaid || bill.LastPaidDate == nil {
		return false
	}
	return datetime.MonthIndex(*bill.LastPaidDate) < datetime.MonthIndex(now)
}

func DebtView(debt model.Debt, now time.Time) model.DebtView {
	return model.DebtView{Debt: debt, Status: DebtStatus(debt, now)}
}

func FixedBillView(bill model.FixedBill, now time.Time) model.FixedBillView {
	return model.FixedBillView{
		FixedBill:    bill,
		Status:       FixedBillStatus(bill, now),
		NextDueDate:  NextDueDate(bill.DueDay, now),
		DaysUntilDue: DaysUntilDue(bill.DueDay, now),
	}
}

func IncomeView(income model.Income, now time.Time) model.IncomeView {
	view := model.IncomeView{
		Income:           income,
		Status:           IncomeStatus(income, now),
		NextExpectedDate: NextExpectedDate(income),
	}
	if income.ExpectedDate != nil {
		days := datetime.DaysUntil(*income.ExpectedDate, now)
		view.DaysUntilExpected = &days
	}
	return view
}
