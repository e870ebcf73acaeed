package finance

import (
	"sort"
	"time"

	"github.com/wealthpath/finance-tracker/internal/model"
)

var (
	billStatusRank = map[model.FixedBillStatus]int{
		model.FixedBillStatusOverdue: 0,
		model.FixedBillStatusPending: 1,
		model.FixedBillStatusPaid:    2,
	}
	incomeStatusRank = map[model.IncomeStatus]int{
		model.IncomeStatusOverdue:  0,
		model.IncomeStatusPending:  1,
		model.IncomeStatusReceived: 2,
	}
	projectStatusRank = map[model.ProjectStatus]int{
		model.ProjectStatusInProgress: 0,
		model.ProjectStatusPlanning:   1,
		model.ProjectStatusPaused:     2,
		model.ProjectStatusCompleted:  3,
		model.ProjectStatusCancelled:  4,
	}
)

// rank places unknown values after every known one.
func rank[K comparable](ranks map[K]int, k K) int {
	if r, ok := ranks[k]; ok {
		return r
	}
	return len(ranks)
}

// SortFixedBills returns the bills overdue first, then pending, then paid,
// each group by due day.
func SortFixedBills(views []model.FixedBillView) []model.FixedBillView {
	out := append([]model.FixedBillView(nil), views...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(billStatusRank, out[i].Status), rank(billStatusRank, out[j].Status)
		if ri != rj {
			return ri < rj
		}
		return out[i].DueDay < out[j].DueDay
	})
	return out
}

// SortIncomes returns the incomes overdue first, then pending, then
// received, each group newest first by expected date, or received date when
// none is set.
func SortIncomes(views []model.IncomeView) []model.IncomeView {
	out := append([]model.IncomeView(nil), views...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(incomeStatusRank, out[i].Status), rank(incomeStatusRank, out[j].Status)
		if ri != rj {
			return ri < rj
		}
		return incomeDate(out[i].Income).After(incomeDate(out[j].Income))
	})
	return out
}

func incomeDate(i model.Income) time.Time {
	if i.ExpectedDate != nil {
		return *i.ExpectedDate
	}
	return i.ReceivedDate
}

// SortProjects returns active work first: in progress, planning, paused,
// completed, cancelled. Ties go newest start date first.
func SortProjects(views []model.ProjectView) []model.ProjectView {
	out := append([]model.ProjectView(nil), views...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(projectStatusRank, out[i].Status), rank(projectStatusRank, out[j].Status)
		if ri != rj {
			return ri < rj
		}
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out
}
