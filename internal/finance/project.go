package finance

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/wealthpath/finance-tracker/internal/model"
)

// ProjectProgress is 100 for completed projects, 0 for cancelled or planned
// ones, and otherwise the rounded percentage of revenue lines received.
func ProjectProgress(p model.Project) int {
	switch p.Status {
	case model.ProjectStatusCompleted:
		return 100
	case model.ProjectStatusCancelled, model.ProjectStatusPlanning:
		return 0
	}

	if len(p.Revenues) == 0 {
		return 0
	}

	received := 0
	for _, r := range p.Revenues {
		if r.IsReceived {
			received++
		}
	}
	return int(math.Round(float64(received) / float64(len(p.Revenues)) * 100))
}

func ProjectCostTotal(p model.Project) decimal.Decimal {
	total := decimal.Zero
	for _, c := range p.Costs {
		total = total.Add(c.Amount)
	}
	return total
}

func ProjectRevenueTotal(p model.Project) decimal.Decimal {
	total := decimal.Zero
	for _, r := range p.Revenues {
		total = total.Add(r.Amount)
	}
	return total
}

func ProjectProfit(p model.Project) decimal.Decimal {
	return ProjectRevenueTotal(p).Sub(ProjectCostTotal(p))
}

func ProjectPendingRevenue(p model.Project) decimal.Decimal {
	total := decimal.Zero
	for _, r := range p.Revenues {
		if !r.IsReceived {
			total = total.Add(r.Amount)
		}
	}
	return total
}

func ProjectPendingCosts(p model.Project) decimal.Decimal {
	total := decimal.Zero
	for _, c := range p.Costs {
		if !c.IsPaid {
			total = total.Add(c.Amount)
		}
	}
	return total
}

func ProjectView(p model.Project) model.ProjectView {
	return model.ProjectView{
		Project:        p,
		Progress:       ProjectProgress(p),
		TotalCosts:     ProjectCostTotal(p),
		TotalRevenue:   ProjectRevenueTotal(p),
		Profit:         ProjectProfit(p),
		PendingRevenue: ProjectPendingRevenue(p),
		PendingCosts:   ProjectPendingCosts(p),
	}
}
