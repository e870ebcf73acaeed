package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wealthpath/finance-tracker/internal/model"
)

func revenues(received ...bool) []model.ProjectRevenue {
	out := make([]model.ProjectRevenue, len(received))
	for i, r := range received {
		out[i] = model.ProjectRevenue{Amount: dec("100"), IsReceived: r}
	}
	return out
}

func TestProjectProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		project model.Project
		want    int
	}{
		{name: "completed", project: model.Project{Status: model.ProjectStatusCompleted, Revenues: revenues(false)}, want: 100},
		{name: "cancelled", project: model.Project{Status: model.ProjectStatusCancelled, Revenues: revenues(true)}, want: 0},
		{name: "planning", project: model.Project{Status: model.ProjectStatusPlanning, Revenues: revenues(true)}, want: 0},
		{name: "in progress without revenues", project: model.Project{Status: model.ProjectStatusInProgress}, want: 0},
		{name: "one of three received", project: model.Project{Status: model.ProjectStatusInProgress, Revenues: revenues(true, false, false)}, want: 33},
		{name: "two of three received", project: model.Project{Status: model.ProjectStatusInProgress, Revenues: revenues(true, true, false)}, want: 67},
		{name: "paused half received", project: model.Project{Status: model.ProjectStatusPaused, Revenues: revenues(true, false)}, want: 50},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ProjectProgress(tt.project))
		})
	}
}

func TestProjectView(t *testing.T) {
	t.Parallel()

	p := model.Project{
		ID:     "p1",
		Status: model.ProjectStatusInProgress,
		Costs: []model.ProjectCost{
			{Amount: dec("150"), IsPaid: true},
			{Amount: dec("50")},
		},
		Revenues: []model.ProjectRevenue{
			{Amount: dec("400"), IsReceived: true},
			{Amount: dec("100")},
		},
	}

	view := ProjectView(p)

	assert.Equal(t, "p1", view.ID)
	assert.Equal(t, 50, view.Progress)
	assert.True(t, dec("200").Equal(view.TotalCosts))
	assert.True(t, dec("500").Equal(view.TotalRevenue))
	assert.True(t, dec("300").Equal(view.Profit))
	assert.True(t, dec("100").Equal(view.PendingRevenue))
	assert.True(t, dec("50").Equal(view.PendingCosts))
}
