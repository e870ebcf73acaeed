package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/finance-tracker/internal/model"
)

var pngMagic = []byte("\x89PNG")

func TestChartService_Render(t *testing.T) {
	t.Parallel()

	r := newRepos()
	seedDashboard(t, r)
	svc := NewChartService(NewDashboardService(r.debts, r.bills, r.incomes, r.projects, fixedClock))

	for _, kind := range ChartKinds {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			img, err := svc.Render(context.Background(), kind)

			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(img, pngMagic))
		})
	}
}

func TestChartService_NoData(t *testing.T) {
	t.Parallel()

	r := newRepos()
	svc := NewChartService(NewDashboardService(r.debts, r.bills, r.incomes, r.projects, fixedClock))

	for _, kind := range ChartKinds {
		_, err := svc.Render(context.Background(), kind)
		assert.ErrorIs(t, err, ErrNoChartData, kind)
	}
}

func TestChartService_UnknownKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind ChartKind
	}{
		{name: "unsupported", kind: ChartKind("radar")},
		{name: "empty", kind: ChartKind("")},
		{name: "wrong case", kind: ChartKind("Bills")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newRepos()
			incomes := &mockCollection[model.Income]{}
			svc := NewChartService(NewDashboardService(r.debts, r.bills, incomes, r.projects, fixedClock))

			_, err := svc.Render(context.Background(), tt.kind)

			assert.ErrorIs(t, err, ErrUnknownChart)
			incomes.AssertNotCalled(t, "List", mock.Anything)
		})
	}
}

func TestDebtProgress(t *testing.T) {
	t.Parallel()

	totals := debtProgress([]model.Debt{
		{TotalAmount: dec("1000"), RemainingAmount: dec("400")},
		{TotalAmount: dec("100"), RemainingAmount: dec("150")},
	})

	require.Len(t, totals, 2)
	assert.True(t, dec("600").Equal(totals[0].Amount))
	assert.True(t, dec("550").Equal(totals[1].Amount))
}
