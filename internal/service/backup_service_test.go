package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/finance-tracker/internal/apperror"
	"github.com/wealthpath/finance-tracker/internal/backup"
	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/repository"
	"github.com/wealthpath/finance-tracker/internal/store"
)

func TestBackupService_ImportReplacesSlots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newRepos()
	seedDashboard(t, r)
	svc := NewBackupService(r.debts, r.bills, r.incomes, fixedClock)

	data, err := svc.Import(ctx, []byte(`{
		"debts": [{"id": "new-debt", "name": "Card", "totalAmount": "abc", "remainingAmount": 100}],
		"fixedBills": [{"name": "Gas", "amount": 40}],
		"version": "1.0.0"
	}`))
	require.NoError(t, err)
	assert.Len(t, data.Debts, 1)

	debts, _ := r.debts.List(ctx)
	require.Len(t, debts, 1)
	assert.Equal(t, "new-debt", debts[0].ID)
	assert.True(t, debts[0].TotalAmount.IsZero())

	bills, _ := r.bills.List(ctx)
	require.Len(t, bills, 1)
	assert.NotEmpty(t, bills[0].ID)
	assert.Equal(t, 1, bills[0].DueDay)

	incomes, _ := r.incomes.List(ctx)
	assert.Empty(t, incomes)

	projects, _ := r.projects.List(ctx)
	assert.Len(t, projects, 1, "projects are not part of the backup")
}

func TestBackupService_ImportInvalidWritesNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newRepos()
	seedDashboard(t, r)
	svc := NewBackupService(r.debts, r.bills, r.incomes, fixedClock)

	_, err := svc.Import(ctx, []byte(`[{"debts": []}]`))

	require.Error(t, err)
	assert.ErrorIs(t, err, backup.ErrInvalidPayload)
	assert.Equal(t, http.StatusBadRequest, apperror.GetStatusCode(err))

	debts, _ := r.debts.List(ctx)
	assert.Len(t, debts, 1)
}

func TestBackupService_ImportStopsOnWriteFailure(t *testing.T) {
	t.Parallel()

	debtRepo := &mockCollection[model.Debt]{}
	billRepo := &mockCollection[model.FixedBill]{}
	incomeRepo := &mockCollection[model.Income]{}
	debtRepo.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil)
	billRepo.On("ReplaceAll", mock.Anything, mock.Anything).Return(errors.New("read-only"))

	svc := NewBackupService(debtRepo, billRepo, incomeRepo, fixedClock)
	_, err := svc.Import(context.Background(), []byte(`{}`))

	assert.ErrorContains(t, err, "importing fixed bills: read-only")
	incomeRepo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}

func TestBackupService_ExportRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := newRepos()
	seedDashboard(t, src)

	raw, err := NewBackupService(src.debts, src.bills, src.incomes, fixedClock).ExportJSON(ctx)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, backup.Version, decoded["version"])
	assert.Equal(t, "2024-05-15T10:00:00Z", decoded["exportDate"])
	assert.NotContains(t, decoded, "projects")

	dst := newRepos()
	_, err = NewBackupService(dst.debts, dst.bills, dst.incomes, fixedClock).Import(ctx, raw)
	require.NoError(t, err)

	want, _ := src.bills.List(ctx)
	got, _ := dst.bills.List(ctx)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.True(t, want[i].Amount.Equal(got[i].Amount))
		assert.Equal(t, want[i].IsPaid, got[i].IsPaid)
	}
}

func TestBackupService_ExportFailsOnLockedStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	locked, err := store.NewFileStore(dir, "secret")
	require.NoError(t, err)
	require.NoError(t, repository.NewDebtRepository(locked).Create(ctx, &model.Debt{Name: "Card"}))

	unlocked, err := store.NewFileStore(dir, "")
	require.NoError(t, err)
	svc := NewBackupService(
		repository.NewDebtRepository(unlocked),
		repository.NewFixedBillRepository(unlocked),
		repository.NewIncomeRepository(unlocked),
		fixedClock,
	)

	raw, err := svc.ExportJSON(ctx)

	assert.Nil(t, raw)
	assert.ErrorIs(t, err, store.ErrLocked)
	assert.ErrorContains(t, err, "reading debts for export")
}

func TestBackupService_ExportReadError(t *testing.T) {
	t.Parallel()

	r := newRepos()
	incomes := &mockCollection[model.Income]{}
	incomes.On("ReadAll", mock.Anything).Return(nil, errors.New("timeout"))

	_, err := NewBackupService(r.debts, r.bills, incomes, fixedClock).Export(context.Background())

	assert.ErrorContains(t, err, "reading incomes for export: timeout")
	incomes.AssertNotCalled(t, "List", mock.Anything)
}
