package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/wealthpath/finance-tracker/internal/repository"
	"github.com/wealthpath/finance-tracker/internal/store"
)

var refNow = time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return refNow }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

type repos struct {
	debts    *repository.DebtRepository
	bills    *repository.FixedBillRepository
	incomes  *repository.IncomeRepository
	projects *repository.ProjectRepository
}

func newRepos() repos {
	s := store.NewMemoryStore()
	return repos{
		debts:    repository.NewDebtRepository(s),
		bills:    repository.NewFixedBillRepository(s),
		incomes:  repository.NewIncomeRepository(s),
		projects: repository.NewProjectRepository(s),
	}
}

// mockCollection implements repository.Collection[T] for testing.
// Modify and ModifyAll run the callback against the item(s) given to Return.
type mockCollection[T any] struct {
	mock.Mock
}

func (m *mockCollection[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockCollection[T]) ReadAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockCollection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	item := args.Get(0).(T)
	return &item, args.Error(1)
}

func (m *mockCollection[T]) Create(ctx context.Context, item *T) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockCollection[T]) Update(ctx context.Context, item *T) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockCollection[T]) Modify(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	item := args.Get(0).(T)
	if err := fn(&item); err != nil {
		return nil, err
	}
	return &item, args.Error(1)
}

func (m *mockCollection[T]) ModifyAll(ctx context.Context, fn func([]T) int) (int, error) {
	args := m.Called(ctx)
	if err := args.Error(1); err != nil {
		return 0, err
	}
	return fn(args.Get(0).([]T)), nil
}

func (m *mockCollection[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCollection[T]) ReplaceAll(ctx context.Context, items []T) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}
