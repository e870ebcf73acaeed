package repository

import (
	"context"

	"github.com/wealthpath/finance-tracker/internal/model"
)

// Collection is the contract shared by every slot-backed repository.
// Implementations must be safe for concurrent use.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	ReadAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Modify(ctx context.Context, id string, fn func(*T) error) (*T, error)
	ModifyAll(ctx context.Context, fn func([]T) int) (int, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, items []T) error
}

type DebtRepositoryInterface = Collection[model.Debt]

type FixedBillRepositoryInterface = Collection[model.FixedBill]

type IncomeRepositoryInterface = Collection[model.Income]

type ProjectRepositoryInterface = Collection[model.Project]

var (
	_ DebtRepositoryInterface      = (*DebtRepository)(nil)
	_ FixedBillRepositoryInterface = (*FixedBillRepository)(nil)
	_ IncomeRepositoryInterface    = (*IncomeRepository)(nil)
	_ ProjectRepositoryInterface   = (*ProjectRepository)(nil)
)
