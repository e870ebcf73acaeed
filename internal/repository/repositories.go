package repository

import (
	"github.com/wealthpath/finance-tracker/internal/apperror"
	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/store"
)

var (
	ErrDebtNotFound      = apperror.NotFound("debt")
	ErrFixedBillNotFound = apperror.NotFound("fixed bill")
	ErrIncomeNotFound    = apperror.NotFound("income")
	ErrProjectNotFound   = apperror.NotFound("project")
)

type DebtRepository struct {
	*collection[model.Debt]
}

func NewDebtRepository(s store.Store) *DebtRepository {
	return &DebtRepository{newCollection(s, store.KeyDebts, ErrDebtNotFound,
		func(d *model.Debt) *string { return &d.ID })}
}

type FixedBillRepository struct {
	*collection[model.FixedBill]
}

func NewFixedBillRepository(s store.Store) *FixedBillRepository {
	return &FixedBillRepository{newCollection(s, store.KeyFixedBills, ErrFixedBillNotFound,
		func(b *model.FixedBill) *string { return &b.ID })}
}

type IncomeRepository struct {
	*collection[model.Income]
}

func NewIncomeRepository(s store.Store) *IncomeRepository {
	return &IncomeRepository{newCollection(s, store.KeyIncomes, ErrIncomeNotFound,
		func(i *model.Income) *string { return &i.ID })}
}

// ProjectRepository stores projects together with their cost and revenue
// lines; line items are changed through Modify on the owning project.
type ProjectRepository struct {
	*collection[model.Project]
}

func NewProjectRepository(s store.Store) *ProjectRepository {
	return &ProjectRepository{newCollection(s, store.KeyProjects, ErrProjectNotFound,
		func(p *model.Project) *string { return &p.ID })}
}
