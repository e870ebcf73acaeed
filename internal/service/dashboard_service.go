package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wealthpath/finance-tracker/internal/finance"
	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/repository"
)

// Snapshot is every collection read at one point in time.
type Snapshot struct {
	Debts      []model.Debt
	FixedBills []model.FixedBill
	Incomes    []model.Income
	Projects   []model.Project
}

// DashboardService aggregates every collection into the overview.
type DashboardService struct {
	debtRepo      repository.DebtRepositoryInterface
	fixedBillRepo repository.FixedBillRepositoryInterface
	incomeRepo    repository.IncomeRepositoryInterface
	projectRepo   repository.ProjectRepositoryInterface
	now           Clock
}

func NewDashboardService(
	debtRepo repository.DebtRepositoryInterface,
	fixedBillRepo repository.FixedBillRepositoryInterface,
	incomeRepo repository.IncomeRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	clock Clock,
) *DashboardService {
	return &DashboardService{
		debtRepo:      debtRepo,
		fixedBillRepo: fixedBillRepo,
		incomeRepo:    incomeRepo,
		projectRepo:   projectRepo,
		now:           clockOrNow(clock),
	}
}

// Snapshot loads the four collections concurrently.
func (s *DashboardService) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		debts, err := s.debtRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("listing debts: %w", err)
		}
		snap.Debts = debts
		return nil
	})
	g.Go(func() error {
		bills, err := s.fixedBillRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("listing fixed bills: %w", err)
		}
		snap.FixedBills = bills
		return nil
	})
	g.Go(func() error {
		incomes, err := s.incomeRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("listing incomes: %w", err)
		}
		snap.Incomes = incomes
		return nil
	})
	g.Go(func() error {
		projects, err := s.projectRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("listing projects: %w", err)
		}
		snap.Projects = projects
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Overview folds every summary together with the monthly balance and
// commitment percentage.
func (s *DashboardService) Overview(ctx context.Context) (*model.Overview, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading overview: %w", err)
	}

	overview := finance.BuildOverview(snap.Debts, snap.FixedBills, snap.Incomes, snap.Projects, s.now())
	return &overview, nil
}
