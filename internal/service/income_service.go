package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthpath/finance-tracker/internal/finance"
	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/repository"
)

// IncomeService handles income records.
type IncomeService struct {
	repo repository.IncomeRepositoryInterface
	now  Clock
}

func NewIncomeService(repo repository.IncomeRepositoryInterface, clock Clock) *IncomeService {
	return &IncomeService{repo: repo, now: clockOrNow(clock)}
}

type IncomeInput struct {
	Name         string                `json:"name"`
	Category     model.IncomeCategory  `json:"category"`
	Amount       decimal.Decimal       `json:"amount"`
	Frequency    model.IncomeFrequency `json:"frequency"`
	ReceivedDate time.Time             `json:"receivedDate"`
	ExpectedDate *time.Time            `json:"expectedDate,omitempty"`
	IsReceived   bool                  `json:"isReceived"`
	Source       string                `json:"source"`
	Description  string                `json:"description,omitempty"`
	IsRecurring  bool                  `json:"isRecurring"`
}

func (in IncomeInput) apply(i *model.Income) {
	i.Name = in.Name
	i.Category = in.Category
	i.Amount = in.Amount
	i.Frequency = in.Frequency
	i.ReceivedDate = in.ReceivedDate
	i.ExpectedDate = in.ExpectedDate
	i.IsReceived = in.IsReceived
	i.Source = in.Source
	i.Description = in.Description
	i.IsRecurring = in.IsRecurring
}

func (s *IncomeService) Create(ctx context.Context, input IncomeInput) (*model.IncomeView, error) {
	income := &model.Income{}
	input.apply(income)

	if err := s.repo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("creating income: %w", err)
	}
	return s.view(*income), nil
}

func (s *IncomeService) Get(ctx context.Context, id string) (*model.IncomeView, error) {
	income, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting income %s: %w", id, err)
	}
	return s.view(*income), nil
}

func (s *IncomeService) List(ctx context.Context) ([]model.IncomeView, error) {
	incomes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing incomes: %w", err)
	}

	now := s.now()
	views := make([]model.IncomeView, len(incomes))
	for i, in := range incomes {
		views[i] = finance.IncomeView(in, now)
	}
	return finance.SortIncomes(views), nil
}

func (s *IncomeService) Update(ctx context.Context, id string, input IncomeInput) (*model.IncomeView, error) {
	income, err := s.repo.Modify(ctx, id, func(i *model.Income) error {
		input.apply(i)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating income %s: %w", id, err)
	}
	return s.view(*income), nil
}

func (s *IncomeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting income %s: %w", id, err)
	}
	return nil
}

// ToggleReceived flips the received flag.
func (s *IncomeService) ToggleReceived(ctx context.Context, id string) (*model.IncomeView, error) {
	income, err := s.repo.Modify(ctx, id, func(i *model.Income) error {
		i.IsReceived = !i.IsReceived
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("toggling income %s: %w", id, err)
	}
	return s.view(*income), nil
}

func (s *IncomeService) Summary(ctx context.Context) (*model.IncomeSummary, error) {
	incomes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing incomes for summary: %w", err)
	}
	summary := finance.SummarizeIncomes(incomes, s.now())
	return &summary, nil
}

func (s *IncomeService) view(i model.Income) *model.IncomeView {
	v := finance.IncomeView(i, s.now())
	return &v
}
