package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wealthpath/finance-tracker/internal/finance"
	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/repository"
)

// FixedBillService handles recurring monthly bills.
type FixedBillService struct {
	repo repository.FixedBillRepositoryInterface
	now  Clock
}

func NewFixedBillService(repo repository.FixedBillRepositoryInterface, clock Clock) *FixedBillService {
	return &FixedBillService{repo: repo, now: clockOrNow(clock)}
}

type FixedBillInput struct {
	Name        string                  `json:"name"`
	Category    model.FixedBillCategory `json:"category"`
	Amount      decimal.Decimal         `json:"amount"`
	DueDay      int                     `json:"dueDay"`
	IsPaid      bool                    `json:"isPaid"`
	Provider    string                  `json:"provider"`
	Description string                  `json:"description,omitempty"`
	IsRecurring bool                    `json:"isRecurring"`
}

// apply copies the input onto b. Saving a bill as paid stamps it with the
// current time; saving it unpaid clears the stamp.
func (in FixedBillInput) apply(b *model.FixedBill, s *FixedBillService) {
	b.Name = in.Name
	b.Category = in.Category
	b.Amount = in.Amount
	b.DueDay = in.DueDay
	b.IsPaid = in.IsPaid
	b.Provider = in.Provider
	b.Description = in.Description
	b.IsRecurring = in.IsRecurring
	b.LastPaidDate = nil
	if in.IsPaid {
		now := s.now()
		b.LastPaidDate = &now
	}
}

func (s *FixedBillService) Create(ctx context.Context, input FixedBillInput) (*model.FixedBillView, error) {
	bill := &model.FixedBill{}
	input.apply(bill, s)

	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("creating fixed bill: %w", err)
	}
	return s.view(*bill), nil
}

func (s *FixedBillService) Get(ctx context.Context, id string) (*model.FixedBillView, error) {
	bill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting fixed bill %s: %w", id, err)
	}
	return s.view(*bill), nil
}

// List returns every bill with its status and next due date, overdue first.
func (s *FixedBillService) List(ctx context.Context) ([]model.FixedBillView, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing fixed bills: %w", err)
	}

	now := s.now()
	views := make([]model.FixedBillView, len(bills))
	for i, b := range bills {
		views[i] = finance.FixedBillView(b, now)
	}
	return finance.SortFixedBills(views), nil
}

func (s *FixedBillService) Update(ctx context.Context, id string, input FixedBillInput) (*model.FixedBillView, error) {
	bill, err := s.repo.Modify(ctx, id, func(b *model.FixedBill) error {
		input.apply(b, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating fixed bill %s: %w", id, err)
	}
	return s.view(*bill), nil
}

func (s *FixedBillService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting fixed bill %s: %w", id, err)
	}
	return nil
}

// TogglePaid flips the paid flag. Becoming paid records now as the last
// payment date; becoming unpaid clears it.
func (s *FixedBillService) TogglePaid(ctx context.Context, id string) (*model.FixedBillView, error) {
	bill, err := s.repo.Modify(ctx, id, func(b *model.FixedBill) error {
		b.IsPaid = !b.IsPaid
		if b.IsPaid {
			now := s.now()
			b.LastPaidDate = &now
		} else {
			b.LastPaidDate = nil
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("toggling fixed bill %s: %w", id, err)
	}
	return s.view(*bill), nil
}

// Summary folds all bills at the current time.
func (s *FixedBillService) Summary(ctx context.Context) (*model.FixedBillSummary, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing fixed bills for summary: %w", err)
	}
	summary := finance.SummarizeFixedBills(bills, s.now())
	return &summary, nil
}

// Rollover marks recurring bills paid in a previous month as unpaid again and
// returns how many were reset. The last payment date is kept.
func (s *FixedBillService) Rollover(ctx context.Context) (int, error) {
	now := s.now()
	n, err := s.repo.ModifyAll(ctx, func(bills []model.FixedBill) int {
		reset := 0
		for i := range bills {
			if finance.ShouldResetBill(bills[i], now) {
				bills[i].IsPaid = false
				reset++
			}
		}
		return reset
	})
	if err != nil {
		return 0, fmt.Errorf("rolling over fixed bills: %w", err)
	}
	return n, nil
}

func (s *FixedBillService) view(b model.FixedBill) *model.FixedBillView {
	v := finance.FixedBillView(b, s.now())
	return &v
}
