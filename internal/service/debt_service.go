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

// DebtService handles debt records, their derived status and payoff plans.
type DebtService struct {
	repo repository.DebtRepositoryInterface
	now  Clock
}

// NewDebtService creates a new DebtService. A nil clock means time.Now.
func NewDebtService(repo repository.DebtRepositoryInterface, clock Clock) *DebtService {
	return &DebtService{repo: repo, now: clockOrNow(clock)}
}

type DebtInput struct {
	Name            string             `json:"name"`
	Category        model.DebtCategory `json:"category"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	RemainingAmount decimal.Decimal    `json:"remainingAmount"`
	InterestRate    decimal.Decimal    `json:"interestRate"` // annual, as percentage
	DueDate         time.Time          `json:"dueDate"`
	Installments    model.Installments `json:"installments"`
	MinimumPayment  decimal.Decimal    `json:"minimumPayment"`
	Creditor        string             `json:"creditor"`
}

// QuickAddDebtInput records a debt before its terms are known.
type QuickAddDebtInput struct {
	Name        string             `json:"name"`
	Category    model.DebtCategory `json:"category"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	DueDate     *time.Time         `json:"dueDate,omitempty"`
}

// NegotiateDebtInput rewrites the terms of an existing debt.
// A zero RemainingAmount falls back to the debt's total amount.
type NegotiateDebtInput struct {
	RemainingAmount decimal.Decimal    `json:"remainingAmount"`
	InterestRate    decimal.Decimal    `json:"interestRate"`
	DueDate         time.Time          `json:"dueDate"`
	Installments    model.Installments `json:"installments"`
	MinimumPayment  decimal.Decimal    `json:"minimumPayment"`
	Creditor        string             `json:"creditor"`
	DownPayment     decimal.Decimal    `json:"downPayment"`
}

func (in DebtInput) apply(d *model.Debt) {
	d.Name = in.Name
	d.Category = in.Category
	d.TotalAmount = in.TotalAmount
	d.RemainingAmount = in.RemainingAmount
	d.InterestRate = in.InterestRate
	d.DueDate = in.DueDate
	d.Installments = in.Installments
	d.MinimumPayment = in.MinimumPayment
	d.Creditor = in.Creditor
}

// Create stores a fully specified debt.
func (s *DebtService) Create(ctx context.Context, input DebtInput) (*model.DebtView, error) {
	debt := &model.Debt{}
	input.apply(debt)

	if err := s.repo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("creating debt: %w", err)
	}
	return s.view(*debt), nil
}

// QuickAdd stores a debt with placeholder terms: the whole amount remains,
// one unpaid installment, no interest and an unset creditor. The due date
// defaults to now.
func (s *DebtService) QuickAdd(ctx context.Context, input QuickAddDebtInput) (*model.DebtView, error) {
	dueDate := s.now()
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	debt := &model.Debt{
		Name:            input.Name,
		Category:        input.Category,
		TotalAmount:     input.TotalAmount,
		RemainingAmount: input.TotalAmount,
		InterestRate:    decimal.Zero,
		DueDate:         dueDate,
		Installments:    model.Installments{Total: 1, Paid: 0},
		MinimumPayment:  decimal.Zero,
		Creditor:        model.UnsetCreditor,
	}

	if err := s.repo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("quick-adding debt: %w", err)
	}
	return s.view(*debt), nil
}

// Get retrieves a debt by its ID.
func (s *DebtService) Get(ctx context.Context, id string) (*model.DebtView, error) {
	debt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting debt %s: %w", id, err)
	}
	return s.view(*debt), nil
}

// List returns every debt with its status derived at the current time.
func (s *DebtService) List(ctx context.Context) ([]model.DebtView, error) {
	debts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing debts: %w", err)
	}

	now := s.now()
	views := make([]model.DebtView, len(debts))
	for i, d := range debts {
		views[i] = finance.DebtView(d, now)
	}
	return views, nil
}

// Update replaces every editable field of a debt.
func (s *DebtService) Update(ctx context.Context, id string, input DebtInput) (*model.DebtView, error) {
	debt, err := s.repo.Modify(ctx, id, func(d *model.Debt) error {
		input.apply(d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating debt %s: %w", id, err)
	}
	return s.view(*debt), nil
}

// Negotiate rewrites the terms of a debt. The down payment is taken off the
// new remaining amount, which never goes below zero.
func (s *DebtService) Negotiate(ctx context.Context, id string, input NegotiateDebtInput) (*model.DebtView, error) {
	debt, err := s.repo.Modify(ctx, id, func(d *model.Debt) error {
		remaining := input.RemainingAmount
		if remaining.IsZero() {
			remaining = d.TotalAmount
		}
		remaining = remaining.Sub(input.DownPayment)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		d.RemainingAmount = remaining
		d.InterestRate = input.InterestRate
		d.DueDate = input.DueDate
		d.Installments = input.Installments
		d.MinimumPayment = input.MinimumPayment
		d.Creditor = input.Creditor
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("negotiating debt %s: %w", id, err)
	}
	return s.view(*debt), nil
}

// Delete removes a debt by ID.
func (s *DebtService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting debt %s: %w", id, err)
	}
	return nil
}

// Summary folds all debts at the current time.
func (s *DebtService) Summary(ctx context.Context) (*model.DebtSummary, error) {
	debts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing debts for summary: %w", err)
	}
	summary := finance.SummarizeDebts(debts, s.now())
	return &summary, nil
}

// Payoff estimates how long a debt takes to clear at the given monthly
// payment and lays out the month-by-month schedule. A zero payment uses the
// debt's minimum payment.
func (s *DebtService) Payoff(ctx context.Context, id string, payment decimal.Decimal) (*model.PayoffPlan, error) {
	debt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching debt %s for payoff plan: %w", id, err)
	}

	if payment.IsZero() {
		payment = debt.MinimumPayment
	}

	plan := finance.AmortizationSchedule(*debt, payment, s.now())
	return &plan, nil
}

func (s *DebtService) view(d model.Debt) *model.DebtView {
	v := finance.DebtView(d, s.now())
	return &v
}
