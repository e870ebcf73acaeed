package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wealthpath/finance-tracker/internal/backup"
	"github.com/wealthpath/finance-tracker/internal/logger"
	"github.com/wealthpath/finance-tracker/internal/repository"
)

// BackupService exports and imports debts, fixed bills and incomes.
// Projects are not part of the file format.
type BackupService struct {
	debtRepo      repository.DebtRepositoryInterface
	fixedBillRepo repository.FixedBillRepositoryInterface
	incomeRepo    repository.IncomeRepositoryInterface
	now           Clock
}

func NewBackupService(
	debtRepo repository.DebtRepositoryInterface,
	fixedBillRepo repository.FixedBillRepositoryInterface,
	incomeRepo repository.IncomeRepositoryInterface,
	clock Clock,
) *BackupService {
	return &BackupService{
		debtRepo:      debtRepo,
		fixedBillRepo: fixedBillRepo,
		incomeRepo:    incomeRepo,
		now:           clockOrNow(clock),
	}
}

// Export snapshots the three collections. Unlike the read paths it fails when
// a slot cannot be read, so a locked or broken store never exports as empty.
func (s *BackupService) Export(ctx context.Context) (*backup.ExportData, error) {
	debts, err := s.debtRepo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading debts for export: %w", err)
	}
	bills, err := s.fixedBillRepo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading fixed bills for export: %w", err)
	}
	incomes, err := s.incomeRepo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading incomes for export: %w", err)
	}

	data := backup.Export(debts, bills, incomes, s.now())
	return &data, nil
}

// ExportJSON is Export encoded as indented JSON, the on-disk backup format.
func (s *BackupService) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}
	return out, nil
}

// Import normalizes raw and replaces the debts, fixed bills and incomes
// slots in that order. A payload that is not a JSON object writes nothing.
// The three writes are not atomic: a failure part way leaves the earlier
// slots replaced.
func (s *BackupService) Import(ctx context.Context, raw []byte) (*backup.ExportData, error) {
	data, err := backup.Normalize(raw, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.debtRepo.ReplaceAll(ctx, data.Debts); err != nil {
		return nil, fmt.Errorf("importing debts: %w", err)
	}
	if err := s.fixedBillRepo.ReplaceAll(ctx, data.FixedBills); err != nil {
		return nil, fmt.Errorf("importing fixed bills: %w", err)
	}
	if err := s.incomeRepo.ReplaceAll(ctx, data.Incomes); err != nil {
		return nil, fmt.Errorf("importing incomes: %w", err)
	}

	logger.FromContext(ctx).Info("backup imported",
		"debts", len(data.Debts),
		"fixed_bills", len(data.FixedBills),
		"incomes", len(data.Incomes),
		"version", data.Version,
	)
	return &data, nil
}
