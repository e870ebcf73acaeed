// Package backup converts between stored collections and the export file
// format. Export is a plain snapshot; Normalize accepts any superset of the
// format and coerces each record leniently.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/wealthpath/finance-tracker/internal/apperror"
	"github.com/wealthpath/finance-tracker/internal/model"
)

// Version is written into every export.
const Version = "1.0.0"

// ErrInvalidPayload is returned when the import is not a single JSON object.
var ErrInvalidPayload = apperror.ValidationError("file", "invalid file: expected a JSON object")

type ExportData struct {
	Debts      []model.Debt      `json:"debts"`
	FixedBills []model.FixedBill `json:"fixedBills"`
	Incomes    []model.Income    `json:"incomes"`
	ExportDate time.Time         `json:"exportDate"`
	Version    string            `json:"version"`
}

// Export snapshots the three collections as-is.
func Export(debts []model.Debt, bills []model.FixedBill, incomes []model.Income, now time.Time) ExportData {
	return ExportData{
		Debts:      orEmpty(debts),
		FixedBills: orEmpty(bills),
		Incomes:    orEmpty(incomes),
		ExportDate: now,
		Version:    Version,
	}
}

// Normalize decodes an import payload. Missing or non-array collections
// become empty, unknown fields are ignored and records without an id get a
// new one. exportDate and version default to now and Version.
func Normalize(raw []byte, now time.Time) (ExportData, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return ExportData{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	// The payload must be exactly one JSON value.
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return ExportData{}, fmt.Errorf("%w: trailing data after the backup object", ErrInvalidPayload)
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return ExportData{}, ErrInvalidPayload
	}

	data := ExportData{
		Debts:      []model.Debt{},
		FixedBills: []model.FixedBill{},
		Incomes:    []model.Income{},
		ExportDate: now,
		Version:    Version,
	}
	if toBool(obj["exportDate"]) {
		if t := toTime(obj["exportDate"]); !t.IsZero() {
			data.ExportDate = t
		}
	}
	if v := toString(obj["version"]); v != "" {
		data.Version = v
	}

	if items, ok := obj["debts"].([]any); ok {
		for _, item := range items {
			data.Debts = append(data.Debts, normalizeDebt(toObject(item)))
		}
	}
	if items, ok := obj["fixedBills"].([]any); ok {
		for _, item := range items {
			data.FixedBills = append(data.FixedBills, normalizeFixedBill(toObject(item)))
		}
	}
	if items, ok := obj["incomes"].([]any); ok {
		for _, item := range items {
			data.Incomes = append(data.Incomes, normalizeIncome(toObject(item)))
		}
	}

	return data, nil
}

func normalizeDebt(m map[string]any) model.Debt {
	installments := toObject(m["installments"])
	return model.Debt{
		ID:              idOrNew(m["id"]),
		Name:            toString(m["name"]),
		Category:        model.DebtCategory(toString(m["category"])),
		TotalAmount:     toDecimal(m["totalAmount"]),
		RemainingAmount: toDecimal(m["remainingAmount"]),
		InterestRate:    toDecimal(m["interestRate"]),
		DueDate:         toTime(m["dueDate"]),
		Installments: model.Installments{
			Total: toInt(installments["total"], 0),
			Paid:  toInt(installments["paid"], 0),
		},
		MinimumPayment: toDecimal(m["minimumPayment"]),
		Creditor:       toString(m["creditor"]),
	}
}

func normalizeFixedBill(m map[string]any) model.FixedBill {
	return model.FixedBill{
		ID:           idOrNew(m["id"]),
		Name:         toString(m["name"]),
		Category:     model.FixedBillCategory(toString(m["category"])),
		Amount:       toDecimal(m["amount"]),
		DueDay:       toInt(m["dueDay"], 1),
		IsPaid:       toBool(m["isPaid"]),
		LastPaidDate: toOptionalTime(m["lastPaidDate"]),
		Provider:     toString(m["provider"]),
		Description:  toString(m["description"]),
		IsRecurring:  toBool(m["isRecurring"]),
	}
}

func normalizeIncome(m map[string]any) model.Income {
	return model.Income{
		ID:           idOrNew(m["id"]),
		Name:         toString(m["name"]),
		Category:     model.IncomeCategory(toString(m["category"])),
		Amount:       toDecimal(m["amount"]),
		Frequency:    model.IncomeFrequency(toString(m["frequency"])),
		ReceivedDate: toTime(m["receivedDate"]),
		ExpectedDate: toOptionalTime(m["expectedDate"]),
		IsReceived:   toBool(m["isReceived"]),
		Source:       toString(m["source"]),
		Description:  toString(m["description"]),
		IsRecurring:  toBool(m["isRecurring"]),
	}
}

func idOrNew(v any) string {
	if id := toString(v); id != "" {
		return id
	}
	return uuid.NewString()
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
