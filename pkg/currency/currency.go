// Package currency formats monetary amounts for display.
// All monetary amounts are stored as decimal.Decimal to avoid floating-point errors;
// there is no conversion between currencies.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents an ISO 4217 currency code.
type Currency string

// Supported currencies.
const (
	BRL Currency = "BRL" // Brazilian Real
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	JPY Currency = "JPY" // Japanese Yen
)

// DefaultCurrency is the display currency when none is configured.
const DefaultCurrency = BRL

// CurrencyInfo contains metadata about a currency.
type CurrencyInfo struct {
	Code          Currency
	Name          string
	Symbol        string
	DecimalPlaces int    // Number of decimal places (e.g., 2 for USD, 0 for JPY)
	SymbolBefore  bool   // Whether symbol appears before amount
	ThousandsSep  string // Thousands separator
	DecimalSep    string // Decimal separator
}

var currencies = map[Currency]CurrencyInfo{
	BRL: {Code: BRL, Name: "Brazilian Real", Symbol: "R$ ", DecimalPlaces: 2, SymbolBefore: true, ThousandsSep: ".", DecimalSep: ","},
	USD: {Code: USD, Name: "US Dollar", Symbol: "$", DecimalPlaces: 2, SymbolBefore: true, ThousandsSep: ",", DecimalSep: "."},
	EUR: {Code: EUR, Name: "Euro", Symbol: " €", DecimalPlaces: 2, SymbolBefore: false, ThousandsSep: ".", DecimalSep: ","},
	GBP: {Code: GBP, Name: "British Pound", Symbol: "£", DecimalPlaces: 2, SymbolBefore: true, ThousandsSep: ",", DecimalSep: "."},
	JPY: {Code: JPY, Name: "Japanese Yen", Symbol: "¥", DecimalPlaces: 0, SymbolBefore: true, ThousandsSep: ",", DecimalSep: "."},
}

// IsValid checks if a currency code is supported.
func IsValid(code string) bool {
	_, ok := currencies[Currency(code)]
	return ok
}

// GetInfo returns metadata for a currency code.
func GetInfo(code Currency) (CurrencyInfo, bool) {
	info, ok := currencies[code]
	return info, ok
}

// Money represents a monetary amount with currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney creates a new Money value.
func NewMoney(amount decimal.Decimal, curr Currency) Money {
	if curr == "" {
		curr = DefaultCurrency
	}
	return Money{Amount: amount, Currency: curr}
}

// Format returns the amount with symbol, grouping and decimal separators of the currency.
func (m Money) Format() string {
	info, ok := GetInfo(m.Currency)
	if !ok {
		return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
	}

	places := int32(info.DecimalPlaces)
	fixed := m.Amount.Abs().StringFixed(places)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	number := groupThousands(intPart, info.ThousandsSep)
	if places > 0 {
		number += info.DecimalSep + fracPart
	}

	sign := ""
	if m.Amount.Round(places).IsNegative() {
		sign = "-"
	}

	if info.SymbolBefore {
		return sign + info.Symbol + number
	}
	return sign + number + info.Symbol
}

// String returns the amount rounded to the currency's decimal places.
func (m Money) String() string {
	info, ok := GetInfo(m.Currency)
	if !ok {
		return m.Amount.String()
	}
	return m.Amount.Round(int32(info.DecimalPlaces)).String()
}

// Format is a shorthand for NewMoney(amount, curr).Format().
func Format(amount decimal.Decimal, curr Currency) string {
	return NewMoney(amount, curr).Format()
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
