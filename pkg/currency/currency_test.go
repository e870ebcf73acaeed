package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("BRL"))
	assert.True(t, IsValid("USD"))
	assert.False(t, IsValid("XYZ"))
	assert.False(t, IsValid(""))
}

func TestNewMoney_DefaultCurrency(t *testing.T) {
	m := NewMoney(decimal.NewFromInt(10), "")
	assert.Equal(t, DefaultCurrency, m.Currency)
}

func TestMoney_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount string
		curr   Currency
		want   string
	}{
		{name: "BRL with grouping", amount: "1234.5", curr: BRL, want: "R$ 1.234,50"},
		{name: "BRL millions", amount: "1234567.891", curr: BRL, want: "R$ 1.234.567,89"},
		{name: "BRL small", amount: "12", curr: BRL, want: "R$ 12,00"},
		{name: "BRL negative", amount: "-950.1", curr: BRL, want: "-R$ 950,10"},
		{name: "USD", amount: "1000", curr: USD, want: "$1,000.00"},
		{name: "EUR symbol after", amount: "99.999", curr: EUR, want: "100,00 €"},
		{name: "JPY no decimals", amount: "1500.4", curr: JPY, want: "¥1,500"},
		{name: "unknown currency", amount: "5", curr: "XYZ", want: "5.00 XYZ"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, NewMoney(amount, tt.curr).Format())
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "10.46", NewMoney(decimal.RequireFromString("10.456"), USD).String())
	assert.Equal(t, "10", NewMoney(decimal.RequireFromString("10.4"), JPY).String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "R$ 0,00", Format(decimal.Zero, BRL))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1", groupThousands("1", ","))
	assert.Equal(t, "123", groupThousands("123", ","))
	assert.Equal(t, "1,234", groupThousands("1234", ","))
	assert.Equal(t, "123,456", groupThousands("123456", ","))
	assert.Equal(t, "1,234,567", groupThousands("1234567", ","))
}
