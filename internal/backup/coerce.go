package backup

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthpath/finance-tracker/pkg/datetime"
)

// Lenient coercion of decoded JSON values. Nothing here fails: a value that
// cannot be converted becomes the zero value of the target (or the given
// fallback), so one bad field never blocks an import. Inputs come from a
// decoder with UseNumber, so numbers arrive as json.Number.

// toDecimal mirrors Number(v) || 0.
func toDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(x.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(x)); err == nil {
			return d
		}
	case bool:
		if x {
			return decimal.NewFromInt(1)
		}
	}
	return decimal.Zero
}

// toInt truncates the coerced number; zero yields fallback.
func toInt(v any, fallback int) int {
	n := int(toDecimal(v).IntPart())
	if n == 0 {
		return fallback
	}
	return n
}

// toBool follows JavaScript truthiness.
func toBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	case string:
		return x != ""
	default:
		return true
	}
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// toTime parses ISO-8601 strings, date-only strings and epoch milliseconds.
// Anything else is the zero time.
func toTime(v any) time.Time {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case json.Number:
		s = x.String()
		if f, err := x.Float64(); err == nil && strings.ContainsAny(s, ".eE") {
			return time.UnixMilli(int64(f)).UTC()
		}
	default:
		return time.Time{}
	}

	t, ok := datetime.ParseFlexible(s)
	if !ok {
		return time.Time{}
	}
	return t
}

// toOptionalTime is nil for falsy or unparsable values.
func toOptionalTime(v any) *time.Time {
	if !toBool(v) {
		return nil
	}
	t := toTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}

func toObject(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
