package internal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/VitaBrrevis/orders-export/internal/model"
)

const timestampLayout = "2006-01-02 15:04"

// ParseAmount reads a wire-format decimal string. Empty or unparseable input
// is absent, never zero and never an error.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// FormatAmount renders a parsed amount with exactly two decimal places.
// Absent amounts render as the empty string.
func FormatAmount(d decimal.Decimal, ok bool) string {
	if !ok {
		return ""
	}
	return d.StringFixed(2)
}

// FormatTimestampUTC renders an ISO-8601 timestamp as "YYYY-MM-DD HH:MM UTC"
// using UTC calendar fields. Input that does not parse renders as the empty
// string.
func FormatTimestampUTC(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return t.UTC().Format(timestampLayout) + " UTC"
}

func MoneyAmount(m *model.Money) (decimal.Decimal, bool) {
	if m == nil {
		return decimal.Decimal{}, false
	}
	return ParseAmount(m.Amount)
}
