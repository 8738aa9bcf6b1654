package persistence

import (
	"github.com/shopspring/decimal"
)

// parseDecimal converts a numeric column scanned as text into a decimal
func parseDecimal(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}
