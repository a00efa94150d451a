// Package money holds the currency helpers used for menu prices and order totals.
package money

import "github.com/shopspring/decimal"

// Amounts are serialized as JSON numbers (12.99), not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Places is the number of fractional digits kept for currency amounts.
const Places = 2

// Round rounds half away from zero to currency precision.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// FromFloat converts a float into a currency-rounded decimal.
func FromFloat(f float64) decimal.Decimal {
	return Round(decimal.NewFromFloat(f))
}

// Sum adds the given amounts and rounds the result.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return Round(total)
}
