// Package money centralizes rounding of monetary amounts. All amounts are
// Kenyan shillings with two decimal places; rounding is banker's rounding
// (round half to even) so repeated aggregation does not drift.
package money

import "github.com/shopspring/decimal"

// Round normalizes an amount to two decimal places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// Sum rounds the total of the given amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return Round(total)
}

// Mul rounds the product of two amounts.
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return Round(a.Mul(b))
}

// Sub rounds the difference a - b.
func Sub(a, b decimal.Decimal) decimal.Decimal {
	return Round(a.Sub(b))
}
