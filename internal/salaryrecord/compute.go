package salaryrecord

import "github.com/shopspring/decimal"

// ComputeTotal combines a base salary and an allowance into the record
// total. Both operands are rounded to monetary precision before the
// sum, so the result is stable no matter how the inputs were produced.
func ComputeTotal(base, allowance decimal.Decimal) decimal.Decimal {
	return base.Round(2).Add(allowance.Round(2))
}
