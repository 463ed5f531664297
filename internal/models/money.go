package models

import "github.com/shopspring/decimal"

// SumItems returns Σ price×quantity rounded to cents.
// Decimal arithmetic keeps 299.90×3 at exactly 899.70.
func SumItems(items []CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2).InexactFloat64()
}

// ToMinorUnits converts an amount in reais to centavos.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
