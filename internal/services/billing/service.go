package billing

import "math"

// RoundCurrency rounds a monetary value to 2 decimal places, half away from
// zero. This is the single rounding boundary for all persisted amounts.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals derives the VAT amount and grand total of an invoice from its
// subtotal and integer VAT percentage:
//
//	vatAmount = subTotal * vatRate / 100
//	total     = subTotal + vatAmount
//
// The rate is not range-validated; whatever percentage the caller stored is
// applied as-is.
func ComputeTotals(subTotal float64, vatRate int) (vatAmount, total float64) {
	vatAmount = RoundCurrency(subTotal * float64(vatRate) / 100)
	total = RoundCurrency(subTotal + vatAmount)
	return vatAmount, total
}
