// Package pricing converts the integer cent amounts stored on catalog and
// payment records into display values. All arithmetic stays in integers so
// totals never drift.
package pricing

import "fmt"

// FormatCents renders an amount of cents as a plain two-decimal string,
// e.g. 461 -> "4.61". No currency symbol, no grouping separators.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// OrderTotal computes the total price in cents for an order of quantity
// memberships at unitCents each.
func OrderTotal(unitCents int64, quantity int) int64 {
	return unitCents * int64(quantity)
}
