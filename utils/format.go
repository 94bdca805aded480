package utils

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders $12.50, or "-" when the amount is missing.
func FormatCurrency(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *v)
}

// FormatMoney is FormatCurrency without the placeholder: a missing amount
// yields "".
func FormatMoney(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return ""
	}
	return fmt.Sprintf("$%.2f", *v)
}

// FormatPrice renders US-style amounts with grouping ($1,234.50), or "N/A".
func FormatPrice(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return "N/A"
	}
	sign := ""
	amount := *v
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", amount)
}
