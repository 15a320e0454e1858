package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches a rupee/MRP marker and the number right after it,
// e.g. "Rs. 1,250.50", "INR 5000", "Rs.500", "₹ 99".
var amountPattern = regexp.MustCompile(`(?i)(?:\b(?:rs\.?|inr|mrp)|₹)\s*(\d[\d,]*(?:\.\d+)?)`)

// ExtractAmount returns the first currency-marked amount in body.
// Only strictly positive amounts are accepted.
func ExtractAmount(body string) (decimal.Decimal, bool) {
	match := amountPattern.FindStringSubmatch(body)
	if len(match) < 2 {
		return decimal.Zero, false
	}

	amount, err := parseAmount(match[1])
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

// parseAmount converts "1,250.50" to 1250.50.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
}
