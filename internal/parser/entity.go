package parser

import (
	"regexp"
	"strings"

	"smsledger/internal/models"
)

var (
	// A/c XX9876, account no. **4321, Card x1234; the digits must not run
	// on into a date like "card 2024-01-05"
	accountSuffixPattern = regexp.MustCompile(`(?i)\b(?:a/c|account|card)\s*(?:no\.?)?\s*[x*]*(\d{3,4})(?:$|[^\w/-])`)

	// "to AMAZON on 12-12-24", "at Big Bazaar. Avl bal", "via UPI ref 1234"
	expenseCounterpartyPattern = regexp.MustCompile(`(?i)\b(?:at|to|via)\s+([a-z0-9 .]+?)(?:\s+(?:on|date|ref|bal|available)\b|$)`)

	// "from RAHUL SHARMA", "by NEFT ref 991"
	incomeCounterpartyPattern = regexp.MustCompile(`(?i)\b(?:from|by)\s+([a-z0-9 .]+?)(?:\s+(?:on|date|ref|bal)\b|$)`)
)

// ExtractAccountSuffix returns the trailing digits of a masked account or
// card number, or "" when the body carries none.
func ExtractAccountSuffix(body string) string {
	match := accountSuffixPattern.FindStringSubmatch(body)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

// ExtractCounterparty returns the merchant (expense) or payer (income) named
// in body, falling back to a fixed label when no name is found.
func ExtractCounterparty(body string, kind models.Kind) string {
	pattern, fallback := expenseCounterpartyPattern, models.FallbackExpenseCounterparty
	if kind == models.KindIncome {
		pattern, fallback = incomeCounterpartyPattern, models.FallbackIncomeCounterparty
	}

	match := pattern.FindStringSubmatch(body)
	if len(match) < 2 {
		return fallback
	}
	if name := strings.TrimSpace(match[1]); name != "" {
		return name
	}
	return fallback
}
