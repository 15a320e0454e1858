package utils

import (
	"regexp"
	"strings"
)

// gateway prefixes that banks put in front of the merchant name
var counterpartyPrefixes = []string{
	"UPI-", "UPI/", "UPI ", "POS ", "POS-", "VPS*", "IPS*", "ECOM ",
	"PAYTM*", "RAZORPAY*", "RAZ*", "PAYU*", "CCAVENUE*", "BILLDESK*",
	"NEFT-", "IMPS-", "ATW-", "NWD-",
}

var trailingDigitsPattern = regexp.MustCompile(`\s*\d+$`)

// CleanCounterparty removes payment gateway prefixes and trailing digits.
func CleanCounterparty(raw string) string {
	if raw == "" {
		return ""
	}

	clean := strings.TrimSpace(raw)
	for _, p := range counterpartyPrefixes {
		if strings.HasPrefix(strings.ToUpper(clean), p) {
			clean = strings.TrimSpace(clean[len(p):])
			break
		}
	}

	clean = trailingDigitsPattern.ReplaceAllString(clean, "")

	return strings.TrimSpace(clean)
}

var nonWordPattern = regexp.MustCompile(`[^a-z0-9]+`)

// words lower-cases text and collapses everything but letters and digits to
// single spaces, padded so " kw " only matches whole words.
func words(text string) string {
	return " " + strings.TrimSpace(nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")) + " "
}

// ContainsWord checks if text contains any of the keywords as whole words.
// Multi-word keywords match across any run of spaces or punctuation.
func ContainsWord(text string, keywords ...string) bool {
	padded := words(text)
	for _, keyword := range keywords {
		kw := strings.TrimSpace(words(keyword))
		if kw != "" && strings.Contains(padded, " "+kw+" ") {
			return true
		}
	}
	return false
}
