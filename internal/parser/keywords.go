package parser

import (
	"strings"

	"smsledger/internal/models"
)

// transactionKeywords gate which messages are worth parsing at all.
var transactionKeywords = []string{"debit", "credit", "spent", "sent", "received", "paid"}

// incomeKeywords take precedence over any outflow wording in the same body.
var incomeKeywords = []string{"credit", "received", "deposited"}

// HasTransactionKeyword reports whether body mentions any transaction keyword, ignoring case.
func HasTransactionKeyword(body string) bool {
	return containsAny(strings.ToLower(body), transactionKeywords)
}

// Classify returns KindIncome when the body mentions money coming in,
// KindExpense otherwise. A body with both "debited" and "credited" is income.
func Classify(body string) models.Kind {
	if containsAny(strings.ToLower(body), incomeKeywords) {
		return models.KindIncome
	}
	return models.KindExpense
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
