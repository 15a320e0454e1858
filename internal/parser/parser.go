package parser

import (
	"smsledger/internal/models"
)

// Parse turns a bank SMS into a transaction candidate. It returns false for
// anything that is not a transaction notification or carries no amount;
// that is the common case, not an error.
//
// Parse is pure: the same body and timestamp always give the same result.
func Parse(body string, timestampMillis int64) (*models.ParsedCandidate, bool) {
	if !HasTransactionKeyword(body) {
		return nil, false
	}

	amount, ok := ExtractAmount(body)
	if !ok {
		return nil, false
	}

	kind := Classify(body)

	return &models.ParsedCandidate{
		Amount:        amount,
		Kind:          kind,
		OccurredAt:    timestampMillis,
		AccountSuffix: ExtractAccountSuffix(body),
		Counterparty:  ExtractCounterparty(body, kind),
		SourceText:    body,
	}, true
}

// ParseMessage is Parse for a RawMessage.
func ParseMessage(msg models.RawMessage) (*models.ParsedCandidate, bool) {
	return Parse(msg.Body, msg.TimestampMillis)
}
