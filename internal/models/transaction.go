package models

import (
	"encoding/xml"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the direction of money in a transaction
type Kind string

// Kind constants
const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

// Counterparty fallbacks used when no name can be extracted
const (
	FallbackExpenseCounterparty = "SMS Transaction"
	FallbackIncomeCounterparty  = "Deposit/Transfer"
)

// Category constants
const (
	CatFood      = "Food & Drink"
	CatShopping  = "Shopping"
	CatHousing   = "Housing"
	CatTransport = "Transportation"
	CatLife      = "Life & Entertainment"
	CatComms     = "Communication, PC"
	CatFinancial = "Financial expenses"
	CatIncome    = "Income"
	CatGeneral   = "General"
)

// RawMessage is a single inbox message as handed to the parser
type RawMessage struct {
	Body            string
	TimestampMillis int64
}

// ParsedCandidate is a transaction inferred from a message, not yet persisted
type ParsedCandidate struct {
	Amount        decimal.Decimal `json:"amount"`
	Kind          Kind            `json:"kind"`
	OccurredAt    int64           `json:"occurredAt"`
	AccountSuffix string          `json:"accountSuffix,omitempty"`
	Counterparty  string          `json:"counterparty"`
	SourceText    string          `json:"sourceText"`
}

// Time returns OccurredAt as a local time.
func (c ParsedCandidate) Time() time.Time {
	return time.UnixMilli(c.OccurredAt)
}

// SMS represents a single SMS message from the XML backup
type SMS struct {
	Address string `xml:"address,attr"`
	Body    string `xml:"body,attr"`
	Date    string `xml:"date,attr"`
}

// SMSBackup represents the root of the XML document
type SMSBackup struct {
	XMLName xml.Name `xml:"smses"`
	SMS     []SMS    `xml:"sms"`
}

// Account is a user-defined place money lives in
type Account struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Suffix string `json:"suffix,omitempty"`
}

// Transaction is a persisted income or expense record
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	AccountID    string          `json:"accountId"`
	Amount       decimal.Decimal `json:"amount"`
	Kind         Kind            `json:"kind"`
	Category     string          `json:"category"`
	Counterparty string          `json:"counterparty"`
	OccurredAt   int64           `json:"occurredAt"`
	Note         string          `json:"note,omitempty"`
	Source       string          `json:"source"`
}

// AppData is the whole persisted application state
type AppData struct {
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
