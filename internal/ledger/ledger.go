package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"smsledger/internal/categorizer"
	"smsledger/internal/models"
)

// SourceSMS marks transactions created from captured messages.
const SourceSMS = "sms"

// Store is the persistence the importer needs.
type Store interface {
	Load(ctx context.Context) (*models.AppData, error)
	Save(ctx context.Context, data *models.AppData) error
}

// Result summarizes one import.
type Result struct {
	Added      []models.Transaction
	Duplicates int
}

// Importer turns accepted candidates into persisted transactions.
type Importer struct {
	store          Store
	categorizer    *categorizer.Categorizer
	defaultAccount string
	log            *log.Logger
}

// NewImporter creates an Importer. Candidates whose account suffix matches no
// known account are booked to defaultAccount, which is created on demand.
func NewImporter(store Store, c *categorizer.Categorizer, defaultAccount string, logger *log.Logger) *Importer {
	return &Importer{
		store:          store,
		categorizer:    c,
		defaultAccount: defaultAccount,
		log:            logger,
	}
}

// Import appends new candidates to the stored data and saves it once.
// A candidate already imported (same timestamp and text) is skipped.
func (im *Importer) Import(ctx context.Context, candidates []models.ParsedCandidate) (*Result, error) {
	data, err := im.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load app data: %w", err)
	}
	if data == nil {
		data = &models.AppData{}
	}

	seen := make(map[string]bool, len(data.Transactions))
	for _, tx := range data.Transactions {
		if tx.Source == SourceSMS {
			seen[signature(tx.OccurredAt, tx.Note)] = true
		}
	}

	result := &Result{}
	for _, c := range candidates {
		sig := signature(c.OccurredAt, c.SourceText)
		if seen[sig] {
			result.Duplicates++
			continue
		}
		seen[sig] = true

		tx := models.Transaction{
			ID:           uuid.New(),
			AccountID:    im.bindAccount(data, c.AccountSuffix),
			Amount:       c.Amount,
			Kind:         c.Kind,
			Category:     im.categorizer.Categorize(c.Kind, c.Counterparty, c.SourceText),
			Counterparty: c.Counterparty,
			OccurredAt:   c.OccurredAt,
			Note:         c.SourceText,
			Source:       SourceSMS,
		}
		data.Transactions = append(data.Transactions, tx)
		result.Added = append(result.Added, tx)
	}

	if len(result.Added) == 0 {
		im.log.Info("nothing new to import", "duplicates", result.Duplicates)
		return result, nil
	}

	if err := im.store.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save app data: %w", err)
	}

	im.log.Info("imported sms transactions", "added", len(result.Added), "duplicates", result.Duplicates)
	return result, nil
}

// bindAccount picks the account whose suffix matches, else the default one.
func (im *Importer) bindAccount(data *models.AppData, suffix string) string {
	if suffix != "" {
		for _, acc := range data.Accounts {
			if acc.Suffix != "" && (strings.HasSuffix(acc.Suffix, suffix) || strings.HasSuffix(suffix, acc.Suffix)) {
				return acc.ID
			}
		}
	}

	for _, acc := range data.Accounts {
		if strings.EqualFold(acc.Name, im.defaultAccount) {
			return acc.ID
		}
	}

	acc := models.Account{ID: uuid.NewString(), Name: im.defaultAccount}
	data.Accounts = append(data.Accounts, acc)
	im.log.Debug("created default account", "name", acc.Name)
	return acc.ID
}

func signature(occurredAt int64, text string) string {
	return fmt.Sprintf("%d|%s", occurredAt, text)
}
