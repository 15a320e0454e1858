package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"smsledger/internal/models"
)

// Writer handles CSV file writing
type Writer struct {
	outputDir string
}

// New creates a new Writer instance
func New(outputDir string) *Writer {
	return &Writer{
		outputDir: outputDir,
	}
}

// GroupName is the CSV file (without extension) a candidate is written to.
func GroupName(c models.ParsedCandidate) string {
	if c.AccountSuffix == "" {
		return "SMS_Unmatched"
	}
	return "SMS_Account_" + c.AccountSuffix
}

// Write writes candidates to one CSV file per account suffix and returns
// the created file paths.
func (w *Writer) Write(candidates []models.ParsedCandidate) ([]string, error) {
	grouped := make(map[string][]models.ParsedCandidate)
	for _, c := range candidates {
		name := GroupName(c)
		grouped[name] = append(grouped[name], c)
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	files := make([]string, 0, len(names))
	for _, name := range names {
		group := grouped[name]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].OccurredAt < group[j].OccurredAt
		})

		filename := filepath.Join(w.outputDir, name+".csv")
		if err := w.writeCSVFile(filename, group); err != nil {
			return files, err
		}
		files = append(files, filename)
	}

	return files, nil
}

var headers = []string{"date", "counterparty", "amount", "type", "account", "note"}

// writeCSVFile writes a single CSV file
func (w *Writer) writeCSVFile(filename string, candidates []models.ParsedCandidate) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", filename, err)
	}
	defer file.Close()

	// Write BOM for UTF-8
	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("error writing BOM to %s: %w", filename, err)
	}

	writer := csv.NewWriter(file)
	writer.Comma = ';'

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("error writing header to %s: %w", filename, err)
	}

	for _, c := range candidates {
		amount := c.Amount
		if c.Kind == models.KindExpense {
			amount = amount.Neg()
		}
		record := []string{
			c.Time().Format("2006-01-02 15:04:05"),
			c.Counterparty,
			amount.StringFixed(2),
			string(c.Kind),
			c.AccountSuffix,
			c.SourceText,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing transaction to %s: %w", filename, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing writer for %s: %w", filename, err)
	}

	return nil
}
