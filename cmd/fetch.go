package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smsledger/internal/inbox"
	"smsledger/internal/models"
	"smsledger/internal/writer"
)

// inboxFlags are shared by fetch and import.
type inboxFlags struct {
	format    string
	sender    string
	startDate string
	yes       bool
}

func (f *inboxFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "", "Inbox format: xml or json (detected from the file extension if omitted)")
	cmd.Flags().StringVarP(&f.sender, "sender", "s", "", "Filter by sender address, XML only (e.g., 'VM-HDFCBK')")
	cmd.Flags().StringVarP(&f.startDate, "from", "f", "", "Only messages from this date onwards (format: YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "Allow reading messages without asking")
}

func newFetchCmd(a *app) *cobra.Command {
	var (
		flags     inboxFlags
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "fetch <inbox-file>",
		Short: "List transaction candidates found in an exported SMS inbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := a.fetchCandidates(cmd, args[0], &flags)
			if err != nil {
				return err
			}

			for _, c := range candidates {
				printf(cmd, "%s  %-7s %12s  %s\n",
					c.Time().Format("2006-01-02 15:04"), c.Kind, c.Amount.StringFixed(2), c.Counterparty)
			}
			printf(cmd, "%d transaction(s) found.\n", len(candidates))

			if outputDir == "" || len(candidates) == 0 {
				return nil
			}
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			files, err := writer.New(outputDir).Write(candidates)
			if err != nil {
				return fmt.Errorf("failed to write transactions: %w", err)
			}
			for _, f := range files {
				printf(cmd, "Created %s.\n", f)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Also write CSV files to this directory (created if not exists)")
	return cmd
}

// fetchCandidates wires the inbox service for path and runs one fetch.
// Only flag errors are returned; inbox problems show up as fewer candidates.
func (a *app) fetchCandidates(cmd *cobra.Command, path string, f *inboxFlags) ([]models.ParsedCandidate, error) {
	since, err := parseSince(f.startDate)
	if err != nil {
		return nil, err
	}

	source, err := newSource(path, f.format, firstNonEmpty(f.sender, a.cfg.Sender))
	if err != nil {
		return nil, err
	}

	var prompter inbox.Prompter = inbox.TerminalPrompter{Source: filepath.Base(path)}
	if f.yes {
		prompter = inbox.AutoPrompter(true)
	}

	svc := inbox.NewService(source, inbox.NewGate(prompter))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !f.yes && !svc.RequestAccess(ctx) {
		printf(cmd, "SMS access was not granted; automatic capture is off.\n")
		return nil, nil
	}
	return svc.FetchCandidates(ctx, since), nil
}

func newSource(path, format, sender string) (inbox.MessageSource, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch format {
	case "xml":
		return inbox.NewXMLBackupSource(path, sender), nil
	case "json":
		return inbox.NewJSONDumpSource(path), nil
	default:
		return nil, fmt.Errorf("unsupported inbox format %q (use --format xml or json)", format)
	}
}

func parseSince(startDate string) (int64, error) {
	if startDate == "" {
		return 0, nil
	}
	t, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
	if err != nil {
		return 0, fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
	}
	return t.UnixMilli(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
