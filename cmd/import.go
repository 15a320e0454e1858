package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"smsledger/internal/categorizer"
	"smsledger/internal/ledger"
	"smsledger/internal/logger"
	"smsledger/internal/store"
)

func newImportCmd(a *app) *cobra.Command {
	var flags inboxFlags

	cmd := &cobra.Command{
		Use:   "import <inbox-file>",
		Short: "Book transaction candidates from an exported SMS inbox into the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := a.fetchCandidates(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				printf(cmd, "No transactions to import.\n")
				return nil
			}

			ctx := cmd.Context()
			s, err := store.Open(ctx, a.cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer s.Close()

			im := ledger.NewImporter(s, categorizer.New(), a.cfg.DefaultAccount, logger.FromContext(ctx))
			res, err := im.Import(ctx, candidates)
			if err != nil {
				return fmt.Errorf("failed to import transactions: %w", err)
			}

			for _, tx := range res.Added {
				printf(cmd, "+ %-7s %12s  %-20s %s\n", tx.Kind, tx.Amount.StringFixed(2), tx.Category, tx.Counterparty)
			}
			printf(cmd, "Imported %d transaction(s), skipped %d already imported.\n", len(res.Added), res.Duplicates)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
