package cmd

import (
	"github.com/spf13/cobra"

	"smsledger/internal/store"
)

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored ledger data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(cmd.Context(), a.cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Clear(cmd.Context()); err != nil {
				return err
			}
			printf(cmd, "Ledger data cleared.\n")
			return nil
		},
	}
}
