package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"smsledger/internal/parser"
)

func newParseCmd() *cobra.Command {
	var at int64

	cmd := &cobra.Command{
		Use:   "parse <message-body>",
		Short: "Parse a single SMS body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("at") {
				at = time.Now().UnixMilli()
			}

			c, ok := parser.Parse(args[0], at)
			if !ok {
				printf(cmd, "Not a transaction message.\n")
				return nil
			}

			printf(cmd, "Type:         %s\n", c.Kind)
			printf(cmd, "Amount:       %s\n", c.Amount.StringFixed(2))
			printf(cmd, "Counterparty: %s\n", c.Counterparty)
			if c.AccountSuffix != "" {
				printf(cmd, "Account:      ...%s\n", c.AccountSuffix)
			}
			printf(cmd, "Date:         %s\n", c.Time().Format("2006-01-02 15:04:05"))
			return nil
		},
	}

	cmd.Flags().Int64Var(&at, "at", 0, "Message timestamp in epoch milliseconds (defaults to now)")
	return cmd
}
