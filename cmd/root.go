package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"smsledger/internal/config"
	"smsledger/internal/logger"
)

// app holds what the subcommands share for one run.
type app struct {
	cfg      *config.Config
	logLevel string
}

// NewRootCmd builds the base command with all subcommands attached.
// Every call returns a fresh tree with its own flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "smsledger",
		Short: "Capture income and expenses from bank SMS notifications",
		Long: `smsledger scans exported SMS inboxes for bank transaction notifications,
turns them into income/expense candidates and books them into a local ledger.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides SMSLEDGER_LOG_LEVEL)")
	root.AddCommand(newParseCmd(), newFetchCmd(a), newImportCmd(a), newResetCmd(a))
	return root
}

// Execute builds the root command and runs it against os.Args.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// setup loads configuration and puts the logger on the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg = config.Load()
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx, logger.New(a.cfg.LogLevel)))
	return nil
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
