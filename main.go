package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/robertncl/expense/internal/backend"
	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/cli"
	"github.com/robertncl/expense/internal/cli/shell"
	"github.com/robertncl/expense/internal/config"
	"github.com/robertncl/expense/internal/ledger"
	"github.com/robertncl/expense/internal/logger"
)

var (
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record, edit, filter and chart the expenses of one session",
	Long: `expense starts an interactive session over an empty ledger.
Every expense lives only for the duration of the session.
Type 'help' at the prompt to list the commands.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "expense.toml", "Configuration file (TOML or YAML)")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before the configuration")
}

func runSession(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	conf, err := config.Parse(configPath)
	if err != nil {
		return fmt.Errorf("unable to parse the configuration: %w", err)
	}

	log := logger.New(conf.Logger)

	matcher, err := category.NewMatcher(conf.Rules)
	if err != nil {
		return fmt.Errorf("invalid category rules: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := backend.New(ctx, conf.Storage, log)
	if err != nil {
		return fmt.Errorf("unable to open storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Error("Unable to close storage", "error", closeErr)
		}
	}()

	session := cli.NewSession(ledger.New(store), matcher, conf.Display, cmd.OutOrStdout(), log)

	return shell.New(session, cmd.InOrStdin()).Run(ctx)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "expense: %s\n", err)
		os.Exit(1)
	}
}
