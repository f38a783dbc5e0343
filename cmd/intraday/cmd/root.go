package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/intraday/config"
	"github.com/rustyeddy/intraday/internal/logger"
	"github.com/rustyeddy/intraday/journal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "intraday",
	Short: "Intraday equity trade simulator",
	Long: `Intraday simulates a hypothetical equity trade before you place it.

It provides tools for:
  - Stop-loss, target and risk/reward levels from percentage inputs
  - Net P/L at any exit price after brokerage, STT, stamp duty,
    exchange fees and GST
  - A sampled P/L curve between stop-loss and target
  - A local history of committed simulations with CSV, Org and
    share-text exports`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

var (
	cfgFile string
	envFile string

	cfg *config.Config
	log *zap.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON); defaults are used when empty")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with INTRADAY_* overrides")
}

func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}

	if cfgFile != "" {
		c, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
	} else {
		cfg = config.Default()
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config after environment overrides: %w", err)
	}

	l, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	log = l
	log.Debug("config loaded",
		zap.String("file", cfgFile),
		zap.String("journal", cfg.Journal.Type),
		zap.String("journal_path", cfg.Journal.Path))
	return nil
}

func openJournal() (journal.Store, error) {
	s, err := journal.Open(cfg.Journal.Type, cfg.Journal.Path, log)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return s, nil
}
