package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/intraday/calc"
	"github.com/rustyeddy/intraday/internal/format"
	"github.com/rustyeddy/intraday/journal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Commit a simulated trade to the history",
	Long: `Project the trade at the given exit price and append the result to the
trade history configured under journal.

Example:
  intraday log -s RELIANCE -e 2500 -q 10 --exit 2550`,
	RunE: runLog,
}

var (
	logTrade tradeFlags
	logExit  float64
)

func init() {
	rootCmd.AddCommand(logCmd)
	logTrade.register(logCmd)
	logCmd.Flags().Float64VarP(&logExit, "exit", "x", 0, "final market price (required)")
	logCmd.MarkFlagRequired("exit")
}

func runLog(cmd *cobra.Command, args []string) error {
	in, s, err := logTrade.resolve(cmd)
	if err != nil {
		return err
	}

	store, err := openJournal()
	if err != nil {
		return err
	}
	defer store.Close()

	entry := journal.NewEntry(calc.New(in, s), logExit, time.Now())
	entry, err = store.Append(cmd.Context(), entry)
	if err != nil {
		return fmt.Errorf("append: %w", err)
	}

	log.Info("trade logged",
		zap.String("id", entry.ID),
		zap.Int64("seq", entry.Seq),
		zap.String("stock", entry.Stock),
		zap.Float64("net_pnl", entry.NetPnl))

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Logged #%d %s %s: net P/L %s\n",
		entry.Seq, entry.Stock, entry.Direction, format.Money(entry.NetPnl))
	return nil
}
