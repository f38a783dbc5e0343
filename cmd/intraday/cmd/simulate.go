package cmd

import (
	"github.com/rustyeddy/intraday/calc"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Show levels and P/L at an exit price",
	Long: `Derive stop-loss, target and risk/reward for a trade and project its
profit and loss at a simulated exit price.

Flags override the trade in the config file. The exit price defaults to
the entry price.

Examples:
  intraday simulate -s RELIANCE -e 2500 -q 10 --exit 2550
  intraday simulate -s TCS -d short -e 3500 -q 2 --sl 1 --tp 2 --exit 3450
  intraday simulate -c my-trade.yaml --json`,
	RunE: runSimulate,
}

var (
	simulateTrade tradeFlags
	simulateExit  float64
	simulateJSON  bool
)

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateTrade.register(simulateCmd)
	simulateCmd.Flags().Float64VarP(&simulateExit, "exit", "x", 0, "simulated exit price (default entry price)")
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "print JSON")
}

type simulation struct {
	Trade     calc.TradeInput    `json:"trade"`
	Levels    calc.DerivedLevels `json:"levels"`
	ExitPrice float64            `json:"exit_price"`
	Pnl       calc.PnlBreakdown  `json:"pnl"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	in, s, err := simulateTrade.resolve(cmd)
	if err != nil {
		return err
	}
	e := calc.New(in, s)

	exit := in.EntryPrice
	if cmd.Flags().Changed("exit") {
		exit = simulateExit
	}
	p := e.Project(exit)

	out := cmd.OutOrStdout()
	if simulateJSON {
		return writeJSON(out, simulation{Trade: in, Levels: e.Levels, ExitPrice: exit, Pnl: p})
	}
	printLevels(out, e)
	printPnl(out, exit, p)
	return nil
}
