package cmd

import (
	"fmt"

	"github.com/rustyeddy/intraday/calc"
	"github.com/spf13/cobra"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Sample net P/L between stop-loss and target",
	Long: `Project the trade at evenly spaced exit prices from the stop-loss
price to the target price.

A short position has its target below its stop, which leaves that range
empty; pass --around to sample between the lower and higher level instead.

Examples:
  intraday curve -s INFY -e 1500 -q 20
  intraday curve -s TCS -d short -e 3500 -q 2 --around --steps 10`,
	RunE: runCurve,
}

var (
	curveTrade  tradeFlags
	curveSteps  int
	curveAround bool
	curveJSON   bool
)

func init() {
	rootCmd.AddCommand(curveCmd)
	curveTrade.register(curveCmd)
	curveCmd.Flags().IntVar(&curveSteps, "steps", 0, "number of steps (default from config)")
	curveCmd.Flags().BoolVar(&curveAround, "around", false, "sample between the lower and higher of stop-loss and target")
	curveCmd.Flags().BoolVar(&curveJSON, "json", false, "print JSON")
}

func runCurve(cmd *cobra.Command, args []string) error {
	in, s, err := curveTrade.resolve(cmd)
	if err != nil {
		return err
	}
	e := calc.New(in, s)

	steps := cfg.Simulation.CurveSteps
	if cmd.Flags().Changed("steps") {
		steps = curveSteps
	}

	var pts []calc.CurvePoint
	if curveAround {
		pts = e.CurveAround(steps)
	} else {
		pts = e.Curve(steps)
	}

	out := cmd.OutOrStdout()
	if curveJSON {
		return writeJSON(out, pts)
	}
	if len(pts) == 0 {
		fmt.Fprintf(out, "empty range: target %.2f is not above stop-loss %.2f\n", e.Levels.TargetPrice, e.Levels.StopLossPrice)
		return nil
	}
	return printCurve(out, pts)
}
