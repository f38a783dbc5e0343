package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rustyeddy/intraday/calc"
	"github.com/rustyeddy/intraday/internal/format"
	"github.com/rustyeddy/intraday/journal"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printLevels(w io.Writer, e calc.Engine) {
	in, lv := e.Input, e.Levels
	fmt.Fprintf(w, "%s %s  qty %d @ %s\n", in.Stock, in.Direction, in.Quantity, format.Money(in.EntryPrice))
	fmt.Fprintf(w, "  Stop Loss:   %s (%g%%)\n", format.Money(lv.StopLossPrice), lv.StopLossPercent)
	fmt.Fprintf(w, "  Target:      %s (%g%%)\n", format.Money(lv.TargetPrice), lv.TargetPercent)
	fmt.Fprintf(w, "  Capital:     %s\n", format.Money(lv.PositionValue))
	fmt.Fprintf(w, "  Risk/Reward: %s\n", lv.RiskRewardRatio)
	if p, ok := e.Breakeven(); ok {
		fmt.Fprintf(w, "  Breakeven:   %s\n", format.Money(p))
	}
}

func printPnl(w io.Writer, exit float64, p calc.PnlBreakdown) {
	fmt.Fprintf(w, "\nAt %s\n", format.Money(exit))
	fmt.Fprintf(w, "  Gross P/L:   %s\n", format.Money(p.GrossPnl))
	fmt.Fprintf(w, "  Charges:     %s\n", format.Money(p.TotalCharges))
	fmt.Fprintf(w, "    Brokerage:     %s\n", format.Money(p.Charges.Brokerage))
	fmt.Fprintf(w, "    STT:           %s\n", format.Money(p.Charges.SecuritiesTransactionTax))
	fmt.Fprintf(w, "    Exchange:      %s\n", format.Money(p.Charges.ExchangeFee))
	fmt.Fprintf(w, "    Stamp Duty:    %s\n", format.Money(p.Charges.StampDuty))
	fmt.Fprintf(w, "    GST:           %s\n", format.Money(p.Charges.GoodsAndServicesTax))
	fmt.Fprintf(w, "  Net P/L:     %s (%s)\n", format.Money(p.NetPnl), format.Percent(p.PnlPercent))
}

func printCurve(w io.Writer, pts []calc.CurvePoint) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PRICE\tNET P/L\t")
	for _, p := range pts {
		fmt.Fprintf(tw, "%s\t%s\t\n", format.Number(p.Price), format.Number(p.NetPnl))
	}
	return tw.Flush()
}

func printEntries(w io.Writer, entries []journal.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tSTOCK\tTYPE\tQTY\tENTRY\tEXIT\tNET P/L\tCHARGES")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			e.Seq, e.ID, e.Stock, e.Direction, e.Quantity,
			format.Number(e.EntryPrice), format.Number(e.ExitPrice),
			format.Number(e.NetPnl), format.Number(e.TotalCharges))
	}
	return tw.Flush()
}

func printSummary(w io.Writer, s journal.Summary) error {
	fmt.Fprintf(w, "Trades:        %d (%d won, %d lost, win rate %.0f%%)\n", s.Trades, s.Wins, s.Losses, s.WinRate()*100)
	fmt.Fprintf(w, "Gross P/L:     %s\n", format.Money(s.GrossPnl))
	fmt.Fprintf(w, "Total Charges: %s\n", format.Money(s.TotalCharges))
	fmt.Fprintf(w, "Net P/L:       %s\n", format.Money(s.NetPnl))
	if len(s.Cumulative) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "TRADE\tNET P/L\tCUMULATIVE\t")
	for _, p := range s.Cumulative {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", p.Label, format.Number(p.NetPnl), format.Number(p.Cumulative))
	}
	return tw.Flush()
}
