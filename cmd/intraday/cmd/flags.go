package cmd

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/intraday/calc"
	"github.com/rustyeddy/intraday/charges"
	"github.com/spf13/cobra"
)

// tradeFlags override the trade and charge schedule from the config.
type tradeFlags struct {
	stock     string
	direction string
	entry     float64
	qty       int
	stopLoss  float64
	target    float64
	preset    string
	overrides []string
}

func (f *tradeFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.stock, "stock", "s", "", "stock symbol")
	fs.StringVarP(&f.direction, "direction", "d", "", "LONG/BUY or SHORT/SELL")
	fs.Float64VarP(&f.entry, "entry", "e", 0, "entry price")
	fs.IntVarP(&f.qty, "qty", "q", 0, "quantity")
	fs.Float64Var(&f.stopLoss, "sl", 0, "stop-loss percent (default 3)")
	fs.Float64Var(&f.target, "tp", 0, "target percent (default 10)")
	fs.StringVar(&f.preset, "preset", "", "charge preset: "+strings.Join(charges.PresetNames(), ", "))
	fs.StringArrayVar(&f.overrides, "charge", nil, "override one charge, e.g. stt=0.025% or buy_brokerage=20 (repeatable)")
}

// resolve merges the flags that were set onto the configured trade and
// validates the result.
func (f *tradeFlags) resolve(cmd *cobra.Command) (calc.TradeInput, charges.Schedule, error) {
	in := cfg.Trade
	s := cfg.Charges
	fs := cmd.Flags()

	if fs.Changed("stock") {
		in.Stock = f.stock
	}
	if fs.Changed("direction") {
		d, err := calc.ParseDirection(f.direction)
		if err != nil {
			return in, s, err
		}
		in.Direction = d
	}
	if fs.Changed("entry") {
		in.EntryPrice = f.entry
	}
	if fs.Changed("qty") {
		in.Quantity = f.qty
	}
	if fs.Changed("sl") {
		in.StopLossPercent = calc.Pct(f.stopLoss)
	}
	if fs.Changed("tp") {
		in.TargetPercent = calc.Pct(f.target)
	}
	if fs.Changed("preset") {
		p, err := charges.Preset(f.preset)
		if err != nil {
			return in, s, err
		}
		s = p
	}
	if fs.Changed("charge") {
		o, err := s.Override(f.overrides...)
		if err != nil {
			return in, s, err
		}
		s = o
	}

	if err := in.Validate(); err != nil {
		return in, s, err
	}
	if err := s.Validate(); err != nil {
		return in, s, fmt.Errorf("charges: %w", err)
	}
	return in, s, nil
}
