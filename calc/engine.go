package calc

import (
	"math"

	"github.com/rustyeddy/intraday/charges"
)

// Engine bundles a trade, its charge schedule and the levels derived
// from them. It is a plain value: copying it is safe and Project has no
// side effects.
type Engine struct {
	Input    TradeInput       `json:"input" yaml:"input"`
	Schedule charges.Schedule `json:"schedule" yaml:"schedule"`
	Levels   DerivedLevels    `json:"levels" yaml:"levels"`
}

// New derives the levels for in and s.
func New(in TradeInput, s charges.Schedule) Engine {
	return Engine{
		Input:    in,
		Schedule: s,
		Levels:   DeriveLevels(in, s),
	}
}

func (e Engine) Project(exitPrice float64) PnlBreakdown {
	return Project(e.Input, e.Schedule, e.Levels, exitPrice)
}

// Curve samples between the stop-loss and target prices.
func (e Engine) Curve(steps int) []CurvePoint {
	return Curve(e.Input, e.Schedule, e.Levels, steps)
}

// CurveAround samples between the lower and the higher of the two
// levels, so short positions get a curve as well.
func (e Engine) CurveAround(steps int) []CurvePoint {
	lo := math.Min(e.Levels.StopLossPrice, e.Levels.TargetPrice)
	hi := math.Max(e.Levels.StopLossPrice, e.Levels.TargetPrice)
	return CurveBetween(e.Input, e.Schedule, e.Levels, lo, hi, steps)
}

// Breakeven returns the exit price at which net P/L is zero. Net P/L is
// linear in the exit price, so two projections determine it. ok is
// false when the line is flat.
func (e Engine) Breakeven() (price float64, ok bool) {
	p0 := e.Input.EntryPrice
	p1 := p0 + 1
	n0 := e.Project(p0).NetPnl
	n1 := e.Project(p1).NetPnl

	slope := n1 - n0
	if slope == 0 || math.IsNaN(slope) {
		return 0, false
	}
	return p0 - n0/slope, true
}
