package calc

import "github.com/rustyeddy/intraday/charges"

// DefaultCurveSteps gives 51 sample points.
const DefaultCurveSteps = 50

// CurvePoint is one sample of the P/L curve, rounded for display.
type CurvePoint struct {
	Price  float64 `json:"price" yaml:"price"`
	NetPnl float64 `json:"net_pnl" yaml:"net_pnl"`
}

// Curve samples net P/L from the stop-loss price to the target price in
// steps equal increments. When the target is not above the stop (any
// short position, or a zero-width range) the result is empty.
func Curve(in TradeInput, s charges.Schedule, lv DerivedLevels, steps int) []CurvePoint {
	return CurveBetween(in, s, lv, lv.StopLossPrice, lv.TargetPrice, steps)
}

// CurveBetween samples net P/L over [lo, hi]. It returns an empty slice
// if hi <= lo or steps <= 0.
func CurveBetween(in TradeInput, s charges.Schedule, lv DerivedLevels, lo, hi float64, steps int) []CurvePoint {
	if !(hi > lo) || steps <= 0 {
		return []CurvePoint{}
	}

	step := (hi - lo) / float64(steps)
	out := make([]CurvePoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		price := lo + float64(i)*step
		if i == steps {
			price = hi
		}
		p := Project(in, s, lv, price)
		out = append(out, CurvePoint{
			Price:  Round2(price),
			NetPnl: Round2(p.NetPnl),
		})
	}
	return out
}
