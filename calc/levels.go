package calc

import (
	"math"
	"math/big"
	"strconv"

	"github.com/rustyeddy/intraday/charges"
	"github.com/shopspring/decimal"
)

// InfiniteRR is reported when the stop sits at the entry price.
const InfiniteRR = "1:∞"

// DerivedLevels are computed once per trade and schedule and reused
// across projections.
type DerivedLevels struct {
	StopLossPrice   float64 `json:"stop_loss_price" yaml:"stop_loss_price"`
	TargetPrice     float64 `json:"target_price" yaml:"target_price"`
	PositionValue   float64 `json:"position_value" yaml:"position_value"`
	RiskRewardRatio string  `json:"risk_reward_ratio" yaml:"risk_reward_ratio"`

	// Percentages actually used after defaults were applied.
	StopLossPercent float64 `json:"stop_loss_percent" yaml:"stop_loss_percent"`
	TargetPercent   float64 `json:"target_percent" yaml:"target_percent"`
}

// DeriveLevels computes the stop-loss and target prices, the position
// value and the risk/reward ratio. The schedule does not influence the
// levels; it is accepted so callers can treat the pair as one unit.
func DeriveLevels(in TradeInput, _ charges.Schedule) DerivedLevels {
	slPct, tpPct := in.resolvePercents()
	sign := in.Direction.sign()

	stop := in.EntryPrice * (1 - sign*slPct/100)
	target := in.EntryPrice * (1 + sign*tpPct/100)

	return DerivedLevels{
		StopLossPrice:   Round2(stop),
		TargetPrice:     Round2(target),
		PositionValue:   in.PositionValue(),
		RiskRewardRatio: riskReward(in.EntryPrice, stop, target),
		StopLossPercent: slPct,
		TargetPercent:   tpPct,
	}
}

// riskReward works on the unrounded levels.
func riskReward(entry, stop, target float64) string {
	risk := math.Abs(entry - stop)
	reward := math.Abs(target - entry)
	if risk == 0 {
		return InfiniteRR
	}
	return "1:" + Fixed2(reward/risk)
}

var (
	hundred = big.NewRat(100, 1)
	half    = big.NewRat(1, 2)
)

// Round2 rounds the exact binary value of x to two decimal places, half
// away from zero. 100.485 is stored as 100.48499999..., so it rounds
// down to 100.48.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := new(big.Rat).SetFloat64(x)
	neg := r.Sign() < 0
	r.Abs(r)
	r.Mul(r, hundred)
	r.Add(r, half)
	cents := new(big.Int).Quo(r.Num(), r.Denom())

	d := decimal.NewFromBigInt(cents, -2)
	if neg {
		d = d.Neg()
	}
	f, _ := d.Float64()
	return f
}

// Fixed2 formats x with exactly two decimals after Round2.
func Fixed2(x float64) string {
	return strconv.FormatFloat(Round2(x), 'f', 2, 64)
}
