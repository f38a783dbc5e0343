package calc

import "github.com/rustyeddy/intraday/charges"

// ChargeBreakdown holds the currency amount of each charged category.
// Buy and sell brokerage are summed into Brokerage.
type ChargeBreakdown struct {
	Brokerage                float64 `json:"brokerage" yaml:"brokerage"`
	SecuritiesTransactionTax float64 `json:"stt" yaml:"stt"`
	GoodsAndServicesTax      float64 `json:"gst" yaml:"gst"`
	StampDuty                float64 `json:"stamp_duty" yaml:"stamp_duty"`
	ExchangeFee              float64 `json:"exchange_fee" yaml:"exchange_fee"`
}

// Total sums every category.
func (c ChargeBreakdown) Total() float64 {
	return c.Brokerage + c.SecuritiesTransactionTax + c.GoodsAndServicesTax + c.StampDuty + c.ExchangeFee
}

// PnlBreakdown is the result of projecting a trade to one exit price.
// Values are unrounded.
type PnlBreakdown struct {
	GrossPnl     float64         `json:"gross_pnl" yaml:"gross_pnl"`
	NetPnl       float64         `json:"net_pnl" yaml:"net_pnl"`
	TotalCharges float64         `json:"total_charges" yaml:"total_charges"`
	PnlPercent   float64         `json:"pnl_percent" yaml:"pnl_percent"`
	Charges      ChargeBreakdown `json:"charges" yaml:"charges"`
}

// Project computes the profit and loss of closing the trade at
// exitPrice. Any exit price is accepted, including zero, negative, or
// values outside the stop/target range.
func Project(in TradeInput, s charges.Schedule, lv DerivedLevels, exitPrice float64) PnlBreakdown {
	qty := float64(in.Quantity)
	gross := in.Direction.sign() * qty * (exitPrice - in.EntryPrice)

	buyTurnover := lv.PositionValue
	sellTurnover := qty * exitPrice

	var c ChargeBreakdown
	c.Brokerage = s.BuyBrokerage.Apply(buyTurnover) + s.SellBrokerage.Apply(sellTurnover)
	c.SecuritiesTransactionTax = s.SecuritiesTransactionTax.Apply(sellTurnover)
	c.StampDuty = s.StampDuty.Apply(buyTurnover)
	c.ExchangeFee = s.ExchangeFee.Apply(buyTurnover + sellTurnover)
	// GST is levied on brokerage and exchange fees only.
	c.GoodsAndServicesTax = s.GoodsAndServicesTax.Apply(c.Brokerage + c.ExchangeFee)

	total := c.Brokerage + c.SecuritiesTransactionTax + c.GoodsAndServicesTax + c.StampDuty + c.ExchangeFee
	net := gross - total

	var pct float64
	if lv.PositionValue > 0 {
		pct = net / lv.PositionValue * 100
	}

	return PnlBreakdown{
		GrossPnl:     gross,
		NetPnl:       net,
		TotalCharges: total,
		PnlPercent:   pct,
		Charges:      c,
	}
}
