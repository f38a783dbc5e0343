package charges

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNegativeAmount  = errors.New("charge amount must not be negative")
	ErrUnknownCategory = errors.New("unknown charge category")
	ErrUnknownPreset   = errors.New("unknown charge preset")
)

// Rule is a single fee rule. A percentage rule is applied to a
// category-specific turnover base (0-100 scale); a flat rule is charged
// once regardless of turnover.
type Rule struct {
	Amount       float64 `json:"amount" yaml:"amount"`
	IsPercentage bool    `json:"is_percentage" yaml:"is_percentage"`
}

// Flat returns a fixed-amount rule.
func Flat(amount float64) Rule {
	return Rule{Amount: amount}
}

// Percent returns a rule charging pct percent of its base.
func Percent(pct float64) Rule {
	return Rule{Amount: pct, IsPercentage: true}
}

// Apply returns the charge for the given turnover base.
func (r Rule) Apply(base float64) float64 {
	if r.IsPercentage {
		return base * r.Amount / 100
	}
	return r.Amount
}

func (r Rule) String() string {
	if r.IsPercentage {
		return fmt.Sprintf("%g%%", r.Amount)
	}
	return fmt.Sprintf("%g flat", r.Amount)
}

// Schedule maps each charge category to its rule.
type Schedule struct {
	BuyBrokerage             Rule `json:"buy_brokerage" yaml:"buy_brokerage"`
	SellBrokerage            Rule `json:"sell_brokerage" yaml:"sell_brokerage"`
	SecuritiesTransactionTax Rule `json:"securities_transaction_tax" yaml:"securities_transaction_tax"`
	StampDuty                Rule `json:"stamp_duty" yaml:"stamp_duty"`
	ExchangeFee              Rule `json:"exchange_fee" yaml:"exchange_fee"`
	GoodsAndServicesTax      Rule `json:"goods_and_services_tax" yaml:"goods_and_services_tax"`
}

// Rule returns the rule configured for c.
func (s Schedule) Rule(c Category) (Rule, error) {
	switch c {
	case BuyBrokerage:
		return s.BuyBrokerage, nil
	case SellBrokerage:
		return s.SellBrokerage, nil
	case SecuritiesTransactionTax:
		return s.SecuritiesTransactionTax, nil
	case StampDuty:
		return s.StampDuty, nil
	case ExchangeFee:
		return s.ExchangeFee, nil
	case GoodsAndServicesTax:
		return s.GoodsAndServicesTax, nil
	}
	return Rule{}, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
}

// With returns a copy of s with c set to r.
func (s Schedule) With(c Category, r Rule) (Schedule, error) {
	switch c {
	case BuyBrokerage:
		s.BuyBrokerage = r
	case SellBrokerage:
		s.SellBrokerage = r
	case SecuritiesTransactionTax:
		s.SecuritiesTransactionTax = r
	case StampDuty:
		s.StampDuty = r
	case ExchangeFee:
		s.ExchangeFee = r
	case GoodsAndServicesTax:
		s.GoodsAndServicesTax = r
	default:
		return s, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return s, nil
}

// Validate reports the first category with a negative amount.
func (s Schedule) Validate() error {
	for _, c := range Categories {
		r, _ := s.Rule(c)
		if r.Amount < 0 {
			return fmt.Errorf("%s: %w", c, ErrNegativeAmount)
		}
	}
	return nil
}

// Zero is a schedule that charges nothing.
func Zero() Schedule {
	return Schedule{}
}

// IndiaIntraday is the default NSE intraday equity schedule: flat
// brokerage per leg, STT on the sell leg, stamp duty on the buy leg,
// exchange transaction charges on both legs, and GST on brokerage plus
// exchange charges.
func IndiaIntraday() Schedule {
	return Schedule{
		BuyBrokerage:             Flat(20),
		SellBrokerage:            Flat(20),
		SecuritiesTransactionTax: Percent(0.025),
		StampDuty:                Percent(0.003),
		ExchangeFee:              Percent(0.00345),
		GoodsAndServicesTax:      Percent(18),
	}
}

var presets = map[string]func() Schedule{
	"zero":           Zero,
	"india-intraday": IndiaIntraday,
}

// Preset looks up a named schedule.
func Preset(name string) (Schedule, error) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Schedule{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return fn(), nil
}

// PresetNames lists the known preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
