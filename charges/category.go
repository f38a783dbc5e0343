package charges

import (
	"fmt"
	"strings"
)

type Category int

const (
	BuyBrokerage Category = iota
	SellBrokerage
	SecuritiesTransactionTax
	StampDuty
	ExchangeFee
	GoodsAndServicesTax
)

// Categories in evaluation order. GST comes last because its base is
// the brokerage and exchange fee amounts.
var Categories = []Category{
	BuyBrokerage,
	SellBrokerage,
	SecuritiesTransactionTax,
	StampDuty,
	ExchangeFee,
	GoodsAndServicesTax,
}

var categoryNames = map[Category]string{
	BuyBrokerage:             "buy_brokerage",
	SellBrokerage:            "sell_brokerage",
	SecuritiesTransactionTax: "stt",
	StampDuty:                "stamp_duty",
	ExchangeFee:              "exchange_fee",
	GoodsAndServicesTax:      "gst",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory accepts the short names returned by String as well as a
// few long-form aliases.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	switch key {
	case "securities_transaction_tax":
		return SecuritiesTransactionTax, nil
	case "goods_and_services_tax":
		return GoodsAndServicesTax, nil
	case "exchange", "exchange_charge":
		return ExchangeFee, nil
	}
	for c, n := range categoryNames {
		if n == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
