package journal

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rustyeddy/intraday/calc"
)

var csvHeader = []string{
	"ID", "Stock", "Type", "Entry", "Exit", "CapitalUsed", "Quantity",
	"GrossPnl", "NetPnl", "TotalCharges",
	"Brokerage", "STT", "GST", "StampDuty", "ExchangeFees",
	"SL(%)", "TP(%)",
}

// WriteCSV writes the history as a spreadsheet-friendly table. Money
// columns are fixed to two decimals; prices are written as entered.
func WriteCSV(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return ErrEmptyHistory
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		err := cw.Write([]string{
			e.ID,
			e.Stock,
			string(e.Direction),
			raw(e.EntryPrice),
			raw(e.ExitPrice),
			money(e.PositionValue),
			strconv.Itoa(e.Quantity),
			money(e.GrossPnl),
			money(e.NetPnl),
			money(e.TotalCharges),
			money(e.Charges.Brokerage),
			money(e.Charges.SecuritiesTransactionTax),
			money(e.Charges.GoodsAndServicesTax),
			money(e.Charges.StampDuty),
			money(e.Charges.ExchangeFee),
			pctOrDefault(e.StopLossPercent),
			pctOrDefault(e.TargetPercent),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func money(x float64) string {
	return calc.Fixed2(x)
}

func raw(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func pctOrDefault(p *float64) string {
	if p == nil {
		return "default"
	}
	return raw(*p)
}
