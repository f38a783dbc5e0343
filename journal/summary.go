package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/intraday/internal/format"
)

// CumulativePoint is one bar of the running net P/L chart.
type CumulativePoint struct {
	Label      string  `json:"label"`
	NetPnl     float64 `json:"net_pnl"`
	Cumulative float64 `json:"cumulative"`
}

type Summary struct {
	Trades       int               `json:"trades"`
	Wins         int               `json:"wins"`
	Losses       int               `json:"losses"`
	GrossPnl     float64           `json:"gross_pnl"`
	NetPnl       float64           `json:"net_pnl"`
	TotalCharges float64           `json:"total_charges"`
	Cumulative   []CumulativePoint `json:"cumulative"`
}

// WinRate is the share of trades with a positive net P/L.
func (s Summary) WinRate() float64 {
	if s.Trades == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Trades)
}

// Summarize totals the history. A trade with zero net P/L counts as
// neither a win nor a loss.
func Summarize(entries []Entry) Summary {
	s := Summary{Cumulative: make([]CumulativePoint, 0, len(entries))}
	for _, e := range entries {
		s.Trades++
		switch {
		case e.NetPnl > 0:
			s.Wins++
		case e.NetPnl < 0:
			s.Losses++
		}
		s.GrossPnl += e.GrossPnl
		s.NetPnl += e.NetPnl
		s.TotalCharges += e.TotalCharges
		s.Cumulative = append(s.Cumulative, CumulativePoint{
			Label:      chartLabel(e.Stock),
			NetPnl:     e.NetPnl,
			Cumulative: s.NetPnl,
		})
	}
	return s
}

func chartLabel(stock string) string {
	r := []rune(stock)
	if len(r) <= 5 {
		return stock
	}
	return string(r[:5]) + "..."
}

const shareRule = "---------------------------------"

// ShareText renders the history as a chat-friendly daily summary.
func ShareText(entries []Entry, day time.Time) (string, error) {
	if len(entries) == 0 {
		return "", ErrEmptyHistory
	}

	date := day.Format("02 Jan 2006")
	var b strings.Builder
	fmt.Fprintf(&b, "*📈 Intraday Trading Summary - %s 📉*\n%s\n\n", date, shareRule)

	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		marker := "📈"
		if e.NetPnl < 0 {
			marker = "📉"
		}
		fmt.Fprintf(&b, "*%d. %s (%s)*\n", i+1, strings.ToUpper(e.Stock), e.Direction)
		fmt.Fprintf(&b, "Qty: %d | Entry: %s | Exit: %s\n", e.Quantity, format.Money(e.EntryPrice), format.Money(e.ExitPrice))
		fmt.Fprintf(&b, "Net P/L: *%s* %s", format.Money(e.NetPnl), marker)
	}

	s := Summarize(entries)
	fmt.Fprintf(&b, "\n\n%s\n*Overall Summary:*\n", shareRule)
	fmt.Fprintf(&b, "Total Trades: %d\n", s.Trades)
	fmt.Fprintf(&b, "Total Charges: %s\n", format.Money(s.TotalCharges))
	fmt.Fprintf(&b, "*Final Net P/L: %s*", format.Money(s.NetPnl))
	return b.String(), nil
}
