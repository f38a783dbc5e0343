package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatEntryOrg renders an Entry as an Org-mode block for pasting into
// a trading journal. The facts go in a PROPERTIES drawer; Thesis and
// Review are left for the trader to fill in.
func FormatEntryOrg(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Trade: %s %s (%s)\n", e.Stock, e.Direction, shortID(e.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", e.ID)
	fmt.Fprintf(&b, ":SEQ: %d\n", e.Seq)
	fmt.Fprintf(&b, ":CREATED: %s\n", e.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":STOCK: %s\n", e.Stock)
	fmt.Fprintf(&b, ":DIRECTION: %s\n", e.Direction)
	fmt.Fprintf(&b, ":QUANTITY: %d\n", e.Quantity)
	fmt.Fprintf(&b, ":ENTRY_PRICE: %.2f\n", e.EntryPrice)
	fmt.Fprintf(&b, ":EXIT_PRICE: %.2f\n", e.ExitPrice)
	fmt.Fprintf(&b, ":STOP_LOSS: %.2f\n", e.StopLossPrice)
	fmt.Fprintf(&b, ":TARGET: %.2f\n", e.TargetPrice)
	fmt.Fprintf(&b, ":RISK_REWARD: %s\n", e.RiskRewardRatio)
	fmt.Fprintf(&b, ":CAPITAL: %.2f\n", e.PositionValue)
	fmt.Fprintf(&b, ":GROSS_PL: %.2f\n", e.GrossPnl)
	fmt.Fprintf(&b, ":CHARGES: %.2f\n", e.TotalCharges)
	fmt.Fprintf(&b, ":NET_PL: %.2f\n", e.NetPnl)
	fmt.Fprintf(&b, ":RETURN_PCT: %.2f\n", e.PnlPercent)
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatEntriesOrg renders multiple entries separated by blank lines.
func FormatEntriesOrg(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatEntryOrg(e))
	}
	return b.String()
}

// shortID keeps the random tail of a ULID; the leading characters are
// the timestamp and repeat across a session.
func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[len(full)-8:]
}
