package journal

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/rustyeddy/intraday/internal/format"
)

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Stock", 50, "L"},
	{"Type", 22, "L"},
	{"Entry", 28, "R"},
	{"Exit", 28, "R"},
	{"Net P/L", 32, "R"},
	{"Charges", 28, "R"},
}

// WritePDF renders the history as a one-table A4 report followed by a
// summary block.
func WritePDF(w io.Writer, entries []Entry) error {
	return writePDF(w, entries, true)
}

func writePDF(w io.Writer, entries []Entry, compress bool) error {
	if len(entries) == 0 {
		return ErrEmptyHistory
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetTitle("Intraday Trade Log", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(14, 20, "Intraday Trade Log")
	pdf.SetXY(14, 30)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, e := range entries {
		pdf.SetX(14)
		for i, cell := range pdfRow(e) {
			c := pdfColumns[i]
			pdf.CellFormat(c.width, 7, cell, "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	s := Summarize(entries)
	y := pdf.GetY() + 15
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(14, y, "Summary:")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(14, y+7, fmt.Sprintf("Total Trades: %d", s.Trades))
	pdf.Text(14, y+13, "Total Net P/L: "+pdfMoney(s.NetPnl))
	pdf.Text(14, y+19, "Total Charges: "+pdfMoney(s.TotalCharges))

	return pdf.Output(w)
}

func pdfRow(e Entry) []string {
	return []string{
		e.Stock,
		string(e.Direction),
		pdfMoney(e.EntryPrice),
		pdfMoney(e.ExitPrice),
		pdfMoney(e.NetPnl),
		pdfMoney(e.TotalCharges),
	}
}

// pdfMoney spells the currency as INR; the core PDF fonts have no rupee
// glyph.
func pdfMoney(v float64) string {
	return "INR " + format.Number(v)
}
