package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rustyeddy/intraday/calc"
	"github.com/rustyeddy/intraday/internal/id"
	"github.com/rustyeddy/intraday/journal"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect, export and clear the trade history",
	Long: `Work with the history of committed simulations.

Subcommands:
  list     - List all entries in creation order
  show     - Show one entry by ID (sqlite journal)
  day      - List entries created on a day (sqlite journal)
  summary  - Totals and win rate
  export   - Write the history as csv, org, json or pdf
  share    - Print a chat-friendly daily summary
  clear    - Delete the whole history

Examples:
  intraday journal list
  intraday journal export -f csv -o trade_log.csv
  intraday journal day 2024-01-15`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one entry as an Org block",
	Long: `Show one logged entry as an Org block.

--pnl prints the charge breakdown recorded at log time. --curve
re-projects the logged trade under the current charge schedule.`,
	Args: cobra.ExactArgs(1),
	RunE: runJournalShow,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List entries created on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals for the history",
	Args:  cobra.NoArgs,
	RunE:  runJournalSummary,
}

var journalExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history",
	Args:  cobra.NoArgs,
	RunE:  runJournalExport,
}

var journalShareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print a share-ready summary",
	Args:  cobra.NoArgs,
	RunE:  runJournalShare,
}

var journalClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every entry",
	Args:  cobra.NoArgs,
	RunE:  runJournalClear,
}

var (
	exportFormat string
	exportOutput string
	clearYes     bool
	showPnl      bool
	showCurve    bool
	summaryJSON  bool
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalDayCmd)
	journalCmd.AddCommand(journalSummaryCmd)
	journalCmd.AddCommand(journalExportCmd)
	journalCmd.AddCommand(journalShareCmd)
	journalCmd.AddCommand(journalClearCmd)

	journalShowCmd.Flags().BoolVar(&showPnl, "pnl", false, "print the recorded P/L breakdown")
	journalShowCmd.Flags().BoolVar(&showCurve, "curve", false, "re-project the trade and print its P/L curve")
	journalSummaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "print JSON including the cumulative P/L series")
	journalExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "csv, org, json or pdf")
	journalExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	journalClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")
}

func listEntries(cmd *cobra.Command) ([]journal.Entry, error) {
	store, err := openJournal()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return entries, nil
}

// openSQLite opens the journal for the queries only the sqlite store supports.
func openSQLite() (*journal.SQLite, error) {
	if cfg.Journal.Type != "sqlite" {
		return nil, fmt.Errorf("requires a sqlite journal, configured type is %q", cfg.Journal.Type)
	}
	j, err := journal.NewSQLite(cfg.Journal.Path, log)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	entries, err := listEntries(cmd)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No trades logged yet.")
		return nil
	}
	return printEntries(cmd.OutOrStdout(), entries)
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	if _, err := id.Time(args[0]); err != nil {
		return fmt.Errorf("invalid entry id %q: %w", args[0], err)
	}

	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	e, err := j.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, journal.FormatEntryOrg(e))
	if showPnl {
		printPnl(out, e.ExitPrice, e.Pnl())
	}
	if showCurve {
		pts := calc.New(e.Input(), cfg.Charges).CurveAround(cfg.Simulation.CurveSteps)
		fmt.Fprintln(out)
		return printCurve(out, pts)
	}
	return nil
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	start, end, err := dayBounds(time.Local, args[0])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	entries, err := j.ListCreatedBetween(cmd.Context(), start, end)
	if err != nil {
		return fmt.Errorf("query entries: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatEntriesOrg(entries))
	return nil
}

func runJournalSummary(cmd *cobra.Command, args []string) error {
	entries, err := listEntries(cmd)
	if err != nil {
		return err
	}
	sum := journal.Summarize(entries)
	if summaryJSON {
		return writeJSON(cmd.OutOrStdout(), sum)
	}
	return printSummary(cmd.OutOrStdout(), sum)
}

func runJournalExport(cmd *cobra.Command, args []string) error {
	entries, err := listEntries(cmd)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch strings.ToLower(exportFormat) {
	case "csv":
		err = journal.WriteCSV(w, entries)
	case "org":
		if len(entries) == 0 {
			return journal.ErrEmptyHistory
		}
		_, err = io.WriteString(w, journal.FormatEntriesOrg(entries)+"\n")
	case "json":
		err = writeJSON(w, entries)
	case "pdf":
		err = journal.WritePDF(w, entries)
	default:
		return fmt.Errorf("unknown export format %q", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if exportOutput != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Exported %d trades to %s\n", len(entries), exportOutput)
	}
	return nil
}

func runJournalShare(cmd *cobra.Command, args []string) error {
	entries, err := listEntries(cmd)
	if err != nil {
		return err
	}
	text, err := journal.ShareText(entries, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func runJournalClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		fmt.Fprint(cmd.OutOrStdout(), "Delete the entire trade history? [y/N] ")
		var answer string
		fmt.Fscanln(cmd.InOrStdin(), &answer)
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "aborted")
			return nil
		}
	}

	store, err := openJournal()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ History cleared")
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
