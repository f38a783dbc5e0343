package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rustyeddy/intraday/journal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so commands can run
// more than once against the shared root.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("INTRADAY_JOURNAL_TYPE", "sqlite")
	t.Setenv("INTRADAY_JOURNAL_PATH", filepath.Join(dir, "journal.sqlite"))
	t.Setenv("INTRADAY_LOG_LEVEL", "error")
	return dir
}

func TestSimulateJSON(t *testing.T) {
	testEnv(t)

	out, err := execute(t, "simulate", "-s", "RELIANCE", "-e", "100", "-q", "10",
		"--sl", "3", "--tp", "10", "--preset", "zero", "--exit", "105", "--json")
	require.NoError(t, err)

	var sim simulation
	require.NoError(t, json.Unmarshal([]byte(out), &sim))
	assert.Equal(t, 97.0, sim.Levels.StopLossPrice)
	assert.Equal(t, 110.0, sim.Levels.TargetPrice)
	assert.Equal(t, "1:3.33", sim.Levels.RiskRewardRatio)
	assert.Equal(t, 105.0, sim.ExitPrice)
	assert.InDelta(t, 50.0, sim.Pnl.NetPnl, 1e-9)
	assert.InDelta(t, 5.0, sim.Pnl.PnlPercent, 1e-9)
}

func TestSimulateText(t *testing.T) {
	testEnv(t)

	out, err := execute(t, "simulate", "-s", "TCS", "-d", "sell", "-e", "200", "-q", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "TCS SHORT")
	assert.Contains(t, out, "Stop Loss:   ₹206.00")
	assert.Contains(t, out, "Target:      ₹180.00")
	assert.Contains(t, out, "Net P/L:")
}

func TestSimulateRejectsBadInput(t *testing.T) {
	testEnv(t)

	_, err := execute(t, "simulate", "-e", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry price must be positive")

	_, err = execute(t, "simulate", "--preset", "nope")
	require.Error(t, err)
}

func TestCurve(t *testing.T) {
	testEnv(t)

	out, err := execute(t, "curve", "-e", "100", "-q", "10", "--preset", "zero", "--steps", "4", "--json")
	require.NoError(t, err)
	var pts []map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &pts))
	require.Len(t, pts, 5)

	out, err = execute(t, "curve", "-d", "short", "-e", "200", "-q", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "empty range")

	out, err = execute(t, "curve", "-d", "short", "-e", "200", "-q", "5", "--around", "--steps", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "PRICE")
	assert.NotContains(t, out, "empty range")
}

func TestLogAndJournal(t *testing.T) {
	dir := testEnv(t)

	out, err := execute(t, "journal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No trades logged yet.")

	out, err = execute(t, "log", "-s", "INFY", "-e", "100", "-q", "10", "--preset", "zero", "--exit", "110")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged #1 INFY LONG")

	_, err = execute(t, "log", "-s", "SBIN", "-e", "100", "-q", "10", "--preset", "zero", "--exit", "95")
	require.NoError(t, err)

	out, err = execute(t, "journal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "INFY")
	assert.Contains(t, out, "SBIN")

	out, err = execute(t, "journal", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Trades:        2 (1 won, 1 lost, win rate 50%)")
	assert.Contains(t, out, "Net P/L:       ₹50.00")

	csvPath := filepath.Join(dir, "trade_log.csv")
	_, err = execute(t, "journal", "export", "-f", "csv", "-o", csvPath)
	require.NoError(t, err)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID,Stock,Type,Entry,Exit"))

	out, err = execute(t, "journal", "export", "-f", "org")
	require.NoError(t, err)
	assert.Contains(t, out, "** Trade: INFY LONG")

	out, err = execute(t, "journal", "summary", "--json")
	require.NoError(t, err)
	var sum journal.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	require.Len(t, sum.Cumulative, 2)
	assert.InDelta(t, 100.0, sum.Cumulative[0].Cumulative, 1e-9)
	assert.InDelta(t, 50.0, sum.Cumulative[1].Cumulative, 1e-9)

	pdfPath := filepath.Join(dir, "trade_log.pdf")
	_, err = execute(t, "journal", "export", "-f", "pdf", "-o", pdfPath)
	require.NoError(t, err)
	data, err = os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	out, err = execute(t, "journal", "export", "-f", "json")
	require.NoError(t, err)
	var entries []journal.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)

	out, err = execute(t, "journal", "show", entries[0].ID, "--pnl", "--curve")
	require.NoError(t, err)
	assert.Contains(t, out, ":ID: "+entries[0].ID)
	assert.Contains(t, out, "Net P/L:     ₹100.00")
	assert.Contains(t, out, "PRICE")

	_, err = execute(t, "journal", "show", "not-an-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid entry id")

	out, err = execute(t, "journal", "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "History cleared")

	_, err = execute(t, "journal", "export")
	require.Error(t, err)
}

func TestChargeOverrides(t *testing.T) {
	testEnv(t)

	out, err := execute(t, "simulate", "-e", "100", "-q", "10", "--preset", "zero",
		"--charge", "buy_brokerage=5", "--charge", "sell_brokerage=5", "--exit", "110", "--json")
	require.NoError(t, err)
	var sim simulation
	require.NoError(t, json.Unmarshal([]byte(out), &sim))
	assert.InDelta(t, 10.0, sim.Pnl.Charges.Brokerage, 1e-9)
	assert.InDelta(t, 90.0, sim.Pnl.NetPnl, 1e-9)

	_, err = execute(t, "simulate", "--charge", "vat=5%")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown charge category")

	_, err = execute(t, "simulate", "--preset", "nyse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "india-intraday, zero")
}

func TestEnvOverridesAreValidated(t *testing.T) {
	testEnv(t)
	t.Setenv("INTRADAY_JOURNAL_TYPE", "redis")

	_, err := execute(t, "simulate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal.type")
}

func TestLogRequiresExit(t *testing.T) {
	testEnv(t)

	_, err := execute(t, "log", "-s", "INFY", "-e", "100", "-q", "1")
	require.Error(t, err)
}

func TestJournalClearAborts(t *testing.T) {
	testEnv(t)

	_, err := execute(t, "log", "-e", "100", "-q", "1", "--exit", "101")
	require.NoError(t, err)

	out, err := execute(t, "journal", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "aborted")

	out, err = execute(t, "journal", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "No trades logged yet.")
}

func TestJournalDayRequiresSQLite(t *testing.T) {
	testEnv(t)
	t.Setenv("INTRADAY_JOURNAL_TYPE", "memory")

	_, err := execute(t, "journal", "day", "2024-01-15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a sqlite journal")
}

func TestConfigInitAndValidate(t *testing.T) {
	dir := testEnv(t)
	path := filepath.Join(dir, "trade.yaml")

	out, err := execute(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created default configuration")

	out, err = execute(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")
	assert.Contains(t, out, "NIFTY 50 LONG")

	out, err = execute(t, "simulate", "-c", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"risk_reward_ratio"`)
}

func TestDayBounds(t *testing.T) {
	start, end, err := dayBounds(time.UTC, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))

	_, _, err = dayBounds(time.UTC, "15/01/2024")
	assert.Error(t, err)
}
