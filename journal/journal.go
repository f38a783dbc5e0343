package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/intraday/calc"
	"github.com/rustyeddy/intraday/internal/id"
	"go.uber.org/zap"
)

var (
	ErrNotFound     = errors.New("entry not found")
	ErrEmptyHistory = errors.New("trade history is empty")
)

// Entry is an immutable snapshot of one committed simulation: the trade
// as entered, the levels derived from it, and the P/L at the chosen
// exit price.
type Entry struct {
	ID        string    `json:"id"`
	Seq       int64     `json:"seq"`
	CreatedAt time.Time `json:"created_at"`

	Stock      string         `json:"stock"`
	Direction  calc.Direction `json:"direction"`
	EntryPrice float64        `json:"entry_price"`
	Quantity   int            `json:"quantity"`
	// As requested; nil means the default was used.
	StopLossPercent *float64 `json:"stop_loss_percent,omitempty"`
	TargetPercent   *float64 `json:"target_percent,omitempty"`

	StopLossPrice   float64 `json:"stop_loss_price"`
	TargetPrice     float64 `json:"target_price"`
	PositionValue   float64 `json:"position_value"`
	RiskRewardRatio string  `json:"risk_reward_ratio"`

	ExitPrice    float64              `json:"exit_price"`
	GrossPnl     float64              `json:"gross_pnl"`
	NetPnl       float64              `json:"net_pnl"`
	TotalCharges float64              `json:"total_charges"`
	PnlPercent   float64              `json:"pnl_percent"`
	Charges      calc.ChargeBreakdown `json:"charges"`
}

// NewEntry projects e at exitPrice and records the result. Seq is left
// for the store to assign.
func NewEntry(e calc.Engine, exitPrice float64, now time.Time) Entry {
	p := e.Project(exitPrice)
	in := e.Input

	return Entry{
		ID:        id.At(now),
		CreatedAt: now.UTC(),

		Stock:           in.Stock,
		Direction:       in.Direction,
		EntryPrice:      in.EntryPrice,
		Quantity:        in.Quantity,
		StopLossPercent: copyPct(in.StopLossPercent),
		TargetPercent:   copyPct(in.TargetPercent),

		StopLossPrice:   e.Levels.StopLossPrice,
		TargetPrice:     e.Levels.TargetPrice,
		PositionValue:   e.Levels.PositionValue,
		RiskRewardRatio: e.Levels.RiskRewardRatio,

		ExitPrice:    exitPrice,
		GrossPnl:     p.GrossPnl,
		NetPnl:       p.NetPnl,
		TotalCharges: p.TotalCharges,
		PnlPercent:   p.PnlPercent,
		Charges:      p.Charges,
	}
}

// Input reconstructs the trade as it was entered.
func (e Entry) Input() calc.TradeInput {
	return calc.TradeInput{
		Stock:           e.Stock,
		Direction:       e.Direction,
		EntryPrice:      e.EntryPrice,
		Quantity:        e.Quantity,
		StopLossPercent: copyPct(e.StopLossPercent),
		TargetPercent:   copyPct(e.TargetPercent),
	}
}

func (e Entry) Pnl() calc.PnlBreakdown {
	return calc.PnlBreakdown{
		GrossPnl:     e.GrossPnl,
		NetPnl:       e.NetPnl,
		TotalCharges: e.TotalCharges,
		PnlPercent:   e.PnlPercent,
		Charges:      e.Charges,
	}
}

func copyPct(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Store is the append-only trade history.
type Store interface {
	// Append stores e. A zero Seq is replaced with the next sequence
	// number.
	Append(ctx context.Context, e Entry) (Entry, error)
	// List returns every entry in creation order.
	List(ctx context.Context) ([]Entry, error)
	// Clear removes all entries.
	Clear(ctx context.Context) error
	Close() error
}

// Open returns the store named by typ: "memory", "sqlite" or "file".
func Open(typ, path string, log *zap.Logger) (Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch strings.ToLower(typ) {
	case "memory", "":
		return NewMemory(), nil
	case "sqlite":
		return NewSQLite(path, log)
	case "file", "json":
		return NewFile(path, log)
	}
	return nil, fmt.Errorf("unknown journal type %q", typ)
}
