package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is wrapped by TradeInput.Validate.
var ErrInvalidInput = errors.New("invalid trade input")

const (
	DefaultStopLossPercent = 3.0
	DefaultTargetPercent   = 10.0
)

type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

// ParseDirection accepts LONG/BUY and SHORT/SELL in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LONG", "BUY":
		return Long, nil
	case "SHORT", "SELL":
		return Short, nil
	}
	return "", fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, s)
}

// sign is +1 for a long position and -1 for a short one.
func (d Direction) sign() float64 {
	if d == Short {
		return -1
	}
	return 1
}

// TradeInput is a hypothetical single-leg intraday trade.
type TradeInput struct {
	Stock      string    `json:"stock" yaml:"stock"`
	Direction  Direction `json:"direction" yaml:"direction"`
	EntryPrice float64   `json:"entry_price" yaml:"entry_price"`
	Quantity   int       `json:"quantity" yaml:"quantity"`

	// nil means use DefaultStopLossPercent / DefaultTargetPercent.
	// Zero is a legal value and is not replaced.
	StopLossPercent *float64 `json:"stop_loss_percent,omitempty" yaml:"stop_loss_percent,omitempty"`
	TargetPercent   *float64 `json:"target_percent,omitempty" yaml:"target_percent,omitempty"`
}

// Pct is a helper for filling the optional percentage fields.
func Pct(v float64) *float64 {
	return &v
}

// Validate checks the preconditions the engine assumes. The engine
// never calls it; callers collecting input do.
func (in TradeInput) Validate() error {
	if strings.TrimSpace(in.Stock) == "" {
		return fmt.Errorf("%w: stock is required", ErrInvalidInput)
	}
	if in.Direction != Long && in.Direction != Short {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, in.Direction)
	}
	if !(in.EntryPrice > 0) {
		return fmt.Errorf("%w: entry price must be positive", ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if in.StopLossPercent != nil && *in.StopLossPercent < 0 {
		return fmt.Errorf("%w: stop loss percent must not be negative", ErrInvalidInput)
	}
	if in.TargetPercent != nil && *in.TargetPercent < 0 {
		return fmt.Errorf("%w: target percent must not be negative", ErrInvalidInput)
	}
	return nil
}

// resolvePercents applies the defaults for unset percentages.
func (in TradeInput) resolvePercents() (stopLoss, target float64) {
	stopLoss, target = DefaultStopLossPercent, DefaultTargetPercent
	if in.StopLossPercent != nil {
		stopLoss = *in.StopLossPercent
	}
	if in.TargetPercent != nil {
		target = *in.TargetPercent
	}
	return stopLoss, target
}

// PositionValue is the capital committed at entry.
func (in TradeInput) PositionValue() float64 {
	return in.EntryPrice * float64(in.Quantity)
}
