package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/rustyeddy/intraday/charges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveLevels_LongScenario(t *testing.T) {
	t.Parallel()

	in := TradeInput{
		Stock:           "RELIANCE",
		Direction:       Long,
		EntryPrice:      100,
		Quantity:        10,
		StopLossPercent: Pct(3),
		TargetPercent:   Pct(10),
	}

	lv := DeriveLevels(in, charges.Zero())

	assert.Equal(t, 97.00, lv.StopLossPrice)
	assert.Equal(t, 110.00, lv.TargetPrice)
	assert.InDelta(t, 1000.0, lv.PositionValue, 1e-9)
	assert.Equal(t, "1:3.33", lv.RiskRewardRatio)
	assert.Equal(t, 3.0, lv.StopLossPercent)
	assert.Equal(t, 10.0, lv.TargetPercent)
}

func TestDeriveLevels_ShortDefaults(t *testing.T) {
	t.Parallel()

	in := TradeInput{Stock: "TCS", Direction: Short, EntryPrice: 200, Quantity: 5}
	lv := DeriveLevels(in, charges.IndiaIntraday())

	assert.Equal(t, 206.00, lv.StopLossPrice)
	assert.Equal(t, 180.00, lv.TargetPrice)
	assert.Equal(t, "1:3.33", lv.RiskRewardRatio)
	assert.Equal(t, DefaultStopLossPercent, lv.StopLossPercent)
	assert.Equal(t, DefaultTargetPercent, lv.TargetPercent)
}

func TestDeriveLevels_Directions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry float64
		sl    float64
		tp    float64
	}{
		{"round", 100, 3, 10},
		{"fractional entry", 1523.65, 1.5, 2.25},
		{"penny", 0.87, 5, 7},
		{"large", 98765.43, 0.4, 0.9},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			long := DeriveLevels(TradeInput{Stock: "X", Direction: Long, EntryPrice: tt.entry, Quantity: 1,
				StopLossPercent: Pct(tt.sl), TargetPercent: Pct(tt.tp)}, charges.Zero())
			assert.Equal(t, Round2(tt.entry*(1-tt.sl/100)), long.StopLossPrice)
			assert.Equal(t, Round2(tt.entry*(1+tt.tp/100)), long.TargetPrice)
			assert.Less(t, long.StopLossPrice, tt.entry)
			assert.Greater(t, long.TargetPrice, tt.entry)

			short := DeriveLevels(TradeInput{Stock: "X", Direction: Short, EntryPrice: tt.entry, Quantity: 1,
				StopLossPercent: Pct(tt.sl), TargetPercent: Pct(tt.tp)}, charges.Zero())
			assert.Equal(t, Round2(tt.entry*(1+tt.sl/100)), short.StopLossPrice)
			assert.Equal(t, Round2(tt.entry*(1-tt.tp/100)), short.TargetPrice)
			assert.Greater(t, short.StopLossPrice, tt.entry)
			assert.Less(t, short.TargetPrice, tt.entry)
		})
	}
}

func TestDeriveLevels_ZeroRisk(t *testing.T) {
	t.Parallel()

	in := TradeInput{Stock: "INFY", Direction: Long, EntryPrice: 150, Quantity: 3, StopLossPercent: Pct(0)}
	lv := DeriveLevels(in, charges.Zero())

	assert.Equal(t, 150.0, lv.StopLossPrice)
	assert.Equal(t, InfiniteRR, lv.RiskRewardRatio)
	// zero is used as given, not replaced by the default
	assert.Equal(t, 0.0, lv.StopLossPercent)
	assert.Equal(t, 165.0, lv.TargetPrice)
}

func TestDeriveLevels_ZeroTarget(t *testing.T) {
	t.Parallel()

	in := TradeInput{Stock: "INFY", Direction: Short, EntryPrice: 150, Quantity: 3, TargetPercent: Pct(0)}
	lv := DeriveLevels(in, charges.Zero())

	assert.Equal(t, 150.0, lv.TargetPrice)
	assert.Equal(t, "1:0.00", lv.RiskRewardRatio)
}

func TestDeriveLevels_PositionValueNotRounded(t *testing.T) {
	t.Parallel()

	in := TradeInput{Stock: "X", Direction: Long, EntryPrice: 10.005, Quantity: 3}
	lv := DeriveLevels(in, charges.Zero())
	assert.InDelta(t, 30.015, lv.PositionValue, 1e-12)
}

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0}, // stored just below the midpoint
		{-1.005, -1.0},
		{2.675, 2.67},
		{0.125, 0.13}, // exact midpoint rounds away from zero
		{-0.125, -0.13},
		{97.00000000000001, 97},
		{10.0 / 3.0, 3.33},
		{0.004, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}

	assert.True(t, math.IsNaN(Round2(math.NaN())))
	assert.True(t, math.IsInf(Round2(math.Inf(-1)), -1))
}

func TestFixed2(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3.33", Fixed2(10.0/3.0))
	assert.Equal(t, "1.00", Fixed2(1.005))
	assert.Equal(t, "-0.13", Fixed2(-0.125))
	assert.Equal(t, "1500.00", Fixed2(1500))
}

func TestDeriveLevels_HalfCentEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		entry float64
		stop  float64
	}{
		{100.5, 97.48},
		{101.5, 98.45},
		{104.5, 101.36},
		{33.5, 32.49},
	}
	for _, tt := range tests {
		lv := DeriveLevels(TradeInput{Stock: "X", Direction: Long, EntryPrice: tt.entry, Quantity: 1}, charges.Zero())
		assert.Equal(t, tt.stop, lv.StopLossPrice, "entry %v", tt.entry)
	}

	lv := DeriveLevels(TradeInput{Stock: "X", Direction: Long, EntryPrice: 1.005, Quantity: 1,
		StopLossPercent: Pct(0)}, charges.Zero())
	assert.Equal(t, 1.0, lv.StopLossPrice)
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Direction
	}{
		{"LONG", Long},
		{"buy", Long},
		{" Short ", Short},
		{"sell", Short},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTradeInputValidate(t *testing.T) {
	t.Parallel()

	valid := TradeInput{Stock: "SBIN", Direction: Long, EntryPrice: 600, Quantity: 10}

	tests := []struct {
		name   string
		mutate func(*TradeInput)
		errMsg string
	}{
		{"valid", func(*TradeInput) {}, ""},
		{"zero percents allowed", func(in *TradeInput) { in.StopLossPercent = Pct(0); in.TargetPercent = Pct(0) }, ""},
		{"missing stock", func(in *TradeInput) { in.Stock = "  " }, "stock is required"},
		{"bad direction", func(in *TradeInput) { in.Direction = "UP" }, "unknown direction"},
		{"zero entry", func(in *TradeInput) { in.EntryPrice = 0 }, "entry price must be positive"},
		{"negative qty", func(in *TradeInput) { in.Quantity = -1 }, "quantity must be positive"},
		{"negative stop", func(in *TradeInput) { in.StopLossPercent = Pct(-1) }, "stop loss percent"},
		{"negative target", func(in *TradeInput) { in.TargetPercent = Pct(-1) }, "target percent"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
