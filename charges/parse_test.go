package charges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Rule
		wantErr error
	}{
		{"20", Flat(20), nil},
		{" 0.025% ", Percent(0.025), nil},
		{"18 %", Percent(18), nil},
		{"0", Flat(0), nil},
		{"-1", Rule{}, ErrNegativeAmount},
		{"-0.1%", Rule{}, ErrNegativeAmount},
	}
	for _, tt := range tests {
		got, err := ParseRule(tt.in)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseRule("twenty")
	assert.Error(t, err)
}

func TestScheduleOverride(t *testing.T) {
	t.Parallel()

	s, err := IndiaIntraday().Override("stt=0.1%", "buy-brokerage=0", "exchange=0.005%")
	require.NoError(t, err)

	assert.Equal(t, Percent(0.1), s.SecuritiesTransactionTax)
	assert.Equal(t, Flat(0), s.BuyBrokerage)
	assert.Equal(t, Percent(0.005), s.ExchangeFee)
	assert.Equal(t, Flat(20), s.SellBrokerage)

	_, err = Zero().Override("vat=5%")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = Zero().Override("stt")
	assert.Error(t, err)
}
