package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dankic7/dolgovi/internal/domain/errors"
)

func TestParseAmount(t *testing.T) {
	t.Run("parses and quantizes to two places", func(t *testing.T) {
		d, err := ParseAmount("123.456")
		require.NoError(t, err)
		assert.Equal(t, "123.46", d.StringFixed(2))

		d, err = ParseAmount("  200 ")
		require.NoError(t, err)
		assert.Equal(t, "200.00", d.StringFixed(2))
	})

	t.Run("rounds half-cents away from zero", func(t *testing.T) {
		d, err := ParseAmount("0.005")
		require.NoError(t, err)
		assert.Equal(t, "0.01", d.StringFixed(2))

		d, err = ParseAmount("-0.005")
		require.NoError(t, err)
		assert.Equal(t, "-0.01", d.StringFixed(2))
	})

	t.Run("accepts negative amounts", func(t *testing.T) {
		d, err := ParseAmount("-50.00")
		require.NoError(t, err)
		assert.Equal(t, "-50.00", d.StringFixed(2))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ParseAmount("   ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.NewInvalidAmountError(""))
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ParseAmount("abc")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.NewInvalidAmountError(""))
	})
}

func TestDisplayAmount(t *testing.T) {
	assert.Equal(t, "12.30", DisplayAmount("12.3").StringFixed(2))
	// display paths substitute zero for absent or malformed fields
	assert.True(t, DisplayAmount("").IsZero())
	assert.True(t, DisplayAmount("garbage").IsZero())
}

func TestFormatAmountRoundTrip(t *testing.T) {
	inputs := []string{"0", "1000", "123.456", "-0.005", "550.5"}
	for _, in := range inputs {
		d, err := ParseAmount(in)
		require.NoError(t, err)

		reparsed, err := ParseAmount(FormatAmount(d))
		require.NoError(t, err)
		assert.True(t, d.Equal(reparsed), "round trip changed %s", in)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "550.00", FormatAmount(decimal.RequireFromString("550")))
	assert.Equal(t, "-50.00", FormatAmount(decimal.RequireFromString("-50")))
}
