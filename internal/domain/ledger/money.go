package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dankic7/dolgovi/internal/domain/errors"
)

// CurrencySuffix is the fixed suffix appended to rendered amounts in reports.
const CurrencySuffix = "ден."

// ParseAmount parses a free-form monetary string into a decimal quantized to
// two fraction digits. Half-cent values round away from zero in both
// directions (0.005 to 0.01, -0.005 to -0.01), so a charge and the payment
// that cancels it quantize symmetrically. Empty or unparsable input returns
// an INVALID_AMOUNT error; every write path must go through this function.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.NewInvalidAmountError("amount must not be empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.NewInvalidAmountError("amount is not a valid number")
	}
	return d.Round(2), nil
}

// DisplayAmount is the best-effort variant for read-only display of stored
// values: a genuinely absent or malformed field renders as 0.00 instead of
// failing. Never use it to validate input that is about to be written.
func DisplayAmount(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero.Round(2)
	}
	return d
}

// FormatAmount renders a decimal with exactly two fraction digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
