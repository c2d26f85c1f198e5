package ledger

import (
	"github.com/shopspring/decimal"
)

// YearEntry is one signed ledger entry within a year. Positive amounts are
// payments that reduce the debt, negative amounts are new charges.
type YearEntry struct {
	Date   string // canonical YYYY-MM-DD
	Amount decimal.Decimal
	Note   string
}

// YearLedger is the input to a lifetime balance computation: one recorded
// account year with its initial debt and entries.
type YearLedger struct {
	Year        int
	InitialDebt decimal.Decimal
	Entries     []YearEntry
}

// SumAmounts returns the exact decimal sum of the given entries.
func SumAmounts(entries []YearEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// YearBalance computes initialDebt minus the sum of the year's entries.
// An empty entry list leaves the initial debt unchanged.
func YearBalance(initialDebt decimal.Decimal, entries []YearEntry) decimal.Decimal {
	return initialDebt.Sub(SumAmounts(entries))
}

// LifetimeBalance sums YearBalance over the supplied years. Callers must
// pass exactly the years that have a recorded account year; payments in a
// year without such a record never contribute to the lifetime balance.
func LifetimeBalance(years []YearLedger) decimal.Decimal {
	total := decimal.Zero
	for _, y := range years {
		total = total.Add(YearBalance(y.InitialDebt, y.Entries))
	}
	return total
}
