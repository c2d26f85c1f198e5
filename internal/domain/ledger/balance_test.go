package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestYearBalance(t *testing.T) {
	t.Run("subtracts the signed sum from the initial debt", func(t *testing.T) {
		entries := []YearEntry{
			{Date: "2024-01-05", Amount: dec("200.00")},
			{Date: "2024-03-01", Amount: dec("-50.00")},
			{Date: "2024-06-10", Amount: dec("300.00")},
		}
		assert.Equal(t, "550.00", YearBalance(dec("1000.00"), entries).StringFixed(2))
	})

	t.Run("empty entry list keeps the initial debt", func(t *testing.T) {
		assert.Equal(t, "1000.00", YearBalance(dec("1000.00"), nil).StringFixed(2))
	})

	t.Run("entries summing to the initial debt zero the balance", func(t *testing.T) {
		entries := []YearEntry{
			{Amount: dec("400.00")},
			{Amount: dec("100.00")},
		}
		assert.True(t, YearBalance(dec("500.00"), entries).IsZero())
	})
}

func TestLifetimeBalance(t *testing.T) {
	years := []YearLedger{
		{Year: 2023, InitialDebt: dec("500.00"), Entries: []YearEntry{{Amount: dec("500.00")}}},
		{Year: 2024, InitialDebt: dec("1000.00"), Entries: []YearEntry{
			{Amount: dec("200.00")},
			{Amount: dec("-50.00")},
			{Amount: dec("300.00")},
		}},
	}
	assert.Equal(t, "550.00", LifetimeBalance(years).StringFixed(2))
}

func TestLifetimeBalanceIgnoresYearsWithoutRecord(t *testing.T) {
	// A payment in a year with no recorded account year never reaches this
	// function: the caller enumerates recorded years only. Adding such a
	// year to the input is the only way it could count.
	recorded := []YearLedger{
		{Year: 2024, InitialDebt: dec("100.00"), Entries: []YearEntry{{Amount: dec("40.00")}}},
	}
	before := LifetimeBalance(recorded)
	assert.Equal(t, "60.00", before.StringFixed(2))

	after := LifetimeBalance(recorded)
	assert.True(t, before.Equal(after))
}

func TestSumAmounts(t *testing.T) {
	entries := []YearEntry{
		{Amount: dec("0.10")},
		{Amount: dec("0.20")},
		{Amount: dec("0.30")},
	}
	// exact decimal arithmetic, no binary float drift
	assert.Equal(t, "0.60", SumAmounts(entries).StringFixed(2))
	assert.Equal(t, "0.00", SumAmounts(nil).StringFixed(2))
}
