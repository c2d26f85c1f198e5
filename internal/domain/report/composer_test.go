package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dankic7/dolgovi/internal/domain/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComposeYear(t *testing.T) {
	cust := CustomerInfo{Name: "Петар Петровски", Phone: "070123456"}
	entries := []ledger.YearEntry{
		{Date: "2024-01-05", Amount: dec("200.00"), Note: "прва рата"},
		{Date: "2024-03-01", Amount: dec("-50.00"), Note: "нов долг"},
		{Date: "2024-06-10", Amount: dec("300.00"), Note: ""},
	}

	sec := ComposeYear(cust, 2024, dec("1000.00"), entries, "2024-07-01")

	assert.Equal(t, 2024, sec.Year)
	assert.Equal(t, "1000.00", sec.InitialDebt.StringFixed(2))
	assert.Equal(t, "450.00", sec.TotalPaid.StringFixed(2))
	assert.Equal(t, "550.00", sec.Balance.StringFixed(2))

	assert.Contains(t, sec.Text, "ИЗВЕШТАЈ ЗА МУШТЕРИЈА – ГОДИНА: 2024")
	assert.Contains(t, sec.Text, "Датум на извештај: 2024-07-01")
	assert.Contains(t, sec.Text, "Муштерија : Петар Петровски")
	assert.Contains(t, sec.Text, "Телефон   : 070123456")
	assert.Contains(t, sec.Text, "Почетен долг: 1000.00 ден.")
	assert.Contains(t, sec.Text, "01. 2024-01-05  |  200.00 ден.  |  прва рата")
	assert.Contains(t, sec.Text, "02. 2024-03-01  |  -50.00 ден.  |  нов долг")
	assert.Contains(t, sec.Text, "03. 2024-06-10  |  300.00 ден.  |  ")
	assert.Contains(t, sec.Text, "Вкупно уплатено: 450.00 ден.")
	assert.Contains(t, sec.Text, "Преостанато салдо: 550.00 ден.")
}

func TestComposeYearNoPayments(t *testing.T) {
	sec := ComposeYear(CustomerInfo{Name: "Ана"}, 2023, dec("500.00"), nil, "2024-07-01")

	assert.Contains(t, sec.Text, "Нема евидентирани уплати за оваа година.")
	assert.Contains(t, sec.Text, "Телефон   : -")
	assert.Equal(t, "0.00", sec.TotalPaid.StringFixed(2))
	assert.Equal(t, "500.00", sec.Balance.StringFixed(2))
}

func TestComposeSummary(t *testing.T) {
	cust := CustomerInfo{Name: "Ана Анева"}
	sections := []YearSection{
		ComposeYear(cust, 2023, dec("500.00"), []ledger.YearEntry{{Date: "2023-02-01", Amount: dec("500.00")}}, "2024-07-01"),
		ComposeYear(cust, 2024, dec("1000.00"), []ledger.YearEntry{
			{Date: "2024-01-05", Amount: dec("200.00")},
			{Date: "2024-03-01", Amount: dec("-50.00")},
			{Date: "2024-06-10", Amount: dec("300.00")},
		}, "2024-07-01"),
	}

	text := ComposeSummary(cust, sections, "2024-07-01")

	assert.Contains(t, text, "ЗБИРЕН ИЗВЕШТАЈ ЗА МУШТЕРИЈА (сите години)")
	assert.Contains(t, text, "Вкупно почетни долгови (сите години): 1500.00 ден.")
	assert.Contains(t, text, "Вкупно уплатено (сите години):        950.00 ден.")
	assert.Contains(t, text, "Збирно преостанато салдо:             550.00 ден.")

	// both year sections are embedded, 2023 before 2024
	i2023 := strings.Index(text, "ГОДИНА: 2023")
	i2024 := strings.Index(text, "ГОДИНА: 2024")
	assert.Greater(t, i2023, -1)
	assert.Greater(t, i2024, i2023)
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "Izvestaj_Петар_Петровски_2024.txt", YearFilename("Петар Петровски", 2024))
	assert.Equal(t, "Izvestaj_ZBIRNO_Ана_Анева.txt", SummaryFilename("Ана Анева"))
	// anything that is not a letter or digit becomes an underscore
	assert.Equal(t, "Izvestaj_a_b_c2_2023.txt", YearFilename(`a/b:c2`, 2023))
}
