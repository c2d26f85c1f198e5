package report

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/dankic7/dolgovi/internal/domain/ledger"
)

const (
	yearRule    = "==========================================="
	yearDivider = "-------------------------------------------"
	summaryRule = "============================================================"

	noPaymentsLine = "Нема евидентирани уплати за оваа година."
)

// CustomerInfo carries the identity fields a report shows. Phone renders as
// "-" when empty, matching the stored display convention.
type CustomerInfo struct {
	Name  string
	Phone string
}

func (c CustomerInfo) phoneOrDash() string {
	if c.Phone == "" {
		return "-"
	}
	return c.Phone
}

// YearSection is one composed per-year report plus the totals that roll up
// into a summary.
type YearSection struct {
	Year        int
	Text        string
	InitialDebt decimal.Decimal
	TotalPaid   decimal.Decimal
	Balance     decimal.Decimal
}

// BatchUnit is one file-equivalent unit of a batch export: the section text
// for a year and the suggested filename. Writing files is the caller's job.
type BatchUnit struct {
	Year     int    `json:"year"`
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

func amountLine(d decimal.Decimal) string {
	return ledger.FormatAmount(d) + " " + ledger.CurrencySuffix
}

// ComposeYear renders the single-year report for the given customer, year
// and entries. Pure function of its inputs; reportDate is the canonical
// date the caller wants printed in the header.
func ComposeYear(cust CustomerInfo, year int, initialDebt decimal.Decimal, entries []ledger.YearEntry, reportDate string) YearSection {
	totalPaid := ledger.SumAmounts(entries)
	balance := ledger.YearBalance(initialDebt, entries)

	lines := []string{
		yearRule,
		fmt.Sprintf("   ИЗВЕШТАЈ ЗА МУШТЕРИЈА – ГОДИНА: %d", year),
		yearRule,
		"Датум на извештај: " + reportDate,
		"Муштерија : " + cust.Name,
		"Телефон   : " + cust.phoneOrDash(),
		"",
		"Почетен долг: " + amountLine(initialDebt),
		yearDivider,
		"УПЛАТИ:",
	}

	if len(entries) > 0 {
		for i, e := range entries {
			lines = append(lines, fmt.Sprintf("%02d. %s  |  %s  |  %s", i+1, e.Date, amountLine(e.Amount), e.Note))
		}
	} else {
		lines = append(lines, noPaymentsLine)
	}

	lines = append(lines,
		yearDivider,
		"Вкупно уплатено: "+amountLine(totalPaid),
		"Преостанато салдо: "+amountLine(balance),
		"",
	)

	return YearSection{
		Year:        year,
		Text:        strings.Join(lines, "\n"),
		InitialDebt: initialDebt,
		TotalPaid:   totalPaid,
		Balance:     balance,
	}
}

// ComposeSummary concatenates the given year sections (callers pass them in
// ascending year order) inside a summary header and a grand-totals block.
func ComposeSummary(cust CustomerInfo, sections []YearSection, reportDate string) string {
	grandInitial := decimal.Zero
	grandPaid := decimal.Zero
	grandBalance := decimal.Zero
	for _, sec := range sections {
		grandInitial = grandInitial.Add(sec.InitialDebt)
		grandPaid = grandPaid.Add(sec.TotalPaid)
		grandBalance = grandBalance.Add(sec.Balance)
	}

	lines := []string{
		summaryRule,
		"         ЗБИРЕН ИЗВЕШТАЈ ЗА МУШТЕРИЈА (сите години)",
		summaryRule,
		"Датум на извештај: " + reportDate,
		"Муштерија : " + cust.Name,
		"Телефон   : " + cust.phoneOrDash(),
		"",
	}
	for _, sec := range sections {
		lines = append(lines, sec.Text)
	}
	lines = append(lines,
		summaryRule,
		"                  ВКУПНИ ЗБИРНИ ВРЕДНОСТИ",
		summaryRule,
		"Вкупно почетни долгови (сите години): "+amountLine(grandInitial),
		"Вкупно уплатено (сите години):        "+amountLine(grandPaid),
		"Збирно преостанато салдо:             "+amountLine(grandBalance),
		summaryRule,
		"",
	)

	return strings.Join(lines, "\n")
}

// YearFilename suggests a filename for a single-year export. Every rune of
// the customer name that is not a letter or digit becomes an underscore so
// the result is filesystem-safe while keeping Cyrillic names readable.
func YearFilename(name string, year int) string {
	return fmt.Sprintf("Izvestaj_%s_%d.txt", sanitizeName(name), year)
}

// SummaryFilename suggests a filename for the all-years export
func SummaryFilename(name string) string {
	return fmt.Sprintf("Izvestaj_ZBIRNO_%s.txt", sanitizeName(name))
}

func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
}
