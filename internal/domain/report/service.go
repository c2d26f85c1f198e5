package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dankic7/dolgovi/internal/domain/errors"
	"github.com/dankic7/dolgovi/internal/domain/ledger"
	"github.com/dankic7/dolgovi/internal/domain/payment"
)

// Service turns store reads into balances and report text. It holds no
// state of its own; every call is a function of the store contents.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a new report service
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

func (s *Service) reportDate() string {
	return s.now().UTC().Format(ledger.ISODate)
}

func toEntries(payments []*payment.Payment) []ledger.YearEntry {
	entries := make([]ledger.YearEntry, 0, len(payments))
	for _, p := range payments {
		entries = append(entries, ledger.YearEntry{
			Date:   p.Date,
			Amount: p.Amount,
			Note:   p.Note,
		})
	}
	return entries
}

func (s *Service) yearLedger(ctx context.Context, customerID string, year int) (decimal.Decimal, []ledger.YearEntry, error) {
	initialDebt, _, err := s.store.GetAccountYear(ctx, customerID, year)
	if err != nil {
		return decimal.Zero, nil, err
	}
	payments, err := s.store.ListPayments(ctx, customerID, year)
	if err != nil {
		return decimal.Zero, nil, err
	}
	return initialDebt, toEntries(payments), nil
}

// YearBalance computes the balance for a single (customer, year). An absent
// account year record reads as zero initial debt here; this is the
// display-path default, not the summary inclusion rule.
func (s *Service) YearBalance(ctx context.Context, customerID string, year int) (decimal.Decimal, error) {
	initialDebt, entries, err := s.yearLedger(ctx, customerID, year)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.YearBalance(initialDebt, entries), nil
}

// LifetimeBalance sums the year balances over exactly the recorded account
// years. Payments in a year with no account year record do not count.
func (s *Service) LifetimeBalance(ctx context.Context, customerID string) (decimal.Decimal, error) {
	years, err := s.store.ListAccountYears(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}

	ledgers := make([]ledger.YearLedger, 0, len(years))
	for _, year := range years {
		initialDebt, entries, err := s.yearLedger(ctx, customerID, year)
		if err != nil {
			return decimal.Zero, err
		}
		ledgers = append(ledgers, ledger.YearLedger{
			Year:        year,
			InitialDebt: initialDebt,
			Entries:     entries,
		})
	}

	return ledger.LifetimeBalance(ledgers), nil
}

// YearReport renders the single-year report for a customer
func (s *Service) YearReport(ctx context.Context, cust CustomerInfo, customerID string, year int) (string, error) {
	initialDebt, entries, err := s.yearLedger(ctx, customerID, year)
	if err != nil {
		return "", err
	}
	section := ComposeYear(cust, year, initialDebt, entries, s.reportDate())
	return section.Text, nil
}

func (s *Service) recordedSections(ctx context.Context, cust CustomerInfo, customerID string) ([]YearSection, error) {
	years, err := s.store.ListAccountYears(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(years) == 0 {
		return nil, errors.NewMissingYearDataError("customer has no recorded years")
	}

	reportDate := s.reportDate()
	sections := make([]YearSection, 0, len(years))
	for _, year := range years {
		initialDebt, entries, err := s.yearLedger(ctx, customerID, year)
		if err != nil {
			return nil, err
		}
		sections = append(sections, ComposeYear(cust, year, initialDebt, entries, reportDate))
	}
	return sections, nil
}

// SummaryReport renders all recorded years in ascending order bracketed by
// a header and grand totals. A customer with no recorded years gets a
// MISSING_YEAR_DATA error, never an empty report.
func (s *Service) SummaryReport(ctx context.Context, cust CustomerInfo, customerID string) (string, error) {
	sections, err := s.recordedSections(ctx, cust, customerID)
	if err != nil {
		return "", err
	}
	return ComposeSummary(cust, sections, s.reportDate()), nil
}

// BatchReports produces one file-equivalent unit per recorded year with a
// suggested filename. Actual file I/O belongs to the caller.
func (s *Service) BatchReports(ctx context.Context, cust CustomerInfo, customerID string) ([]BatchUnit, error) {
	sections, err := s.recordedSections(ctx, cust, customerID)
	if err != nil {
		return nil, err
	}

	units := make([]BatchUnit, 0, len(sections))
	for _, sec := range sections {
		units = append(units, BatchUnit{
			Year:     sec.Year,
			Filename: YearFilename(cust.Name, sec.Year),
			Text:     sec.Text,
		})
	}
	return units, nil
}
