package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/dankic7/dolgovi/internal/domain/account"
	commonErrors "github.com/dankic7/dolgovi/internal/domain/errors"
	"github.com/dankic7/dolgovi/internal/domain/payment"
)

// ReportStore adapts the account and payment repositories to the report
// engine's read-only Store contract
type ReportStore struct {
	accounts account.Repository
	payments payment.Repository
}

// NewReportStore creates a new ReportStore
func NewReportStore(accounts account.Repository, payments payment.Repository) *ReportStore {
	return &ReportStore{
		accounts: accounts,
		payments: payments,
	}
}

// GetAccountYear returns the starting debt and whether a record exists.
// Absence is not an error at this level; callers decide what it means.
func (s *ReportStore) GetAccountYear(ctx context.Context, customerID string, year int) (decimal.Decimal, bool, error) {
	ay, err := s.accounts.GetAccountYear(ctx, customerID, year)
	if err != nil {
		if errors.Is(err, commonErrors.NewNotFoundError("")) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}
	return ay.InitialDebt, true, nil
}

// ListPayments returns a year's payments ascending by date
func (s *ReportStore) ListPayments(ctx context.Context, customerID string, year int) ([]*payment.Payment, error) {
	return s.payments.ListPayments(ctx, customerID, year)
}

// ListAccountYears returns the recorded years ascending
func (s *ReportStore) ListAccountYears(ctx context.Context, customerID string) ([]int, error) {
	records, err := s.accounts.ListAccountYears(ctx, customerID)
	if err != nil {
		return nil, err
	}
	years := make([]int, 0, len(records))
	for _, ay := range records {
		years = append(years, ay.Year)
	}
	return years, nil
}
