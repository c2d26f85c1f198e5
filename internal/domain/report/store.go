package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dankic7/dolgovi/internal/domain/payment"
)

// Store is the narrow read surface the report engine needs from the ledger
// store. The engine never writes; tests inject an in-memory implementation.
type Store interface {
	// GetAccountYear returns the starting debt for (customer, year) and
	// whether an account year record exists. Absent records read as zero,
	// but only recorded years participate in summaries and lifetime
	// balances.
	GetAccountYear(ctx context.Context, customerID string, year int) (decimal.Decimal, bool, error)

	// ListPayments returns a year's payments ascending by date
	ListPayments(ctx context.Context, customerID string, year int) ([]*payment.Payment, error)

	// ListAccountYears returns the recorded years for a customer, ascending
	ListAccountYears(ctx context.Context, customerID string) ([]int, error)
}
