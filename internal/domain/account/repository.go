package account

import (
	"context"
)

// Repository defines the interface for account year data operations
type Repository interface {
	// Get the account year record, or a NOT_FOUND error when absent
	GetAccountYear(ctx context.Context, customerID string, year int) (*AccountYear, error)

	// Insert or overwrite the record keyed on (customer, year)
	UpsertAccountYear(ctx context.Context, ay *AccountYear) error

	// List all recorded account years for a customer, ascending by year
	ListAccountYears(ctx context.Context, customerID string) ([]*AccountYear, error)
}
