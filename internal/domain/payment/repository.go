package payment

import (
	"context"
)

// Repository defines the interface for payment data operations
type Repository interface {
	// Create a new payment under (customer, year)
	CreatePayment(ctx context.Context, p *Payment) (*Payment, error)

	// List a year's payments ascending by date, insertion order on ties
	ListPayments(ctx context.Context, customerID string, year int) ([]*Payment, error)

	// Get a single payment by ID within (customer, year)
	GetPayment(ctx context.Context, customerID string, year int, paymentID string) (*Payment, error)

	// Replace date/amount/note of an existing payment
	UpdatePayment(ctx context.Context, p *Payment) (*Payment, error)

	// Delete a payment
	DeletePayment(ctx context.Context, customerID string, year int, paymentID string) error
}
