package customer

import (
	"context"
)

// Repository defines the interface for customer data operations
type Repository interface {
	// Create a new customer
	CreateCustomer(ctx context.Context, cust *Customer) (*Customer, error)

	// Get a customer by ID
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)

	// List customers, newest first, optionally filtered by name/phone substring
	ListCustomers(ctx context.Context, search string) ([]*Customer, error)

	// Update an existing customer
	UpdateCustomer(ctx context.Context, customerID string, updateReq *UpdateCustomerRequest) (*Customer, error)

	// Delete a customer and everything stored under it (account years, payments)
	DeleteCustomer(ctx context.Context, customerID string) error
}
