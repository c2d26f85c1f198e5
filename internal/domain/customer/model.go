package customer

import (
	"time"
)

// Customer represents a customer tracked by the ledger
type Customer struct {
	CustomerID string    `json:"customerId" dynamodbav:"customerId"`
	Name       string    `json:"name" dynamodbav:"name"`
	Phone      string    `json:"phone,omitempty" dynamodbav:"phone"`
	Notes      string    `json:"notes,omitempty" dynamodbav:"notes"`
	CreatedAt  time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" dynamodbav:"updatedAt"`

	// DynamoDB specific attributes
	PK string `json:"-" dynamodbav:"-"`
	SK string `json:"-" dynamodbav:"-"`
}

// CreateCustomerRequest represents the request to create a new customer
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// UpdateCustomerRequest represents the request to update an existing customer
type UpdateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// ListCustomersRequest represents the request to list customers
type ListCustomersRequest struct {
	// Search filters by substring match on name or phone; empty lists all.
	Search string `json:"search,omitempty"`
}

// CustomerListItem is one row of the customer overview, with the lifetime
// balance the presentation layer shows next to each customer.
type CustomerListItem struct {
	Customer        *Customer `json:"customer"`
	LifetimeBalance string    `json:"lifetimeBalance"`
}

// CustomerListResponse represents the response for listing customers
type CustomerListResponse struct {
	Customers  []CustomerListItem `json:"customers"`
	TotalCount int                `json:"totalCount"`
}
