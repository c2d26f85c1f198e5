package customer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dankic7/dolgovi/internal/domain/errors"
)

// Service provides customer-related business logic
type Service struct {
	repo Repository
}

// NewService creates a new customer service
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// CreateCustomer creates a new customer
func (s *Service) CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewValidationError("customer name is required")
	}

	now := time.Now().UTC()
	cust := &Customer{
		CustomerID: uuid.New().String(),
		Name:       name,
		Phone:      strings.TrimSpace(req.Phone),
		Notes:      strings.TrimSpace(req.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return s.repo.CreateCustomer(ctx, cust)
}

// GetCustomer retrieves a customer by ID
func (s *Service) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	return s.repo.GetCustomer(ctx, customerID)
}

// ListCustomers retrieves customers, optionally filtered by a search term
// matched against name and phone
func (s *Service) ListCustomers(ctx context.Context, req *ListCustomersRequest) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx, strings.TrimSpace(req.Search))
}

// UpdateCustomer updates an existing customer
func (s *Service) UpdateCustomer(ctx context.Context, customerID string, req *UpdateCustomerRequest) (*Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewValidationError("customer name is required")
	}

	// Check if the customer exists
	if _, err := s.repo.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	return s.repo.UpdateCustomer(ctx, customerID, req)
}

// DeleteCustomer deletes a customer. The repository cascades the delete to
// the customer's account years and payments so no orphan rows remain.
func (s *Service) DeleteCustomer(ctx context.Context, customerID string) error {
	if _, err := s.repo.GetCustomer(ctx, customerID); err != nil {
		return err
	}
	return s.repo.DeleteCustomer(ctx, customerID)
}
