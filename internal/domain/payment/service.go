package payment

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dankic7/dolgovi/internal/domain/ledger"
)

// Service provides payment business logic. All write paths validate date
// and amount up front; nothing malformed is ever defaulted and written.
type Service struct {
	repo Repository
}

// NewService creates a new payment service
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// CreatePayment validates and records a payment or charge
func (s *Service) CreatePayment(ctx context.Context, customerID string, year int, req *CreatePaymentRequest) (*Payment, error) {
	date, err := ledger.NormalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := ledger.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &Payment{
		PaymentID:  ulid.Make().String(),
		CustomerID: customerID,
		Year:       year,
		Date:       date,
		Amount:     amount,
		Note:       strings.TrimSpace(req.Note),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return s.repo.CreatePayment(ctx, p)
}

// ListPayments returns a year's payments ascending by date
func (s *Service) ListPayments(ctx context.Context, customerID string, year int) (*PaymentListResponse, error) {
	payments, err := s.repo.ListPayments(ctx, customerID, year)
	if err != nil {
		return nil, err
	}
	return &PaymentListResponse{
		Payments:   payments,
		TotalCount: len(payments),
	}, nil
}

// UpdatePayment validates and replaces the date, amount and note of an
// existing payment
func (s *Service) UpdatePayment(ctx context.Context, customerID string, year int, paymentID string, req *UpdatePaymentRequest) (*Payment, error) {
	date, err := ledger.NormalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := ledger.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetPayment(ctx, customerID, year, paymentID)
	if err != nil {
		return nil, err
	}

	existing.Date = date
	existing.Amount = amount
	existing.Note = strings.TrimSpace(req.Note)
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.UpdatePayment(ctx, existing)
}

// DeletePayment removes a payment
func (s *Service) DeletePayment(ctx context.Context, customerID string, year int, paymentID string) error {
	if _, err := s.repo.GetPayment(ctx, customerID, year, paymentID); err != nil {
		return err
	}
	return s.repo.DeletePayment(ctx, customerID, year, paymentID)
}
