package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a single dated, signed entry against a customer's year.
// Positive amounts reduce the debt, negative amounts record a new charge.
type Payment struct {
	PaymentID  string          `json:"paymentId" dynamodbav:"paymentId"`
	CustomerID string          `json:"customerId" dynamodbav:"customerId"`
	Year       int             `json:"year" dynamodbav:"year"`
	Date       string          `json:"date" dynamodbav:"date"` // canonical YYYY-MM-DD
	Amount     decimal.Decimal `json:"amount" dynamodbav:"-"`
	Note       string          `json:"note,omitempty" dynamodbav:"note"`
	CreatedAt  time.Time       `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt" dynamodbav:"updatedAt"`

	// DynamoDB specific attributes
	PK string `json:"-" dynamodbav:"-"`
	SK string `json:"-" dynamodbav:"-"`
}

// CreatePaymentRequest represents the request to record a payment or charge.
// Date and Amount arrive as user-entered strings and are validated before
// anything is written.
type CreatePaymentRequest struct {
	Date   string `json:"date" validate:"required"`
	Amount string `json:"amount" validate:"required"`
	Note   string `json:"note,omitempty"`
}

// UpdatePaymentRequest represents the request to update an existing payment
type UpdatePaymentRequest struct {
	Date   string `json:"date" validate:"required"`
	Amount string `json:"amount" validate:"required"`
	Note   string `json:"note,omitempty"`
}

// PaymentListResponse represents the response for listing a year's payments
type PaymentListResponse struct {
	Payments   []*Payment `json:"payments"`
	TotalCount int        `json:"totalCount"`
}
