package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountYear holds a customer's starting debt for one calendar year.
// The (customer, year) pair is unique; writes go through an upsert.
type AccountYear struct {
	CustomerID  string          `json:"customerId" dynamodbav:"customerId"`
	Year        int             `json:"year" dynamodbav:"year"`
	InitialDebt decimal.Decimal `json:"initialDebt" dynamodbav:"-"`
	CreatedAt   time.Time       `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt" dynamodbav:"updatedAt"`

	// DynamoDB specific attributes
	PK string `json:"-" dynamodbav:"-"`
	SK string `json:"-" dynamodbav:"-"`
}

// SetInitialDebtRequest represents the request to set a year's starting debt
type SetInitialDebtRequest struct {
	InitialDebt string `json:"initialDebt" validate:"required"`
}

// InitialDebtResponse represents the stored starting debt for a year.
// Recorded reports whether an account year row exists; an absent row is
// rendered as 0.00 for display but excluded from lifetime balances.
type InitialDebtResponse struct {
	Year        int    `json:"year"`
	InitialDebt string `json:"initialDebt"`
	Recorded    bool   `json:"recorded"`
}

// YearListResponse represents the years offered to the presentation layer:
// every recorded year plus the previous, current and next calendar year.
type YearListResponse struct {
	RecordedYears  []int `json:"recordedYears"`
	SuggestedYears []int `json:"suggestedYears"`
}
