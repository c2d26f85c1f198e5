package account

import (
	"context"
	stderrors "errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dankic7/dolgovi/internal/domain/errors"
	"github.com/dankic7/dolgovi/internal/domain/ledger"
)

// Service provides account year business logic
type Service struct {
	repo Repository
}

// NewService creates a new account service
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// GetInitialDebt returns the starting debt for the given year. An absent
// record is reported as 0.00 with Recorded=false; that default exists for
// display only and never feeds a lifetime balance.
func (s *Service) GetInitialDebt(ctx context.Context, customerID string, year int) (*InitialDebtResponse, error) {
	ay, err := s.repo.GetAccountYear(ctx, customerID, year)
	if err != nil {
		if stderrors.Is(err, errors.NewNotFoundError("")) {
			return &InitialDebtResponse{
				Year:        year,
				InitialDebt: ledger.FormatAmount(decimal.Zero),
				Recorded:    false,
			}, nil
		}
		return nil, err
	}

	return &InitialDebtResponse{
		Year:        year,
		InitialDebt: ledger.FormatAmount(ay.InitialDebt),
		Recorded:    true,
	}, nil
}

// SetInitialDebt parses and stores the starting debt for (customer, year),
// overwriting any existing record
func (s *Service) SetInitialDebt(ctx context.Context, customerID string, year int, req *SetInitialDebtRequest) (*AccountYear, error) {
	debt, err := ledger.ParseAmount(req.InitialDebt)
	if err != nil {
		return nil, err
	}
	if debt.IsNegative() {
		return nil, errors.NewInvalidAmountError("initial debt must not be negative")
	}

	now := time.Now().UTC()
	ay := &AccountYear{
		CustomerID:  customerID,
		Year:        year,
		InitialDebt: debt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.UpsertAccountYear(ctx, ay); err != nil {
		return nil, err
	}
	return ay, nil
}

// ListYears returns the recorded years plus the adjacent calendar years the
// UI offers for convenience
func (s *Service) ListYears(ctx context.Context, customerID string) (*YearListResponse, error) {
	records, err := s.repo.ListAccountYears(ctx, customerID)
	if err != nil {
		return nil, err
	}

	recorded := make([]int, 0, len(records))
	seen := make(map[int]bool, len(records)+3)
	for _, ay := range records {
		recorded = append(recorded, ay.Year)
		seen[ay.Year] = true
	}
	sort.Ints(recorded)

	suggested := append([]int{}, recorded...)
	current := time.Now().UTC().Year()
	for _, y := range []int{current - 1, current, current + 1} {
		if !seen[y] {
			suggested = append(suggested, y)
		}
	}
	sort.Ints(suggested)

	return &YearListResponse{
		RecordedYears:  recorded,
		SuggestedYears: suggested,
	}, nil
}
