package customer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dankic7/dolgovi/internal/domain/errors"
)

type fakeCustomerRepo struct {
	customers map[string]*Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*Customer)}
}

func (r *fakeCustomerRepo) CreateCustomer(ctx context.Context, cust *Customer) (*Customer, error) {
	r.customers[cust.CustomerID] = cust
	return cust, nil
}

func (r *fakeCustomerRepo) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	cust, ok := r.customers[customerID]
	if !ok {
		return nil, errors.NewNotFoundError("customer not found")
	}
	return cust, nil
}

func (r *fakeCustomerRepo) ListCustomers(ctx context.Context, search string) ([]*Customer, error) {
	var out []*Customer
	for _, cust := range r.customers {
		if search == "" || strings.Contains(cust.Name, search) || strings.Contains(cust.Phone, search) {
			out = append(out, cust)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) UpdateCustomer(ctx context.Context, customerID string, req *UpdateCustomerRequest) (*Customer, error) {
	cust, ok := r.customers[customerID]
	if !ok {
		return nil, errors.NewNotFoundError("customer not found")
	}
	cust.Name = req.Name
	cust.Phone = req.Phone
	cust.Notes = req.Notes
	return cust, nil
}

func (r *fakeCustomerRepo) DeleteCustomer(ctx context.Context, customerID string) error {
	delete(r.customers, customerID)
	return nil
}

func TestCreateCustomer(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	cust, err := svc.CreateCustomer(context.Background(), &CreateCustomerRequest{
		Name:  "  Ана Анева  ",
		Phone: "070123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ана Анева", cust.Name)
	assert.NotEmpty(t, cust.CustomerID)
	assert.False(t, cust.CreatedAt.IsZero())
}

func TestCreateCustomerRequiresName(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerRequest{Name: "   "})
	assert.ErrorIs(t, err, errors.NewValidationError(""))
}

func TestUpdateCustomerMissing(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	_, err := svc.UpdateCustomer(context.Background(), "missing", &UpdateCustomerRequest{Name: "Марко"})
	assert.ErrorIs(t, err, errors.NewNotFoundError(""))
}

func TestDeleteCustomerMissing(t *testing.T) {
	svc := NewService(newFakeCustomerRepo())

	err := svc.DeleteCustomer(context.Background(), "missing")
	assert.ErrorIs(t, err, errors.NewNotFoundError(""))
}

func TestListCustomersSearch(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.CreateCustomer(ctx, &CreateCustomerRequest{Name: "Ана Анева", Phone: "070111222"})
	require.NoError(t, err)
	_, err = svc.CreateCustomer(ctx, &CreateCustomerRequest{Name: "Марко Марков", Phone: "071333444"})
	require.NoError(t, err)

	all, err := svc.ListCustomers(ctx, &ListCustomersRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := svc.ListCustomers(ctx, &ListCustomersRequest{Search: "Ана"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Ана Анева", matched[0].Name)
}
