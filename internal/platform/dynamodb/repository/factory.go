package repository

import (
	"log/slog"

	"github.com/dankic7/dolgovi/internal/domain/account"
	"github.com/dankic7/dolgovi/internal/domain/customer"
	"github.com/dankic7/dolgovi/internal/domain/payment"
	"github.com/dankic7/dolgovi/internal/domain/report"
	"github.com/dankic7/dolgovi/internal/platform/dynamodb/client"
)

// Factory creates repository instances
type Factory struct {
	client    client.Client
	tableName string
	logger    *slog.Logger
}

// NewFactory creates a new repository factory
func NewFactory(client client.Client, tableName string, logger *slog.Logger) *Factory {
	return &Factory{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// CustomerRepository returns an implementation of the customer.Repository interface
func (f *Factory) CustomerRepository() customer.Repository {
	return NewDynamoDBCustomerRepository(f.client, f.tableName, f.logger)
}

// AccountRepository returns an implementation of the account.Repository interface
func (f *Factory) AccountRepository() account.Repository {
	return NewDynamoDBAccountRepository(f.client, f.tableName)
}

// PaymentRepository returns an implementation of the payment.Repository interface
func (f *Factory) PaymentRepository() payment.Repository {
	return NewDynamoDBPaymentRepository(f.client, f.tableName, f.logger)
}

// ReportStore returns the narrow read surface the report engine consumes
func (f *Factory) ReportStore() report.Store {
	return NewReportStore(f.AccountRepository(), f.PaymentRepository())
}
