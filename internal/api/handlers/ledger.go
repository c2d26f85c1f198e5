package handlers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/dankic7/dolgovi/internal/api/response"
	"github.com/dankic7/dolgovi/internal/domain/account"
	"github.com/dankic7/dolgovi/internal/domain/customer"
	"github.com/dankic7/dolgovi/internal/domain/ledger"
	"github.com/dankic7/dolgovi/internal/domain/payment"
	"github.com/dankic7/dolgovi/internal/domain/report"
)

// LedgerHandler handles the customer ledger endpoints
type LedgerHandler struct {
	customerService *customer.Service
	accountService  *account.Service
	paymentService  *payment.Service
	reportService   *report.Service
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(
	customerService *customer.Service,
	accountService *account.Service,
	paymentService *payment.Service,
	reportService *report.Service,
) *LedgerHandler {
	return &LedgerHandler{
		customerService: customerService,
		accountService:  accountService,
		paymentService:  paymentService,
		reportService:   reportService,
	}
}

// BalanceResponse carries a single formatted balance figure
type BalanceResponse struct {
	CustomerID string `json:"customerId"`
	Year       int    `json:"year,omitempty"`
	Balance    string `json:"balance"`
}

// BatchReportResponse wraps the per-year report units of a batch export
type BatchReportResponse struct {
	CustomerID string             `json:"customerId"`
	Reports    []report.BatchUnit `json:"reports"`
	TotalCount int                `json:"totalCount"`
}

// ListCustomers handles GET /customers. Each row carries the customer's
// lifetime balance so the overview can show it without extra round trips.
func (h *LedgerHandler) ListCustomers(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := &customer.ListCustomersRequest{
		Search: request.QueryStringParameters["search"],
	}

	customers, err := h.customerService.ListCustomers(ctx, req)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	items := make([]customer.CustomerListItem, 0, len(customers))
	for _, cust := range customers {
		balance, err := h.reportService.LifetimeBalance(ctx, cust.CustomerID)
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		items = append(items, customer.CustomerListItem{
			Customer:        cust,
			LifetimeBalance: ledger.FormatAmount(balance),
		})
	}

	return response.OK(&customer.CustomerListResponse{
		Customers:  items,
		TotalCount: len(items),
	}, request.RequestContext.RequestID), nil
}

// CreateCustomer handles POST /customers
func (h *LedgerHandler) CreateCustomer(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req customer.CreateCustomerRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return response.BadRequest("Invalid JSON body", request.RequestContext.RequestID), nil
	}

	cust, err := h.customerService.CreateCustomer(ctx, &req)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.Created(cust, request.RequestContext.RequestID), nil
}

// GetCustomer handles GET /customers/{id}
func (h *LedgerHandler) GetCustomer(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string) (events.APIGatewayProxyResponse, error) {
	cust, err := h.customerService.GetCustomer(ctx, customerID)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(cust, request.RequestContext.RequestID), nil
}

// UpdateCustomer handles PUT /customers/{id}
func (h *LedgerHandler) UpdateCustomer(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string) (events.APIGatewayProxyResponse, error) {
	var req customer.UpdateCustomerRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return response.BadRequest("Invalid JSON body", request.RequestContext.RequestID), nil
	}

	cust, err := h.customerService.UpdateCustomer(ctx, customerID, &req)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(cust, request.RequestContext.RequestID), nil
}

// DeleteCustomer handles DELETE /customers/{id}. The delete cascades to the
// customer's account years and payments.
func (h *LedgerHandler) DeleteCustomer(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string) (events.APIGatewayProxyResponse, error) {
	if err := h.customerService.DeleteCustomer(ctx, customerID); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	logger.Info("customer deleted", "customerId", customerID)
	return response.NoContent(), nil
}

// ListYears handles GET /customers/{id}/years
func (h *LedgerHandler) ListYears(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string) (events.APIGatewayProxyResponse, error) {
	if _, err := h.customerService.GetCustomer(ctx, customerID); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	years, err := h.accountService.ListYears(ctx, customerID)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(years, request.RequestContext.RequestID), nil
}

// GetInitialDebt handles GET /customers/{id}/years/{y}/account
func (h *LedgerHandler) GetInitialDebt(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string, year int) (events.APIGatewayProxyResponse, error) {
	if _, err := h.customerService.GetCustomer(ctx, customerID); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	debt, err := h.accountService.GetInitialDebt(ctx, customerID, year)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(debt, request.RequestContext.RequestID), nil
}

// SetInitialDebt handles PUT /customers/{id}/years/{y}/account
func (h *LedgerHandler) SetInitialDebt(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string, year int) (events.APIGatewayProxyResponse, error) {
	var req account.SetInitialDebtRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return response.BadRequest("Invalid JSON body", request.RequestContext.RequestID), nil
	}

	if _, err := h.customerService.GetCustomer(ctx, customerID); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	ay, err := h.accountService.SetInitialDebt(ctx, customerID, year, &req)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(ay, request.RequestContext.RequestID), nil
}

// ListPayments handles GET /customers/{id}/years/{y}/payments
func (h *LedgerHandler) ListPayments(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string, year int) (events.APIGatewayProxyResponse, error) {
	if _, err := h.customerService.GetCustomer(ctx, customerID); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	payments, err := h.paymentService.ListPayments(ctx, customerID, year)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(payments, request.RequestContext.RequestID), nil
}

// CreatePayment handles POST /customers/{id}/years/{y}/payments
func (h *LedgerHandler) CreatePayment(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string, year int) (events.APIGatewayProxyResponse, error) {
	var req payment.CreatePaymentRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return response.BadRequest("Invalid JSON body", request.RequestContext.RequestID), nil
	}

	if _, err := h.customerService.GetCustomer(ctx, customerID); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	p, err := h.paymentService.CreatePayment(ctx, customerID, year, &req)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.Created(p, request.RequestContext.RequestID), nil
}

// UpdatePayment handles PUT /customers/{id}/years/{y}/payments/{pid}
func (h *LedgerHandler) UpdatePayment(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string, year int, paymentID string) (events.APIGatewayProxyResponse, error) {
	var req payment.UpdatePaymentRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return response.BadRequest("Invalid JSON body", request.RequestContext.RequestID), nil
	}

	p, err := h.paymentService.UpdatePayment(ctx, customerID, year, paymentID, &req)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(p, request.RequestContext.RequestID), nil
}

// DeletePayment handles DELETE /customers/{id}/years/{y}/payments/{pid}
func (h *LedgerHandler) DeletePayment(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string, year int, paymentID string) (events.APIGatewayProxyResponse, error) {
	if err := h.paymentService.DeletePayment(ctx, customerID, year, paymentID); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.NoContent(), nil
}

// YearBalance handles GET /customers/{id}/years/{y}/balance
func (h *LedgerHandler) YearBalance(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string, year int) (events.APIGatewayProxyResponse, error) {
	if _, err := h.customerService.GetCustomer(ctx, customerID); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	balance, err := h.reportService.YearBalance(ctx, customerID, year)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(&BalanceResponse{
		CustomerID: customerID,
		Year:       year,
		Balance:    ledger.FormatAmount(balance),
	}, request.RequestContext.RequestID), nil
}

// YearReport handles GET /customers/{id}/reports/{y}. Reports are served as
// plain text, not JSON.
func (h *LedgerHandler) YearReport(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string, year int) (events.APIGatewayProxyResponse, error) {
	cust, err := h.customerService.GetCustomer(ctx, customerID)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	text, err := h.reportService.YearReport(ctx, report.CustomerInfo{Name: cust.Name, Phone: cust.Phone}, customerID, year)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.Text(text, request.RequestContext.RequestID), nil
}

// SummaryReport handles GET /customers/{id}/reports/summary
func (h *LedgerHandler) SummaryReport(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string) (events.APIGatewayProxyResponse, error) {
	cust, err := h.customerService.GetCustomer(ctx, customerID)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	text, err := h.reportService.SummaryReport(ctx, report.CustomerInfo{Name: cust.Name, Phone: cust.Phone}, customerID)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.Text(text, request.RequestContext.RequestID), nil
}

// BatchReports handles GET /customers/{id}/reports/batch. The response
// carries one unit per recorded year with a suggested filename; writing the
// files is the caller's job.
func (h *LedgerHandler) BatchReports(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest, customerID string) (events.APIGatewayProxyResponse, error) {
	cust, err := h.customerService.GetCustomer(ctx, customerID)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	units, err := h.reportService.BatchReports(ctx, report.CustomerInfo{Name: cust.Name, Phone: cust.Phone}, customerID)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return response.OK(&BatchReportResponse{
		CustomerID: customerID,
		Reports:    units,
		TotalCount: len(units),
	}, request.RequestContext.RequestID), nil
}
