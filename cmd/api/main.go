package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/dankic7/dolgovi/internal/api/handlers"
	"github.com/dankic7/dolgovi/internal/api/middleware"
	"github.com/dankic7/dolgovi/internal/api/response"
	envconfig "github.com/dankic7/dolgovi/internal/common/config"
	"github.com/dankic7/dolgovi/internal/domain/account"
	"github.com/dankic7/dolgovi/internal/domain/customer"
	"github.com/dankic7/dolgovi/internal/domain/payment"
	"github.com/dankic7/dolgovi/internal/domain/report"
	ddbclient "github.com/dankic7/dolgovi/internal/platform/dynamodb/client"
	"github.com/dankic7/dolgovi/internal/platform/dynamodb/repository"
)

var (
	ledgerHandler *handlers.LedgerHandler
	logger        *slog.Logger
	config        *envconfig.Config
	chain         middleware.APIGatewayHandler
)

func init() {
	logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	var err error
	config, err = envconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load Env config: %v", err)
	}

	dbClient, err := ddbclient.NewDynamoDBClient(context.Background(), config.AWSRegion)
	if err != nil {
		log.Fatalf("Failed to create DynamoDB client: %v", err)
	}

	factory := repository.NewFactory(dbClient, config.DynamoDBTableName, logger)

	customerService := customer.NewService(factory.CustomerRepository())
	accountService := account.NewService(factory.AccountRepository())
	paymentService := payment.NewService(factory.PaymentRepository())
	reportService := report.NewService(factory.ReportStore())

	ledgerHandler = handlers.NewLedgerHandler(customerService, accountService, paymentService, reportService)

	chain = middleware.NewRecoveryMiddleware().Handle(
		middleware.NewLoggingMiddleware().Handle(route),
	)
}

// route dispatches by path shape. Paths look like
// /customers/{id}/years/{y}/payments/{pid}; segments are matched
// positionally after trimming the leading slash.
func route(ctx context.Context, logger *slog.Logger, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	method := request.HTTPMethod
	path := strings.Trim(request.Path, "/")
	segments := strings.Split(path, "/")

	if len(segments) == 0 || segments[0] != "customers" {
		return response.NotFound("Endpoint not found"), nil
	}

	switch len(segments) {
	case 1:
		// /customers
		switch method {
		case "GET":
			return ledgerHandler.ListCustomers(ctx, logger, request)
		case "POST":
			return ledgerHandler.CreateCustomer(ctx, logger, request)
		}

	case 2:
		// /customers/{id}
		customerID := segments[1]
		switch method {
		case "GET":
			return ledgerHandler.GetCustomer(ctx, logger, request, customerID)
		case "PUT":
			return ledgerHandler.UpdateCustomer(ctx, logger, request, customerID)
		case "DELETE":
			return ledgerHandler.DeleteCustomer(ctx, logger, request, customerID)
		}

	case 3:
		customerID := segments[1]
		switch {
		case segments[2] == "years" && method == "GET":
			return ledgerHandler.ListYears(ctx, logger, request, customerID)
		}

	case 4:
		customerID := segments[1]
		if segments[2] == "reports" && method == "GET" {
			switch segments[3] {
			case "summary":
				return ledgerHandler.SummaryReport(ctx, logger, request, customerID)
			case "batch":
				return ledgerHandler.BatchReports(ctx, logger, request, customerID)
			default:
				year, err := parseYear(segments[3])
				if err != nil {
					return response.BadRequest("Invalid year in path", request.RequestContext.RequestID), nil
				}
				return ledgerHandler.YearReport(ctx, logger, request, customerID, year)
			}
		}

	case 5:
		// /customers/{id}/years/{y}/account|payments|balance
		customerID := segments[1]
		if segments[2] != "years" {
			break
		}
		year, err := parseYear(segments[3])
		if err != nil {
			return response.BadRequest("Invalid year in path", request.RequestContext.RequestID), nil
		}
		switch {
		case segments[4] == "account" && method == "GET":
			return ledgerHandler.GetInitialDebt(ctx, logger, request, customerID, year)
		case segments[4] == "account" && method == "PUT":
			return ledgerHandler.SetInitialDebt(ctx, logger, request, customerID, year)
		case segments[4] == "payments" && method == "GET":
			return ledgerHandler.ListPayments(ctx, logger, request, customerID, year)
		case segments[4] == "payments" && method == "POST":
			return ledgerHandler.CreatePayment(ctx, logger, request, customerID, year)
		case segments[4] == "balance" && method == "GET":
			return ledgerHandler.YearBalance(ctx, logger, request, customerID, year)
		}

	case 6:
		// /customers/{id}/years/{y}/payments/{pid}
		customerID := segments[1]
		if segments[2] != "years" || segments[4] != "payments" {
			break
		}
		year, err := parseYear(segments[3])
		if err != nil {
			return response.BadRequest("Invalid year in path", request.RequestContext.RequestID), nil
		}
		paymentID := segments[5]
		switch method {
		case "PUT":
			return ledgerHandler.UpdatePayment(ctx, logger, request, customerID, year, paymentID)
		case "DELETE":
			return ledgerHandler.DeletePayment(ctx, logger, request, customerID, year, paymentID)
		}
	}

	return response.NotFound("Endpoint not found"), nil
}

func parseYear(s string) (int, error) {
	return strconv.Atoi(s)
}

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Handle CORS preflight
	if request.HTTPMethod == "OPTIONS" {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    response.DefaultHeaders(),
		}, nil
	}

	if config.Environment == "dev" {
		slog.Info("Request Details",
			"path", request.Path,
			"method", request.HTTPMethod,
			"requestId", request.RequestContext.RequestID,
			"sourceIP", request.RequestContext.Identity.SourceIP,
			"queryParams", request.QueryStringParameters,
		)
	}

	return chain(ctx, logger, request)
}

func main() {
	lambda.Start(handler)
}
