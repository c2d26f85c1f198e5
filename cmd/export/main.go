package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	envconfig "github.com/dankic7/dolgovi/internal/common/config"
	"github.com/dankic7/dolgovi/internal/domain/customer"
	"github.com/dankic7/dolgovi/internal/domain/report"
	ddbclient "github.com/dankic7/dolgovi/internal/platform/dynamodb/client"
	"github.com/dankic7/dolgovi/internal/platform/dynamodb/repository"
)

// Exports a customer's reports as TXT files. This command owns the only
// file I/O in the system; the report engine itself never touches disk.
func main() {
	customerID := flag.String("customer", "", "customer ID to export")
	outDir := flag.String("out", ".", "output directory for the TXT files")
	withSummary := flag.Bool("summary", false, "also write the all-years summary report")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *customerID == "" {
		logger.Error("missing required -customer flag")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), logger, *customerID, *outDir, *withSummary); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, customerID, outDir string, withSummary bool) error {
	config, err := envconfig.LoadFromEnv()
	if err != nil {
		return err
	}

	dbClient, err := ddbclient.NewDynamoDBClient(ctx, config.AWSRegion)
	if err != nil {
		return err
	}

	factory := repository.NewFactory(dbClient, config.DynamoDBTableName, logger)
	customerService := customer.NewService(factory.CustomerRepository())
	reportService := report.NewService(factory.ReportStore())

	cust, err := customerService.GetCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	info := report.CustomerInfo{Name: cust.Name, Phone: cust.Phone}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	units, err := reportService.BatchReports(ctx, info, customerID)
	if err != nil {
		return err
	}

	for _, unit := range units {
		path := filepath.Join(outDir, unit.Filename)
		if err := os.WriteFile(path, []byte(unit.Text), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", unit.Filename, err)
		}
		logger.Info("report written", "year", unit.Year, "file", path)
	}

	if withSummary {
		text, err := reportService.SummaryReport(ctx, info, customerID)
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, report.SummaryFilename(cust.Name))
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		logger.Info("summary written", "file", path)
	}

	logger.Info("export complete", "customer", cust.Name, "reports", len(units))
	return nil
}
