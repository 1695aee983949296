package main

import (
	"context"
	"log"

	"github.com/finvoice/dashboard-api/internal/config"
	"github.com/finvoice/dashboard-api/internal/currency"
	"github.com/finvoice/dashboard-api/internal/database"
	"github.com/finvoice/dashboard-api/internal/handler"
	"github.com/finvoice/dashboard-api/internal/logger"
	"github.com/finvoice/dashboard-api/internal/repository"
	"github.com/finvoice/dashboard-api/internal/server"
	"github.com/finvoice/dashboard-api/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	gateway := repository.NewGateway(db.GetPool(), appLog)
	invoiceRepo := repository.NewPostgresInvoiceRepository(gateway)
	customerRepo := repository.NewPostgresCustomerRepository(gateway)
	revenueRepo := repository.NewPostgresRevenueRepository(gateway)
	dashboardRepo := repository.NewPostgresDashboardRepository(gateway)

	formatter := currency.NewFormatter(cfg.CurrencyLocale, cfg.CurrencySymbol)

	invoiceService := service.NewInvoiceService(invoiceRepo, cfg.PageSize, cfg.QueryTimeout)
	customerService := service.NewCustomerService(customerRepo, formatter, cfg.QueryTimeout)
	dashboardService := service.NewDashboardService(revenueRepo, invoiceRepo, dashboardRepo, formatter, cfg.LatestInvoicesLimit)

	appServer := server.NewServer(cfg, appLog, server.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Invoices:  handler.NewInvoiceHandler(invoiceService),
		Customers: handler.NewCustomerHandler(customerService),
	})

	appLog.Info().Int("port", cfg.Port).Msg("starting server")
	if err := appServer.Start(); err != nil {
		appLog.Fatal().Err(err).Msg("server error")
	}
}
