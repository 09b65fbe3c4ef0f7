package main

import (
	"log/slog"

	"github.com/rajshah0904/Liquicity-sub002/internal/config"
	"github.com/rajshah0904/Liquicity-sub002/internal/database"
	"github.com/rajshah0904/Liquicity-sub002/internal/handlers"
	"github.com/rajshah0904/Liquicity-sub002/internal/repositories"
	"github.com/rajshah0904/Liquicity-sub002/internal/services"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	TokenService services.TokenServiceInterface
	AccountRepo  repositories.AccountRepositoryInterface

	HealthHandler      *handlers.HealthCheckHandler
	TransactionHandler *handlers.TransactionHandler
	KYCHandler         *handlers.KYCHandler
	DevHandler         *handlers.DevHandler
}

// NewDependencies wires repositories, services and handlers over the open database.
func NewDependencies(cfg *config.Config, db *database.DB) *Dependencies {
	accountRepo := repositories.NewAccountRepository(db.DB)
	linkedAccountRepo := repositories.NewLinkedAccountRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	kycSubmissionRepo := repositories.NewKYCSubmissionRepository(db.DB)

	metrics := services.NewPrometheusMetrics()

	listingService := services.NewTransactionListingService(
		services.NewTransactionQueryService(transactionRepo),
		services.NewTransactionSummaryService(transactionRepo),
		metrics,
	)

	kycProvider := services.NewKYCProviderClient(&cfg.KYC, metrics, slog.Default().With("component", "kyc_provider"))
	kycService := services.NewKYCService(accountRepo, kycSubmissionRepo, kycProvider, metrics)

	deps := &Dependencies{
		TokenService:       services.NewTokenService(&cfg.JWT),
		AccountRepo:        accountRepo,
		HealthHandler:      handlers.NewHealthCheckHandler(db),
		TransactionHandler: handlers.NewTransactionHandler(listingService),
		KYCHandler:         handlers.NewKYCHandler(kycService),
	}

	if cfg.IsDevelopment() {
		deps.DevHandler = handlers.NewDevHandler(transactionRepo, linkedAccountRepo, services.NewTransactionGenerator())
	}

	return deps
}
