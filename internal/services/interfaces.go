package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rajshah0904/Liquicity-sub002/internal/dto"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

// TransactionQueryServiceInterface runs the filtered page lookup and its matching count
type TransactionQueryServiceInterface interface {
	ListPage(ctx context.Context, filter models.TransactionFilter) ([]dto.TransactionItem, error)
	CountMatching(ctx context.Context, filter models.TransactionFilter) (int64, error)
}

// TransactionSummaryServiceInterface computes the account-wide summary, ignoring page filters
type TransactionSummaryServiceInterface interface {
	GetSummary(ctx context.Context, accountID uuid.UUID) (*models.TransactionSummary, error)
}

// TransactionListingServiceInterface assembles the GET /transactions payload
type TransactionListingServiceInterface interface {
	ListTransactions(ctx context.Context, filter models.TransactionFilter) (*dto.ListTransactionsResponse, error)
}

// KYCProviderClientInterface talks to the third-party identity verification API
type KYCProviderClientInterface interface {
	Verify(ctx context.Context, req *dto.KYCProviderVerificationRequest) (*dto.KYCProviderVerificationResponse, error)
}

// KYCServiceInterface drives the submit-and-map verification flow
type KYCServiceInterface interface {
	Submit(ctx context.Context, accountID uuid.UUID, req *dto.KYCSubmissionRequest) (*models.KYCSubmission, error)
	GetStatus(ctx context.Context, accountID uuid.UUID) (*dto.KYCStatusResponse, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(account *models.Account) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TransactionGeneratorInterface generates realistic cross-border transaction data for seeding
type TransactionGeneratorInterface interface {
	Generate(accountID uuid.UUID, linked []models.LinkedAccount, startDate, endDate time.Time, count int) []models.Transaction
	GenerateAmount(transactionType string) decimal.Decimal
	GenerateStatus() string
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}
