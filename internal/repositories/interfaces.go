package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

// Columns the summary may group by
const (
	GroupByStatus = "status"
	GroupByType   = "transaction_type"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdateKYCStatus(ctx context.Context, id uuid.UUID, status string) error
	ClaimKYCSubmission(ctx context.Context, id uuid.UUID) (bool, error)
}

// LinkedAccountRepositoryInterface defines the contract for linked bank account operations
type LinkedAccountRepositoryInterface interface {
	Create(ctx context.Context, linked *models.LinkedAccount) error
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.LinkedAccount, error)
}

// TransactionRepositoryInterface is the record store behind the listing and summary.
// Every read is scoped by the filter; only FindPage honours sort and paging.
type TransactionRepositoryInterface interface {
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	FindPage(ctx context.Context, filter models.TransactionFilter, offset, limit int) ([]models.Transaction, error)
	CountMatching(ctx context.Context, filter models.TransactionFilter) (int64, error)
	CountGroupedBy(ctx context.Context, filter models.TransactionFilter, field string) ([]models.GroupCount, error)
	SumAmount(ctx context.Context, filter models.TransactionFilter) (decimal.Decimal, error)
}

// KYCSubmissionRepositoryInterface defines the contract for identity verification records
type KYCSubmissionRepositoryInterface interface {
	GetLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*models.KYCSubmission, error)
	// CreateWithAccountStatus stores the submission and copies its status onto the account atomically.
	// The account must hold a pending claim.
	CreateWithAccountStatus(ctx context.Context, submission *models.KYCSubmission) error
}
