package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountEmailExists = errors.New("account email already exists")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountEmailExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account := &models.Account{}
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetByEmail retrieves an account by its (lower-cased) email
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return &account, nil
}

// UpdateKYCStatus sets the account's identity verification status
func (r *accountRepository) UpdateKYCStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.IsValidKYCStatus(status) {
		return models.ErrInvalidKYCStatus
	}

	result := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Update("kyc_status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update kyc status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ClaimKYCSubmission moves the account to pending unless a verification is already
// pending or approved. It reports false when another submission holds the account.
func (r *accountRepository) ClaimKYCSubmission(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Where("kyc_status NOT IN ?", []string{models.KYCStatusPending, models.KYCStatusApproved}).
		Update("kyc_status", models.KYCStatusPending)

	if result.Error != nil {
		return false, fmt.Errorf("failed to claim kyc submission: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}
