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
	ErrKYCSubmissionNotFound = errors.New("kyc submission not found")
	ErrKYCClaimLost          = errors.New("account holds no pending kyc claim")
)

type kycSubmissionRepository struct {
	db *gorm.DB
}

// NewKYCSubmissionRepository creates a new KYC submission repository
func NewKYCSubmissionRepository(db *gorm.DB) KYCSubmissionRepositoryInterface {
	return &kycSubmissionRepository{db: db}
}

// GetLatestByAccountID returns the most recent submission for the account
func (r *kycSubmissionRepository) GetLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*models.KYCSubmission, error) {
	var submission models.KYCSubmission
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("submitted_at DESC").
		First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKYCSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get latest kyc submission: %w", err)
	}
	return &submission, nil
}

// CreateWithAccountStatus inserts the submission and updates accounts.kyc_status in one transaction.
// The status only moves off pending; any other current status rolls the insert back.
func (r *kycSubmissionRepository) CreateWithAccountStatus(ctx context.Context, submission *models.KYCSubmission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return fmt.Errorf("failed to create kyc submission: %w", err)
		}

		result := tx.Model(&models.Account{}).
			Where("id = ? AND kyc_status = ?", submission.AccountID, models.KYCStatusPending).
			Update("kyc_status", submission.Status)
		if result.Error != nil {
			return fmt.Errorf("failed to update account kyc status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Account{}).Where("id = ?", submission.AccountID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check account: %w", err)
			}
			if count == 0 {
				return ErrAccountNotFound
			}
			return ErrKYCClaimLost
		}

		return nil
	})
}
