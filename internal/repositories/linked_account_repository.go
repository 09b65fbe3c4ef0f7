package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

type linkedAccountRepository struct {
	db *gorm.DB
}

// NewLinkedAccountRepository creates a new linked account repository
func NewLinkedAccountRepository(db *gorm.DB) LinkedAccountRepositoryInterface {
	return &linkedAccountRepository{db: db}
}

func (r *linkedAccountRepository) Create(ctx context.Context, linked *models.LinkedAccount) error {
	if err := r.db.WithContext(ctx).Create(linked).Error; err != nil {
		return fmt.Errorf("failed to create linked account: %w", err)
	}
	return nil
}

func (r *linkedAccountRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.LinkedAccount, error) {
	var linked []models.LinkedAccount
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&linked).Error; err != nil {
		return nil, fmt.Errorf("failed to list linked accounts: %w", err)
	}
	return linked, nil
}
