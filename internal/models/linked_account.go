package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidCountryCode = errors.New("country code must be a 2-letter ISO code")

// LinkedAccount is an external bank account used as the source or destination of a payment
type LinkedAccount struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	CountryCode string    `gorm:"type:varchar(2);not null" json:"country_code"`
	DisplayName string    `gorm:"type:varchar(255)" json:"display_name,omitempty"`
	BankName    string    `gorm:"type:varchar(255)" json:"bank_name,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for LinkedAccount
func (l *LinkedAccount) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}
	if len(l.CountryCode) != 2 {
		return ErrInvalidCountryCode
	}
	return nil
}

// TableName returns the table name for LinkedAccount
func (l *LinkedAccount) TableName() string {
	return "linked_accounts"
}
