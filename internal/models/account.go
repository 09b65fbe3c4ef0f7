package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	KYCStatusNotStarted = "not_started"
	KYCStatusPending    = "pending"
	KYCStatusApproved   = "approved"
	KYCStatusRejected   = "rejected"
)

var (
	ErrInvalidKYCStatus = errors.New("invalid KYC status")
	ErrInvalidEmail     = errors.New("account email is required")
)

// Account is the authenticated party that owns transactions and linked accounts
type Account struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email       string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName    string         `gorm:"type:varchar(255)" json:"full_name"`
	CountryCode string         `gorm:"type:varchar(2)" json:"country_code,omitempty"`
	KYCStatus   string         `gorm:"type:varchar(20);not null;default:'not_started'" json:"kyc_status"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Associations
	Transactions   []Transaction   `gorm:"foreignKey:AccountID" json:"-"`
	LinkedAccounts []LinkedAccount `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.KYCStatus == "" {
		a.KYCStatus = KYCStatusNotStarted
	}
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.Email == "" {
		return ErrInvalidEmail
	}
	if !IsValidKYCStatus(a.KYCStatus) {
		return ErrInvalidKYCStatus
	}
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsKYCApproved returns true once identity verification has passed
func (a *Account) IsKYCApproved() bool {
	return a.KYCStatus == KYCStatusApproved
}

// IsValidKYCStatus checks if the KYC status is valid
func IsValidKYCStatus(status string) bool {
	switch status {
	case KYCStatusNotStarted, KYCStatusPending, KYCStatusApproved, KYCStatusRejected:
		return true
	default:
		return false
	}
}
