package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeDomestic      = "domestic"
	TransactionTypeInternational = "international"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"

	// UnknownValue is rendered when a linked account or recipient cannot be resolved
	UnknownValue = "Unknown"
)

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidAmount            = errors.New("transaction amount cannot be negative")
	ErrInvalidCurrency          = errors.New("currency must be a 3-letter ISO code")
)

// Transaction is a cross-border payment record owned by exactly one account.
// Records are written by the payment-initiation pipeline; the API only reads them.
type Transaction struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount               decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency             string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Status               string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TransactionType      string          `gorm:"type:varchar(20);not null" json:"type"`
	PaymentMethod        string          `gorm:"type:varchar(50)" json:"payment_method"`
	RecipientName        string          `gorm:"type:varchar(255)" json:"recipient_name,omitempty"`
	Notes                string          `gorm:"type:text" json:"notes,omitempty"`
	SourceAccountID      *uuid.UUID      `gorm:"type:uuid" json:"source_account_id,omitempty"`
	DestinationAccountID *uuid.UUID      `gorm:"type:uuid" json:"destination_account_id,omitempty"`
	CreatedAt            time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	SourceAccount      *LinkedAccount `gorm:"foreignKey:SourceAccountID" json:"-"`
	DestinationAccount *LinkedAccount `gorm:"foreignKey:DestinationAccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Status == "" {
		t.Status = TransactionStatusPending
	}

	if t.Currency == "" {
		t.Currency = "USD"
	}

	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now().UTC()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}

	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	if len(t.Currency) != 3 {
		return ErrInvalidCurrency
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsCompleted returns true if the transaction is completed
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// CanTransitionTo checks if a transaction can move to a new status.
// Only pending transactions move, and only once.
func (t *Transaction) CanTransitionTo(newStatus string) bool {
	if t.Status != TransactionStatusPending {
		return false
	}
	return newStatus == TransactionStatusCompleted || newStatus == TransactionStatusFailed
}

// SourceCountry returns the country of the linked source account
func (t *Transaction) SourceCountry() string {
	if t.SourceAccount == nil || t.SourceAccount.CountryCode == "" {
		return UnknownValue
	}
	return t.SourceAccount.CountryCode
}

// DestinationCountry returns the country of the linked destination account
func (t *Transaction) DestinationCountry() string {
	if t.DestinationAccount == nil || t.DestinationAccount.CountryCode == "" {
		return UnknownValue
	}
	return t.DestinationAccount.CountryCode
}

// RecipientDisplayName prefers the destination account's display name, then the free-text recipient
func (t *Transaction) RecipientDisplayName() string {
	if t.DestinationAccount != nil && t.DestinationAccount.DisplayName != "" {
		return t.DestinationAccount.DisplayName
	}
	if t.RecipientName != "" {
		return t.RecipientName
	}
	return UnknownValue
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeDomestic, TransactionTypeInternational:
		return true
	default:
		return false
	}
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed:
		return true
	default:
		return false
	}
}
