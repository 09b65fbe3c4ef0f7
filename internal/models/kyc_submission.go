package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DocumentTypePassport       = "passport"
	DocumentTypeNationalID     = "national_id"
	DocumentTypeDriversLicense = "drivers_license"
)

// KYCSubmission records one identity verification attempt forwarded to the provider
type KYCSubmission struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AccountID         uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	ProviderReference string    `gorm:"type:varchar(100);index" json:"provider_reference,omitempty"`
	Status            string    `gorm:"type:varchar(20);not null" json:"status"`
	ProviderDecision  string    `gorm:"type:varchar(50)" json:"provider_decision,omitempty"`
	Reasons           string    `gorm:"type:text" json:"reasons,omitempty"`
	DocumentType      string    `gorm:"type:varchar(30);not null" json:"document_type"`
	CountryCode       string    `gorm:"type:varchar(2);not null" json:"country_code"`
	SubmittedAt       time.Time `gorm:"not null;index" json:"submitted_at"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for KYCSubmission
func (k *KYCSubmission) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	if k.SubmittedAt.IsZero() {
		k.SubmittedAt = time.Now().UTC()
	}
	if k.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}
	if k.Status == KYCStatusNotStarted || !IsValidKYCStatus(k.Status) {
		return ErrInvalidKYCStatus
	}
	return nil
}

// TableName returns the table name for KYCSubmission
func (k *KYCSubmission) TableName() string {
	return "kyc_submissions"
}

// SetReasons stores the provider's reasons as a semicolon separated list
func (k *KYCSubmission) SetReasons(reasons []string) {
	k.Reasons = strings.Join(reasons, "; ")
}

// IsValidDocumentType checks if the identity document type is accepted
func IsValidDocumentType(documentType string) bool {
	switch documentType {
	case DocumentTypePassport, DocumentTypeNationalID, DocumentTypeDriversLicense:
		return true
	default:
		return false
	}
}
